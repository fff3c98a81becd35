// Package crypto provides the signature and proof-verification adapters
// consumed by the transaction pipeline and instruction executor. Every
// signature verifier here fails closed: any malformed input returns
// ErrCryptoInvalid rather than panicking (spec §4.C); the opaque proof
// verifiers in proofs.go return false instead.
package crypto

import (
	"errors"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/sha3"
)

// ErrCryptoInvalid is returned by every verifier on any defect in its
// input: wrong length, malformed encoding, or a signature that does not
// verify (spec §4.C, §7 CryptoInvalid).
var ErrCryptoInvalid = errors.New("crypto: invalid signature or key")

// VerifyClassical checks a 64-byte compact secp256k1 signature over msg
// under pubkey32. pubkey32 is the 32-byte address acting as the account's
// classical public key, matching the teacher's convention of treating
// the sender address as the verification key for accounts that never
// rotated to a dedicated pubkey field.
func VerifyClassical(pubkey32 [32]byte, msg []byte, sig64 []byte) error {
	if len(sig64) != 64 || len(msg) == 0 {
		return ErrCryptoInvalid
	}
	pub, err := secp256k1.ParsePubKey(append([]byte{0x02}, pubkey32[:]...))
	if err != nil {
		return ErrCryptoInvalid
	}
	r := new(secp256k1.ModNScalar)
	if overflow := r.SetByteSlice(sig64[:32]); overflow {
		return ErrCryptoInvalid
	}
	s := new(secp256k1.ModNScalar)
	if overflow := s.SetByteSlice(sig64[32:]); overflow {
		return ErrCryptoInvalid
	}
	sig := ecdsa.NewSignature(r, s)
	digest := sha3.Sum256(msg)
	if !sig.Verify(digest[:], pub) {
		return ErrCryptoInvalid
	}
	return nil
}
