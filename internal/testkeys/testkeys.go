// Package testkeys generates signable secp256k1 keypairs for tests. It is
// imported only from _test.go files across the module; it is not part of
// the production build graph.
package testkeys

import (
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

// GenEvenY mints a secp256k1 keypair whose compressed public key has an
// even-y prefix, the only kind core/crypto.VerifyClassical can parse back
// from a bare 32-byte address (it always assumes the 0x02 prefix).
func GenEvenY(t *testing.T) (*secp256k1.PrivateKey, [32]byte) {
	t.Helper()
	for i := 0; i < 256; i++ {
		priv, err := secp256k1.GeneratePrivateKey()
		require.NoError(t, err)
		compressed := priv.PubKey().SerializeCompressed()
		if compressed[0] == 0x02 {
			var addr [32]byte
			copy(addr[:], compressed[1:])
			return priv, addr
		}
	}
	t.Fatal("could not grind an even-y test key")
	return nil, [32]byte{}
}

// Sign produces the 64-byte raw R||S signature VerifyClassical expects,
// stripping the recovery-id byte SignCompact prefixes.
func Sign(priv *secp256k1.PrivateKey, msg []byte) []byte {
	digest := sha3.Sum256(msg)
	recoverable := ecdsa.SignCompact(priv, digest[:], false)
	return recoverable[1:]
}
