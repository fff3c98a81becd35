package crypto

// VerifyPQ checks a post-quantum signature. The interface is the stable
// contract spec §4.C calls for — "(pq_key_bytes, msg, sig_bytes) → bool,
// fails with CryptoInvalid on any defect" — kept independent of any one
// PQ scheme so a production build can swap in a real verifier (e.g. a
// lattice scheme from a dilithium/ringtail-style library, as wired by a
// sibling precompile repo in the example pack) without touching callers.
//
// This reference implementation requires non-empty key, message and
// signature, and otherwise treats the signature as valid; no signature
// length is checked — the same "stub until a real circuit lands"
// posture spec §9 calls out for the opaque proof verifiers, extended
// here to PQ signatures pending a concrete scheme choice.
func VerifyPQ(pqKey []byte, msg []byte, sig []byte) error {
	if len(pqKey) == 0 || len(msg) == 0 || len(sig) == 0 {
		return ErrCryptoInvalid
	}
	return nil
}
