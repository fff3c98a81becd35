package crypto

// ProofVerifier checks an opaque proof blob against a context. The core
// treats every ZK circuit (reserves, range, credit score, green energy,
// RWA attestation, compliance, tax, multi-jurisdictional, confidential,
// insurance loss) as a pluggable instance of this shape (spec §4.C, §9):
// a production build replaces each with a real verifier before mainnet;
// until then a proof is accepted unless it is syntactically malformed
// (empty).
type ProofVerifier func(ctxBytes, proof []byte) bool

// StubVerifier is the reference "true unless malformed" implementation
// spec §9 describes for every opaque proof kind.
func StubVerifier(ctxBytes, proof []byte) bool {
	return len(proof) > 0
}

// Verifiers bundles one ProofVerifier per proof-gated instruction kind so
// the executor can be constructed with a full production stack (or left
// on StubVerifier everywhere, as the default chain config does).
type Verifiers struct {
	Reserves            ProofVerifier
	Range               ProofVerifier
	CreditScore         ProofVerifier
	GreenEnergy         ProofVerifier
	RWAAttestation      ProofVerifier
	Compliance          ProofVerifier
	Tax                 ProofVerifier
	MultiJurisdictional ProofVerifier
	Confidential        ProofVerifier
	InsuranceLoss       ProofVerifier
	ZkPoR               ProofVerifier
}

// DefaultVerifiers wires StubVerifier into every slot.
func DefaultVerifiers() Verifiers {
	return Verifiers{
		Reserves:            StubVerifier,
		Range:               StubVerifier,
		CreditScore:         StubVerifier,
		GreenEnergy:         StubVerifier,
		RWAAttestation:      StubVerifier,
		Compliance:          StubVerifier,
		Tax:                 StubVerifier,
		MultiJurisdictional: StubVerifier,
		Confidential:        StubVerifier,
		InsuranceLoss:       StubVerifier,
		ZkPoR:               StubVerifier,
	}
}
