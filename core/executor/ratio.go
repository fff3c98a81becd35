// Copyright 2021 The go-ethereum Authors
// (original work)
// Copyright 2024 The Erigon Authors
// (modifications)
//
// Adapted for Lumina: the reserve ratio is carried as basis-point
// integers rather than as a 64-bit float, per spec §5 ("a conformant
// implementation represents ratios as basis-point integers internally").
// The scaled-multiplication technique — do the multiply in a wider
// integer type before dividing, so no native uint64 op ever overflows —
// is grounded on the teacher's FakeExponential (consensus/misc/eip4844.go),
// which uses the same widen-then-divide approach for its EIP-4844 blob
// gas pricing curve.
package executor

import "github.com/holiman/uint256"

// ReserveRatioBps returns stabilization_pool/total_lusd_supply scaled to
// basis points (10000 = 1.0), or 10000 when supply is 0 (spec §3, §5).
func ReserveRatioBps(pool, supply uint64) uint64 {
	if supply == 0 {
		return 10000
	}
	num := uint256.NewInt(pool)
	num.Mul(num, uint256.NewInt(10000))
	den := uint256.NewInt(supply)
	num.Div(num, den)
	if !num.IsUint64() {
		return ^uint64(0)
	}
	return num.Uint64()
}

// bps comparison thresholds used throughout §4.D (RedeemSenior,
// circuit-breaker latch).
const (
	bpsCircuitBreakerFloor = 8500  // 0.85
	bpsRedeemQueueFloor    = 9500  // 0.95
	bpsOne                 = 10000 // 1.0
)

// RecalculateReserveRatio updates state.ReserveRatioBps and latches the
// circuit breaker when the ratio falls under 0.85 (spec §3 invariant:
// "circuit_breaker_active = true ... latching on; only
// RunCircuitBreaker{false} can clear it").
func RecalculateReserveRatio(ratioBps *uint64, circuitBreaker *bool, pool, supply uint64) {
	*ratioBps = ReserveRatioBps(pool, supply)
	if *ratioBps < bpsCircuitBreakerFloor {
		*circuitBreaker = true
	}
}

// mulDivU64 computes x*y/d without intermediate uint64 overflow, using a
// uint256 scratch value the same way FakeExponential widens its
// accumulator before dividing back down.
func mulDivU64(x, y, d uint64) uint64 {
	if d == 0 {
		return 0
	}
	v := uint256.NewInt(x)
	v.Mul(v, uint256.NewInt(y))
	v.Div(v, uint256.NewInt(d))
	if !v.IsUint64() {
		return ^uint64(0)
	}
	return v.Uint64()
}
