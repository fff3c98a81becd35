// Package safemath provides overflow-checked arithmetic over the unsigned
// 64-bit balances and counters that make up chain state. No monetary
// operation in core/executor may wrap silently (spec invariant, §3).
package safemath

import "math/bits"

// AddU64 returns x+y and reports whether the addition overflowed.
func AddU64(x, y uint64) (uint64, bool) {
	sum, carry := bits.Add64(x, y, 0)
	return sum, carry != 0
}

// SubU64 returns x-y and reports whether the subtraction underflowed.
func SubU64(x, y uint64) (uint64, bool) {
	diff, borrow := bits.Sub64(x, y, 0)
	return diff, borrow != 0
}

// MulU64 returns x*y and reports whether the multiplication overflowed.
func MulU64(x, y uint64) (uint64, bool) {
	hi, lo := bits.Mul64(x, y)
	return lo, hi != 0
}

// SaturatingSub returns x-y, clamped to 0 instead of underflowing.
func SaturatingSub(x, y uint64) uint64 {
	if y > x {
		return 0
	}
	return x - y
}

// SaturatingAdd returns x+y, clamped to MaxUint64 instead of overflowing.
func SaturatingAdd(x, y uint64) uint64 {
	sum, overflow := AddU64(x, y)
	if overflow {
		return ^uint64(0)
	}
	return sum
}

// MinU64 returns the smaller of x and y.
func MinU64(x, y uint64) uint64 {
	if x < y {
		return x
	}
	return y
}

// MaxU64 returns the larger of x and y.
func MaxU64(x, y uint64) uint64 {
	if x > y {
		return x
	}
	return y
}

// CeilDiv returns ceil(x/y), or 0 when y is 0.
func CeilDiv(x, y uint64) uint64 {
	if y == 0 {
		return 0
	}
	return (x + y - 1) / y
}
