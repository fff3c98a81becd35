package executor

import "github.com/luminachain/core/core/types"

// ComputeHealthIndex assembles the 0..=10000 weighted score described in
// spec §4.I. Every sub-score is saturating integer arithmetic; there is
// no floating point anywhere in this computation.
func ComputeHealthIndex(s *types.GlobalState) uint64 {
	var total uint64

	// Reserve ratio (30%): clamp(ratio, 0, 2) * 1500, capped at 3000.
	// ReserveRatioBps is already basis points (10000 = 1.0, so 20000 = 2.0).
	clamped := s.ReserveRatioBps
	if clamped > 20000 {
		clamped = 20000
	}
	reserveScore := mulDivU64(clamped, 1500, 10000)
	if reserveScore > 3000 {
		reserveScore = 3000
	}
	total += reserveScore

	// Peg (25%): LUSD-USD from oracle, default 1_000_000.
	price, ok := s.OraclePrices["LUSD-USD"]
	if !ok {
		price = 1_000_000
	}
	var deviation uint64
	if price > 1_000_000 {
		deviation = price - 1_000_000
	} else {
		deviation = 1_000_000 - price
	}
	switch {
	case deviation < 50_000:
		total += 2500
	case deviation < 100_000:
		total += 1500
	default:
		total += 500
	}

	// Circuit breaker inactive (15%).
	if !s.CircuitBreakerActive {
		total += 1500
	}

	// Insurance coverage (15%): (insurance/supply)*30000, capped 1500;
	// 1500 if supply is 0.
	if s.TotalLUSDSupply == 0 {
		total += 1500
	} else {
		cov := mulDivU64(s.InsuranceFund, 30000, s.TotalLUSDSupply)
		if cov > 1500 {
			cov = 1500
		}
		total += cov
	}

	// Green validators (10%): green_count*1000/total, capped 1000;
	// 500 if no validators.
	if len(s.Validators) == 0 {
		total += 500
	} else {
		var green uint64
		for _, v := range s.Validators {
			if v.IsGreen {
				green++
			}
		}
		score := mulDivU64(green, 1000, uint64(len(s.Validators)))
		if score > 1000 {
			score = 1000
		}
		total += score
	}

	// Custodian diversity (5%): min(len, 10)*50.
	n := uint64(len(s.Custodians))
	if n > 10 {
		n = 10
	}
	total += n * 50

	if total > 10000 {
		total = 10000
	}
	return total
}
