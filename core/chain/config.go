// Package chain wires the instruction executor into a block-oriented
// pipeline: the transaction pipeline, block builder/importer, fork-choice,
// and the storage contract they all share (spec §4.E-§4.H, §6).
package chain

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// Config carries every tunable the core needs beyond the fixed algorithms
// (hash choice, trie shape): fee rates, rotation windows, collateral
// ratios. Everything here has a spec-mandated default; a deployment only
// needs a TOML file to override one, the same way erigon's chain.Config
// is data-driven rather than hardcoded per network.
type Config struct {
	ChainName string `toml:"chain_name"`

	// MintSeniorFeeDenominator is the MintSenior fee divisor (spec §4.D:
	// "fee = amount/20").
	MintSeniorFeeDenominator uint64 `toml:"mint_senior_fee_denominator"`

	// CircuitBreakerFloorBps/RedeemQueueFloorBps are the reserve-ratio
	// thresholds from spec §3/§4.D (8500 = 0.85, 9500 = 0.95).
	CircuitBreakerFloorBps uint64 `toml:"circuit_breaker_floor_bps"`
	RedeemQueueFloorBps    uint64 `toml:"redeem_queue_floor_bps"`

	// FlashMintCollateralBps is the 110% over-collateralization floor
	// (spec §4.D FlashMint).
	FlashMintCollateralBps uint64 `toml:"flash_mint_collateral_bps"`

	// ReserveRotationCooldownBlocks is the minimum gap between
	// RotateReserves calls (spec §4.D: 259200).
	ReserveRotationCooldownBlocks uint64 `toml:"reserve_rotation_cooldown_blocks"`

	// MaxBatchMatchOrders bounds ZeroSlipBatchMatch (spec §4.D: ≤ 1000).
	MaxBatchMatchOrders int `toml:"max_batch_match_orders"`
}

// DefaultConfig returns the values spec §4.D hardcodes; a genesis TOML
// file only needs to list the fields it overrides.
func DefaultConfig() Config {
	return Config{
		ChainName:                     "lumina-mainnet",
		MintSeniorFeeDenominator:      20,
		CircuitBreakerFloorBps:        8500,
		RedeemQueueFloorBps:           9500,
		FlashMintCollateralBps:        11000,
		ReserveRotationCooldownBlocks: 259200,
		MaxBatchMatchOrders:           1000,
	}
}

// LoadConfig decodes a TOML genesis/config file over DefaultConfig, so an
// omitted field keeps its spec-mandated default.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode chain config: %w", err)
	}
	return cfg, nil
}
