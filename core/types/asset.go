package types

// AssetKind identifies which balance of an Account a given operation
// touches. Custom assets are identified by their ticker in
// Account.CustomBalances instead of by this enum.
type AssetKind uint8

const (
	AssetLUSD AssetKind = iota
	AssetLJUN
	AssetNativeGas
	AssetCustom
)

func (a AssetKind) String() string {
	switch a {
	case AssetLUSD:
		return "LUSD"
	case AssetLJUN:
		return "LJUN"
	case AssetNativeGas:
		return "NATIVE"
	case AssetCustom:
		return "CUSTOM"
	default:
		return "UNKNOWN"
	}
}

// MaxTickerLen and MinTickerLen bound RegisterAsset / custom balance
// tickers (spec §4.D RegisterAsset).
const (
	MinTickerLen = 1
	MaxTickerLen = 16
)
