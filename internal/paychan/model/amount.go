package model

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// DropsPerXRP is the number of drops in one XRP.
const DropsPerXRP = 1_000_000

// XRP renders a drops amount as a decimal XRP string.
func XRP(drops uint64) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(drops), -6).String()
}
