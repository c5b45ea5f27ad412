package domain

import "github.com/shopspring/decimal"

// reportPrecision is the fixed number of fractional digits in report values,
// matching satoshi precision of one bitcoin.
const reportPrecision = 8

// FormatSat renders an amount of satoshis in the given denomination with
// eight fixed fractional digits. Decimal arithmetic keeps totals up to the
// full 21M BTC supply (2.1e15 sat) exact.
func FormatSat(sat int64, d Denomination) string {
	amount := decimal.NewFromInt(sat).Div(decimal.NewFromInt(d.Divisor()))
	return amount.StringFixed(reportPrecision)
}

// FormatFiat renders the fiat value of sat satoshis at the given price of one
// bitcoin, with eight fixed fractional digits.
func FormatFiat(price decimal.Decimal, sat int64) string {
	btc := decimal.NewFromInt(sat).Div(decimal.NewFromInt(BTC.Divisor()))
	return price.Mul(btc).StringFixed(reportPrecision)
}
