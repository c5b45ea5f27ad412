package domain

import "strings"

// Denomination is a display scale for bitcoin amounts. All arithmetic in the
// system happens in satoshis; a Denomination only changes how a total is
// rendered.
type Denomination int

const (
	Sat Denomination = iota
	Bit
	MilliBTC
	BTC
)

// satsPer maps each denomination to the number of satoshis in one unit of it.
var satsPer = map[Denomination]int64{
	Sat:      1,
	Bit:      100,
	MilliBTC: 100 * 1000,
	BTC:      100 * 1000 * 1000,
}

// Token returns the canonical display token for the denomination.
func (d Denomination) Token() string {
	switch d {
	case BTC:
		return "BTC"
	case MilliBTC:
		return "mBTC"
	case Bit:
		return "bit"
	default:
		return "sat"
	}
}

// Divisor returns how many satoshis make up one unit of d.
func (d Denomination) Divisor() int64 {
	return satsPer[d]
}

// denomAliases maps lower-cased caller tokens to denominations.
var denomAliases = map[string]Denomination{
	"s":        Sat,
	"sat":      Sat,
	"satoshi":  Sat,
	"satoshis": Sat,
	"b":        Bit,
	"bit":      Bit,
	"bits":     Bit,
	"m":        MilliBTC,
	"milli":    MilliBTC,
	"mbtc":     MilliBTC,
	"millibtc": MilliBTC,
	"btc":      BTC,
	"bitcoin":  BTC,
}

// longFormAliases is consulted before lower-casing, so that "B" (bitcoin)
// and "b" (bit) stay distinct.
var longFormAliases = map[string]Denomination{
	"B": BTC,
}

// ResolveDenomination maps an arbitrary caller token to a Denomination.
// Unrecognized tokens resolve to Sat; the function is total.
func ResolveDenomination(token string) Denomination {
	if d, ok := longFormAliases[token]; ok {
		return d
	}
	if d, ok := denomAliases[strings.ToLower(token)]; ok {
		return d
	}
	return Sat
}
