package domain

// Currency is a supported fiat quote currency.
type Currency int

const (
	USD Currency = iota
	EUR
)

// Token returns the display token for the currency.
func (c Currency) Token() string {
	if c == EUR {
		return "EUR"
	}
	return "USD"
}

// Pair returns the ticker trading-pair identifier for bitcoin priced in c.
func (c Currency) Pair() string {
	if c == EUR {
		return "btceur"
	}
	return "btcusd"
}

// currencyAliases holds both upper and lower forms; lookup is case-preserving.
var currencyAliases = map[string]Currency{
	"USD": USD,
	"usd": USD,
	"EUR": EUR,
	"eur": EUR,
}

// ResolveCurrency maps a caller token to a Currency. Unrecognized or empty
// tokens resolve to USD; the function is total.
func ResolveCurrency(token string) Currency {
	if c, ok := currencyAliases[token]; ok {
		return c
	}
	return USD
}
