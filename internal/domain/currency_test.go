package domain

import "testing"

func TestResolveCurrencyAliases(t *testing.T) {
	cases := []struct {
		token string
		want  Currency
	}{
		{"USD", USD},
		{"usd", USD},
		{"EUR", EUR},
		{"eur", EUR},
	}

	for _, c := range cases {
		if got := ResolveCurrency(c.token); got != c.want {
			t.Errorf("ResolveCurrency(%q) = %v, want %v", c.token, got, c.want)
		}
	}
}

func TestResolveCurrencyUnknownFallsBackToUSD(t *testing.T) {
	// Lookup is case-preserving: mixed-case forms are not in the table.
	for _, token := range []string{"", "Eur", "GBP", "dollars"} {
		if got := ResolveCurrency(token); got != USD {
			t.Errorf("ResolveCurrency(%q) = %v, want USD", token, got)
		}
	}
}

func TestCurrencyPairs(t *testing.T) {
	if got := USD.Pair(); got != "btcusd" {
		t.Errorf("USD.Pair() = %q, want btcusd", got)
	}
	if got := EUR.Pair(); got != "btceur" {
		t.Errorf("EUR.Pair() = %q, want btceur", got)
	}
}

func TestCurrencyTokens(t *testing.T) {
	if got := USD.Token(); got != "USD" {
		t.Errorf("USD.Token() = %q, want USD", got)
	}
	if got := EUR.Token(); got != "EUR" {
		t.Errorf("EUR.Token() = %q, want EUR", got)
	}
}
