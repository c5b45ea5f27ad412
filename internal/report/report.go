package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vincenzopalazzo/funds/internal/domain"
)

// testNetwork is the network name that marks fiat figures as play money.
const testNetwork = "testnet"

// advisoryKey labels the human-readable network advisory.
const advisoryKey = "informations"

// Entry is one labelled line of a funds report. Category and Token stay
// separate until serialization; denomination tokens are canonical and
// currency tokens upper-case, which keeps the two label namespaces disjoint.
type Entry struct {
	Category string
	Token    string
	Value    string
}

// Key returns the flattened label for the entry.
func (e Entry) Key() string {
	if e.Token == "" {
		return e.Category
	}
	return e.Category + " " + e.Token
}

// Report is the ordered output of one funds request. Entry order survives
// JSON serialization, so identical inputs yield byte-identical output.
type Report struct {
	entries []Entry
}

// Entries returns the report lines in output order.
func (r Report) Entries() []Entry {
	return r.entries
}

// Get returns the value for a flattened label, if present.
func (r Report) Get(key string) (string, bool) {
	for _, e := range r.entries {
		if e.Key() == key {
			return e.Value, true
		}
	}
	return "", false
}

// MarshalJSON renders the report as a flat object, preserving entry order.
func (r Report) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range r.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key())
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Assemble builds the funds report. Without a price only the denomination
// rows are emitted; with one, each row gains a fiat counterpart and the
// report closes with the network advisory.
func Assemble(totals domain.Totals, denom domain.Denomination, currency domain.Currency, price *decimal.Decimal, network string) Report {
	token := denom.Token()

	rows := []struct {
		category string
		sat      int64
	}{
		{"total", totals.Total},
		{"onchain", totals.OnChain},
		{"offchain", totals.OffChain},
	}

	var entries []Entry
	for _, row := range rows {
		entries = append(entries, Entry{
			Category: row.category,
			Token:    token,
			Value:    domain.FormatSat(row.sat, denom) + " " + token,
		})
		if price != nil {
			fiatToken := currency.Token()
			entries = append(entries, Entry{
				Category: row.category,
				Token:    fiatToken,
				Value:    domain.FormatFiat(*price, row.sat) + " " + fiatToken,
			})
		}
	}

	if price != nil {
		entries = append(entries, Entry{
			Category: advisoryKey,
			Value:    advisory(network, currency.Token()),
		})
	}

	return Report{entries: entries}
}

func advisory(network, currencyToken string) string {
	if strings.EqualFold(network, testNetwork) {
		return fmt.Sprintf("The network is %s, so the %s not are real :(", network, currencyToken)
	}
	return fmt.Sprintf("The network is %s, so the %s are real :D", network, currencyToken)
}
