package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vincenzopalazzo/funds/internal/domain"
)

func TestAssembleWithoutPrice(t *testing.T) {
	totals := domain.Totals{OnChain: 3000, OffChain: 500, Total: 3500}

	r := Assemble(totals, domain.Sat, domain.USD, nil, "bitcoin")

	entries := r.Entries()
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}

	if v, _ := r.Get("total sat"); v != "3500.00000000 sat" {
		t.Errorf("total sat = %q", v)
	}
	if v, _ := r.Get("onchain sat"); v != "3000.00000000 sat" {
		t.Errorf("onchain sat = %q", v)
	}
	if v, _ := r.Get("offchain sat"); v != "500.00000000 sat" {
		t.Errorf("offchain sat = %q", v)
	}
	if _, ok := r.Get("informations"); ok {
		t.Error("unexpected advisory without a price")
	}
	if _, ok := r.Get("total USD"); ok {
		t.Error("unexpected currency entry without a price")
	}
}

func TestAssembleWithPrice(t *testing.T) {
	totals := domain.Totals{OnChain: 250_000_000, OffChain: 50_000_000, Total: 300_000_000}
	price := decimal.NewFromInt(60000)

	r := Assemble(totals, domain.BTC, domain.USD, &price, "bitcoin")

	if v, _ := r.Get("total BTC"); v != "3.00000000 BTC" {
		t.Errorf("total BTC = %q", v)
	}
	if v, _ := r.Get("total USD"); v != "180000.00000000 USD" {
		t.Errorf("total USD = %q", v)
	}
	if v, _ := r.Get("onchain USD"); v != "150000.00000000 USD" {
		t.Errorf("onchain USD = %q", v)
	}
	if v, _ := r.Get("offchain USD"); v != "30000.00000000 USD" {
		t.Errorf("offchain USD = %q", v)
	}

	advisory, ok := r.Get("informations")
	if !ok {
		t.Fatal("missing advisory")
	}
	if advisory != "The network is bitcoin, so the USD are real :D" {
		t.Errorf("advisory = %q", advisory)
	}
}

func TestAssembleTestnetAdvisory(t *testing.T) {
	price := decimal.NewFromInt(100)

	for _, network := range []string{"testnet", "Testnet", "TESTNET"} {
		r := Assemble(domain.Totals{}, domain.Sat, domain.EUR, &price, network)
		advisory, ok := r.Get("informations")
		if !ok {
			t.Fatalf("%s: missing advisory", network)
		}
		if !strings.Contains(advisory, "not are real") {
			t.Errorf("%s: advisory = %q, want test-network disclaimer", network, advisory)
		}
		if !strings.Contains(advisory, "EUR") {
			t.Errorf("%s: advisory = %q, want currency token", network, advisory)
		}
	}
}

func TestMarshalPreservesOrder(t *testing.T) {
	totals := domain.Totals{OnChain: 100, OffChain: 50, Total: 150}
	price := decimal.NewFromInt(50000)

	r := Assemble(totals, domain.Sat, domain.USD, &price, "bitcoin")

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	wantOrder := []string{
		`"total sat"`, `"total USD"`,
		`"onchain sat"`, `"onchain USD"`,
		`"offchain sat"`, `"offchain USD"`,
		`"informations"`,
	}
	last := -1
	for _, key := range wantOrder {
		idx := bytes.Index(data, []byte(key))
		if idx < 0 {
			t.Fatalf("key %s missing from %s", key, data)
		}
		if idx < last {
			t.Errorf("key %s out of order in %s", key, data)
		}
		last = idx
	}

	// round-trips as a plain JSON object
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(m) != 7 {
		t.Errorf("keys = %d, want 7", len(m))
	}
}

func TestMarshalIdempotent(t *testing.T) {
	totals := domain.Totals{OnChain: 42, OffChain: 7, Total: 49}
	price := decimal.NewFromFloat(61234.56)

	first, err := json.Marshal(Assemble(totals, domain.Bit, domain.EUR, &price, "bitcoin"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	second, err := json.Marshal(Assemble(totals, domain.Bit, domain.EUR, &price, "bitcoin"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("reports differ:\n%s\n%s", first, second)
	}
}
