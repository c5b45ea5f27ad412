package fund

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/vincenzopalazzo/funds/internal/domain"
	"github.com/vincenzopalazzo/funds/internal/report"
)

// NodeClient reads fund and network snapshots from the lightning node.
type NodeClient interface {
	ListFunds(ctx context.Context) (domain.FundSnapshot, error)
	GetInfo(ctx context.Context) (domain.NodeInfo, error)
}

// PriceSource fetches the last trade price for a trading pair. The boolean
// reports availability; an unavailable price is an expected state.
type PriceSource interface {
	Last(ctx context.Context, pair string) (decimal.Decimal, bool)
}

// Service builds funds reports from a node snapshot and a best-effort price.
type Service struct {
	node        NodeClient
	prices      PriceSource
	defaultUnit string
}

// NewService creates a report Service. Both collaborators are required.
func NewService(node NodeClient, prices PriceSource, defaultUnit string) *Service {
	if node == nil {
		panic("fund.NewService: node is nil")
	}
	if prices == nil {
		panic("fund.NewService: prices is nil")
	}
	return &Service{
		node:        node,
		prices:      prices,
		defaultUnit: defaultUnit,
	}
}

// Report produces the funds overview for the given unit and trading tokens.
// An empty unit falls back to the configured default; an empty or unknown
// trading token falls back to USD. Only the two node reads can fail.
func (s *Service) Report(ctx context.Context, unit, trading string) (report.Report, error) {
	if unit == "" {
		unit = s.defaultUnit
	}
	denom := domain.ResolveDenomination(unit)
	currency := domain.ResolveCurrency(trading)
	slog.Debug("building funds report", "unit", denom.Token(), "currency", currency.Token())

	snapshot, err := s.node.ListFunds(ctx)
	if err != nil {
		return report.Report{}, fmt.Errorf("listing funds: %w", err)
	}
	totals := Aggregate(snapshot)

	info, err := s.node.GetInfo(ctx)
	if err != nil {
		return report.Report{}, fmt.Errorf("reading node info: %w", err)
	}

	price, ok := s.prices.Last(ctx, currency.Pair())
	if !ok {
		return report.Assemble(totals, denom, currency, nil, info.Network), nil
	}
	return report.Assemble(totals, denom, currency, &price, info.Network), nil
}
