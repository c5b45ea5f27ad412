package fund

import (
	"github.com/samber/lo"

	"github.com/vincenzopalazzo/funds/internal/domain"
)

// Aggregate sums a fund snapshot into satoshi totals. It is a pure function
// of its input; values are trusted as produced by the node and pass through
// unvalidated.
func Aggregate(snapshot domain.FundSnapshot) domain.Totals {
	onChain := lo.SumBy(snapshot.Outputs, func(o domain.Output) int64 {
		return o.Value
	})
	offChain := lo.SumBy(snapshot.Channels, func(c domain.Channel) int64 {
		return c.ChannelSat
	})

	return domain.Totals{
		OnChain:  onChain,
		OffChain: offChain,
		Total:    onChain + offChain,
	}
}
