package fund

import (
	"testing"

	"github.com/vincenzopalazzo/funds/internal/domain"
)

func TestAggregateEmptySnapshot(t *testing.T) {
	totals := Aggregate(domain.FundSnapshot{})

	if totals.OnChain != 0 || totals.OffChain != 0 || totals.Total != 0 {
		t.Errorf("totals = %+v, want all zero", totals)
	}
}

func TestAggregateSums(t *testing.T) {
	snapshot := domain.FundSnapshot{
		Outputs: []domain.Output{
			{TxID: "aa", Value: 1000},
			{TxID: "bb", Value: 2000},
		},
		Channels: []domain.Channel{
			{PeerID: "02abc", ChannelSat: 500},
		},
	}

	totals := Aggregate(snapshot)

	if totals.OnChain != 3000 {
		t.Errorf("OnChain = %d, want 3000", totals.OnChain)
	}
	if totals.OffChain != 500 {
		t.Errorf("OffChain = %d, want 500", totals.OffChain)
	}
	if totals.Total != 3500 {
		t.Errorf("Total = %d, want 3500", totals.Total)
	}
}

func TestAggregateNegativeValuesPassThrough(t *testing.T) {
	snapshot := domain.FundSnapshot{
		Outputs:  []domain.Output{{Value: -100}, {Value: 300}},
		Channels: []domain.Channel{{ChannelSat: -50}},
	}

	totals := Aggregate(snapshot)

	if totals.OnChain != 200 {
		t.Errorf("OnChain = %d, want 200", totals.OnChain)
	}
	if totals.OffChain != -50 {
		t.Errorf("OffChain = %d, want -50", totals.OffChain)
	}
	if totals.Total != 150 {
		t.Errorf("Total = %d, want 150", totals.Total)
	}
}

func TestAggregateDoesNotMutateSnapshot(t *testing.T) {
	snapshot := domain.FundSnapshot{
		Outputs:  []domain.Output{{Value: 42}},
		Channels: []domain.Channel{{ChannelSat: 7}},
	}

	Aggregate(snapshot)

	if snapshot.Outputs[0].Value != 42 || snapshot.Channels[0].ChannelSat != 7 {
		t.Errorf("snapshot mutated: %+v", snapshot)
	}
}
