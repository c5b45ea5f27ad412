package domain

// Output is one on-chain output owned by the node, as reported by listfunds.
type Output struct {
	TxID    string `json:"txid"`
	Index   int    `json:"output"`
	Value   int64  `json:"value"`
	Address string `json:"address,omitempty"`
	Status  string `json:"status,omitempty"`
}

// Channel is one payment channel with the node's local balance.
type Channel struct {
	PeerID          string `json:"peer_id"`
	ShortChannelID  string `json:"short_channel_id,omitempty"`
	ChannelSat      int64  `json:"channel_sat"`
	ChannelTotalSat int64  `json:"channel_total_sat,omitempty"`
	State           string `json:"state,omitempty"`
}

// FundSnapshot is a point-in-time read of the node's on-chain outputs and
// channel balances. It is fetched fresh for every report and never cached.
type FundSnapshot struct {
	Outputs  []Output  `json:"outputs"`
	Channels []Channel `json:"channels"`
}

// NodeInfo is the subset of getinfo the report pipeline needs.
type NodeInfo struct {
	ID          string `json:"id"`
	Alias       string `json:"alias"`
	Network     string `json:"network"`
	Blockheight int    `json:"blockheight"`
}

// Totals holds aggregated fund sums in satoshis.
type Totals struct {
	OnChain  int64
	OffChain int64
	Total    int64
}
