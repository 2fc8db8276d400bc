package networth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lsantos-dev/moneta/internal/networth"
)

func TestTotalByKind(t *testing.T) {
	entries := []*networth.Entry{
		{Kind: networth.KindAsset, Amount: 10000},
		{Kind: networth.KindLiability, Amount: 5000},
		{Kind: networth.KindAsset, Amount: 2500.75},
	}

	assert.InDelta(t, 12500.75, networth.TotalByKind(entries, networth.KindAsset), 1e-9)
	assert.InDelta(t, 5000, networth.TotalByKind(entries, networth.KindLiability), 1e-9)
}

func TestNet(t *testing.T) {
	tests := []struct {
		name    string
		entries []*networth.Entry
		want    float64
	}{
		{
			name: "AssetsMinusLiabilities",
			entries: []*networth.Entry{
				{Kind: networth.KindAsset, Amount: 10000},
				{Kind: networth.KindLiability, Amount: 5000},
			},
			want: 5000,
		},
		{
			name: "LiabilitiesCanOutweigh",
			entries: []*networth.Entry{
				{Kind: networth.KindAsset, Amount: 1000},
				{Kind: networth.KindLiability, Amount: 2500},
			},
			want: -1500,
		},
		{
			name:    "Empty",
			entries: nil,
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, networth.Net(tt.entries), 1e-9)
		})
	}
}

// The algebraic identity from the aggregation rules:
// assets + liabilities - 2*liabilities == net.
func TestNet_Identity(t *testing.T) {
	entries := []*networth.Entry{
		{Kind: networth.KindAsset, Amount: 10000},
		{Kind: networth.KindLiability, Amount: 5000},
	}

	assets := networth.TotalByKind(entries, networth.KindAsset)
	liabilities := networth.TotalByKind(entries, networth.KindLiability)

	assert.InDelta(t, assets+liabilities-2*liabilities, networth.Net(entries), 1e-9)
}
