package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lsantos-dev/moneta/internal/report"
)

func TestTotalByKind(t *testing.T) {
	txs := []*report.Transaction{
		{Kind: report.KindIncome, Amount: 100},
		{Kind: report.KindExpense, Amount: 40},
		{Kind: report.KindIncome, Amount: 59.5},
	}

	assert.InDelta(t, 159.5, report.TotalByKind(txs, report.KindIncome), 1e-9)
	assert.InDelta(t, 40, report.TotalByKind(txs, report.KindExpense), 1e-9)
}

func TestTotalByKind_Empty(t *testing.T) {
	assert.Zero(t, report.TotalByKind(nil, report.KindIncome))
	assert.Zero(t, report.TotalByKind([]*report.Transaction{}, report.KindExpense))
}

func TestKind_Valid(t *testing.T) {
	assert.True(t, report.KindIncome.Valid())
	assert.True(t, report.KindExpense.Valid())
	assert.False(t, report.Kind("transfer").Valid())
}
