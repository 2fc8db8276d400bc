package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lsantos-dev/moneta/internal/report"
)

func TestService_List(t *testing.T) {
	ownerID := uuid.New()

	type testCase struct {
		name      string
		page      int
		setupMock func(m *report.MockRepository)
		wantLen   int
		wantTotal int
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "FirstPageByDefault",
			page: 1,
			setupMock: func(m *report.MockRepository) {
				m.EXPECT().
					ListReports(gomock.Any(), ownerID, 20, 0).
					Return([]*report.Report{{ID: uuid.New()}, {ID: uuid.New()}}, 2, nil)
			},
			wantLen:   2,
			wantTotal: 2,
		},
		{
			name: "SecondPageOffset",
			page: 2,
			setupMock: func(m *report.MockRepository) {
				m.EXPECT().
					ListReports(gomock.Any(), ownerID, 20, 20).
					Return([]*report.Report{{ID: uuid.New()}}, 21, nil)
			},
			wantLen:   1,
			wantTotal: 21,
		},
		{
			// A page past the end is not an error: empty items with the
			// true owner-scoped count.
			name: "PastTheEnd",
			page: 9,
			setupMock: func(m *report.MockRepository) {
				m.EXPECT().
					ListReports(gomock.Any(), ownerID, 20, 160).
					Return(nil, 3, nil)
			},
			wantLen:   0,
			wantTotal: 3,
		},
		{
			name: "RepoError",
			page: 1,
			setupMock: func(m *report.MockRepository) {
				m.EXPECT().
					ListReports(gomock.Any(), ownerID, 20, 0).
					Return(nil, 0, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := report.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := report.NewService(repo)
			got, err := svc.List(context.Background(), ownerID, tt.page)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Len(t, got.Items, tt.wantLen)
			assert.Equal(t, tt.wantTotal, got.TotalCount)
		})
	}
}

func TestService_Get_TotalsScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	reportID := uuid.New()

	repo := report.NewMockRepository(ctrl)
	repo.EXPECT().
		GetReport(gomock.Any(), reportID, ownerID).
		Return(&report.Report{ID: reportID, OwnerID: ownerID, Title: "March"}, nil)
	repo.EXPECT().
		ListTransactions(gomock.Any(), reportID).
		Return([]*report.Transaction{
			{Kind: report.KindIncome, Amount: 100},
			{Kind: report.KindExpense, Amount: 40},
		}, nil)

	svc := report.NewService(repo)

	r, err := svc.Get(context.Background(), ownerID, reportID)
	require.NoError(t, err)
	assert.InDelta(t, 100, report.TotalByKind(r.Transactions, report.KindIncome), 1e-9)
	assert.InDelta(t, 40, report.TotalByKind(r.Transactions, report.KindExpense), 1e-9)
}

func TestService_Get_NotOwned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	reportID := uuid.New()

	repo := report.NewMockRepository(ctrl)
	repo.EXPECT().
		GetReport(gomock.Any(), reportID, ownerID).
		Return(nil, report.ErrNotFound)

	svc := report.NewService(repo)

	_, err := svc.Get(context.Background(), ownerID, reportID)
	assert.ErrorIs(t, err, report.ErrNotFound)
}

func TestService_Transactions_AttachedOrFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reportID := uuid.New()
	attached := []*report.Transaction{
		{Kind: report.KindIncome, Amount: 10},
		{Kind: report.KindExpense, Amount: 4},
	}

	repo := report.NewMockRepository(ctrl)
	// Only the detached path may hit the repository.
	repo.EXPECT().
		ListTransactions(gomock.Any(), reportID).
		Return(attached, nil).
		Times(1)

	svc := report.NewService(repo)

	preloaded, err := svc.Transactions(context.Background(), &report.Report{ID: reportID, Transactions: attached})
	require.NoError(t, err)

	fetched, err := svc.Transactions(context.Background(), &report.Report{ID: reportID})
	require.NoError(t, err)

	// Aggregates must not depend on which path materialized the slice.
	assert.Equal(t,
		report.TotalByKind(preloaded, report.KindIncome),
		report.TotalByKind(fetched, report.KindIncome))
	assert.Equal(t,
		report.TotalByKind(preloaded, report.KindExpense),
		report.TotalByKind(fetched, report.KindExpense))
}

func TestService_AddTransaction(t *testing.T) {
	ownerID := uuid.New()
	reportID := uuid.New()

	params := report.TransactionParams{
		Kind:        report.KindExpense,
		Amount:      12.5,
		Description: "Groceries",
		Category:    "Food",
		Date:        time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
	}

	type testCase struct {
		name      string
		setupMock func(m *report.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *report.MockRepository) {
				m.EXPECT().
					GetReport(gomock.Any(), reportID, ownerID).
					Return(&report.Report{ID: reportID, OwnerID: ownerID}, nil)
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *report.Transaction) error {
						tx.ID = uuid.New()
						tx.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			// Creating inside a report the caller does not own looks
			// exactly like the report not existing.
			name: "ReportNotOwned",
			setupMock: func(m *report.MockRepository) {
				m.EXPECT().
					GetReport(gomock.Any(), reportID, ownerID).
					Return(nil, report.ErrNotFound)
			},
			wantErr: report.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := report.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := report.NewService(repo)
			got, err := svc.AddTransaction(context.Background(), ownerID, reportID, params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, reportID, got.ReportID)
		})
	}
}

func TestService_ImportTransactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	reportID := uuid.New()

	repo := report.NewMockRepository(ctrl)
	repo.EXPECT().
		GetReport(gomock.Any(), reportID, ownerID).
		Return(&report.Report{ID: reportID, OwnerID: ownerID}, nil)
	repo.EXPECT().
		CreateTransactions(gomock.Any(), gomock.Len(2)).
		Return(nil)

	svc := report.NewService(repo)

	got, err := svc.ImportTransactions(context.Background(), ownerID, reportID, []report.TransactionParams{
		{Kind: report.KindIncome, Amount: 1200, Description: "Salary"},
		{Kind: report.KindExpense, Amount: 35.9, Description: "Internet"},
	})
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, reportID, got[0].ReportID)
}

func TestService_DeleteReport_NotOwned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	reportID := uuid.New()

	repo := report.NewMockRepository(ctrl)
	repo.EXPECT().
		DeleteReport(gomock.Any(), reportID, ownerID).
		Return(report.ErrNotFound)

	svc := report.NewService(repo)
	assert.ErrorIs(t, svc.Delete(context.Background(), ownerID, reportID), report.ErrNotFound)
}

func TestService_Rename(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	reportID := uuid.New()

	repo := report.NewMockRepository(ctrl)
	repo.EXPECT().
		GetReport(gomock.Any(), reportID, ownerID).
		Return(&report.Report{ID: reportID, OwnerID: ownerID, Title: "Old"}, nil)
	repo.EXPECT().
		UpdateReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *report.Report) error {
			assert.Equal(t, "New", r.Title)
			return nil
		})

	svc := report.NewService(repo)

	got, err := svc.Rename(context.Background(), ownerID, reportID, "New")
	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
}
