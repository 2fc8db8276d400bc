package networth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lsantos-dev/moneta/internal/networth"
)

func TestService_Create_SnapshotScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()

	repo := networth.NewMockRepository(ctrl)
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, snap *networth.Snapshot) error {
			snap.ID = uuid.New()
			for _, e := range snap.Entries {
				e.ID = uuid.New()
				e.SnapshotID = snap.ID
			}
			return nil
		})

	svc := networth.NewService(repo)

	snap, err := svc.Create(context.Background(), ownerID, networth.CreateParams{
		Title: "Jan 2026",
		Entries: []networth.EntryParams{
			{Kind: networth.KindAsset, Label: "Savings", Amount: 5000, Category: "Savings"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Jan 2026", snap.Title)
	assert.InDelta(t, 5000, networth.TotalByKind(snap.Entries, networth.KindAsset), 1e-9)
	assert.Zero(t, networth.TotalByKind(snap.Entries, networth.KindLiability))
	assert.InDelta(t, 5000, networth.Net(snap.Entries), 1e-9)
}

func TestService_Create_AtomicFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := networth.NewMockRepository(ctrl)
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(errors.New("entry insert failed"))

	svc := networth.NewService(repo)

	snap, err := svc.Create(context.Background(), uuid.New(), networth.CreateParams{
		Title:   "Feb 2026",
		Entries: []networth.EntryParams{{Kind: networth.KindAsset, Label: "Cash", Amount: 10}},
	})
	assert.Error(t, err)
	assert.Nil(t, snap)
}

func TestService_List_IncludesEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	snapID := uuid.New()

	repo := networth.NewMockRepository(ctrl)
	repo.EXPECT().
		List(gomock.Any(), ownerID, 20, 0).
		Return([]*networth.Snapshot{
			{
				ID:      snapID,
				OwnerID: ownerID,
				Entries: []*networth.Entry{
					{Kind: networth.KindAsset, Amount: 100},
					{Kind: networth.KindLiability, Amount: 30},
				},
			},
		}, 1, nil)

	svc := networth.NewService(repo)

	got, err := svc.List(context.Background(), ownerID, 1)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 1, got.TotalCount)
	// Totals derive directly from the listed page, no second round trip.
	assert.InDelta(t, 70, networth.Net(got.Items[0].Entries), 1e-9)
}

func TestService_Entries_AttachedOrFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snapID := uuid.New()
	entries := []*networth.Entry{
		{Kind: networth.KindAsset, Amount: 10},
	}

	repo := networth.NewMockRepository(ctrl)
	repo.EXPECT().
		ListEntries(gomock.Any(), snapID).
		Return(entries, nil).
		Times(1)

	svc := networth.NewService(repo)

	attached, err := svc.Entries(context.Background(), &networth.Snapshot{ID: snapID, Entries: entries})
	require.NoError(t, err)

	fetched, err := svc.Entries(context.Background(), &networth.Snapshot{ID: snapID})
	require.NoError(t, err)

	assert.Equal(t, networth.Net(attached), networth.Net(fetched))
}

func TestService_Get_NotOwned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	snapID := uuid.New()

	repo := networth.NewMockRepository(ctrl)
	repo.EXPECT().
		Get(gomock.Any(), snapID, ownerID).
		Return(nil, networth.ErrNotFound)

	svc := networth.NewService(repo)

	_, err := svc.Get(context.Background(), ownerID, snapID)
	assert.ErrorIs(t, err, networth.ErrNotFound)
}

func TestService_Delete_NotOwned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	snapID := uuid.New()

	repo := networth.NewMockRepository(ctrl)
	repo.EXPECT().
		Delete(gomock.Any(), snapID, ownerID).
		Return(networth.ErrNotFound)

	svc := networth.NewService(repo)
	assert.ErrorIs(t, svc.Delete(context.Background(), ownerID, snapID), networth.ErrNotFound)
}
