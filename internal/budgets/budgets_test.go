package budgets_test

import (
	"context"
	"errors"
	"fanvote/internal/budgets"
	"fanvote/pkg/domain"
	"fanvote/pkg/serrors"
	"fanvote/pkg/storage"
	mockstorage "fanvote/pkg/storage/mock"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, initial int64) (*gomock.Controller, *mockstorage.MockStorage, budgets.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	svc := budgets.New(st, budgets.Options{
		Retry:         storage.RetryOptions{MaxRetries: 1, BaseDelay: time.Millisecond},
		InitialBudget: initial,
		Now:           func() time.Time { return now },
	})

	return ctrl, st, svc
}

func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			fn(tx)

			return cb(tx)
		},
	)
}

func storedBudget(t *testing.T, userID domain.UserID, orgID domain.OrganizationID, votes int64) *domain.VoteBudget {
	t.Helper()

	b, err := domain.RestoreVoteBudget(domain.VoteBudgetState{
		ID:             domain.NewVoteBudgetID(),
		UserID:         userID,
		OrganizationID: orgID,
		VotesRemaining: votes,
		CreatedAt:      now.Add(-time.Hour),
		UpdatedAt:      now.Add(-time.Hour),
		Version:        2,
	})
	require.NoError(t, err)

	return b
}

func TestService_Grant(t *testing.T) {
	userID, orgID := domain.NewUserID(), domain.NewOrganizationID()

	tests := []struct {
		name     string
		initial  int64
		existing *domain.VoteBudget
		want     int64
	}{
		{name: "opens budget", want: 5},
		{name: "opens budget with initial balance", initial: 3, want: 8},
		{name: "credits budget", initial: 3, existing: storedBudget(t, userID, orgID, 1), want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, st, svc := newTestService(t, tt.initial)

			expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
				tx.EXPECT().OrganizationExists(gomock.Any(), orgID).Return(true, nil)
				tx.EXPECT().BudgetForUpdate(gomock.Any(), userID, orgID).Return(tt.existing, nil)
				tx.EXPECT().SaveBudget(gomock.Any(), gomock.Any()).Return(nil)
			})

			b, err := svc.Grant(context.Background(), userID, orgID, 5)
			require.NoError(t, err)
			require.Equal(t, tt.want, b.VotesRemaining())
			require.Equal(t, now, b.UpdatedAt())
			require.Equal(t, tt.existing == nil, b.IsNew())
		})
	}
}

func TestService_Grant_Invalid(t *testing.T) {
	_, _, svc := newTestService(t, 0)

	_, err := svc.Grant(context.Background(), domain.NewUserID(), domain.NewOrganizationID(), 0)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_Grant_UnknownOrganization(t *testing.T) {
	ctrl, st, svc := newTestService(t, 0)

	orgID := domain.NewOrganizationID()
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().OrganizationExists(gomock.Any(), orgID).Return(false, nil)
	})

	_, err := svc.Grant(context.Background(), domain.NewUserID(), orgID, 1)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestService_Grant_RetriesConflict(t *testing.T) {
	ctrl, st, svc := newTestService(t, 0)

	userID, orgID := domain.NewUserID(), domain.NewOrganizationID()
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().OrganizationExists(gomock.Any(), orgID).Return(true, nil)
		tx.EXPECT().BudgetForUpdate(gomock.Any(), userID, orgID).Return(nil, nil)
		tx.EXPECT().SaveBudget(gomock.Any(), gomock.Any()).Return(storage.ErrVersionConflict)
	})
	existing := storedBudget(t, userID, orgID, 4)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().OrganizationExists(gomock.Any(), orgID).Return(true, nil)
		tx.EXPECT().BudgetForUpdate(gomock.Any(), userID, orgID).Return(existing, nil)
		tx.EXPECT().SaveBudget(gomock.Any(), existing).Return(nil)
	})

	b, err := svc.Grant(context.Background(), userID, orgID, 2)
	require.NoError(t, err)
	require.Equal(t, int64(6), b.VotesRemaining())
}

func TestService_Balance(t *testing.T) {
	_, st, svc := newTestService(t, 0)

	userID, orgID := domain.NewUserID(), domain.NewOrganizationID()
	gomock.InOrder(
		st.EXPECT().Budget(gomock.Any(), userID, orgID).Return(storedBudget(t, userID, orgID, 9), nil),
		st.EXPECT().Budget(gomock.Any(), userID, orgID).Return(nil, nil),
		st.EXPECT().Budget(gomock.Any(), userID, orgID).Return(nil, errors.New("connection reset")),
	)

	n, err := svc.Balance(context.Background(), userID, orgID)
	require.NoError(t, err)
	require.Equal(t, int64(9), n)

	n, err = svc.Balance(context.Background(), userID, orgID)
	require.NoError(t, err)
	require.Zero(t, n)

	_, err = svc.Balance(context.Background(), userID, orgID)
	require.Error(t, err)
}
