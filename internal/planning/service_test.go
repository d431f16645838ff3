package planning_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jpcaldeira/tandem/internal/planning"
	"github.com/jpcaldeira/tandem/internal/session"
	"github.com/jpcaldeira/tandem/internal/transaction"
)

func newSession() session.Session {
	return session.New(uuid.New(), nil)
}

func TestService_Create_InstallmentExpansion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := planning.NewMockRepository(ctrl)
	ledger := planning.NewMockLedger(ctrl)

	var created []*planning.Entry

	repo.EXPECT().
		CreateEntries(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entries []*planning.Entry) error {
			created = entries
			return nil
		})

	svc := planning.NewService(repo, ledger)
	sess := newSession()

	entries, err := svc.Create(context.Background(), sess, planning.CreateParams{
		Description:  "Sofa",
		Amount:       120000,
		Category:     "Casa",
		DueDate:      time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		Installments: 3,
	})
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, created, entries)

	head := entries[0]
	assert.Nil(t, head.ParentID)
	assert.Equal(t, 1, head.Installment)
	assert.Equal(t, sess.UserID, head.UserID)

	var total int64

	for i, e := range entries {
		total += e.Amount

		assert.Equal(t, int64(40000), e.Amount)
		assert.Equal(t, i+1, e.Installment)
		assert.Equal(t, 3, e.Installments)
		assert.Equal(t, "Sofa", e.Description)
		assert.Equal(t, planning.StatusPending, e.Status)
		assert.Equal(t, time.Date(2025, time.Month(1+i), 10, 0, 0, 0, 0, time.UTC), e.DueDate)

		if i > 0 {
			require.NotNil(t, e.ParentID)
			assert.Equal(t, head.ID, *e.ParentID)
		}
	}

	assert.Equal(t, int64(120000), total)
}

func TestService_Create_RemainderOnFirstInstallment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := planning.NewMockRepository(ctrl)
	repo.EXPECT().CreateEntries(gomock.Any(), gomock.Any()).Return(nil)

	svc := planning.NewService(repo, planning.NewMockLedger(ctrl))

	entries, err := svc.Create(context.Background(), newSession(), planning.CreateParams{
		Description:  "Curso",
		Amount:       10000,
		Category:     "Educação",
		DueDate:      time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		Installments: 3,
	})
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, int64(3334), entries[0].Amount)
	assert.Equal(t, int64(3333), entries[1].Amount)
	assert.Equal(t, int64(3333), entries[2].Amount)
}

func TestService_Create_Invalid(t *testing.T) {
	type testCase struct {
		name   string
		params planning.CreateParams
	}

	tests := []testCase{
		{
			name: "ZeroAmount",
			params: planning.CreateParams{
				Description: "Luz",
				Amount:      0,
				DueDate:     time.Now(),
			},
		},
		{
			name: "NegativeAmount",
			params: planning.CreateParams{
				Description: "Luz",
				Amount:      -100,
				DueDate:     time.Now(),
			},
		},
		{
			name: "MissingDescription",
			params: planning.CreateParams{
				Amount:  100,
				DueDate: time.Now(),
			},
		},
		{
			name: "TooManyInstallments",
			params: planning.CreateParams{
				Description:  "Carro",
				Amount:       100000,
				DueDate:      time.Now(),
				Installments: 121,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := planning.NewService(planning.NewMockRepository(ctrl), planning.NewMockLedger(ctrl))

			got, err := svc.Create(context.Background(), newSession(), tt.params)
			assert.ErrorIs(t, err, planning.ErrInvalid)
			assert.Nil(t, got)
		})
	}
}

func TestService_List_ReconcilesStatus(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	sess := newSession()
	txID := uuid.New()

	entries := []*planning.Entry{
		{ID: uuid.New(), UserID: sess.UserID, Status: planning.StatusPending, DueDate: today.AddDate(0, 0, 5)},
		{ID: uuid.New(), UserID: sess.UserID, Status: planning.StatusPending, DueDate: today.AddDate(0, 0, -5)},
		{ID: uuid.New(), UserID: sess.UserID, Status: planning.StatusPaid, TransactionID: &txID, DueDate: today.AddDate(0, 0, -30)},
		{ID: uuid.New(), UserID: sess.UserID, Status: planning.StatusPending, DueDate: today},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := planning.NewMockRepository(ctrl)
	repo.EXPECT().
		ListEntries(gomock.Any(), planning.ListFilter{UserIDs: sess.VisibleUserIDs}).
		Return(entries, nil)

	svc := planning.NewService(repo, planning.NewMockLedger(ctrl))
	svc.SetClock(func() time.Time { return today })

	got, err := svc.List(context.Background(), sess, planning.ListFilter{})
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.Equal(t, planning.StatusPending, got[0].Status)
	assert.Equal(t, planning.StatusOverdue, got[1].Status)
	assert.Equal(t, planning.StatusPaid, got[2].Status)
	// Due today is not overdue yet.
	assert.Equal(t, planning.StatusPending, got[3].Status)
}

func TestService_List_FiltersByEffectiveStatus(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	sess := newSession()

	entries := []*planning.Entry{
		{ID: uuid.New(), UserID: sess.UserID, Status: planning.StatusPending, DueDate: today.AddDate(0, 0, 5)},
		{ID: uuid.New(), UserID: sess.UserID, Status: planning.StatusPending, DueDate: today.AddDate(0, 0, -5)},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := planning.NewMockRepository(ctrl)
	// The stored-status filter must be stripped before hitting the
	// repository; overdue only exists after reconciliation.
	repo.EXPECT().
		ListEntries(gomock.Any(), planning.ListFilter{UserIDs: sess.VisibleUserIDs}).
		Return(entries, nil)

	svc := planning.NewService(repo, planning.NewMockLedger(ctrl))
	svc.SetClock(func() time.Time { return today })

	overdue := planning.StatusOverdue

	got, err := svc.List(context.Background(), sess, planning.ListFilter{Status: &overdue})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, entries[1].ID, got[0].ID)
}

func TestService_Get_OutsideVisibilityScope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := planning.NewMockRepository(ctrl)

	stranger := &planning.Entry{ID: uuid.New(), UserID: uuid.New(), Status: planning.StatusPending}
	repo.EXPECT().GetEntry(gomock.Any(), stranger.ID).Return(stranger, nil)

	svc := planning.NewService(repo, planning.NewMockLedger(ctrl))

	got, err := svc.Get(context.Background(), newSession(), stranger.ID)
	assert.ErrorIs(t, err, planning.ErrNotFound)
	assert.Nil(t, got)
}

func TestService_MarkAsPaid(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	sess := newSession()
	entryID := uuid.New()
	txID := uuid.New()

	entry := func(status planning.Status, linked *uuid.UUID) *planning.Entry {
		return &planning.Entry{
			ID:            entryID,
			UserID:        sess.UserID,
			Description:   "Internet",
			Amount:        9900,
			Category:      "Casa",
			DueDate:       today.AddDate(0, 0, -2),
			Installment:   1,
			Installments:  1,
			Status:        status,
			TransactionID: linked,
		}
	}

	type testCase struct {
		name             string
		setupMock        func(repo *planning.MockRepository, ledger *planning.MockLedger)
		wantErr          bool
		wantInconsistent bool
		wantTxID         *uuid.UUID
	}

	tests := []testCase{
		{
			name: "SettlesPendingEntry",
			setupMock: func(repo *planning.MockRepository, ledger *planning.MockLedger) {
				repo.EXPECT().GetEntry(gomock.Any(), entryID).Return(entry(planning.StatusPending, nil), nil)
				ledger.EXPECT().
					Record(gomock.Any(), sess, transaction.RecordParams{
						Amount:       9900,
						Type:         transaction.TypeExpense,
						Description:  "Internet",
						Category:     "Casa",
						DueDate:      today.AddDate(0, 0, -2),
						Installment:  1,
						Installments: 1,
					}).
					Return(&transaction.Transaction{ID: txID}, nil)
				repo.EXPECT().SetPayment(gomock.Any(), entryID, planning.StatusPaid, &txID).Return(nil)
			},
			wantTxID: &txID,
		},
		{
			name: "AlreadyPaidIsNoOp",
			setupMock: func(repo *planning.MockRepository, ledger *planning.MockLedger) {
				repo.EXPECT().GetEntry(gomock.Any(), entryID).Return(entry(planning.StatusPaid, &txID), nil)
			},
			wantTxID: &txID,
		},
		{
			name: "PaidWithoutTransactionIsInconsistent",
			setupMock: func(repo *planning.MockRepository, ledger *planning.MockLedger) {
				repo.EXPECT().GetEntry(gomock.Any(), entryID).Return(entry(planning.StatusPaid, nil), nil)
			},
			wantErr:          true,
			wantInconsistent: true,
		},
		{
			name: "LinkFailureSurfacesOrphan",
			setupMock: func(repo *planning.MockRepository, ledger *planning.MockLedger) {
				repo.EXPECT().GetEntry(gomock.Any(), entryID).Return(entry(planning.StatusPending, nil), nil)
				ledger.EXPECT().Record(gomock.Any(), sess, gomock.Any()).Return(&transaction.Transaction{ID: txID}, nil)
				repo.EXPECT().SetPayment(gomock.Any(), entryID, planning.StatusPaid, &txID).Return(errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := planning.NewMockRepository(ctrl)
			ledger := planning.NewMockLedger(ctrl)
			tt.setupMock(repo, ledger)

			svc := planning.NewService(repo, ledger)
			svc.SetClock(func() time.Time { return today })

			got, err := svc.MarkAsPaid(context.Background(), sess, entryID)

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, got)

				if tt.wantInconsistent {
					assert.ErrorIs(t, err, planning.ErrInconsistent)
				}

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, planning.StatusPaid, got.Status)
			require.NotNil(t, got.TransactionID)
			assert.Equal(t, *tt.wantTxID, *got.TransactionID)
		})
	}
}

func TestService_MarkAsPaid_TwiceCreatesOneTransaction(t *testing.T) {
	sess := newSession()
	entryID := uuid.New()
	txID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := planning.NewMockRepository(ctrl)
	ledger := planning.NewMockLedger(ctrl)

	pending := &planning.Entry{ID: entryID, UserID: sess.UserID, Amount: 5000, Status: planning.StatusPending}
	paid := &planning.Entry{ID: entryID, UserID: sess.UserID, Amount: 5000, Status: planning.StatusPaid, TransactionID: &txID}

	gomock.InOrder(
		repo.EXPECT().GetEntry(gomock.Any(), entryID).Return(pending, nil),
		ledger.EXPECT().Record(gomock.Any(), sess, gomock.Any()).Return(&transaction.Transaction{ID: txID}, nil),
		repo.EXPECT().SetPayment(gomock.Any(), entryID, planning.StatusPaid, &txID).Return(nil),
		repo.EXPECT().GetEntry(gomock.Any(), entryID).Return(paid, nil),
	)

	svc := planning.NewService(repo, ledger)

	first, err := svc.MarkAsPaid(context.Background(), sess, entryID)
	require.NoError(t, err)

	second, err := svc.MarkAsPaid(context.Background(), sess, entryID)
	require.NoError(t, err)

	assert.Equal(t, first.TransactionID, second.TransactionID)
}

func TestService_Reverse(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	sess := newSession()
	entryID := uuid.New()
	txID := uuid.New()

	type testCase struct {
		name       string
		setupMock  func(repo *planning.MockRepository, ledger *planning.MockLedger)
		wantStatus planning.Status
		wantErr    bool
	}

	tests := []testCase{
		{
			name: "RevertsPaidEntry",
			setupMock: func(repo *planning.MockRepository, ledger *planning.MockLedger) {
				e := &planning.Entry{ID: entryID, UserID: sess.UserID, Status: planning.StatusPaid, TransactionID: &txID, DueDate: today.AddDate(0, 0, 3)}
				repo.EXPECT().GetEntry(gomock.Any(), entryID).Return(e, nil)
				ledger.EXPECT().Delete(gomock.Any(), sess, txID).Return(nil)
				repo.EXPECT().SetPayment(gomock.Any(), entryID, planning.StatusPending, nil).Return(nil)
			},
			wantStatus: planning.StatusPending,
		},
		{
			name: "RevertedEntryPastDueIsOverdue",
			setupMock: func(repo *planning.MockRepository, ledger *planning.MockLedger) {
				e := &planning.Entry{ID: entryID, UserID: sess.UserID, Status: planning.StatusPaid, TransactionID: &txID, DueDate: today.AddDate(0, 0, -3)}
				repo.EXPECT().GetEntry(gomock.Any(), entryID).Return(e, nil)
				ledger.EXPECT().Delete(gomock.Any(), sess, txID).Return(nil)
				repo.EXPECT().SetPayment(gomock.Any(), entryID, planning.StatusPending, nil).Return(nil)
			},
			wantStatus: planning.StatusOverdue,
		},
		{
			name: "NotPaidIsNoOp",
			setupMock: func(repo *planning.MockRepository, ledger *planning.MockLedger) {
				e := &planning.Entry{ID: entryID, UserID: sess.UserID, Status: planning.StatusPending, DueDate: today.AddDate(0, 0, 3)}
				repo.EXPECT().GetEntry(gomock.Any(), entryID).Return(e, nil)
			},
			wantStatus: planning.StatusPending,
		},
		{
			name: "TransactionAlreadyGoneStillClearsLink",
			setupMock: func(repo *planning.MockRepository, ledger *planning.MockLedger) {
				e := &planning.Entry{ID: entryID, UserID: sess.UserID, Status: planning.StatusPaid, TransactionID: &txID, DueDate: today.AddDate(0, 0, 3)}
				repo.EXPECT().GetEntry(gomock.Any(), entryID).Return(e, nil)
				ledger.EXPECT().Delete(gomock.Any(), sess, txID).Return(transaction.ErrNotFound)
				repo.EXPECT().SetPayment(gomock.Any(), entryID, planning.StatusPending, nil).Return(nil)
			},
			wantStatus: planning.StatusPending,
		},
		{
			name: "LedgerFailureAborts",
			setupMock: func(repo *planning.MockRepository, ledger *planning.MockLedger) {
				e := &planning.Entry{ID: entryID, UserID: sess.UserID, Status: planning.StatusPaid, TransactionID: &txID, DueDate: today.AddDate(0, 0, 3)}
				repo.EXPECT().GetEntry(gomock.Any(), entryID).Return(e, nil)
				ledger.EXPECT().Delete(gomock.Any(), sess, txID).Return(errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := planning.NewMockRepository(ctrl)
			ledger := planning.NewMockLedger(ctrl)
			tt.setupMock(repo, ledger)

			svc := planning.NewService(repo, ledger)
			svc.SetClock(func() time.Time { return today })

			got, err := svc.Reverse(context.Background(), sess, entryID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Nil(t, got.TransactionID)
		})
	}
}

func TestService_Update_PreservesPaymentState(t *testing.T) {
	sess := newSession()
	entryID := uuid.New()
	txID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := planning.NewMockRepository(ctrl)

	existing := &planning.Entry{
		ID:            entryID,
		UserID:        sess.UserID,
		Description:   "Internet",
		Amount:        9900,
		Status:        planning.StatusPaid,
		TransactionID: &txID,
		Installment:   2,
		Installments:  3,
		DueDate:       time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	}

	repo.EXPECT().GetEntry(gomock.Any(), entryID).Return(existing, nil)
	repo.EXPECT().UpdateEntry(gomock.Any(), gomock.Any()).Return(nil)

	svc := planning.NewService(repo, planning.NewMockLedger(ctrl))

	got, err := svc.Update(context.Background(), sess, &planning.Entry{
		ID:          entryID,
		Description: "Internet fibra",
		Amount:      10900,
		DueDate:     existing.DueDate,
		// Callers cannot strip the payment link through an update.
		Status:        planning.StatusPending,
		TransactionID: nil,
		Installment:   1,
		Installments:  1,
	})
	require.NoError(t, err)

	assert.Equal(t, "Internet fibra", got.Description)
	assert.Equal(t, int64(10900), got.Amount)
	assert.Equal(t, planning.StatusPaid, got.Status)
	require.NotNil(t, got.TransactionID)
	assert.Equal(t, txID, *got.TransactionID)
	assert.Equal(t, 2, got.Installment)
	assert.Equal(t, 3, got.Installments)
}

func TestService_ClearByTransaction(t *testing.T) {
	txID := uuid.New()
	entryID := uuid.New()

	t.Run("RevertsLinkedEntry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := planning.NewMockRepository(ctrl)
		repo.EXPECT().FindByTransaction(gomock.Any(), txID).Return(&planning.Entry{ID: entryID}, nil)
		repo.EXPECT().SetPayment(gomock.Any(), entryID, planning.StatusPending, nil).Return(nil)

		svc := planning.NewService(repo, planning.NewMockLedger(ctrl))

		reverted, err := svc.ClearByTransaction(context.Background(), txID)
		require.NoError(t, err)
		assert.True(t, reverted)
	})

	t.Run("NoLinkedEntry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := planning.NewMockRepository(ctrl)
		repo.EXPECT().FindByTransaction(gomock.Any(), txID).Return(nil, planning.ErrNotFound)

		svc := planning.NewService(repo, planning.NewMockLedger(ctrl))

		reverted, err := svc.ClearByTransaction(context.Background(), txID)
		require.NoError(t, err)
		assert.False(t, reverted)
	})
}
