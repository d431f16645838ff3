package transaction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jpcaldeira/tandem/internal/session"
	"github.com/jpcaldeira/tandem/internal/transaction"
)

func newSession() session.Session {
	return session.New(uuid.New(), nil)
}

func TestService_Create(t *testing.T) {
	type args struct {
		params transaction.CreateParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *transaction.MockRepository)
		wantLen   int
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{
				params: transaction.CreateParams{
					Amount:      1000,
					Type:        transaction.TypeExpense,
					Description: "Mercado",
					Category:    "Alimentação",
					DueDate:     time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC),
				},
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransactions(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantLen: 1,
		},
		{
			name: "InvalidAmount",
			args: args{
				params: transaction.CreateParams{
					Amount:      0,
					Type:        transaction.TypeExpense,
					Description: "Mercado",
					DueDate:     time.Now(),
				},
			},
			wantErr: true,
		},
		{
			name: "InvalidType",
			args: args{
				params: transaction.CreateParams{
					Amount:      1000,
					Type:        "transfer",
					Description: "Mercado",
					DueDate:     time.Now(),
				},
			},
			wantErr: true,
		},
		{
			name: "RepoError",
			args: args{
				params: transaction.CreateParams{
					Amount:      500,
					Type:        transaction.TypeIncome,
					Description: "Salário",
					DueDate:     time.Now(),
				},
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransactions(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := transaction.NewService(repo)
			got, err := svc.Create(context.Background(), newSession(), tt.args.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
			assert.NotEmpty(t, got[0].ID)
		})
	}
}

func TestService_Create_InstallmentSplit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().CreateTransactions(gomock.Any(), gomock.Any()).Return(nil)

	svc := transaction.NewService(repo)
	sess := newSession()

	txs, err := svc.Create(context.Background(), sess, transaction.CreateParams{
		Amount:       10000,
		Type:         transaction.TypeExpense,
		Description:  "Notebook",
		Category:     "Eletrônicos",
		DueDate:      time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		Installments: 3,
	})
	require.NoError(t, err)
	require.Len(t, txs, 3)

	// Remainder cents land on the first row so the group sums back.
	assert.Equal(t, int64(3334), txs[0].Amount)
	assert.Equal(t, int64(3333), txs[1].Amount)
	assert.Equal(t, int64(3333), txs[2].Amount)

	// Jan 31 clamps to the shorter months that follow.
	assert.Equal(t, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), txs[0].DueDate)
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), txs[1].DueDate)
	assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), txs[2].DueDate)

	for i, tx := range txs {
		assert.Equal(t, i+1, tx.Installment)
		assert.Equal(t, 3, tx.Installments)
		assert.Equal(t, sess.UserID, tx.UserID)
	}
}

func TestService_Record_KeepsInstallmentNumbering(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txs []*transaction.Transaction) error {
			require.Len(t, txs, 1)
			return nil
		})

	svc := transaction.NewService(repo)

	tx, err := svc.Record(context.Background(), newSession(), transaction.RecordParams{
		Amount:       40000,
		Type:         transaction.TypeExpense,
		Description:  "Sofa",
		DueDate:      time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
		Installment:  2,
		Installments: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, tx.Installment)
	assert.Equal(t, 3, tx.Installments)
	assert.Equal(t, int64(40000), tx.Amount)
}

func TestService_RecordBatch(t *testing.T) {
	sess := newSession()

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := transaction.NewMockRepository(ctrl)
		repo.EXPECT().CreateTransactions(gomock.Any(), gomock.Any()).Return(nil)

		svc := transaction.NewService(repo)

		txs, err := svc.RecordBatch(context.Background(), sess, []transaction.RecordParams{
			{Amount: 1200, Type: transaction.TypeExpense, Description: "Padaria", DueDate: time.Now()},
			{Amount: 350000, Type: transaction.TypeIncome, Description: "Salário", DueDate: time.Now()},
		})
		require.NoError(t, err)
		require.Len(t, txs, 2)
		assert.Equal(t, sess.UserID, txs[0].UserID)
		assert.Equal(t, 1, txs[0].Installment)
		assert.Equal(t, 1, txs[0].Installments)
	})

	t.Run("EmptyBatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := transaction.NewService(transaction.NewMockRepository(ctrl))

		txs, err := svc.RecordBatch(context.Background(), sess, nil)
		require.NoError(t, err)
		assert.Nil(t, txs)
	})

	t.Run("BadRowAbortsBatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := transaction.NewService(transaction.NewMockRepository(ctrl))

		txs, err := svc.RecordBatch(context.Background(), sess, []transaction.RecordParams{
			{Amount: 1200, Type: transaction.TypeExpense, Description: "Padaria", DueDate: time.Now()},
			{Amount: -5, Type: transaction.TypeExpense, Description: "Erro", DueDate: time.Now()},
		})
		assert.ErrorIs(t, err, transaction.ErrInvalid)
		assert.Nil(t, txs)
	})
}

func TestService_List_ScopesToVisibleUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	partner := uuid.New()
	sess := session.New(uuid.New(), []uuid.UUID{partner})

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		ListTransactions(gomock.Any(), transaction.ListFilter{UserIDs: sess.VisibleUserIDs}).
		Return([]*transaction.Transaction{}, nil)

	svc := transaction.NewService(repo)

	// A caller-supplied user filter must not widen the scope.
	_, err := svc.List(context.Background(), sess, transaction.ListFilter{UserIDs: []uuid.UUID{uuid.New()}})
	assert.NoError(t, err)
}

func TestService_Get_OutsideVisibilityScope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		GetTransaction(gomock.Any(), id).
		Return(&transaction.Transaction{ID: id, UserID: uuid.New()}, nil)

	svc := transaction.NewService(repo)

	got, err := svc.Get(context.Background(), newSession(), id)
	assert.ErrorIs(t, err, transaction.ErrNotFound)
	assert.Nil(t, got)
}

func TestService_Delete_RevertsLinkedPlanning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sess := newSession()
	id := uuid.New()

	repo := transaction.NewMockRepository(ctrl)
	unlinker := transaction.NewMockUnlinker(ctrl)

	// The link is cleared while the transaction row still exists, so
	// the settled entry is never left paid with a dangling reference.
	gomock.InOrder(
		repo.EXPECT().GetTransaction(gomock.Any(), id).Return(&transaction.Transaction{ID: id, UserID: sess.UserID}, nil),
		unlinker.EXPECT().ClearByTransaction(gomock.Any(), id).Return(true, nil),
		repo.EXPECT().DeleteTransaction(gomock.Any(), id).Return(nil),
	)

	svc := transaction.NewService(repo)
	svc.SetUnlinker(unlinker)

	assert.NoError(t, svc.Delete(context.Background(), sess, id))
}

func TestService_Delete_UnlinkFailureKeepsTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sess := newSession()
	id := uuid.New()

	repo := transaction.NewMockRepository(ctrl)
	unlinker := transaction.NewMockUnlinker(ctrl)

	repo.EXPECT().GetTransaction(gomock.Any(), id).Return(&transaction.Transaction{ID: id, UserID: sess.UserID}, nil)
	unlinker.EXPECT().ClearByTransaction(gomock.Any(), id).Return(false, errors.New("store down"))

	svc := transaction.NewService(repo)
	svc.SetUnlinker(unlinker)

	assert.Error(t, svc.Delete(context.Background(), sess, id))
}

func TestSummarize(t *testing.T) {
	txs := []*transaction.Transaction{
		{Amount: 550000, Type: transaction.TypeIncome, Category: "Salário"},
		{Amount: 45050, Type: transaction.TypeExpense, Category: "Alimentação"},
		{Amount: 2990, Type: transaction.TypeExpense, Category: "Entretenimento"},
	}

	got := transaction.Summarize(txs)

	assert.Equal(t, int64(550000), got.TotalIncome)
	assert.Equal(t, int64(48040), got.TotalExpense)
	assert.Equal(t, int64(501960), got.Balance)
	assert.Equal(t, map[string]int64{
		"Alimentação":    45050,
		"Entretenimento": 2990,
	}, got.ByCategory)
}

func TestSummarize_Empty(t *testing.T) {
	got := transaction.Summarize(nil)

	assert.Zero(t, got.TotalIncome)
	assert.Zero(t, got.TotalExpense)
	assert.Zero(t, got.Balance)
	assert.Empty(t, got.ByCategory)
}
