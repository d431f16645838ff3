package account_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jpcaldeira/tandem/internal/account"
	"github.com/jpcaldeira/tandem/internal/session"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    account.CreateParams
		setupMock func(m *account.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			params: account.CreateParams{
				BankName:      "Itaú",
				AccountNumber: "12345-6",
				Type:          account.TypeChecking,
				Balance:       250000,
			},
			setupMock: func(m *account.MockRepository) {
				m.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "MissingBankName",
			params: account.CreateParams{
				Type: account.TypeSavings,
			},
			setupMock: func(m *account.MockRepository) {},
			wantErr:   true,
		},
		{
			name: "UnknownType",
			params: account.CreateParams{
				BankName: "Itaú",
				Type:     account.Type("investment"),
			},
			setupMock: func(m *account.MockRepository) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := account.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := account.NewService(repo)
			sess := session.New(uuid.New(), nil)

			a, err := svc.Create(context.Background(), sess, tt.params)
			if tt.wantErr {
				assert.ErrorIs(t, err, account.ErrInvalid)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, sess.UserID, a.UserID)
			assert.Equal(t, int64(250000), a.Balance)
		})
	}
}

func TestService_Get_OutsideVisibilityScope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	repo := account.NewMockRepository(ctrl)
	repo.EXPECT().GetAccount(gomock.Any(), id).Return(&account.Account{
		ID:     id,
		UserID: uuid.New(),
	}, nil)

	svc := account.NewService(repo)

	_, err := svc.Get(context.Background(), session.New(uuid.New(), nil), id)
	assert.ErrorIs(t, err, account.ErrNotFound)
}

func TestService_List_ScopesToVisibleUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	partnerID := uuid.New()
	sess := session.New(userID, []uuid.UUID{userID, partnerID})

	repo := account.NewMockRepository(ctrl)
	repo.EXPECT().ListAccounts(gomock.Any(), account.ListFilter{
		UserIDs: []uuid.UUID{userID, partnerID},
	}).Return(nil, nil)

	svc := account.NewService(repo)

	_, err := svc.List(context.Background(), sess)
	require.NoError(t, err)
}
