package card_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jpcaldeira/tandem/internal/card"
	"github.com/jpcaldeira/tandem/internal/session"
)

func newSession() session.Session {
	return session.New(uuid.New(), nil)
}

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    card.CreateParams
		setupMock func(m *card.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			params: card.CreateParams{
				Name:     "Nubank",
				Type:     card.TypeCredit,
				Bank:     "Nubank",
				LastFour: "4821",
				Limit:    500000,
			},
			setupMock: func(m *card.MockRepository) {
				m.EXPECT().CreateCard(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "MissingLastFour",
			params: card.CreateParams{
				Name:  "Nubank",
				Type:  card.TypeCredit,
				Limit: 500000,
			},
			setupMock: func(m *card.MockRepository) {},
			wantErr:   true,
		},
		{
			name: "CreditWithoutLimit",
			params: card.CreateParams{
				Name:     "Nubank",
				Type:     card.TypeCredit,
				LastFour: "4821",
			},
			setupMock: func(m *card.MockRepository) {},
			wantErr:   true,
		},
		{
			name: "DebitNeedsNoLimit",
			params: card.CreateParams{
				Name:     "Conta corrente",
				Type:     card.TypeDebit,
				LastFour: "1010",
			},
			setupMock: func(m *card.MockRepository) {
				m.EXPECT().CreateCard(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "UnknownType",
			params: card.CreateParams{
				Name:     "Vale",
				Type:     card.Type("voucher"),
				LastFour: "0001",
			},
			setupMock: func(m *card.MockRepository) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := card.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := card.NewService(repo)
			sess := newSession()

			c, err := svc.Create(context.Background(), sess, tt.params)
			if tt.wantErr {
				assert.ErrorIs(t, err, card.ErrInvalid)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, sess.UserID, c.UserID)
		})
	}
}

func TestService_RecalculateBalance(t *testing.T) {
	sess := newSession()
	cardID := uuid.New()

	t.Run("CreditCardSumsExpenses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := card.NewMockRepository(ctrl)
		repo.EXPECT().GetCard(gomock.Any(), cardID).Return(&card.Card{
			ID:             cardID,
			UserID:         sess.UserID,
			Type:           card.TypeCredit,
			Limit:          500000,
			CurrentBalance: 10000,
		}, nil)
		repo.EXPECT().SumCardExpenses(gomock.Any(), cardID).Return(int64(123400), nil)
		repo.EXPECT().UpdateBalance(gomock.Any(), cardID, int64(123400)).Return(nil)

		svc := card.NewService(repo)

		c, err := svc.RecalculateBalance(context.Background(), sess, cardID)
		require.NoError(t, err)
		assert.Equal(t, int64(123400), c.CurrentBalance)
	})

	t.Run("DebitCardUntouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := card.NewMockRepository(ctrl)
		repo.EXPECT().GetCard(gomock.Any(), cardID).Return(&card.Card{
			ID:             cardID,
			UserID:         sess.UserID,
			Type:           card.TypeDebit,
			CurrentBalance: 77700,
		}, nil)

		svc := card.NewService(repo)

		c, err := svc.RecalculateBalance(context.Background(), sess, cardID)
		require.NoError(t, err)
		assert.Equal(t, int64(77700), c.CurrentBalance)
	})

	t.Run("OutsideVisibilityScope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := card.NewMockRepository(ctrl)
		repo.EXPECT().GetCard(gomock.Any(), cardID).Return(&card.Card{
			ID:     cardID,
			UserID: uuid.New(),
			Type:   card.TypeCredit,
		}, nil)

		svc := card.NewService(repo)

		_, err := svc.RecalculateBalance(context.Background(), sess, cardID)
		assert.ErrorIs(t, err, card.ErrNotFound)
	})
}

func TestService_Update_PreservesOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sess := newSession()
	cardID := uuid.New()

	repo := card.NewMockRepository(ctrl)
	repo.EXPECT().GetCard(gomock.Any(), cardID).Return(&card.Card{
		ID:     cardID,
		UserID: sess.UserID,
		Type:   card.TypeCredit,
	}, nil)

	var updated *card.Card
	repo.EXPECT().UpdateCard(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c *card.Card) error {
			updated = c
			return nil
		})

	svc := card.NewService(repo)

	_, err := svc.Update(context.Background(), sess, &card.Card{
		ID:       cardID,
		UserID:   uuid.New(), // hostile payload trying to reassign the card
		Name:     "Renamed",
		Type:     card.TypeCredit,
		LastFour: "4821",
		Limit:    600000,
	})
	require.NoError(t, err)
	assert.Equal(t, sess.UserID, updated.UserID)
}
