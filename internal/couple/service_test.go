package couple_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jpcaldeira/tandem/internal/couple"
)

func TestService_VisibleUserIDs(t *testing.T) {
	userID := uuid.New()
	partnerID := uuid.New()
	coupleID := uuid.New()

	type testCase struct {
		name      string
		setupMock func(m *couple.MockRepository)
		want      []uuid.UUID
	}

	tests := []testCase{
		{
			name: "NoProfileFallsBackToSelf",
			setupMock: func(m *couple.MockRepository) {
				m.EXPECT().GetProfile(gomock.Any(), userID).Return(nil, couple.ErrProfileNotFound)
			},
			want: []uuid.UUID{userID},
		},
		{
			name: "UngroupedSeesOnlySelf",
			setupMock: func(m *couple.MockRepository) {
				m.EXPECT().GetProfile(gomock.Any(), userID).Return(&couple.Profile{ID: userID}, nil)
			},
			want: []uuid.UUID{userID},
		},
		{
			name: "GroupedSeesAllMembers",
			setupMock: func(m *couple.MockRepository) {
				m.EXPECT().GetProfile(gomock.Any(), userID).Return(&couple.Profile{ID: userID, CoupleID: &coupleID}, nil)
				m.EXPECT().ListProfilesByCouple(gomock.Any(), coupleID).Return([]*couple.Profile{
					{ID: userID},
					{ID: partnerID},
				}, nil)
			},
			want: []uuid.UUID{userID, partnerID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := couple.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := couple.NewService(repo)

			got, err := svc.VisibleUserIDs(context.Background(), userID)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestService_Create(t *testing.T) {
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := couple.NewMockRepository(ctrl)
		repo.EXPECT().GetProfile(gomock.Any(), userID).Return(&couple.Profile{ID: userID}, nil)
		repo.EXPECT().CreateCouple(gomock.Any(), gomock.Any()).Return(nil)
		repo.EXPECT().SetProfileCouple(gomock.Any(), userID, gomock.Any()).Return(nil)

		svc := couple.NewService(repo)

		c, err := svc.Create(context.Background(), userID, "Nós dois")
		require.NoError(t, err)
		assert.Equal(t, "Nós dois", c.Name)
		assert.Equal(t, userID, c.CreatedBy)
	})

	t.Run("AlreadyGrouped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		existing := uuid.New()

		repo := couple.NewMockRepository(ctrl)
		repo.EXPECT().GetProfile(gomock.Any(), userID).Return(&couple.Profile{ID: userID, CoupleID: &existing}, nil)

		svc := couple.NewService(repo)

		c, err := svc.Create(context.Background(), userID, "Outro")
		assert.ErrorIs(t, err, couple.ErrAlreadyGrouped)
		assert.Nil(t, c)
	})
}

func TestService_Invite(t *testing.T) {
	userID := uuid.New()
	coupleID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := couple.NewMockRepository(ctrl)
		repo.EXPECT().GetProfile(gomock.Any(), userID).Return(&couple.Profile{ID: userID, CoupleID: &coupleID}, nil)
		repo.EXPECT().FindPendingInvite(gomock.Any(), coupleID, "partner@example.com").Return(nil, couple.ErrInviteNotFound)
		repo.EXPECT().CreateInvite(gomock.Any(), gomock.Any()).Return(nil)

		svc := couple.NewService(repo)

		inv, err := svc.Invite(context.Background(), userID, "partner@example.com")
		require.NoError(t, err)
		assert.Equal(t, coupleID, inv.CoupleID)
		assert.Equal(t, couple.InvitePending, inv.Status)
	})

	t.Run("DuplicatePending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := couple.NewMockRepository(ctrl)
		repo.EXPECT().GetProfile(gomock.Any(), userID).Return(&couple.Profile{ID: userID, CoupleID: &coupleID}, nil)
		repo.EXPECT().FindPendingInvite(gomock.Any(), coupleID, "partner@example.com").Return(&couple.Invite{}, nil)

		svc := couple.NewService(repo)

		inv, err := svc.Invite(context.Background(), userID, "partner@example.com")
		assert.ErrorIs(t, err, couple.ErrAlreadyInvited)
		assert.Nil(t, inv)
	})

	t.Run("NotInCouple", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := couple.NewMockRepository(ctrl)
		repo.EXPECT().GetProfile(gomock.Any(), userID).Return(&couple.Profile{ID: userID}, nil)

		svc := couple.NewService(repo)

		inv, err := svc.Invite(context.Background(), userID, "partner@example.com")
		assert.ErrorIs(t, err, couple.ErrInvalid)
		assert.Nil(t, inv)
	})
}

func TestService_Accept(t *testing.T) {
	userID := uuid.New()
	inviteID := uuid.New()
	coupleID := uuid.New()

	pendingInvite := func() *couple.Invite {
		return &couple.Invite{
			ID:           inviteID,
			CoupleID:     coupleID,
			InvitedEmail: "me@example.com",
			Status:       couple.InvitePending,
		}
	}

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := couple.NewMockRepository(ctrl)
		repo.EXPECT().GetInvite(gomock.Any(), inviteID).Return(pendingInvite(), nil)
		repo.EXPECT().GetProfile(gomock.Any(), userID).Return(&couple.Profile{ID: userID, Email: "me@example.com"}, nil)
		repo.EXPECT().SetInviteStatus(gomock.Any(), inviteID, couple.InviteAccepted).Return(nil)
		repo.EXPECT().SetProfileCouple(gomock.Any(), userID, &coupleID).Return(nil)

		svc := couple.NewService(repo)

		assert.NoError(t, svc.Accept(context.Background(), userID, inviteID))
	})

	t.Run("WrongEmail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := couple.NewMockRepository(ctrl)
		repo.EXPECT().GetInvite(gomock.Any(), inviteID).Return(pendingInvite(), nil)
		repo.EXPECT().GetProfile(gomock.Any(), userID).Return(&couple.Profile{ID: userID, Email: "other@example.com"}, nil)

		svc := couple.NewService(repo)

		assert.ErrorIs(t, svc.Accept(context.Background(), userID, inviteID), couple.ErrInviteNotFound)
	})

	t.Run("AlreadyGrouped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		other := uuid.New()

		repo := couple.NewMockRepository(ctrl)
		repo.EXPECT().GetInvite(gomock.Any(), inviteID).Return(pendingInvite(), nil)
		repo.EXPECT().GetProfile(gomock.Any(), userID).Return(&couple.Profile{ID: userID, Email: "me@example.com", CoupleID: &other}, nil)

		svc := couple.NewService(repo)

		assert.ErrorIs(t, svc.Accept(context.Background(), userID, inviteID), couple.ErrAlreadyGrouped)
	})

	t.Run("NotPending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		inv := pendingInvite()
		inv.Status = couple.InviteRejected

		repo := couple.NewMockRepository(ctrl)
		repo.EXPECT().GetInvite(gomock.Any(), inviteID).Return(inv, nil)

		svc := couple.NewService(repo)

		assert.ErrorIs(t, svc.Accept(context.Background(), userID, inviteID), couple.ErrInvalid)
	})
}

func TestService_Leave(t *testing.T) {
	userID := uuid.New()
	coupleID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := couple.NewMockRepository(ctrl)
		repo.EXPECT().GetProfile(gomock.Any(), userID).Return(&couple.Profile{ID: userID, CoupleID: &coupleID}, nil)
		repo.EXPECT().SetProfileCouple(gomock.Any(), userID, nil).Return(nil)

		svc := couple.NewService(repo)

		assert.NoError(t, svc.Leave(context.Background(), userID))
	})

	t.Run("NotGrouped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := couple.NewMockRepository(ctrl)
		repo.EXPECT().GetProfile(gomock.Any(), userID).Return(&couple.Profile{ID: userID}, nil)

		svc := couple.NewService(repo)

		assert.ErrorIs(t, svc.Leave(context.Background(), userID), couple.ErrInvalid)
	})
}
