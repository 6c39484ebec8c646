package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dondr1/lastminparty/internal/domain"
	"github.com/dondr1/lastminparty/internal/response"
)

func TestInviteService_CreateInvite(t *testing.T) {
	eventUUID := uuid.New()
	userID := uuid.New()

	tests := []struct {
		name        string
		inviteOnly  bool
		eventErr    error
		createErr   error
		wantErr     string
		wantCreated bool
	}{
		{name: "creates pending invite", inviteOnly: true, wantCreated: true},
		{name: "duplicate is a no-op", inviteOnly: true, createErr: errors.New(`duplicate key value violates unique constraint "uq_invites_event_user" (SQLSTATE 23505)`)},
		{name: "open event is rejected", inviteOnly: false, wantErr: response.ErrCodeInvalidState},
		{name: "unknown event", inviteOnly: true, eventErr: gorm.ErrRecordNotFound, wantErr: response.ErrCodeNotFound},
		{name: "write failure", inviteOnly: true, createErr: errors.New("connection reset"), wantErr: response.ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var created *domain.Invite
			inviteRepo := &mockInviteRepository{
				createFunc: func(ctx context.Context, invite *domain.Invite) error {
					if tt.createErr != nil {
						return tt.createErr
					}
					created = invite
					invite.ID = uuid.New()
					return nil
				},
			}
			eventRepo := &mockEventRepository{
				findByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
					if tt.eventErr != nil {
						return nil, tt.eventErr
					}
					return &domain.Event{ID: eventUUID, IsInviteOnly: tt.inviteOnly}, nil
				},
			}
			svc := NewInviteService(inviteRepo, eventRepo, newTestMetrics(), zap.NewNop())

			err := svc.CreateInvite(context.Background(), eventUUID, userID)

			if tt.wantErr != "" {
				var appErr *response.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantErr, appErr.Code)
				return
			}
			require.NoError(t, err)
			if tt.wantCreated {
				require.NotNil(t, created)
				assert.Equal(t, domain.InviteStatusPending, created.Status)
				assert.Equal(t, userID, created.UserID)
			}
		})
	}
}

func TestInviteService_UpdateStatus(t *testing.T) {
	inviteID := uuid.New()
	eventUUID := uuid.New()
	recipient := uuid.New()

	tests := []struct {
		name         string
		caller       uuid.UUID
		current      domain.InviteStatus
		target       domain.InviteStatus
		wantErr      string
		wantAccepted bool
		wantRejected bool
	}{
		{name: "accept confirms attendance", caller: recipient, current: domain.InviteStatusPending, target: domain.InviteStatusAccepted, wantAccepted: true},
		{name: "reject stays out", caller: recipient, current: domain.InviteStatusPending, target: domain.InviteStatusRejected, wantRejected: true},
		{name: "repeat of applied status is a no-op", caller: recipient, current: domain.InviteStatusAccepted, target: domain.InviteStatusAccepted},
		{name: "resolved invite cannot flip", caller: recipient, current: domain.InviteStatusAccepted, target: domain.InviteStatusRejected, wantErr: response.ErrCodeInvalidState},
		{name: "back to pending is invalid", caller: recipient, current: domain.InviteStatusAccepted, target: domain.InviteStatusPending, wantErr: response.ErrCodeValidation},
		{name: "only the recipient may resolve", caller: uuid.New(), current: domain.InviteStatusPending, target: domain.InviteStatusAccepted, wantErr: response.ErrCodeForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var accepted, rejected bool
			inviteRepo := &mockInviteRepository{
				findByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Invite, error) {
					return &domain.Invite{ID: inviteID, EventUUID: eventUUID, UserID: recipient, Status: tt.current}, nil
				},
				acceptWithParticipantFunc: func(ctx context.Context, invite *domain.Invite) error {
					accepted = true
					return nil
				},
				updateStatusFunc: func(ctx context.Context, id uuid.UUID, status domain.InviteStatus) error {
					rejected = status == domain.InviteStatusRejected
					return nil
				},
			}
			svc := NewInviteService(inviteRepo, &mockEventRepository{}, newTestMetrics(), zap.NewNop())

			resp, err := svc.UpdateStatus(context.Background(), inviteID, tt.caller, tt.target)

			if tt.wantErr != "" {
				var appErr *response.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantErr, appErr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.target, resp.Status)
			assert.Equal(t, tt.wantAccepted, accepted)
			assert.Equal(t, tt.wantRejected, rejected)
		})
	}
}

func TestInviteService_GetMyInvites(t *testing.T) {
	userID := uuid.New()
	inviteRepo := &mockInviteRepository{
		findByUserWithEventFunc: func(ctx context.Context, id uuid.UUID) ([]*domain.Invite, error) {
			return []*domain.Invite{
				{
					ID:     uuid.New(),
					UserID: userID,
					Status: domain.InviteStatusPending,
					Event:  &domain.Event{ID: uuid.New(), Title: "Dinner party", Creator: &domain.Profile{ID: uuid.New(), Username: "host"}},
				},
			}, nil
		},
	}
	svc := NewInviteService(inviteRepo, &mockEventRepository{}, newTestMetrics(), zap.NewNop())

	invites, err := svc.GetMyInvites(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, invites, 1)
	assert.Equal(t, domain.InviteStatusPending, invites[0].Status)
	require.NotNil(t, invites[0].Event)
	assert.Equal(t, "Dinner party", invites[0].Event.Title)
	require.NotNil(t, invites[0].Event.Host)
	assert.Equal(t, "host", invites[0].Event.Host.Username)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(errors.New("ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)")))
	assert.True(t, isUniqueViolation(errors.New("UNIQUE constraint failed: event_invites.event_uuid")))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
	assert.False(t, isUniqueViolation(nil))
}
