package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dondr1/lastminparty/internal/domain"
	"github.com/dondr1/lastminparty/internal/response"
)

type waitlistFixture struct {
	eventUUID    uuid.UUID
	hostID       uuid.UUID
	likers       []*domain.Decision
	pending      []*domain.Invite
	participants []*domain.Participant
	decisions    []*domain.HostDecision

	hostDecisionRepo *mockHostDecisionRepository
	participantRepo  *mockParticipantRepository
	svc              WaitlistService
}

func newWaitlistFixture(t *testing.T) *waitlistFixture {
	t.Helper()
	f := &waitlistFixture{
		eventUUID: uuid.New(),
		hostID:    uuid.New(),
	}

	eventRepo := &mockEventRepository{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
			return &domain.Event{ID: f.eventUUID, CreatorID: f.hostID, IsInviteOnly: true}, nil
		},
	}
	decisionRepo := &mockDecisionRepository{
		findLikersByEventFunc: func(ctx context.Context, eventUUID uuid.UUID) ([]*domain.Decision, error) {
			return f.likers, nil
		},
	}
	inviteRepo := &mockInviteRepository{
		findPendingByEventFunc: func(ctx context.Context, eventUUID uuid.UUID) ([]*domain.Invite, error) {
			return f.pending, nil
		},
	}
	f.hostDecisionRepo = &mockHostDecisionRepository{
		upsertFunc: func(ctx context.Context, decision *domain.HostDecision) error {
			f.decisions = append(f.decisions, decision)
			return nil
		},
		upsertWithParticipantFunc: func(ctx context.Context, decision *domain.HostDecision, participant *domain.Participant) error {
			f.decisions = append(f.decisions, decision)
			f.participants = append(f.participants, participant)
			return nil
		},
		findByEventFunc: func(ctx context.Context, eventUUID uuid.UUID) ([]*domain.HostDecision, error) {
			return f.decisions, nil
		},
	}
	f.participantRepo = &mockParticipantRepository{
		findByEventFunc: func(ctx context.Context, eventUUID uuid.UUID) ([]*domain.Participant, error) {
			return f.participants, nil
		},
	}

	f.svc = NewWaitlistService(eventRepo, decisionRepo, inviteRepo, f.hostDecisionRepo, f.participantRepo, newTestMetrics(), zap.NewNop())
	return f
}

func liker(userID uuid.UUID) *domain.Decision {
	return &domain.Decision{
		UserID:   userID,
		Decision: domain.SwipeLike,
		Profile:  &domain.Profile{ID: userID, Username: "u-" + userID.String()[:8]},
	}
}

func pendingInvite(userID uuid.UUID) *domain.Invite {
	return &domain.Invite{
		UserID:  userID,
		Status:  domain.InviteStatusPending,
		Profile: &domain.Profile{ID: userID, Username: "u-" + userID.String()[:8]},
	}
}

func TestWaitlistService_GetWaitlist(t *testing.T) {
	f := newWaitlistFixture(t)
	both := uuid.New()
	onlyLiked := uuid.New()
	onlyRequested := uuid.New()
	noProfile := uuid.New()

	f.likers = []*domain.Decision{liker(onlyLiked), liker(both), {UserID: noProfile, Decision: domain.SwipeLike}}
	f.pending = []*domain.Invite{pendingInvite(both), pendingInvite(onlyRequested)}

	waitlist, err := f.svc.GetWaitlist(context.Background(), f.eventUUID, f.hostID)

	require.NoError(t, err)
	require.Len(t, waitlist, 3, "union is deduplicated and profile-less entries are dropped")
	assert.Equal(t, onlyLiked, waitlist[0].UserID)
	assert.Equal(t, both, waitlist[1].UserID)
	assert.Equal(t, onlyRequested, waitlist[2].UserID)
}

func TestWaitlistService_GetWaitlist_NonCreator(t *testing.T) {
	f := newWaitlistFixture(t)

	_, err := f.svc.GetWaitlist(context.Background(), f.eventUUID, uuid.New())

	var appErr *response.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, response.ErrCodeForbidden, appErr.Code)
}

func TestWaitlistService_GetQueue(t *testing.T) {
	f := newWaitlistFixture(t)
	fresh := uuid.New()
	acceptedID := uuid.New()
	rejectedID := uuid.New()
	attendee := uuid.New()

	f.likers = []*domain.Decision{liker(acceptedID), liker(rejectedID), liker(attendee), liker(fresh)}
	f.decisions = []*domain.HostDecision{
		{UserID: acceptedID, Decision: domain.HostAccepted},
		{UserID: rejectedID, Decision: domain.HostRejected},
	}
	f.participants = []*domain.Participant{{UserID: attendee}}

	queue, err := f.svc.GetQueue(context.Background(), f.eventUUID, f.hostID)

	require.NoError(t, err)
	require.Len(t, queue, 2)
	assert.Equal(t, fresh, queue[0].UserID, "unreviewed candidates come first")
	assert.Equal(t, rejectedID, queue[1].UserID, "rejected candidates are appended for reconsideration")
}

func TestWaitlistService_Decide(t *testing.T) {
	tests := []struct {
		name            string
		decision        domain.HostDecisionValue
		wantParticipant bool
	}{
		{name: "accept confirms attendance atomically", decision: domain.HostAccepted, wantParticipant: true},
		{name: "reject records decision only", decision: domain.HostRejected, wantParticipant: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newWaitlistFixture(t)
			target := uuid.New()

			err := f.svc.Decide(context.Background(), f.eventUUID, f.hostID, target, tt.decision)

			require.NoError(t, err)
			require.Len(t, f.decisions, 1)
			assert.Equal(t, target, f.decisions[0].UserID)
			assert.Equal(t, tt.decision, f.decisions[0].Decision)
			if tt.wantParticipant {
				require.Len(t, f.participants, 1)
				assert.Equal(t, target, f.participants[0].UserID)
			} else {
				assert.Empty(t, f.participants)
			}
		})
	}
}

func TestWaitlistService_Decide_OverwritesPrevious(t *testing.T) {
	f := newWaitlistFixture(t)
	target := uuid.New()

	require.NoError(t, f.svc.Decide(context.Background(), f.eventUUID, f.hostID, target, domain.HostRejected))
	require.NoError(t, f.svc.Decide(context.Background(), f.eventUUID, f.hostID, target, domain.HostAccepted))

	last := f.decisions[len(f.decisions)-1]
	assert.Equal(t, domain.HostAccepted, last.Decision)
	require.Len(t, f.participants, 1)
}

func TestWaitlistService_Evict(t *testing.T) {
	f := newWaitlistFixture(t)
	target := uuid.New()
	var removed bool

	f.participantRepo.findByEventAndUserFunc = func(ctx context.Context, eventUUID, userID uuid.UUID) (*domain.Participant, error) {
		return &domain.Participant{EventUUID: eventUUID, UserID: userID}, nil
	}
	f.participantRepo.removeWithRejectionFunc = func(ctx context.Context, eventUUID, userID uuid.UUID) error {
		assert.Equal(t, target, userID)
		removed = true
		return nil
	}

	err := f.svc.Evict(context.Background(), f.eventUUID, f.hostID, target)

	require.NoError(t, err)
	assert.True(t, removed)
}

func TestWaitlistService_GetDecisionMap(t *testing.T) {
	f := newWaitlistFixture(t)
	a, b := uuid.New(), uuid.New()
	f.decisions = []*domain.HostDecision{
		{UserID: a, Decision: domain.HostAccepted},
		{UserID: b, Decision: domain.HostRejected},
	}

	m, err := f.svc.GetDecisionMap(context.Background(), f.eventUUID, f.hostID)

	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		a.String(): "accepted",
		b.String(): "rejected",
	}, m)
}
