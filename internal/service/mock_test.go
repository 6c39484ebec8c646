package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/dondr1/lastminparty/internal/domain"
	"github.com/dondr1/lastminparty/internal/metrics"
)

func newTestMetrics() *metrics.Metrics {
	return metrics.NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())
}

// mockEventRepository is a configurable mock of repository.EventRepository
type mockEventRepository struct {
	createFunc        func(ctx context.Context, event *domain.Event) error
	findByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	findFeedFunc      func(ctx context.Context, excludeCreator uuid.UUID) ([]*domain.Event, error)
	findByCreatorFunc func(ctx context.Context, creatorID uuid.UUID) ([]*domain.Event, error)
	findAttendingFunc func(ctx context.Context, userID uuid.UUID) ([]*domain.Event, error)
	updateFunc        func(ctx context.Context, event *domain.Event) error
}

func (m *mockEventRepository) Create(ctx context.Context, event *domain.Event) error {
	return m.createFunc(ctx, event)
}

func (m *mockEventRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockEventRepository) FindFeed(ctx context.Context, excludeCreator uuid.UUID) ([]*domain.Event, error) {
	return m.findFeedFunc(ctx, excludeCreator)
}

func (m *mockEventRepository) FindByCreator(ctx context.Context, creatorID uuid.UUID) ([]*domain.Event, error) {
	return m.findByCreatorFunc(ctx, creatorID)
}

func (m *mockEventRepository) FindAttending(ctx context.Context, userID uuid.UUID) ([]*domain.Event, error) {
	return m.findAttendingFunc(ctx, userID)
}

func (m *mockEventRepository) Update(ctx context.Context, event *domain.Event) error {
	return m.updateFunc(ctx, event)
}

// mockDecisionRepository is a configurable mock of repository.DecisionRepository
type mockDecisionRepository struct {
	upsertFunc             func(ctx context.Context, decision *domain.Decision) error
	findByEventAndUserFunc func(ctx context.Context, eventUUID, userID uuid.UUID) (*domain.Decision, error)
	findLikersByEventFunc  func(ctx context.Context, eventUUID uuid.UUID) ([]*domain.Decision, error)
}

func (m *mockDecisionRepository) Upsert(ctx context.Context, decision *domain.Decision) error {
	return m.upsertFunc(ctx, decision)
}

func (m *mockDecisionRepository) FindByEventAndUser(ctx context.Context, eventUUID, userID uuid.UUID) (*domain.Decision, error) {
	return m.findByEventAndUserFunc(ctx, eventUUID, userID)
}

func (m *mockDecisionRepository) FindLikersByEvent(ctx context.Context, eventUUID uuid.UUID) ([]*domain.Decision, error) {
	return m.findLikersByEventFunc(ctx, eventUUID)
}

// mockInviteRepository is a configurable mock of repository.InviteRepository
type mockInviteRepository struct {
	createFunc                func(ctx context.Context, invite *domain.Invite) error
	findByIDFunc              func(ctx context.Context, id uuid.UUID) (*domain.Invite, error)
	findByUserWithEventFunc   func(ctx context.Context, userID uuid.UUID) ([]*domain.Invite, error)
	findPendingByEventFunc    func(ctx context.Context, eventUUID uuid.UUID) ([]*domain.Invite, error)
	updateStatusFunc          func(ctx context.Context, id uuid.UUID, status domain.InviteStatus) error
	acceptWithParticipantFunc func(ctx context.Context, invite *domain.Invite) error
}

func (m *mockInviteRepository) Create(ctx context.Context, invite *domain.Invite) error {
	return m.createFunc(ctx, invite)
}

func (m *mockInviteRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Invite, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockInviteRepository) FindByUserWithEvent(ctx context.Context, userID uuid.UUID) ([]*domain.Invite, error) {
	return m.findByUserWithEventFunc(ctx, userID)
}

func (m *mockInviteRepository) FindPendingByEvent(ctx context.Context, eventUUID uuid.UUID) ([]*domain.Invite, error) {
	return m.findPendingByEventFunc(ctx, eventUUID)
}

func (m *mockInviteRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InviteStatus) error {
	return m.updateStatusFunc(ctx, id, status)
}

func (m *mockInviteRepository) AcceptWithParticipant(ctx context.Context, invite *domain.Invite) error {
	return m.acceptWithParticipantFunc(ctx, invite)
}

// mockHostDecisionRepository is a configurable mock of repository.HostDecisionRepository
type mockHostDecisionRepository struct {
	upsertFunc                         func(ctx context.Context, decision *domain.HostDecision) error
	upsertWithParticipantFunc          func(ctx context.Context, decision *domain.HostDecision, participant *domain.Participant) error
	findByEventFunc                    func(ctx context.Context, eventUUID uuid.UUID) ([]*domain.HostDecision, error)
	findAcceptedWithoutParticipantFunc func(ctx context.Context) ([]*domain.HostDecision, error)
}

func (m *mockHostDecisionRepository) Upsert(ctx context.Context, decision *domain.HostDecision) error {
	return m.upsertFunc(ctx, decision)
}

func (m *mockHostDecisionRepository) UpsertWithParticipant(ctx context.Context, decision *domain.HostDecision, participant *domain.Participant) error {
	return m.upsertWithParticipantFunc(ctx, decision, participant)
}

func (m *mockHostDecisionRepository) FindByEvent(ctx context.Context, eventUUID uuid.UUID) ([]*domain.HostDecision, error) {
	return m.findByEventFunc(ctx, eventUUID)
}

func (m *mockHostDecisionRepository) FindAcceptedWithoutParticipant(ctx context.Context) ([]*domain.HostDecision, error) {
	return m.findAcceptedWithoutParticipantFunc(ctx)
}

// mockParticipantRepository is a configurable mock of repository.ParticipantRepository
type mockParticipantRepository struct {
	upsertFunc              func(ctx context.Context, participant *domain.Participant) error
	findByEventFunc         func(ctx context.Context, eventUUID uuid.UUID) ([]*domain.Participant, error)
	findByEventAndUserFunc  func(ctx context.Context, eventUUID, userID uuid.UUID) (*domain.Participant, error)
	removeWithRejectionFunc func(ctx context.Context, eventUUID, userID uuid.UUID) error
}

func (m *mockParticipantRepository) Upsert(ctx context.Context, participant *domain.Participant) error {
	return m.upsertFunc(ctx, participant)
}

func (m *mockParticipantRepository) FindByEvent(ctx context.Context, eventUUID uuid.UUID) ([]*domain.Participant, error) {
	return m.findByEventFunc(ctx, eventUUID)
}

func (m *mockParticipantRepository) FindByEventAndUser(ctx context.Context, eventUUID, userID uuid.UUID) (*domain.Participant, error) {
	return m.findByEventAndUserFunc(ctx, eventUUID, userID)
}

func (m *mockParticipantRepository) RemoveWithRejection(ctx context.Context, eventUUID, userID uuid.UUID) error {
	return m.removeWithRejectionFunc(ctx, eventUUID, userID)
}

// mockProfileRepository is a configurable mock of repository.ProfileRepository
type mockProfileRepository struct {
	upsertFunc   func(ctx context.Context, profile *domain.Profile) error
	findByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	existsFunc   func(ctx context.Context, id uuid.UUID) (bool, error)
}

func (m *mockProfileRepository) Upsert(ctx context.Context, profile *domain.Profile) error {
	return m.upsertFunc(ctx, profile)
}

func (m *mockProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockProfileRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.existsFunc(ctx, id)
}

// mockProfileCache is an in-memory stand-in for the redis-backed cache
type mockProfileCache struct {
	entries     map[uuid.UUID]bool
	invalidated []uuid.UUID
}

func newMockProfileCache() *mockProfileCache {
	return &mockProfileCache{entries: make(map[uuid.UUID]bool)}
}

func (m *mockProfileCache) GetExists(ctx context.Context, userID uuid.UUID) (bool, bool) {
	exists, ok := m.entries[userID]
	return exists, ok
}

func (m *mockProfileCache) SetExists(ctx context.Context, userID uuid.UUID, exists bool) {
	m.entries[userID] = exists
}

func (m *mockProfileCache) Invalidate(ctx context.Context, userID uuid.UUID) {
	delete(m.entries, userID)
	m.invalidated = append(m.invalidated, userID)
}
