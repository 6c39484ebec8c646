package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/dondr1/lastminparty/internal/domain"
	"github.com/dondr1/lastminparty/internal/dto"
	"github.com/dondr1/lastminparty/internal/middleware"
	"github.com/dondr1/lastminparty/internal/response"
)

type mockDecisionService struct {
	recordSwipeFunc func(ctx context.Context, eventUUID, userID uuid.UUID, decision domain.SwipeDecision) error
	getSwipeFunc    func(ctx context.Context, eventUUID, userID uuid.UUID) (*domain.Decision, error)
}

func (m *mockDecisionService) RecordSwipe(ctx context.Context, eventUUID, userID uuid.UUID, decision domain.SwipeDecision) error {
	return m.recordSwipeFunc(ctx, eventUUID, userID, decision)
}

func (m *mockDecisionService) GetSwipe(ctx context.Context, eventUUID, userID uuid.UUID) (*domain.Decision, error) {
	return m.getSwipeFunc(ctx, eventUUID, userID)
}

type mockInviteService struct {
	createInviteFunc func(ctx context.Context, eventUUID, userID uuid.UUID) error
}

func (m *mockInviteService) CreateInvite(ctx context.Context, eventUUID, userID uuid.UUID) error {
	return m.createInviteFunc(ctx, eventUUID, userID)
}

func (m *mockInviteService) GetMyInvites(ctx context.Context, userID uuid.UUID) ([]*dto.InviteResponse, error) {
	return nil, nil
}

func (m *mockInviteService) UpdateStatus(ctx context.Context, inviteID, userID uuid.UUID, status domain.InviteStatus) (*dto.InviteResponse, error) {
	return nil, nil
}

func newSwipeRouter(userID uuid.UUID, decisionSvc *mockDecisionService, inviteSvc *mockInviteService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Next()
	})
	h := NewSwipeHandler(decisionSvc, inviteSvc, zap.NewNop())
	router.POST("/api/events/:eventId/swipes", h.RecordSwipe)
	return router
}

func TestSwipeHandler_RecordSwipe(t *testing.T) {
	userID := uuid.New()
	eventUUID := uuid.New()

	tests := []struct {
		name           string
		body           string
		swipeErr       error
		inviteErr      error
		wantStatus     int
		wantInviteCall bool
	}{
		{
			name:           "like files a join request",
			body:           `{"decision":"like"}`,
			wantStatus:     http.StatusAccepted,
			wantInviteCall: true,
		},
		{
			name:       "nope does not touch invites",
			body:       `{"decision":"nope"}`,
			wantStatus: http.StatusAccepted,
		},
		{
			name:           "like on an open event still succeeds",
			body:           `{"decision":"like"}`,
			inviteErr:      response.NewAppError(response.ErrCodeInvalidState, "Event is not invite-only", ""),
			wantStatus:     http.StatusAccepted,
			wantInviteCall: true,
		},
		{
			name:           "invite write failure does not fail the swipe",
			body:           `{"decision":"like"}`,
			inviteErr:      response.NewAppError(response.ErrCodeInternal, "Failed to create invite", "io timeout"),
			wantStatus:     http.StatusAccepted,
			wantInviteCall: true,
		},
		{
			name:       "unknown decision is rejected",
			body:       `{"decision":"maybe"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing body is rejected",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "swipe on unknown event",
			body:       `{"decision":"like"}`,
			swipeErr:   response.NewAppError(response.ErrCodeNotFound, "Event not found", ""),
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var inviteCalled bool
			decisionSvc := &mockDecisionService{
				recordSwipeFunc: func(ctx context.Context, e, u uuid.UUID, d domain.SwipeDecision) error {
					return tt.swipeErr
				},
			}
			inviteSvc := &mockInviteService{
				createInviteFunc: func(ctx context.Context, e, u uuid.UUID) error {
					inviteCalled = true
					assert.Equal(t, eventUUID, e)
					assert.Equal(t, userID, u)
					return tt.inviteErr
				},
			}
			router := newSwipeRouter(userID, decisionSvc, inviteSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventUUID.String()+"/swipes", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantInviteCall, inviteCalled)
		})
	}
}

func TestSwipeHandler_RecordSwipe_InvalidEventID(t *testing.T) {
	router := newSwipeRouter(uuid.New(), &mockDecisionService{}, &mockInviteService{})

	req := httptest.NewRequest(http.MethodPost, "/api/events/not-a-uuid/swipes", strings.NewReader(`{"decision":"like"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
