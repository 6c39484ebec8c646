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
	"github.com/dondr1/lastminparty/internal/dto"
	"github.com/dondr1/lastminparty/internal/response"
)

func TestProfileService_UpsertProfile(t *testing.T) {
	userID := uuid.New()

	var saved *domain.Profile
	profileRepo := &mockProfileRepository{
		upsertFunc: func(ctx context.Context, profile *domain.Profile) error {
			saved = profile
			return nil
		},
	}
	profileCache := newMockProfileCache()
	profileCache.SetExists(context.Background(), userID, false)
	svc := NewProfileService(profileRepo, profileCache, zap.NewNop())

	resp, err := svc.UpsertProfile(context.Background(), userID, &dto.UpsertProfileRequest{
		Username:  "ada",
		AvatarURL: "https://img.example/ada.jpg",
		Tags:      []string{"techno", "cooking"},
	})

	require.NoError(t, err)
	assert.Equal(t, userID, resp.ID)
	assert.Equal(t, "ada", resp.Username)
	assert.Equal(t, []string{"techno", "cooking"}, resp.Tags)
	require.NotNil(t, saved)
	assert.JSONEq(t, `["techno","cooking"]`, string(saved.Tags))
	assert.Contains(t, profileCache.invalidated, userID, "stale existence flag must be dropped")
}

func TestProfileService_UpsertProfile_NilTags(t *testing.T) {
	userID := uuid.New()
	profileRepo := &mockProfileRepository{
		upsertFunc: func(ctx context.Context, profile *domain.Profile) error { return nil },
	}
	svc := NewProfileService(profileRepo, newMockProfileCache(), zap.NewNop())

	resp, err := svc.UpsertProfile(context.Background(), userID, &dto.UpsertProfileRequest{Username: "bob"})

	require.NoError(t, err)
	assert.Equal(t, []string{}, resp.Tags)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	profileRepo := &mockProfileRepository{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewProfileService(profileRepo, newMockProfileCache(), zap.NewNop())

	_, err := svc.GetProfile(context.Background(), uuid.New())

	var appErr *response.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, response.ErrCodeNotFound, appErr.Code)
}

func TestProfileService_ProfileExists(t *testing.T) {
	userID := uuid.New()

	t.Run("miss hits the database and primes the cache", func(t *testing.T) {
		var dbCalls int
		profileRepo := &mockProfileRepository{
			existsFunc: func(ctx context.Context, id uuid.UUID) (bool, error) {
				dbCalls++
				return true, nil
			},
		}
		profileCache := newMockProfileCache()
		svc := NewProfileService(profileRepo, profileCache, zap.NewNop())

		exists, err := svc.ProfileExists(context.Background(), userID)
		require.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, 1, dbCalls)

		exists, err = svc.ProfileExists(context.Background(), userID)
		require.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, 1, dbCalls, "second lookup is served from cache")
	})

	t.Run("database failure surfaces", func(t *testing.T) {
		profileRepo := &mockProfileRepository{
			existsFunc: func(ctx context.Context, id uuid.UUID) (bool, error) {
				return false, errors.New("connection refused")
			},
		}
		svc := NewProfileService(profileRepo, newMockProfileCache(), zap.NewNop())

		_, err := svc.ProfileExists(context.Background(), userID)

		var appErr *response.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, response.ErrCodeInternal, appErr.Code)
	})
}
