// Package users manages farmer profiles.
package users

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kisan-backend/internal/locale"
	"kisan-backend/internal/models"
	"kisan-backend/internal/repository"
)

type Service struct {
	repo   repository.UserRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(repo repository.UserRepository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Register creates a profile with a fresh id. Language defaults to Hindi.
func (s *Service) Register(ctx context.Context, in models.UserCreate) (*models.User, error) {
	now := s.now()
	user := &models.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		Phone:        in.Phone,
		Language:     locale.Normalize(in.Language),
		Location:     in.Location,
		FarmSize:     in.FarmSize,
		PrimaryCrops: append(models.CropList{}, in.PrimaryCrops...),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies a partial update. The id never changes.
func (s *Service) Update(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Language != nil {
		lang := locale.Normalize(*upd.Language)
		upd.Language = &lang
	}
	upd.Apply(user, s.now())
	if err := s.repo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to update user", zap.String("user_id", id), zap.Error(err))
		return nil, err
	}
	return user, nil
}
