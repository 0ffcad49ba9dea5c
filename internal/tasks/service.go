// Package tasks schedules daily farming activities from crop templates and
// keeps them in the task store.
package tasks

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kisan-backend/internal/models"
	"kisan-backend/internal/repository"
)

type Service struct {
	repo   repository.TaskRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(repo repository.TaskRepository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) CreateTask(ctx context.Context, in models.TaskCreate) (*models.Task, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	task := s.newTask(in)
	if err := s.repo.Insert(ctx, task); err != nil {
		s.logger.Error("Error creating task", zap.String("user_id", in.UserID), zap.Error(err))
		return nil, err
	}
	return task, nil
}

// GetTasks lists a user's tasks, only those due on date when it is set.
// Store errors are logged and yield an empty list.
func (s *Service) GetTasks(ctx context.Context, userID string, date *models.Date) []*models.Task {
	var (
		tasks []*models.Task
		err   error
	)
	if date != nil {
		tasks, err = s.repo.FindByUserAndDate(ctx, userID, *date)
	} else {
		tasks, err = s.repo.FindByUser(ctx, userID)
	}
	if err != nil {
		s.logger.Error("Error fetching tasks", zap.String("user_id", userID), zap.Error(err))
		return []*models.Task{}
	}
	return tasks
}

// GetTask returns nil when the task does not exist or cannot be read.
func (s *Service) GetTask(ctx context.Context, id string) *models.Task {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrTaskNotFound) {
			s.logger.Error("Error fetching task", zap.String("task_id", id), zap.Error(err))
		}
		return nil
	}
	return task
}

// UpdateTask applies a partial update. It returns nil when the task is
// missing, the update is invalid, or the store fails.
func (s *Service) UpdateTask(ctx context.Context, id string, upd models.TaskUpdate) *models.Task {
	task := s.GetTask(ctx, id)
	if task == nil {
		return nil
	}
	prevDue := task.DueDate
	if err := upd.Apply(task, s.now()); err != nil {
		s.logger.Warn("Rejected task update", zap.String("task_id", id), zap.Error(err))
		return nil
	}
	// a generated task moved to another day no longer fills that day's slot
	if !task.DueDate.Equal(prevDue.Time) {
		task.TemplateSlot = nil
	}
	if err := s.repo.Update(ctx, task); err != nil {
		s.logger.Error("Error updating task", zap.String("task_id", id), zap.Error(err))
		return nil
	}
	return task
}

// DeleteTask reports whether a task was removed.
func (s *Service) DeleteTask(ctx context.Context, id string) bool {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("Error deleting task", zap.String("task_id", id), zap.Error(err))
		return false
	}
	return deleted
}

// GenerateCropTasks returns the user's tasks for date, first creating them
// from the crop's templates when the user has none for that day. Generated
// rows are unique per (user, date, slot), so concurrent callers cannot
// duplicate them.
func (s *Service) GenerateCropTasks(ctx context.Context, userID, cropType, region string, date models.Date, lang string) []*models.Task {
	existing, err := s.repo.FindByUserAndDate(ctx, userID, date)
	if err != nil {
		s.logger.Error("Error generating crop tasks", zap.String("user_id", userID), zap.Error(err))
		return []*models.Task{}
	}
	if len(existing) > 0 {
		return existing
	}

	for _, def := range Templates(cropType, lang) {
		in := def.Create(userID, cropType, date)
		if err := in.Validate(); err != nil {
			s.logger.Error("Invalid task template", zap.String("crop", cropType), zap.Int("slot", def.Slot), zap.Error(err))
			return []*models.Task{}
		}
		task := s.newTask(in)
		task.TemplateSlot = &def.Slot
		if _, err := s.repo.InsertGenerated(ctx, task); err != nil {
			s.logger.Error("Error generating crop tasks", zap.String("user_id", userID), zap.Error(err))
			return []*models.Task{}
		}
	}

	s.logger.Info("Generated crop tasks",
		zap.String("user_id", userID),
		zap.String("crop", cropType),
		zap.String("region", region),
		zap.String("date", date.String()),
	)
	return s.GetTasks(ctx, userID, &date)
}

func (s *Service) newTask(in models.TaskCreate) *models.Task {
	now := s.now()
	return &models.Task{
		ID:               uuid.NewString(),
		UserID:           in.UserID,
		Title:            in.Title,
		TitleHindi:       in.TitleHindi,
		TitleLocal:       in.TitleLocal,
		Description:      in.Description,
		DescriptionHindi: in.DescriptionHindi,
		DescriptionLocal: in.DescriptionLocal,
		Category:         in.Category,
		Priority:         in.Priority,
		CropType:         in.CropType,
		DueDate:          in.DueDate,
		DueTime:          in.DueTime,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
