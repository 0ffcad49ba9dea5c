package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"kisan-backend/internal/models"
)

var ErrTaskNotFound = errors.New("task not found")

type TaskRepository interface {
	Insert(ctx context.Context, task *models.Task) error
	// InsertGenerated inserts a template task unless the user already has
	// one for that date and slot. It reports whether a row was written.
	InsertGenerated(ctx context.Context, task *models.Task) (bool, error)
	FindByUserAndDate(ctx context.Context, userID string, date models.Date) ([]*models.Task, error)
	FindByUser(ctx context.Context, userID string) ([]*models.Task, error)
	GetByID(ctx context.Context, id string) (*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id string) (bool, error)
}

type taskRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewTaskRepository(db *sqlx.DB, logger *zap.Logger) TaskRepository {
	return &taskRepository{db: db, logger: logger}
}

const taskColumns = `id, user_id, title, title_hindi, title_local, description, description_hindi,
	description_local, category, priority, crop_type, due_date, due_time, completed, completed_at,
	template_slot, created_at, updated_at`

const insertTask = `INSERT INTO tasks (` + taskColumns + `)
	VALUES (:id, :user_id, :title, :title_hindi, :title_local, :description, :description_hindi,
	:description_local, :category, :priority, :crop_type, :due_date, :due_time, :completed, :completed_at,
	:template_slot, :created_at, :updated_at)`

func (r *taskRepository) Insert(ctx context.Context, task *models.Task) error {
	if _, err := r.db.NamedExecContext(ctx, insertTask, task); err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}
	return nil
}

func (r *taskRepository) InsertGenerated(ctx context.Context, task *models.Task) (bool, error) {
	if task.TemplateSlot == nil {
		return false, errors.New("generated task needs a template slot")
	}

	query := insertTask + ` ON CONFLICT (user_id, due_date, template_slot) DO NOTHING`
	res, err := r.db.NamedExecContext(ctx, query, task)
	if err != nil {
		return false, fmt.Errorf("failed to insert generated task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n > 0, nil
}

func (r *taskRepository) FindByUserAndDate(ctx context.Context, userID string, date models.Date) ([]*models.Task, error) {
	tasks := []*models.Task{}
	query := r.db.Rebind(`SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ? AND due_date = ?
		ORDER BY due_time, created_at, id`)
	if err := r.db.SelectContext(ctx, &tasks, query, userID, date); err != nil {
		return nil, fmt.Errorf("failed to query tasks by date: %w", err)
	}
	return tasks, nil
}

func (r *taskRepository) FindByUser(ctx context.Context, userID string) ([]*models.Task, error) {
	tasks := []*models.Task{}
	query := r.db.Rebind(`SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ?
		ORDER BY due_date, due_time, created_at, id`)
	if err := r.db.SelectContext(ctx, &tasks, query, userID); err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	return tasks, nil
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*models.Task, error) {
	var task models.Task
	query := r.db.Rebind(`SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`)
	err := r.db.GetContext(ctx, &task, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return &task, nil
}

// Update overwrites every mutable column; the last writer wins.
func (r *taskRepository) Update(ctx context.Context, task *models.Task) error {
	query := `UPDATE tasks SET title = :title, title_hindi = :title_hindi, title_local = :title_local,
		description = :description, description_hindi = :description_hindi, description_local = :description_local,
		category = :category, priority = :priority, crop_type = :crop_type, due_date = :due_date,
		due_time = :due_time, completed = :completed, completed_at = :completed_at, template_slot = :template_slot,
		updated_at = :updated_at
		WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, task)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM tasks WHERE id = ?`), id)
	if err != nil {
		return false, fmt.Errorf("failed to delete task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n > 0, nil
}
