package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"kisan-backend/internal/models"
	"kisan-backend/internal/repository"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	logger := zap.NewNop()

	db, err := repository.NewDB(repository.DriverSQLite, ":memory:", logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, repository.MigrateDB(db, "", logger))

	return NewService(repository.NewUserRepository(db, logger), logger)
}

func TestRegister_Defaults(t *testing.T) {
	svc := newTestService(t)

	user, err := svc.Register(context.Background(), models.UserCreate{Name: "  Sita  "})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Sita", user.Name)
	assert.Equal(t, "hi", user.Language)
	assert.NotNil(t, user.PrimaryCrops)
	assert.Empty(t, user.PrimaryCrops)
}

func TestUpdate_KeepsID(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	user, err := svc.Register(ctx, models.UserCreate{Name: "Arjun", Language: "en", PrimaryCrops: []string{"cotton"}})
	require.NoError(t, err)

	lang := "ta-IN"
	crops := []string{"rice", "banana"}
	updated, err := svc.Update(ctx, user.ID, models.UserUpdate{Language: &lang, PrimaryCrops: &crops})
	require.NoError(t, err)

	assert.Equal(t, user.ID, updated.ID)
	assert.Equal(t, "ta", updated.Language)
	assert.Equal(t, models.CropList{"rice", "banana"}, updated.PrimaryCrops)
	assert.False(t, updated.UpdatedAt.Before(user.UpdatedAt))

	stored, err := svc.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Arjun", stored.Name)
	assert.Equal(t, "ta", stored.Language)
}

func TestUpdate_Missing(t *testing.T) {
	name := "x"
	_, err := newTestService(t).Update(context.Background(), "nope", models.UserUpdate{Name: &name})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
