package postgres

import (
	"context"
	"testing"
	"time"

	"bistro/internal/domain/entity"
	"bistro/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestCartRepository(t *testing.T) (repository.CartRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return NewCartRepository(db), mock
}

func TestCartRepository_Insert_UpsertsOnConflict(t *testing.T) {
	repo, mock := newTestCartRepository(t)

	mock.ExpectQuery(`INSERT INTO "cart" .* ON CONFLICT \("user_id","dish_id"\) DO UPDATE SET "quantity"=cart\.quantity \+ EXCLUDED\.quantity`).
		WithArgs(int64(42), int64(7), 2, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

	line := &entity.CartLine{
		UserID:   42,
		DishID:   7,
		Quantity: 2,
		AddedAt:  time.Now().UTC(),
	}

	require.NoError(t, repo.Insert(context.Background(), line))
	assert.Equal(t, int64(11), line.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepository_Insert_ForeignKeyViolation(t *testing.T) {
	repo, mock := newTestCartRepository(t)

	mock.ExpectQuery(`INSERT INTO "cart"`).
		WillReturnError(gorm.ErrForeignKeyViolated)

	err := repo.Insert(context.Background(), &entity.CartLine{UserID: 42, DishID: 999, Quantity: 1})

	assert.ErrorIs(t, err, repository.ErrDishNotFound)
}
