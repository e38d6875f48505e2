package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestFollowRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	t.Run("new edge inserts one row", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO follows .+ ON CONFLICT \(user_id, author_id\) DO NOTHING`).
			WithArgs(int64(1), int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		created, err := repo.Create(ctx, 1, 2)

		require.NoError(t, err)
		assert.True(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("existing edge is untouched", func(t *testing.T) {
		// The conflict clause swallows the duplicate: zero rows affected,
		// no error. Uniqueness lives in the primary key, not in a read
		// followed by a write.
		mock.ExpectExec(`INSERT INTO follows .+ ON CONFLICT \(user_id, author_id\) DO NOTHING`).
			WithArgs(int64(1), int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		created, err := repo.Create(ctx, 1, 2)

		require.NoError(t, err)
		assert.False(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFollowRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	t.Run("edge present", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM follows WHERE user_id = \$1 AND author_id = \$2`).
			WithArgs(int64(1), int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(ctx, 1, 2)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("edge absent is a no-op", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM follows WHERE user_id = \$1 AND author_id = \$2`).
			WithArgs(int64(1), int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(ctx, 1, 2)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFollowRepository_Exists(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.Exists(ctx, 1, 2)

	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFollowRepository_AuthorIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT author_id FROM follows WHERE user_id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"author_id"}).AddRow(2).AddRow(3))

	ids, err := repo.AuthorIDs(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
