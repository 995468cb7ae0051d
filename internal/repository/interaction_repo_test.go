package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"novelshorts/pkg/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func expectShortsExists(mock sqlmock.Sqlmock, count int64) {
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "novel_shorts" WHERE no = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(count))
}

func TestInteractionRepository_LikeShorts_FirstLike(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewInteractionRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	expectShortsExists(mock, 1)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "shorts_likes" WHERE user_no = $1 AND shorts_no = $2`)).
		WillReturnRows(sqlmock.NewRows([]string{"no", "user_no", "shorts_no", "is_deleted"}))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "shorts_likes"`)).
		WillReturnRows(sqlmock.NewRows([]string{"no"}).AddRow(1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "novel_shorts" SET "like_count"=like_count + $1`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "like_count" FROM "novel_shorts" WHERE no = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"like_count"}).AddRow(5))
	mock.ExpectCommit()

	count, err := repo.LikeShorts(ctx, 7, 3)
	assert.NoError(t, err)
	assert.Equal(t, 5, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInteractionRepository_LikeShorts_AlreadyLiked(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewInteractionRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	expectShortsExists(mock, 1)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "shorts_likes" WHERE user_no = $1 AND shorts_no = $2`)).
		WillReturnRows(sqlmock.NewRows([]string{"no", "user_no", "shorts_no", "is_deleted"}).
			AddRow(1, 7, 3, false))
	mock.ExpectRollback()

	_, err := repo.LikeShorts(ctx, 7, 3)
	assert.ErrorIs(t, err, ErrAlreadyLiked)
	assert.ErrorIs(t, err, apperror.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInteractionRepository_LikeShorts_ReactivatesToggledOffRecord(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewInteractionRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	expectShortsExists(mock, 1)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "shorts_likes" WHERE user_no = $1 AND shorts_no = $2`)).
		WillReturnRows(sqlmock.NewRows([]string{"no", "user_no", "shorts_no", "is_deleted"}).
			AddRow(1, 7, 3, true))
	// Reactivation flips the flag on the existing row, no second insert.
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "shorts_likes" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "novel_shorts" SET "like_count"=like_count + $1`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "like_count" FROM "novel_shorts" WHERE no = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"like_count"}).AddRow(1))
	mock.ExpectCommit()

	count, err := repo.LikeShorts(ctx, 7, 3)
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInteractionRepository_LikeShorts_ShortsMissing(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewInteractionRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	expectShortsExists(mock, 0)
	mock.ExpectRollback()

	_, err := repo.LikeShorts(ctx, 7, 99)
	assert.ErrorIs(t, err, ErrShortsNotFound)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInteractionRepository_UnlikeShorts(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewInteractionRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	expectShortsExists(mock, 1)
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "shorts_likes" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "novel_shorts" SET "like_count"=GREATEST(like_count - $1, 0)`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "like_count" FROM "novel_shorts" WHERE no = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"like_count"}).AddRow(0))
	mock.ExpectCommit()

	count, err := repo.UnlikeShorts(ctx, 7, 3)
	assert.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInteractionRepository_UnlikeShorts_NotLiked(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewInteractionRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	expectShortsExists(mock, 1)
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "shorts_likes" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.UnlikeShorts(ctx, 7, 3)
	assert.ErrorIs(t, err, ErrNotLiked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInteractionRepository_SaveShorts_FirstSave(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewInteractionRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	expectShortsExists(mock, 1)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "shorts_saves" WHERE user_no = $1 AND shorts_no = $2`)).
		WillReturnRows(sqlmock.NewRows([]string{"no", "user_no", "shorts_no", "is_deleted"}))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "shorts_saves"`)).
		WillReturnRows(sqlmock.NewRows([]string{"no"}).AddRow(1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "novel_shorts" SET "save_count"=save_count + $1`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "save_count" FROM "novel_shorts" WHERE no = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"save_count"}).AddRow(2))
	mock.ExpectCommit()

	count, err := repo.SaveShorts(ctx, 7, 3)
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInteractionRepository_UnsaveShorts_NotSaved(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewInteractionRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	expectShortsExists(mock, 1)
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "shorts_saves" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.UnsaveShorts(ctx, 7, 3)
	assert.ErrorIs(t, err, ErrNotSaved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInteractionRepository_LikeComment_TargetDeleted(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewInteractionRepository(db)
	ctx := context.Background()

	// A soft-deleted comment is not a valid like target.
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "comments" WHERE no = $1 AND is_deleted = $2`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	_, err := repo.LikeComment(ctx, 7, 42)
	assert.ErrorIs(t, err, ErrTargetComment)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInteractionRepository_LikeComment(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewInteractionRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "comments" WHERE no = $1 AND is_deleted = $2`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "comment_likes" WHERE user_no = $1 AND comment_no = $2`)).
		WillReturnRows(sqlmock.NewRows([]string{"no", "user_no", "comment_no", "is_deleted"}))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "comment_likes"`)).
		WillReturnRows(sqlmock.NewRows([]string{"no"}).AddRow(1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "comments" SET "like_count"=like_count + $1`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "like_count" FROM "comments" WHERE no = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"like_count"}).AddRow(3))
	mock.ExpectCommit()

	count, err := repo.LikeComment(ctx, 7, 42)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInteractionRepository_IsShortsLiked(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewInteractionRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "shorts_likes" WHERE user_no = $1 AND shorts_no = $2 AND is_deleted = $3`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	liked, err := repo.IsShortsLiked(ctx, 7, 3)
	assert.NoError(t, err)
	assert.True(t, liked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInteractionRepository_IsShortsSaved_QueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewInteractionRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "shorts_saves"`)).
		WillReturnError(errors.New("connection reset"))

	saved, err := repo.IsShortsSaved(ctx, 7, 3)
	assert.Error(t, err)
	assert.False(t, saved)
	assert.NoError(t, mock.ExpectationsWereMet())
}
