package repository

import (
	"context"
	"regexp"
	"testing"

	"novelshorts/internal/model"
	"novelshorts/pkg/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestShortsRepository_Create_NovelMissing(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewShortsRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "novels" WHERE no = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	err := repo.Create(ctx, &model.Shorts{NovelNo: 99, Content: "excerpt"})
	assert.ErrorIs(t, err, ErrNovelNotFound)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShortsRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewShortsRepository(db)
	ctx := context.Background()

	shorts := &model.Shorts{NovelNo: 1, Content: "excerpt"}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "novels" WHERE no = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "novel_shorts"`)).
		WillReturnRows(sqlmock.NewRows([]string{"no"}).AddRow(3))
	mock.ExpectCommit()

	err := repo.Create(ctx, shorts)
	assert.NoError(t, err)
	assert.Equal(t, uint(3), shorts.No)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShortsRepository_FindViewByNo(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewShortsRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`JOIN novels ON novels.no = novel_shorts.novel_no`)).
		WillReturnRows(sqlmock.NewRows([]string{"no", "novel_no", "title", "author", "content", "like_count"}).
			AddRow(3, 1, "The Long Night", "K. Ameda", "excerpt", 4))

	view, err := repo.FindViewByNo(ctx, 3)
	assert.NoError(t, err)
	assert.Equal(t, uint(3), view.No)
	assert.Equal(t, "The Long Night", view.Title)
	assert.Equal(t, 4, view.LikeCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShortsRepository_FindViewByNo_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewShortsRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`JOIN novels ON novels.no = novel_shorts.novel_no`)).
		WillReturnRows(sqlmock.NewRows([]string{"no"}))

	_, err := repo.FindViewByNo(ctx, 99)
	assert.ErrorIs(t, err, ErrShortsNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShortsRepository_ListViews(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewShortsRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY novel_shorts.no DESC`)).
		WillReturnRows(sqlmock.NewRows([]string{"no", "novel_no", "title"}).
			AddRow(5, 1, "B").
			AddRow(4, 1, "A"))

	views, err := repo.ListViews(ctx, 10, 0)
	assert.NoError(t, err)
	assert.Len(t, views, 2)
	assert.Equal(t, uint(5), views[0].No)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShortsRepository_IncrementViews(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewShortsRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "novel_shorts" SET "views"=views + $1 WHERE no = $2`)).
		WithArgs(1, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.IncrementViews(ctx, 3)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
