package service

import (
	"context"
	"testing"

	"novelshorts/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubInteractionRepo models the toggle ledger in memory with the same
// reactivation rules as the real repository.
type stubInteractionRepo struct {
	likes      map[[2]uint]bool
	saves      map[[2]uint]bool
	likeCounts map[uint]int
	saveCounts map[uint]int
	err        error
}

func newStubInteractionRepo() *stubInteractionRepo {
	return &stubInteractionRepo{
		likes:      make(map[[2]uint]bool),
		saves:      make(map[[2]uint]bool),
		likeCounts: make(map[uint]int),
		saveCounts: make(map[uint]int),
	}
}

func (r *stubInteractionRepo) toggleOn(m map[[2]uint]bool, counts map[uint]int, userNo, targetNo uint, conflict error) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	key := [2]uint{userNo, targetNo}
	if m[key] {
		return 0, conflict
	}
	m[key] = true
	counts[targetNo]++
	return counts[targetNo], nil
}

func (r *stubInteractionRepo) toggleOff(m map[[2]uint]bool, counts map[uint]int, userNo, targetNo uint, conflict error) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	key := [2]uint{userNo, targetNo}
	if !m[key] {
		return 0, conflict
	}
	m[key] = false
	if counts[targetNo] > 0 {
		counts[targetNo]--
	}
	return counts[targetNo], nil
}

func (r *stubInteractionRepo) LikeShorts(_ context.Context, userNo, shortsNo uint) (int, error) {
	return r.toggleOn(r.likes, r.likeCounts, userNo, shortsNo, repository.ErrAlreadyLiked)
}

func (r *stubInteractionRepo) UnlikeShorts(_ context.Context, userNo, shortsNo uint) (int, error) {
	return r.toggleOff(r.likes, r.likeCounts, userNo, shortsNo, repository.ErrNotLiked)
}

func (r *stubInteractionRepo) SaveShorts(_ context.Context, userNo, shortsNo uint) (int, error) {
	return r.toggleOn(r.saves, r.saveCounts, userNo, shortsNo, repository.ErrAlreadySaved)
}

func (r *stubInteractionRepo) UnsaveShorts(_ context.Context, userNo, shortsNo uint) (int, error) {
	return r.toggleOff(r.saves, r.saveCounts, userNo, shortsNo, repository.ErrNotSaved)
}

func (r *stubInteractionRepo) LikeComment(_ context.Context, userNo, commentNo uint) (int, error) {
	return r.toggleOn(r.likes, r.likeCounts, userNo, commentNo, repository.ErrAlreadyLiked)
}

func (r *stubInteractionRepo) UnlikeComment(_ context.Context, userNo, commentNo uint) (int, error) {
	return r.toggleOff(r.likes, r.likeCounts, userNo, commentNo, repository.ErrNotLiked)
}

func (r *stubInteractionRepo) IsShortsLiked(_ context.Context, userNo, shortsNo uint) (bool, error) {
	return r.likes[[2]uint{userNo, shortsNo}], nil
}

func (r *stubInteractionRepo) IsShortsSaved(_ context.Context, userNo, shortsNo uint) (bool, error) {
	return r.saves[[2]uint{userNo, shortsNo}], nil
}

func TestInteractionService_LikeToggleCycle(t *testing.T) {
	svc := NewInteractionService(newStubInteractionRepo(), nil)
	ctx := context.Background()

	resp, err := svc.LikeShorts(ctx, 7, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.LikeCount)

	// Second like of an active record is rejected, count untouched.
	_, err = svc.LikeShorts(ctx, 7, 3)
	assert.ErrorIs(t, err, repository.ErrAlreadyLiked)

	resp, err = svc.UnlikeShorts(ctx, 7, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.LikeCount)

	_, err = svc.UnlikeShorts(ctx, 7, 3)
	assert.ErrorIs(t, err, repository.ErrNotLiked)

	// Full cycle again: the toggle works repeatedly.
	resp, err = svc.LikeShorts(ctx, 7, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.LikeCount)
}

func TestInteractionService_SaveIndependentOfLike(t *testing.T) {
	svc := NewInteractionService(newStubInteractionRepo(), nil)
	ctx := context.Background()

	_, err := svc.LikeShorts(ctx, 7, 3)
	require.NoError(t, err)

	resp, err := svc.SaveShorts(ctx, 7, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.SaveCount)

	_, err = svc.UnsaveShorts(ctx, 8, 3)
	assert.ErrorIs(t, err, repository.ErrNotSaved)
}

func TestInteractionService_CountsPerUser(t *testing.T) {
	svc := NewInteractionService(newStubInteractionRepo(), nil)
	ctx := context.Background()

	resp, err := svc.LikeComment(ctx, 7, 42)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.LikeCount)

	resp, err = svc.LikeComment(ctx, 8, 42)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.LikeCount)

	resp, err = svc.UnlikeComment(ctx, 7, 42)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.LikeCount)
}
