package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/tabcast/internal/domain/entity"
	"github.com/bnema/tabcast/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordDispatch_CloseDrainsQueue(t *testing.T) {
	repo := mocks.NewMockDispatchRepository(t)
	uc := NewRecordDispatchUseCase(context.Background(), repo)

	var saved []string
	repo.EXPECT().Save(mock.Anything, mock.AnythingOfType("*entity.Dispatch")).
		RunAndReturn(func(_ context.Context, d *entity.Dispatch) error {
			saved = append(saved, d.Prompt)
			d.ID = int64(len(saved))
			return nil
		}).Times(3)

	for _, p := range []string{"one", "two", "three"} {
		uc.Record(context.Background(), entity.NewDispatch(p))
	}
	uc.Close()

	assert.Equal(t, []string{"one", "two", "three"}, saved)
}

func TestRecordDispatch_SaveErrorIsLogged(t *testing.T) {
	repo := mocks.NewMockDispatchRepository(t)
	uc := NewRecordDispatchUseCase(context.Background(), repo)

	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

	uc.Record(context.Background(), entity.NewDispatch("hello"))
	uc.Close()
}

func TestRecordDispatch_DropsAfterClose(t *testing.T) {
	repo := mocks.NewMockDispatchRepository(t)
	uc := NewRecordDispatchUseCase(context.Background(), repo)
	uc.Close()

	uc.Record(context.Background(), entity.NewDispatch("late"))
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestRecordDispatch_PruneUsesCutoff(t *testing.T) {
	repo := mocks.NewMockDispatchRepository(t)
	uc := NewRecordDispatchUseCase(context.Background(), repo)
	defer uc.Close()

	before := time.Now().Add(-24 * time.Hour)
	repo.EXPECT().Prune(mock.Anything, mock.MatchedBy(func(cutoff time.Time) bool {
		return !cutoff.Before(before.Add(-time.Minute)) && !cutoff.After(time.Now().Add(-23*time.Hour))
	})).Return(int64(4), nil).Once()

	n, err := uc.Prune(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestRecordDispatch_Recent(t *testing.T) {
	repo := mocks.NewMockDispatchRepository(t)
	uc := NewRecordDispatchUseCase(context.Background(), repo)
	defer uc.Close()

	want := []*entity.Dispatch{entity.NewDispatch("a")}
	repo.EXPECT().Recent(mock.Anything, 10).Return(want, nil).Once()

	got, err := uc.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 3))
	assert.Equal(t, "ab…", truncate("abc", 2))
	assert.Equal(t, "发送…", truncate("发送提交", 2))
}
