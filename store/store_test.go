package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestLog(t *testing.T) *Log {
	t.Helper()
	l, err := Open(filepath.Join(t.TempDir(), "coach.db"))
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })
	return l
}

func TestAppendAndTail(t *testing.T) {
	l := openTestLog(t)
	ctx := context.Background()

	for i := 1; i <= 6; i++ {
		err := l.Append(ctx, RangeSessions, []string{fmt.Sprintf("row-%d", i)})
		require.NoError(t, err)
	}

	rows, err := l.Tail(ctx, RangeSessions, 4)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	// Oldest-first within the tail.
	assert.Equal(t, "row-3", rows[0][0])
	assert.Equal(t, "row-6", rows[3][0])
}

func TestTailSeparatesRanges(t *testing.T) {
	l := openTestLog(t)
	ctx := context.Background()

	require.NoError(t, l.Append(ctx, RangeSessions, []string{"session"}))
	require.NoError(t, l.Append(ctx, RangeRecommendations, []string{"rec"}))

	rows, err := l.Tail(ctx, RangeRecommendations, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "rec", rows[0][0])
}

func TestNilLogIsAbsentStore(t *testing.T) {
	var l *Log

	rows, err := l.Tail(context.Background(), RangeSessions, 4)
	assert.NoError(t, err)
	assert.Empty(t, rows)

	assert.Error(t, l.Append(context.Background(), RangeSessions, []string{"x"}))
	assert.NoError(t, l.Close())
}

func TestTailEmptyRange(t *testing.T) {
	l := openTestLog(t)
	rows, err := l.Tail(context.Background(), RangeSessions, 4)
	assert.NoError(t, err)
	assert.Empty(t, rows)
}
