package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	st, err := NewSQLite(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func TestSQLiteStore_CreateAndGetRun(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, "bookings.xlsx")
	require.NoError(t, err)
	require.NotEmpty(t, run.ID)
	assert.Equal(t, RunStatusRunning, run.Status)

	got, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, "bookings.xlsx", got.SourceFile)
	assert.Equal(t, RunStatusRunning, got.Status)
}

func TestSQLiteStore_CompleteRun(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, "bookings.xlsx")
	require.NoError(t, err)

	require.NoError(t, st.CompleteRun(ctx, run.ID, 3, 7, 9))

	got, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, RunStatusCompleted, got.Status)
	assert.Equal(t, 3, got.Forms)
	assert.Equal(t, 7, got.Lots)
	assert.Equal(t, 9, got.Rows)
	assert.Empty(t, got.Error)
}

func TestSQLiteStore_FailRun(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, "broken.xlsx")
	require.NoError(t, err)

	require.NoError(t, st.FailRun(ctx, run.ID, "open workbook: not a zip archive"))

	got, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, RunStatusFailed, got.Status)
	assert.Equal(t, "open workbook: not a zip archive", got.Error)
}

func TestSQLiteStore_UpdateMissingRun(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	assert.Error(t, st.CompleteRun(ctx, "no-such-run", 1, 1, 1))
	assert.Error(t, st.FailRun(ctx, "no-such-run", "boom"))

	_, err := st.GetRun(ctx, "no-such-run")
	assert.Error(t, err)
}

func TestSQLiteStore_ListRuns(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"a.xlsx", "b.xlsx", "c.xlsx"} {
		_, err := st.CreateRun(ctx, name)
		require.NoError(t, err)
	}

	runs, err := st.ListRuns(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, runs, 3)

	runs, err = st.ListRuns(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}
