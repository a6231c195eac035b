package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVRecordPlan(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "plans.csv")

	j, err := NewCSV(path)
	require.NoError(t, err)

	ts := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, j.RecordPlan(planAt("P1", "bitcoin", ts)))
	require.NoError(t, j.Close())

	file, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = file.Close() })

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "plan_id", rows[0][0])
	assert.Equal(t, "P1", rows[1][0])
	assert.Equal(t, "bitcoin", rows[1][1])
	assert.Equal(t, "long", rows[1][2])
	assert.Equal(t, ts.Format(time.RFC3339), rows[1][14])
}

func TestCSVListUnsupported(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "plans.csv")

	j, err := NewCSV(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })

	_, err = j.ListPlans("", 10)
	assert.ErrorIs(t, err, ErrQueryUnsupported)
}
