package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudtally/cloudtally/inventory"
)

func testRecords() []inventory.Record {
	return []inventory.Record{
		{Type: "EC2", Name: "web-1", Region: "us-east-1", Identifier: "i-1"},
		{Type: "EC2", Name: "web-2", Region: "us-east-1", Identifier: "i-2"},
		{Type: "S3", Name: "assets", Region: "global", Identifier: "arn:aws:s3:::assets"},
	}
}

func TestSaveRunAssignsIncreasingNumbers(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	first, err := s.SaveRun("prod", "basic", testRecords(), false)
	require.NoError(t, err)
	second, err := s.SaveRun("prod", "detailed", testRecords(), true)
	require.NoError(t, err)

	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)
	assert.Equal(t, int64(2), s.CurrentRun())
}

func TestHistoryNewestFirst(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	for _, mode := range []string{"basic", "detailed", "security"} {
		_, err := s.SaveRun("prod", mode, testRecords(), false)
		require.NoError(t, err)
	}

	history := s.History(2)
	require.Len(t, history, 2)
	assert.Equal(t, int64(3), history[0].Run)
	assert.Equal(t, "security", history[0].Mode)
	assert.Equal(t, int64(2), history[1].Run)

	all := s.History(0)
	assert.Len(t, all, 3)
}

func TestSnapshotSummaryCounts(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	_, err = s.SaveRun("prod", "basic", testRecords(), true)
	require.NoError(t, err)

	snap := s.History(1)[0]
	assert.Equal(t, 3, snap.Total)
	assert.True(t, snap.HadErrors)
	assert.Equal(t, 2, snap.ByType["EC2"])
	assert.Equal(t, 1, snap.ByType["S3"])
}

func TestRecordsRoundTrip(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	run, err := s.SaveRun("prod", "basic", testRecords(), false)
	require.NoError(t, err)

	got, err := s.Records(run)
	require.NoError(t, err)
	assert.Equal(t, testRecords(), got)

	_, err = s.Records(99)
	assert.Error(t, err)
}

func TestReopenRestoresState(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)
	_, err = s.SaveRun("prod", "basic", testRecords(), false)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := Open(dir)
	require.NoError(t, err)
	defer reopened.Close()

	assert.Equal(t, int64(1), reopened.CurrentRun())
	require.Len(t, reopened.History(0), 1)

	run, err := reopened.SaveRun("prod", "basic", testRecords(), false)
	require.NoError(t, err)
	assert.Equal(t, int64(2), run, "run counter continues after reopen")
}

func TestCompactKeepsRecentRuns(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	for i := 0; i < 5; i++ {
		_, err := s.SaveRun("prod", "basic", testRecords(), false)
		require.NoError(t, err)
	}

	require.NoError(t, s.Compact(2))

	history := s.History(0)
	require.Len(t, history, 2)
	assert.Equal(t, int64(5), history[0].Run)
	assert.Equal(t, int64(4), history[1].Run)

	_, err = s.Records(1)
	assert.Error(t, err, "compacted run records are gone")
	_, err = s.Records(5)
	assert.NoError(t, err)
}
