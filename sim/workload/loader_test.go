package workload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeTrace(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trace.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoadTraceFile_TwoFieldRecords_DefaultsApplied(t *testing.T) {
	path := writeTrace(t, "0 120\n20 30\n")

	tasks, err := LoadTraceFile(path)
	assert.NoError(t, err)
	assert.Len(t, tasks, 2)

	assert.Equal(t, 1, tasks[0].ID)
	assert.Equal(t, 0.0, tasks[0].Arrival)
	assert.Equal(t, 120.0, tasks[0].Burst)
	assert.Equal(t, 0.0, tasks[0].MemKB)
	assert.Equal(t, 0.0, tasks[0].IOWeight)
	assert.Equal(t, 2, tasks[1].ID)
}

func TestLoadTraceFile_FourFieldRecords(t *testing.T) {
	path := writeTrace(t, "0 200 20000 0.1\n20 80 10000 0.7\n")

	tasks, err := LoadTraceFile(path)
	assert.NoError(t, err)
	assert.Len(t, tasks, 2)
	assert.Equal(t, 20000.0, tasks[0].MemKB)
	assert.Equal(t, 0.7, tasks[1].IOWeight)
}

func TestLoadTraceFile_CommentsAndBlankLines_Skipped(t *testing.T) {
	path := writeTrace(t, "# header comment\n\n0 120\n\n# trailing\n20 30\n")

	tasks, err := LoadTraceFile(path)
	assert.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestLoadTraceFile_MalformedRecords_Rejected(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"three fields", "0 120 5000\n"},
		{"not a number", "0 abc\n"},
		{"negative arrival", "-5 120\n"},
		{"zero burst", "0 0\n"},
		{"io weight above one", "0 120 500 1.5\n"},
		{"negative memory", "0 120 -3 0.5\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadTraceFile(writeTrace(t, tc.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadTraceFile_EmptyFile_Rejected(t *testing.T) {
	_, err := LoadTraceFile(writeTrace(t, "# only comments\n"))
	assert.Error(t, err)
}

func TestLoadTraceFile_MissingFile_Errors(t *testing.T) {
	_, err := LoadTraceFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestSample_NonEmptyAndValid(t *testing.T) {
	tasks := Sample()
	assert.NotEmpty(t, tasks)
	for _, task := range tasks {
		assert.Greater(t, task.Burst, 0.0)
		assert.GreaterOrEqual(t, task.Arrival, 0.0)
		assert.GreaterOrEqual(t, task.IOWeight, 0.0)
		assert.LessOrEqual(t, task.IOWeight, 1.0)
	}
}
