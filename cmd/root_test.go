package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunCommand_FlagDefaults(t *testing.T) {
	cases := []struct {
		flag string
		want string
	}{
		{"log", "error"},
		{"horizon", "100000"},
		{"quantum", "50"},
		{"lookahead", "200"},
		{"report-interval", "100"},
		{"top-n", "3"},
		{"scheduler", "srtf"},
		{"speed-config", ""},
		{"workload-spec", ""},
		{"csv", ""},
	}
	for _, tc := range cases {
		f := runCmd.Flags().Lookup(tc.flag)
		if f == nil {
			t.Fatalf("flag --%s not registered", tc.flag)
		}
		assert.Equal(t, tc.want, f.DefValue, "default for --%s", tc.flag)
	}
}

func TestRunCommand_AcceptsAtMostOneArg(t *testing.T) {
	assert.NoError(t, runCmd.Args(runCmd, nil))
	assert.NoError(t, runCmd.Args(runCmd, []string{"trace.txt"}))
	assert.Error(t, runCmd.Args(runCmd, []string{"a", "b"}))
}
