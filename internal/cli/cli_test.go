package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/specialistvlad/buildplan/internal/plan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name        string
		args        []string
		expectExit  bool
		expectCode  int
		expectPath  string
		expectFmt   plan.Format
		expectLevel string
	}{
		{name: "positional path", args: []string{"build.hcl"}, expectPath: "build.hcl", expectFmt: plan.FormatJSON, expectLevel: "warn"},
		{name: "long flag wins", args: []string{"-manifest", "a.hcl", "-m", "b.hcl", "c.hcl"}, expectPath: "a.hcl", expectFmt: plan.FormatJSON, expectLevel: "warn"},
		{name: "shorthand flag", args: []string{"-m", "b.yaml", "-format", "YAML", "-log-level", "DEBUG"}, expectPath: "b.yaml", expectFmt: plan.FormatYAML, expectLevel: "debug"},
		{name: "help", args: []string{"-h"}, expectExit: true},
		{name: "no path prints usage", args: []string{}, expectExit: true},
		{name: "unknown flag", args: []string{"-nope"}, expectCode: 2},
		{name: "bad format", args: []string{"-format", "xml", "build.hcl"}, expectCode: 2},
		{name: "bad log format", args: []string{"-log-format", "xml", "build.hcl"}, expectCode: 2},
		{name: "bad log level", args: []string{"-log-level", "trace", "build.hcl"}, expectCode: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			cfg, shouldExit, err := Parse(tc.args, out)

			if tc.expectCode != 0 {
				var exitErr *ExitError
				require.True(t, errors.As(err, &exitErr), "expected ExitError, got %v", err)
				assert.Equal(t, tc.expectCode, exitErr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectExit, shouldExit)
			if tc.expectExit {
				assert.Nil(t, cfg)
				assert.Contains(t, out.String(), "Usage:")
				return
			}
			assert.Equal(t, tc.expectPath, cfg.ManifestPath)
			assert.Equal(t, tc.expectFmt, cfg.Format)
			assert.Equal(t, tc.expectLevel, cfg.LogLevel)
		})
	}
}

func TestParse_OutputAndDigest(t *testing.T) {
	cfg, shouldExit, err := Parse([]string{"-out", "plan.json", "-digest", "-log-format", "json", "build.hcl"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "plan.json", cfg.OutputPath)
	assert.True(t, cfg.DigestOnly)
	assert.Equal(t, "json", cfg.LogFormat)
}
