package main

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cours-de-latin/botanical"
)

var testdata = filepath.Join("..", "..", "testdata")

func dictionaryFlags() []string {
	return []string{
		"-nouns", filepath.Join(testdata, "nouns.csv"),
		"-adjectives", filepath.Join(testdata, "adjectives.csv"),
		"-verbs", filepath.Join(testdata, "verbs.csv"),
	}
}

func runDecline(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("LOG_LEVEL", "error")
	var stdout bytes.Buffer
	err := run(context.Background(), args, &stdout, io.Discard)
	return stdout.String(), err
}

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"noun", []string{"-pos", "noun", "-case", "gen", "-number", "sg", "iter"}, "itineris\tn\n"},
		{"adjective", []string{"-pos", "adjective", "-case", "abl", "-gender", "f", "grandis"}, "grandi\n"},
		{
			"phrase",
			[]string{"-pos", "phrase", "-case", "abl", "-appositives", "manica", "lorica", "hamatus", "grandis"},
			"lorica manica hamata grandi\n",
		},
		{"verb", []string{"-pos", "verb", "-tense", "perfect", "-number", "pl", "-person", "3", "amo"}, "amaverunt\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runDecline(t, append(dictionaryFlags(), tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRunGuessOnly(t *testing.T) {
	out, err := runDecline(t, "-case", "gen", "-number", "pl", "hibiscus", "trichoma")
	require.NoError(t, err)
	assert.Equal(t, "hibiscorum\tm\ntrichomatum\tn\n", out)
}

func TestRunTable(t *testing.T) {
	out, err := runDecline(t, append(dictionaryFlags(), "-pos", "table", "agricola")...)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1+len(botanical.Cases))
	assert.Contains(t, lines[0], "agricola (m)")
	assert.Equal(t, []string{"gen", "agricolae", "agricolarum"}, strings.Fields(lines[2]))
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no word", []string{"-pos", "noun"}, "no word"},
		{"bad case", []string{"-case", "instrumental", "rosa"}, "case"},
		{"bad pos", []string{"-pos", "pronoun", "rosa"}, "part of speech"},
		{"partial dictionary", []string{"-nouns", filepath.Join(testdata, "nouns.csv"), "rosa"}, "adjectives, verbs"},
		{"unimplemented tense", append(dictionaryFlags(), "-pos", "verb", "-tense", "future_perfect", "amo"), "unimplemented"},
		{"unknown verb", append(dictionaryFlags(), "-pos", "verb", "laudo"), "not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runDecline(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
