package botanical

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testdataPath(name string) string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "testdata", name)
}

func newTestInflector(t *testing.T) *Inflector {
	t.Helper()
	inf, err := NewFromFiles(context.Background(),
		testdataPath("nouns.csv"),
		testdataPath("adjectives.csv"),
		testdataPath("verbs.csv"),
	)
	require.NoError(t, err)
	return inf
}

func TestNewFromFiles(t *testing.T) {
	inf := newTestInflector(t)
	assert.Equal(t, Stats{Nouns: 7, Adjectives: 4, Verbs: 1}, inf.Stats())
	assert.True(t, inf.HasNoun("lorica"))
	assert.True(t, inf.HasAdjective("grandis"))
	assert.True(t, inf.HasVerb("amo"))
	assert.False(t, inf.HasNoun("hibiscus"))
	assert.False(t, inf.HasVerb("laudo"))
}

func TestNewFromFilesFailsWholly(t *testing.T) {
	tests := []struct {
		name    string
		nouns   string
		adjs    string
		verbs   string
		wantErr error
	}{
		{"unknown gender", "nouns_bad_gender.csv", "adjectives.csv", "verbs.csv", ErrUnknownGender},
		{"missing column", "nouns.csv", "adjectives.csv", "verbs_missing_column.csv", ErrMalformedRecord},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inf, err := NewFromFiles(context.Background(),
				testdataPath(tt.nouns), testdataPath(tt.adjs), testdataPath(tt.verbs))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, inf)
		})
	}
}

func TestNewFromFilesMissingFile(t *testing.T) {
	inf, err := NewFromFiles(context.Background(),
		testdataPath("nope.csv"), testdataPath("adjectives.csv"), testdataPath("verbs.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.csv")
	assert.Nil(t, inf)
}

func TestNewNilMaps(t *testing.T) {
	inf := New(nil, nil, nil)
	assert.Equal(t, Stats{}, inf.Stats())
	form, g := inf.Noun("hibiscus", Genitive, Plural)
	assert.Equal(t, "hibiscorum", form)
	assert.Equal(t, Masculine, g)
}
