package botanical

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadNounsFile(t *testing.T) {
	nouns, err := LoadNounsFile(context.Background(), testdataPath("nouns.csv"))
	require.NoError(t, err)
	require.Len(t, nouns, 7)

	agricola := nouns["agricola"]
	require.NotNil(t, agricola)
	assert.Equal(t, Masculine, agricola.Gender)
	assert.Equal(t, "agricolae", agricola.Form(Genitive, Singular).String())
	assert.False(t, agricola.Form(Locative, Singular).Present(), "- is absent")
	assert.False(t, nouns["lorica"].Form(Locative, Singular).Present(), "empty cell is absent")

	loc, ok := nouns["roma"].Form(Locative, Singular).Get()
	assert.True(t, ok)
	assert.Equal(t, "romae", loc)
	assert.Equal(t, Neuter, nouns["iter"].Gender)
}

func TestLoadAdjectivesFile(t *testing.T) {
	adjs, err := LoadAdjectivesFile(context.Background(), testdataPath("adjectives.csv"))
	require.NoError(t, err)
	require.Len(t, adjs, 4)

	grandis := adjs["grandis"]
	require.NotNil(t, grandis)
	assert.Equal(t, "grande", grandis.Form(Nominative, Singular, Neuter).String())
	assert.Equal(t, "grandium", grandis.Form(Genitive, Plural, Feminine).String())
	assert.Equal(t, "grandior", grandis.Comparative.String())

	magnus := adjs["magnus"]
	assert.False(t, magnus.Adverb.Present())
	assert.False(t, magnus.Form(Ablative, Singular, Feminine).Present())
	assert.False(t, adjs["hamatus"].Comparative.Present())
}

func TestLoadVerbsFile(t *testing.T) {
	verbs, err := LoadVerbsFile(context.Background(), testdataPath("verbs.csv"))
	require.NoError(t, err)
	require.Len(t, verbs, 1)

	amo := verbs["amo"]
	require.NotNil(t, amo)
	assert.Equal(t, "amare", amo.PresentInfinitive.String())
	assert.Equal(t, "amamus", amo.IndicativeActive[Present][Plural][First].String())
	assert.Equal(t, "amaveras", amo.IndicativeActive[Pluperfect][Singular][Second].String())
}

func TestLoadNounsUnknownGender(t *testing.T) {
	nouns, err := LoadNounsFile(context.Background(), testdataPath("nouns_bad_gender.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownGender)
	assert.Contains(t, err.Error(), "caput")
	assert.Nil(t, nouns)
}

func TestLoadVerbsMissingColumn(t *testing.T) {
	_, err := LoadVerbsFile(context.Background(), testdataPath("verbs_missing_column.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedRecord)
	assert.Contains(t, err.Error(), "indicative_active_pluperfect_plural_third")
}

func TestLoadMalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"missing columns", "word,nom_sg\nrosa,rosa\n"},
		{"short row", nounHeader() + "\nrosa,rosa\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadNouns(context.Background(), strings.NewReader(tt.input))
			assert.ErrorIs(t, err, ErrMalformedRecord)
		})
	}
}

func TestLoadHeaderOnly(t *testing.T) {
	nouns, err := LoadNouns(context.Background(), strings.NewReader(nounHeader()+"\n"))
	require.NoError(t, err)
	assert.Empty(t, nouns)
}

func TestLoadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := LoadNounsFile(ctx, testdataPath("nouns.csv"))
	assert.ErrorIs(t, err, context.Canceled)
}

func nounHeader() string {
	cols := []string{"word"}
	for _, n := range Numbers {
		for _, c := range Cases {
			cols = append(cols, nounColumn(c, n))
		}
	}
	return strings.Join(append(cols, "gender"), ",")
}
