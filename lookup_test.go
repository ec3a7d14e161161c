package botanical

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoun(t *testing.T) {
	inf := newTestInflector(t)

	tests := []struct {
		name       string
		word       string
		c          Case
		n          Number
		want       string
		wantGender Gender
	}{
		{"dictionary form", "agricola", Genitive, Plural, "agricolarum", Masculine},
		{"dictionary beats guess", "iter", Genitive, Singular, "itineris", Neuter},
		{"stored locative", "roma", Locative, Singular, "romae", Feminine},
		{"absent locative reads ablative", "agricola", Locative, Singular, "agricola", Masculine},
		{"empty locative reads ablative", "lorica", Locative, Singular, "lorica", Feminine},
		{"absent plural locative reads ablative singular", "agricola", Locative, Plural, "agricola", Masculine},
		{"absent slot is guessed with guessed gender", "fas", Genitive, Singular, "fatis", Feminine},
		{"present slot keeps dictionary gender", "fas", Nominative, Singular, "fas", Neuter},
		{"absent plural is guessed", "roma", Nominative, Plural, "romae", Feminine},
		{"missing word is guessed", "hibiscus", Genitive, Plural, "hibiscorum", Masculine},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gender := inf.Noun(tt.word, tt.c, tt.n)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantGender, gender)
		})
	}

	guessed, _ := GuessNoun("iter", Genitive, Singular)
	assert.Equal(t, "iteris", guessed)
}

func TestNounIsIdempotent(t *testing.T) {
	inf := newTestInflector(t)
	for _, word := range []string{"agricola", "fas", "hibiscus", "xyz"} {
		for _, n := range Numbers {
			for _, c := range Cases {
				f1, g1 := inf.Noun(word, c, n)
				f2, g2 := inf.Noun(word, c, n)
				assert.Equal(t, f1, f2)
				assert.Equal(t, g1, g2)
			}
		}
	}
}

func TestAdjective(t *testing.T) {
	inf := newTestInflector(t)

	tests := []struct {
		name string
		word string
		c    Case
		n    Number
		g    Gender
		want string
	}{
		{"dictionary form", "grandis", Ablative, Singular, Feminine, "grandi"},
		{"dictionary -er feminine", "integer", Nominative, Singular, Feminine, "integra"},
		{"locative reads ablative", "hamatus", Locative, Plural, Neuter, "hamatis"},
		{"vocative reads ablative", "magnus", Vocative, Singular, Masculine, "magno"},
		{"absent slot yields empty", "magnus", Ablative, Singular, Feminine, ""},
		{"missing word is guessed", "hirsutus", Genitive, Plural, Feminine, "hirsutarum"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inf.Adjective(tt.word, tt.c, tt.n, tt.g))
		})
	}
}

func TestAdjectiveLocativeAndVocativeCollapse(t *testing.T) {
	inf := newTestInflector(t)
	for _, word := range []string{"hamatus", "grandis", "integer", "magnus"} {
		for _, n := range Numbers {
			for _, g := range Genders {
				abl := inf.Adjective(word, Ablative, n, g)
				assert.Equal(t, abl, inf.Adjective(word, Locative, n, g), "%s %s %s", word, n, g)
				assert.Equal(t, abl, inf.Adjective(word, Vocative, n, g), "%s %s %s", word, n, g)
			}
		}
	}
}

func TestDegreesAndAdverb(t *testing.T) {
	inf := newTestInflector(t)

	cmp, ok := inf.Comparative("grandis")
	assert.True(t, ok)
	assert.Equal(t, "grandior", cmp)

	sup, ok := inf.Superlative("integer")
	assert.True(t, ok)
	assert.Equal(t, "integerrimus", sup)

	adv, ok := inf.Adverb("grandis")
	assert.True(t, ok)
	assert.Equal(t, "granditer", adv)

	_, ok = inf.Comparative("hamatus")
	assert.False(t, ok)
	_, ok = inf.Adverb("magnus")
	assert.False(t, ok)
	_, ok = inf.Superlative("hirsutus")
	assert.False(t, ok)
}

func TestVerb(t *testing.T) {
	inf := newTestInflector(t)

	tests := []struct {
		t    Tense
		n    Number
		p    Person
		want string
	}{
		{Present, Singular, First, "amo"},
		{Present, Singular, Third, "amat"},
		{Imperfect, Plural, Second, "amabatis"},
		{Future, Singular, Second, "amabis"},
		{Perfect, Plural, Third, "amaverunt"},
		{Pluperfect, Plural, Third, "amaverant"},
	}
	for _, tt := range tests {
		t.Run(tt.t.String()+"/"+tt.n.String()+"/"+tt.p.String(), func(t *testing.T) {
			got, err := inf.Verb("amo", Indicative, Active, tt.t, tt.n, tt.p)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVerbUnimplemented(t *testing.T) {
	inf := newTestInflector(t)

	tests := []struct {
		name     string
		m        Mood
		v        Voice
		t        Tense
		category string
	}{
		{"future perfect", Indicative, Active, FuturePerfect, "tense"},
		{"passive", Indicative, Passive, Present, "voice"},
		{"subjunctive", Subjunctive, Active, Present, "mood"},
		{"participle", Participle, Active, Perfect, "mood"},
		{"mood checked before voice", Imperative, Passive, FuturePerfect, "mood"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := inf.Verb("amo", tt.m, tt.v, tt.t, Singular, First)
			assert.Empty(t, got)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnimplemented))

			var ue *UnimplementedError
			require.ErrorAs(t, err, &ue)
			assert.Equal(t, tt.category, ue.Category)
		})
	}

	// unknown verbs fail the same way: the category is checked first
	_, err := inf.Verb("laudo", Indicative, Active, FuturePerfect, Singular, First)
	assert.ErrorIs(t, err, ErrUnimplemented)
}

func TestVerbMissing(t *testing.T) {
	inf := newTestInflector(t)
	got, err := inf.Verb("laudo", Indicative, Active, Present, Singular, First)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPrincipalParts(t *testing.T) {
	inf := newTestInflector(t)

	pp, ok := inf.PrincipalParts("amo")
	require.True(t, ok)
	assert.Equal(t, PrincipalParts{
		Canonical:         "amo",
		PresentInfinitive: "amare",
		PerfectActive:     "amavi",
		Supine:            "amatum",
	}, pp)

	_, ok = inf.PrincipalParts("laudo")
	assert.False(t, ok)
}

func TestDeclension(t *testing.T) {
	inf := newTestInflector(t)

	p := inf.Declension("agricola")
	assert.Equal(t, "agricola", p.Word)
	assert.Equal(t, Masculine, p.Gender)
	assert.Equal(t, "agricolarum", p.Form(Genitive, Plural))
	assert.Equal(t, "agricola", p.Form(Locative, Singular))
	assert.Equal(t, "", p.Form(Case(9), Singular))

	for _, n := range Numbers {
		for _, c := range Cases {
			want, _ := inf.Noun("fas", c, n)
			assert.Equal(t, want, inf.Declension("fas").Form(c, n))
		}
	}

	guessed := inf.Declension("trichoma")
	assert.Equal(t, Neuter, guessed.Gender)
	assert.Equal(t, "trichomata", guessed.Form(Nominative, Plural))
}
