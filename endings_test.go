package botanical

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func allTables() []*CaseEndings {
	extra := []*CaseEndings{
		&orAdjNeuterEndings, &sEndings, &sAdjNeuterEndings, &erAdjMascEndings,
		&isAdjEndings, &exAdjEndings, &exAdjNeuterEndings, &esAdjEndings, &esAdjNeuterEndings,
	}
	return append(append([]*CaseEndings{}, nounCatalog...), extra...)
}

func TestEndingIsTotal(t *testing.T) {
	for _, ce := range allTables() {
		for _, n := range Numbers {
			for _, c := range Cases {
				assert.NotPanics(t, func() { ce.Ending(c, n) }, "%s %s %s", ce.Name, c, n)
			}
		}
		// only the -er masculine adjective has an empty citation ending
		if ce.Name != "er-adj-masc" {
			assert.NotEmpty(t, ce.Ending(Nominative, Singular), ce.Name)
		}
		assert.NotEmpty(t, ce.Ending(Genitive, Plural), ce.Name)
	}
}

func TestEndingLocativeAndVocative(t *testing.T) {
	for _, ce := range allTables() {
		for _, n := range Numbers {
			assert.Equal(t, ce.Ending(Ablative, n), ce.Ending(Locative, n), ce.Name)
			assert.Equal(t, ce.Ending(Nominative, n), ce.Ending(Vocative, n), ce.Name)
		}
	}
}

func TestEndingOutOfRange(t *testing.T) {
	assert.Equal(t, "", usEndings.Ending(Case(42), Singular))
	assert.Equal(t, "", usEndings.Ending(Nominative, Number(7)))
}

func TestCatalogOrder(t *testing.T) {
	cat := Catalog()
	assert.Len(t, cat, len(twoLetterCatalog)+len(oneLetterCatalog))

	seenOneLetter := false
	for _, ce := range cat {
		switch len(ce.Citation()) {
		case 1:
			seenOneLetter = true
		case 2:
			assert.False(t, seenOneLetter, "two-letter pattern %q after a one-letter pattern", ce.Name)
		default:
			t.Errorf("unexpected citation ending %q", ce.Citation())
		}
	}
}

func TestCatalogIsACopy(t *testing.T) {
	cat := Catalog()
	cat[0].NomSg = "zz"
	assert.NotEqual(t, "zz", nounCatalog[0].NomSg)
}
