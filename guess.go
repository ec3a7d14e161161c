package botanical

// GuessNoun inflects word without a dictionary. It scans the two-letter
// catalog, then the one-letter catalog, and uses the first pattern whose
// citation ending ends word: the ending is replaced by the one for case
// and number and the pattern's gender is returned.
//
// A word no pattern matches is returned unchanged as Masculine; callers
// should treat that as a low-confidence result.
func GuessNoun(word string, c Case, n Number) (string, Gender) {
	if ce := classifyNoun(word); ce != nil {
		stem, _ := stripEnding(word, ce.NomSg)
		return stem + ce.Ending(c, n), ce.Gender
	}
	return word, Masculine
}

// classifyNoun returns the first catalog pattern matching word, or nil.
func classifyNoun(word string) *CaseEndings {
	for _, ce := range nounCatalog {
		if _, ok := stripEnding(word, ce.NomSg); ok {
			return ce
		}
	}
	return nil
}

// adjectiveClass binds a citation ending to the three gender paradigms
// it selects and to the number of characters removed to form the stem.
type adjectiveClass struct {
	suffix string
	trim   int
	// syncope drops the thematic e of -er before any non-empty ending
	// (integer, integra, integrum).
	syncope bool

	masc, fem, neut *CaseEndings
}

// adjectiveClasses is checked in order; the first suffix match wins, so
// -des must precede the generic -s.
var adjectiveClasses = []adjectiveClass{
	{suffix: "us", trim: 2, masc: &usEndings, fem: &aEndings, neut: &umEndings},
	{suffix: "er", trim: 0, syncope: true, masc: &erAdjMascEndings, fem: &aEndings, neut: &umEndings},
	{suffix: "is", trim: 2, masc: &isAdjEndings, fem: &isAdjEndings, neut: &eEndings},
	{suffix: "ex", trim: 2, masc: &exAdjEndings, fem: &exAdjEndings, neut: &exAdjNeuterEndings},
	{suffix: "or", trim: 2, masc: &orEndings, fem: &orEndings, neut: &orAdjNeuterEndings},
	{suffix: "des", trim: 2, masc: &esAdjEndings, fem: &esAdjEndings, neut: &esAdjNeuterEndings},
	{suffix: "s", trim: 1, masc: &sEndings, fem: &sEndings, neut: &sAdjNeuterEndings},
}

// defaultAdjectiveClass applies the -us/-a/-um paradigm to anything the
// cascade did not recognise.
var defaultAdjectiveClass = adjectiveClass{trim: 2, masc: &usEndings, fem: &aEndings, neut: &umEndings}

func classifyAdjective(word string) *adjectiveClass {
	for i := range adjectiveClasses {
		if _, ok := stripEnding(word, adjectiveClasses[i].suffix); ok {
			return &adjectiveClasses[i]
		}
	}
	return &defaultAdjectiveClass
}

func (ac *adjectiveClass) table(g Gender) *CaseEndings {
	switch g {
	case Feminine:
		return ac.fem
	case Neuter:
		return ac.neut
	default:
		return ac.masc
	}
}

func (ac *adjectiveClass) stem(word, ending string) string {
	if ac.syncope && ending != "" {
		if s, ok := stripEnding(word, "er"); ok {
			return s + "r"
		}
	}
	return trimChars(word, ac.trim)
}

// GuessAdjective inflects the adjective word for case, number and gender
// without a dictionary. The citation ending picks a paradigm per gender
// (-us, -er, -is, -ex, -or, -des, -s, else -us/-a/-um); the result may be
// wrong for irregular or indeclinable adjectives.
func GuessAdjective(word string, c Case, n Number, g Gender) string {
	ac := classifyAdjective(word)
	ending := ac.table(g).Ending(c, n)
	return ac.stem(word, ending) + ending
}
