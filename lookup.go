package botanical

// Noun inflects the noun word for case and number and returns the form
// with the noun's gender.
//
// A dictionary slot is returned verbatim when present. An absent Locative
// slot reads the ablative singular. When the slot is still absent, or the
// word has no entry, both the form and the gender come from GuessNoun.
func (inf *Inflector) Noun(word string, c Case, n Number) (string, Gender) {
	rec, ok := inf.nouns[word]
	if !ok {
		return GuessNoun(word, c, n)
	}
	f := rec.Form(c, n)
	if c == Locative {
		f = f.Or(rec.Form(Ablative, Singular))
	}
	if s, ok := f.Get(); ok {
		return s, rec.Gender
	}
	return GuessNoun(word, c, n)
}

// Adjective inflects the adjective word to agree with case, number and
// gender. Dictionary adjectives store no Locative or Vocative forms;
// those cases read the ablative. An absent slot yields "". Words without
// an entry are guessed with GuessAdjective.
func (inf *Inflector) Adjective(word string, c Case, n Number, g Gender) string {
	rec, ok := inf.adjectives[word]
	if !ok {
		return GuessAdjective(word, c, n, g)
	}
	return rec.Form(c, n, g).String()
}

// Verb returns the stored form of word for the given categories. Only
// Indicative Active Present..Pluperfect is available; any other mood,
// voice or tense returns an *UnimplementedError matching
// ErrUnimplemented.
//
// There is no conjugation heuristic: a verb missing from the dictionary
// yields "" and a nil error (see HasVerb).
func (inf *Inflector) Verb(word string, m Mood, v Voice, t Tense, n Number, p Person) (string, error) {
	if m != Indicative {
		return "", &UnimplementedError{Category: "mood", Value: m}
	}
	if v != Active {
		return "", &UnimplementedError{Category: "voice", Value: v}
	}
	switch t {
	case Present, Imperfect, Future, Perfect, Pluperfect:
	default:
		return "", &UnimplementedError{Category: "tense", Value: t}
	}
	rec, ok := inf.verbs[word]
	if !ok {
		return "", nil
	}
	if !n.valid() || p < First || p > Third {
		return "", nil
	}
	return rec.IndicativeActive[t][n][p].String(), nil
}

// Paradigm is the full declension of a noun.
type Paradigm struct {
	Word   string
	Gender Gender
	Forms  [numNumbers][numCases]string
}

// Form returns the paradigm cell for case and number.
func (p *Paradigm) Form(c Case, n Number) string {
	if !c.valid() || !n.valid() {
		return ""
	}
	return p.Forms[n][c]
}

// Declension computes every (case, number) form of the noun word through
// Noun, so dictionary entries, the locative fallback and guessing apply
// cell by cell.
func (inf *Inflector) Declension(word string) *Paradigm {
	p := &Paradigm{Word: word}
	_, p.Gender = inf.Noun(word, Nominative, Singular)
	for _, n := range Numbers {
		for _, c := range Cases {
			p.Forms[n][c], _ = inf.Noun(word, c, n)
		}
	}
	return p
}

// Comparative returns the stored comparative of the adjective word.
func (inf *Inflector) Comparative(word string) (string, bool) {
	if rec, ok := inf.adjectives[word]; ok {
		return rec.Comparative.Get()
	}
	return "", false
}

// Superlative returns the stored superlative of the adjective word.
func (inf *Inflector) Superlative(word string) (string, bool) {
	if rec, ok := inf.adjectives[word]; ok {
		return rec.Superlative.Get()
	}
	return "", false
}

// Adverb returns the stored adverb derived from the adjective word.
func (inf *Inflector) Adverb(word string) (string, bool) {
	if rec, ok := inf.adjectives[word]; ok {
		return rec.Adverb.Get()
	}
	return "", false
}

// PrincipalParts are the citation forms of a verb.
type PrincipalParts struct {
	Canonical         string `json:"canonical"`
	PresentInfinitive string `json:"present_infinitive"`
	PerfectActive     string `json:"perfect_active"`
	Supine            string `json:"supine"`
}

// PrincipalParts returns the stored principal parts of the verb word.
func (inf *Inflector) PrincipalParts(word string) (PrincipalParts, bool) {
	rec, ok := inf.verbs[word]
	if !ok {
		return PrincipalParts{}, false
	}
	return PrincipalParts{
		Canonical:         rec.Canonical.String(),
		PresentInfinitive: rec.PresentInfinitive.String(),
		PerfectActive:     rec.PerfectActive.String(),
		Supine:            rec.Supine.String(),
	}, true
}
