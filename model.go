package botanical

// CaseEndings is a declension pattern: one suffix per (case, number) pair,
// tagged with the gender the pattern implies when it classifies an
// unknown word. Locative reuses the ablative suffix and Vocative the
// nominative suffix.
type CaseEndings struct {
	// Name identifies the pattern by its nominative singular ending ("us", "a", ...).
	Name   string
	Gender Gender

	NomSg string
	AccSg string
	GenSg string
	DatSg string
	AblSg string

	NomPl string
	AccPl string
	GenPl string
	DatPl string
	AblPl string
}

// Ending returns the suffix for case and number. It is total over every
// valid pair; an out-of-range case or number yields "".
func (ce *CaseEndings) Ending(c Case, n Number) string {
	switch n {
	case Singular:
		switch c {
		case Nominative, Vocative:
			return ce.NomSg
		case Accusative:
			return ce.AccSg
		case Genitive:
			return ce.GenSg
		case Dative:
			return ce.DatSg
		case Ablative, Locative:
			return ce.AblSg
		}
	case Plural:
		switch c {
		case Nominative, Vocative:
			return ce.NomPl
		case Accusative:
			return ce.AccPl
		case Genitive:
			return ce.GenPl
		case Dative:
			return ce.DatPl
		case Ablative, Locative:
			return ce.AblPl
		}
	}
	return ""
}

// Citation returns the nominative singular suffix that identifies the pattern.
func (ce *CaseEndings) Citation() string {
	return ce.NomSg
}
