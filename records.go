package botanical

// Form is one stored inflected form. The zero Form is absent: dictionary
// cells that are empty or "-" are turned into absent Forms when a record
// is built, so lookups never compare against sentinel strings.
type Form struct {
	text    string
	present bool
}

// NewForm wraps a dictionary cell verbatim. "" and "-" yield an absent
// Form.
func NewForm(s string) Form {
	if s == "" || s == "-" {
		return Form{}
	}
	return Form{text: s, present: true}
}

// Get returns the form and whether it is present.
func (f Form) Get() (string, bool) {
	return f.text, f.present
}

// Present reports whether the dictionary holds a value for this slot.
func (f Form) Present() bool {
	return f.present
}

// String returns the form, or "" when absent.
func (f Form) String() string {
	return f.text
}

// Or returns f when present and alt otherwise.
func (f Form) Or(alt Form) Form {
	if f.present {
		return f
	}
	return alt
}

// NounRecord holds one form per (number, case) and the noun's gender.
type NounRecord struct {
	Word   string
	Gender Gender
	Forms  [numNumbers][numCases]Form
}

// Form returns the stored slot for case and number. Out-of-range
// categories yield an absent Form.
func (r *NounRecord) Form(c Case, n Number) Form {
	if !c.valid() || !n.valid() {
		return Form{}
	}
	return r.Forms[n][c]
}

// Set stores s for case and number; "" and "-" clear the slot.
func (r *NounRecord) Set(c Case, n Number, s string) {
	if c.valid() && n.valid() {
		r.Forms[n][c] = NewForm(s)
	}
}

// AdjectiveRecord holds one form per (gender, number, case) for the five
// cases Nominative..Ablative, plus the degree forms and the adverb.
type AdjectiveRecord struct {
	Word        string
	Comparative Form
	Superlative Form
	Adverb      Form
	Forms       [numGenders][numNumbers][numAdjCases]Form
}

// adjectiveSlot maps a case onto the stored adjective columns: Locative
// and Vocative have no storage and read the ablative.
func adjectiveSlot(c Case) Case {
	switch c {
	case Nominative, Genitive, Dative, Accusative, Ablative:
		return c
	default:
		return Ablative
	}
}

// Form returns the stored slot for case, number and gender.
func (r *AdjectiveRecord) Form(c Case, n Number, g Gender) Form {
	if !n.valid() || !g.valid() {
		return Form{}
	}
	return r.Forms[g][n][adjectiveSlot(c)]
}

// Set stores s for case, number and gender. Cases beyond Ablative are
// ignored.
func (r *AdjectiveRecord) Set(c Case, n Number, g Gender, s string) {
	if c >= Nominative && c <= Ablative && n.valid() && g.valid() {
		r.Forms[g][n][c] = NewForm(s)
	}
}

// VerbRecord holds the principal parts and the Indicative Active forms
// for Present..Pluperfect.
type VerbRecord struct {
	Word              string
	Canonical         Form
	PresentInfinitive Form
	PerfectActive     Form
	Supine            Form
	IndicativeActive  [numVerbTenses][numNumbers][numPersons]Form
}

// Set stores s for an Indicative Active tense, number and person.
func (r *VerbRecord) Set(t Tense, n Number, p Person, s string) {
	if t >= Present && t <= Pluperfect && n.valid() && p >= First && p <= Third {
		r.IndicativeActive[t][n][p] = NewForm(s)
	}
}

// NounMap maps a lemma to its record.
type NounMap map[string]*NounRecord

// AdjectiveMap maps a lemma to its record.
type AdjectiveMap map[string]*AdjectiveRecord

// VerbMap maps a lemma to its record.
type VerbMap map[string]*VerbRecord
