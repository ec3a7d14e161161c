package botanical

import (
	"fmt"
	"strings"
)

// Case is the grammatical role a word form expresses.
type Case int

const (
	Nominative Case = iota
	Genitive
	Dative
	Accusative
	Ablative
	Locative
	Vocative
)

// Number is grammatical number.
type Number int

const (
	Singular Number = iota
	Plural
)

// Gender is intrinsic to nouns and agreement-driven for adjectives.
type Gender int

const (
	Masculine Gender = iota
	Feminine
	Neuter
)

// Mood of a verb form. Only Indicative is populated.
type Mood int

const (
	Indicative Mood = iota
	Subjunctive
	Imperative
	Infinitive
	Participle
	VerbalNoun
)

// Voice of a verb form. Only Active is populated.
type Voice int

const (
	Active Voice = iota
	Passive
)

// Tense of a verb form. FuturePerfect is not populated.
type Tense int

const (
	Present Tense = iota
	Imperfect
	Future
	Perfect
	Pluperfect
	FuturePerfect
)

// Person of a finite verb form.
type Person int

const (
	First Person = iota
	Second
	Third
)

const (
	numCases   = 7
	numNumbers = 2
	numGenders = 3
	numTenses  = 6
	numPersons = 3

	// adjective records store only the five cases Nominative..Ablative
	numAdjCases = 5
	// verb records store only the five tenses Present..Pluperfect
	numVerbTenses = 5
)

// Cases lists every case in declaration order.
var Cases = []Case{Nominative, Genitive, Dative, Accusative, Ablative, Locative, Vocative}

// Numbers lists every number in declaration order.
var Numbers = []Number{Singular, Plural}

// Genders lists every gender in declaration order.
var Genders = []Gender{Masculine, Feminine, Neuter}

var (
	caseNames    = []string{"nominative", "genitive", "dative", "accusative", "ablative", "locative", "vocative"}
	caseAbbrevs  = []string{"nom", "gen", "dat", "acc", "abl", "loc", "voc"}
	numberNames  = []string{"singular", "plural"}
	numberAbbrev = []string{"sg", "pl"}
	genderNames  = []string{"masculine", "feminine", "neuter"}
	genderAbbrev = []string{"masc", "fem", "neut"}
	genderCodes  = []string{"m", "f", "n"}
	moodNames    = []string{"indicative", "subjunctive", "imperative", "infinitive", "participle", "verbal_noun"}
	voiceNames   = []string{"active", "passive"}
	tenseNames   = []string{"present", "imperfect", "future", "perfect", "pluperfect", "future_perfect"}
	personNames  = []string{"first", "second", "third"}
)

// nameOf returns names[v] or a Kind(v) placeholder for out-of-range values.
func nameOf(kind string, names []string, v int) string {
	if v < 0 || v >= len(names) {
		return fmt.Sprintf("%s(%d)", kind, v)
	}
	return names[v]
}

// lookupName finds s (case-insensitive) in any of the name lists.
func lookupName(kind, s string, lists ...[]string) (int, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, names := range lists {
		for i, n := range names {
			if n == key {
				return i, nil
			}
		}
	}
	return 0, fmt.Errorf("unknown %s: %q", kind, s)
}

func (c Case) String() string   { return nameOf("Case", caseNames, int(c)) }
func (n Number) String() string { return nameOf("Number", numberNames, int(n)) }
func (g Gender) String() string { return nameOf("Gender", genderNames, int(g)) }
func (m Mood) String() string   { return nameOf("Mood", moodNames, int(m)) }
func (v Voice) String() string  { return nameOf("Voice", voiceNames, int(v)) }
func (t Tense) String() string  { return nameOf("Tense", tenseNames, int(t)) }
func (p Person) String() string { return nameOf("Person", personNames, int(p)) }

// Abbrev returns the short form used in dictionary column names ("nom", "gen", ...).
func (c Case) Abbrev() string { return nameOf("Case", caseAbbrevs, int(c)) }

// Abbrev returns "sg" or "pl".
func (n Number) Abbrev() string { return nameOf("Number", numberAbbrev, int(n)) }

// Abbrev returns "masc", "fem" or "neut".
func (g Gender) Abbrev() string { return nameOf("Gender", genderAbbrev, int(g)) }

// Code returns the one-letter dictionary code ("m", "f", "n").
func (g Gender) Code() string { return nameOf("Gender", genderCodes, int(g)) }

func (c Case) valid() bool   { return c >= Nominative && c <= Vocative }
func (n Number) valid() bool { return n == Singular || n == Plural }
func (g Gender) valid() bool { return g >= Masculine && g <= Neuter }

// ParseCase accepts a full name ("genitive") or an abbreviation ("gen").
func ParseCase(s string) (Case, error) {
	i, err := lookupName("case", s, caseNames, caseAbbrevs)
	return Case(i), err
}

// ParseNumber accepts "singular"/"sg" or "plural"/"pl".
func ParseNumber(s string) (Number, error) {
	i, err := lookupName("number", s, numberNames, numberAbbrev)
	return Number(i), err
}

// ParseGender accepts a full name, an abbreviation or a one-letter code.
func ParseGender(s string) (Gender, error) {
	i, err := lookupName("gender", s, genderNames, genderAbbrev, genderCodes)
	return Gender(i), err
}

// ParseGenderCode accepts exactly the dictionary codes "m", "f" and "n".
func ParseGenderCode(s string) (Gender, error) {
	for i, c := range genderCodes {
		if s == c {
			return Gender(i), nil
		}
	}
	return Masculine, fmt.Errorf("%w: %q", ErrUnknownGender, s)
}

func ParseMood(s string) (Mood, error) {
	i, err := lookupName("mood", s, moodNames)
	return Mood(i), err
}

func ParseVoice(s string) (Voice, error) {
	i, err := lookupName("voice", s, voiceNames)
	return Voice(i), err
}

func ParseTense(s string) (Tense, error) {
	i, err := lookupName("tense", s, tenseNames)
	return Tense(i), err
}

func ParsePerson(s string) (Person, error) {
	i, err := lookupName("person", s, personNames, []string{"1", "2", "3"})
	return Person(i), err
}

// MarshalText encodes the case as its full name.
func (c Case) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText decodes a case name or abbreviation.
func (c *Case) UnmarshalText(data []byte) error {
	v, err := ParseCase(string(data))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (n Number) MarshalText() ([]byte, error) { return []byte(n.String()), nil }

func (n *Number) UnmarshalText(data []byte) error {
	v, err := ParseNumber(string(data))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

func (g Gender) MarshalText() ([]byte, error) { return []byte(g.String()), nil }

func (g *Gender) UnmarshalText(data []byte) error {
	v, err := ParseGender(string(data))
	if err != nil {
		return err
	}
	*g = v
	return nil
}
