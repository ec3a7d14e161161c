package botanical

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// csvTable reads a CSV file whose first row names the columns.
type csvTable struct {
	r    *csv.Reader
	cols map[string]int
}

func newCSVTable(r io.Reader) (*csvTable, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: missing header", ErrMalformedRecord)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	t := &csvTable{r: cr, cols: make(map[string]int, len(header))}
	for i, name := range header {
		t.cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return t, nil
}

// require fails when any of names is not a header column.
func (t *csvTable) require(names ...string) error {
	var missing []string
	for _, n := range names {
		if _, ok := t.cols[n]; !ok {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing columns %s", ErrMalformedRecord, strings.Join(missing, ", "))
	}
	return nil
}

// next returns the following row, or io.EOF.
func (t *csvTable) next(ctx context.Context) (csvRow, error) {
	if err := ctx.Err(); err != nil {
		return csvRow{}, err
	}
	cells, err := t.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return csvRow{}, io.EOF
		}
		return csvRow{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	line, _ := t.r.FieldPos(0)
	return csvRow{cells: cells, cols: t.cols, line: line}, nil
}

type csvRow struct {
	cells []string
	cols  map[string]int
	line  int
}

func (r csvRow) get(name string) string {
	i, ok := r.cols[name]
	if !ok || i >= len(r.cells) {
		return ""
	}
	return strings.TrimSpace(r.cells[i])
}

func nounColumn(c Case, n Number) string {
	return c.Abbrev() + "_" + n.Abbrev()
}

func adjectiveColumn(c Case, n Number, g Gender) string {
	return c.Abbrev() + "_" + n.Abbrev() + "_" + g.Abbrev()
}

func verbColumn(t Tense, n Number, p Person) string {
	return "indicative_active_" + t.String() + "_" + n.String() + "_" + p.String()
}

var (
	adjectiveCases = []Case{Nominative, Genitive, Dative, Accusative, Ablative}
	verbTenses     = []Tense{Present, Imperfect, Future, Perfect, Pluperfect}
	persons        = []Person{First, Second, Third}
)

// LoadNouns reads a noun dictionary. Columns: word, the fourteen
// <case>_<sg|pl> forms (nom_sg ... loc_pl) and gender ("m", "f", "n").
// An unknown gender code fails the whole load.
func LoadNouns(ctx context.Context, r io.Reader) (NounMap, error) {
	t, err := newCSVTable(r)
	if err != nil {
		return nil, fmt.Errorf("nouns: %w", err)
	}
	required := []string{"word", "gender"}
	for _, n := range Numbers {
		for _, c := range Cases {
			required = append(required, nounColumn(c, n))
		}
	}
	if err := t.require(required...); err != nil {
		return nil, fmt.Errorf("nouns: %w", err)
	}

	nouns := make(NounMap)
	for {
		row, err := t.next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("nouns: %w", err)
		}
		word := row.get("word")
		if word == "" {
			continue
		}
		gender, err := ParseGenderCode(row.get("gender"))
		if err != nil {
			return nil, fmt.Errorf("nouns: line %d (%s): %w", row.line, word, err)
		}
		rec := &NounRecord{Word: word, Gender: gender}
		for _, n := range Numbers {
			for _, c := range Cases {
				rec.Set(c, n, row.get(nounColumn(c, n)))
			}
		}
		nouns[word] = rec
	}
	return nouns, nil
}

// LoadAdjectives reads an adjective dictionary. Columns: word,
// comparative, superlative, adverb and the thirty
// <case>_<sg|pl>_<masc|fem|neut> forms for nom, gen, dat, acc and abl.
func LoadAdjectives(ctx context.Context, r io.Reader) (AdjectiveMap, error) {
	t, err := newCSVTable(r)
	if err != nil {
		return nil, fmt.Errorf("adjectives: %w", err)
	}
	required := []string{"word", "comparative", "superlative", "adverb"}
	for _, g := range Genders {
		for _, n := range Numbers {
			for _, c := range adjectiveCases {
				required = append(required, adjectiveColumn(c, n, g))
			}
		}
	}
	if err := t.require(required...); err != nil {
		return nil, fmt.Errorf("adjectives: %w", err)
	}

	adjectives := make(AdjectiveMap)
	for {
		row, err := t.next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("adjectives: %w", err)
		}
		word := row.get("word")
		if word == "" {
			continue
		}
		rec := &AdjectiveRecord{
			Word:        word,
			Comparative: NewForm(row.get("comparative")),
			Superlative: NewForm(row.get("superlative")),
			Adverb:      NewForm(row.get("adverb")),
		}
		for _, g := range Genders {
			for _, n := range Numbers {
				for _, c := range adjectiveCases {
					rec.Set(c, n, g, row.get(adjectiveColumn(c, n, g)))
				}
			}
		}
		adjectives[word] = rec
	}
	return adjectives, nil
}

// LoadVerbs reads a verb dictionary. Columns: word, canonical,
// present_infinitive, perfect_active, supine and the thirty
// indicative_active_<tense>_<singular|plural>_<first|second|third> forms
// for present, imperfect, future, perfect and pluperfect.
func LoadVerbs(ctx context.Context, r io.Reader) (VerbMap, error) {
	t, err := newCSVTable(r)
	if err != nil {
		return nil, fmt.Errorf("verbs: %w", err)
	}
	required := []string{"word", "canonical", "present_infinitive", "perfect_active", "supine"}
	for _, tn := range verbTenses {
		for _, n := range Numbers {
			for _, p := range persons {
				required = append(required, verbColumn(tn, n, p))
			}
		}
	}
	if err := t.require(required...); err != nil {
		return nil, fmt.Errorf("verbs: %w", err)
	}

	verbs := make(VerbMap)
	for {
		row, err := t.next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("verbs: %w", err)
		}
		word := row.get("word")
		if word == "" {
			continue
		}
		rec := &VerbRecord{
			Word:              word,
			Canonical:         NewForm(row.get("canonical")),
			PresentInfinitive: NewForm(row.get("present_infinitive")),
			PerfectActive:     NewForm(row.get("perfect_active")),
			Supine:            NewForm(row.get("supine")),
		}
		for _, tn := range verbTenses {
			for _, n := range Numbers {
				for _, p := range persons {
					rec.Set(tn, n, p, row.get(verbColumn(tn, n, p)))
				}
			}
		}
		verbs[word] = rec
	}
	return verbs, nil
}

// loadFile opens path and hands it to load.
func loadFile[M ~map[string]V, V any](ctx context.Context, path string, load func(context.Context, io.Reader) (M, error)) (M, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	m, err := load(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("records", len(m)).Msg("dictionary file read")
	return m, nil
}

// LoadNounsFile reads the noun dictionary at path.
func LoadNounsFile(ctx context.Context, path string) (NounMap, error) {
	return loadFile(ctx, path, LoadNouns)
}

// LoadAdjectivesFile reads the adjective dictionary at path.
func LoadAdjectivesFile(ctx context.Context, path string) (AdjectiveMap, error) {
	return loadFile(ctx, path, LoadAdjectives)
}

// LoadVerbsFile reads the verb dictionary at path.
func LoadVerbsFile(ctx context.Context, path string) (VerbMap, error) {
	return loadFile(ctx, path, LoadVerbs)
}
