// Package botanical inflects Latin nouns, adjectives and Indicative
// Active verbs, and composes agreeing noun phrases for botanical and
// taxonomic names.
//
// Dictionary records take precedence; nouns and adjectives missing from
// the dictionaries are inflected by suffix-matching heuristics
// (GuessNoun, GuessAdjective). An Inflector never mutates its
// dictionaries, so it is safe for concurrent use once constructed.
package botanical

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Inflector holds the three read-only dictionaries and provides the
// public API.
type Inflector struct {
	// nouns maps lemma → noun record (14 forms + gender).
	nouns NounMap

	// adjectives maps lemma → adjective record (30 forms).
	adjectives AdjectiveMap

	// verbs maps lemma → verb record (principal parts + 30 forms).
	verbs VerbMap
}

// Stats reports dictionary sizes.
type Stats struct {
	Nouns      int `json:"nouns"`
	Adjectives int `json:"adjectives"`
	Verbs      int `json:"verbs"`
}

// New returns an Inflector owning the given dictionaries. Callers must
// not modify the maps afterwards. Nil maps are treated as empty.
func New(nouns NounMap, adjectives AdjectiveMap, verbs VerbMap) *Inflector {
	if nouns == nil {
		nouns = NounMap{}
	}
	if adjectives == nil {
		adjectives = AdjectiveMap{}
	}
	if verbs == nil {
		verbs = VerbMap{}
	}
	return &Inflector{nouns: nouns, adjectives: adjectives, verbs: verbs}
}

// NewFromFiles loads the noun, adjective and verb CSV dictionaries
// concurrently and returns a ready-to-use Inflector. Any load failure
// aborts construction; no partially loaded Inflector is returned.
func NewFromFiles(ctx context.Context, nounPath, adjectivePath, verbPath string) (*Inflector, error) {
	var (
		nouns      NounMap
		adjectives AdjectiveMap
		verbs      VerbMap
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		nouns, err = LoadNounsFile(ctx, nounPath)
		return err
	})
	g.Go(func() error {
		var err error
		adjectives, err = LoadAdjectivesFile(ctx, adjectivePath)
		return err
	})
	g.Go(func() error {
		var err error
		verbs, err = LoadVerbsFile(ctx, verbPath)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	inf := New(nouns, adjectives, verbs)
	st := inf.Stats()
	log.Debug().
		Int("nouns", st.Nouns).
		Int("adjectives", st.Adjectives).
		Int("verbs", st.Verbs).
		Msg("dictionaries loaded")
	return inf, nil
}

// Stats returns the number of records in each dictionary.
func (inf *Inflector) Stats() Stats {
	return Stats{
		Nouns:      len(inf.nouns),
		Adjectives: len(inf.adjectives),
		Verbs:      len(inf.verbs),
	}
}

// HasNoun reports whether word has a noun dictionary entry.
func (inf *Inflector) HasNoun(word string) bool {
	_, ok := inf.nouns[word]
	return ok
}

// HasAdjective reports whether word has an adjective dictionary entry.
func (inf *Inflector) HasAdjective(word string) bool {
	_, ok := inf.adjectives[word]
	return ok
}

// HasVerb reports whether word has a verb dictionary entry. Verb
// returns "" for unknown verbs, so callers that must tell an unknown
// verb from an empty slot check here first.
func (inf *Inflector) HasVerb(word string) bool {
	_, ok := inf.verbs[word]
	return ok
}
