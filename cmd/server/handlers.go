package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cours-de-latin/botanical"
)

// ---- JSON request/response types -----------------------------------------

type nounResponse struct {
	Word   string           `json:"word"`
	Case   botanical.Case   `json:"case"`
	Number botanical.Number `json:"number"`
	Form   string           `json:"form"`
	Gender botanical.Gender `json:"gender"`
	Known  bool             `json:"known"`
}

type adjectiveResponse struct {
	Word   string           `json:"word"`
	Case   botanical.Case   `json:"case"`
	Number botanical.Number `json:"number"`
	Gender botanical.Gender `json:"gender"`
	Form   string           `json:"form"`
	Known  bool             `json:"known"`
}

type degreesResponse struct {
	Word        string `json:"word"`
	Comparative string `json:"comparative,omitempty"`
	Superlative string `json:"superlative,omitempty"`
	Adverb      string `json:"adverb,omitempty"`
}

type verbResponse struct {
	Word   string `json:"word"`
	Mood   string `json:"mood"`
	Voice  string `json:"voice"`
	Tense  string `json:"tense"`
	Number string `json:"number"`
	Person string `json:"person"`
	Form   string `json:"form"`
}

type principalPartsResponse struct {
	Word string `json:"word"`
	botanical.PrincipalParts
}

type phraseRequest struct {
	botanical.ComplexNoun
	Case   *botanical.Case   `json:"case"`
	Number *botanical.Number `json:"number"`
}

type phraseResponse struct {
	Phrase string           `json:"phrase"`
	Case   botanical.Case   `json:"case"`
	Number botanical.Number `json:"number"`
}

type declensionResponse struct {
	Word   string           `json:"word"`
	Gender botanical.Gender `json:"gender"`
	Known  bool             `json:"known"`
	// number → case → form
	Forms map[string]map[string]string `json:"forms"`
}

type patternJSON struct {
	Name   string           `json:"name"`
	Gender botanical.Gender `json:"gender"`
	NomSg  string           `json:"nom_sg"`
	GenSg  string           `json:"gen_sg"`
}

type catalogResponse struct {
	Patterns []patternJSON `json:"patterns"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encode error")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// requiredParam parses the non-empty query parameter name.
func requiredParam[T any](q url.Values, name string, parse func(string) (T, error)) (T, error) {
	raw := q.Get(name)
	if raw == "" {
		var zero T
		return zero, fmt.Errorf("missing '%s' query parameter", name)
	}
	v, err := parse(raw)
	if err != nil {
		return v, fmt.Errorf("invalid '%s' query parameter: %w", name, err)
	}
	return v, nil
}

// optionalParam is requiredParam with a default for an absent parameter.
func optionalParam[T any](q url.Values, name string, def T, parse func(string) (T, error)) (T, error) {
	if q.Get(name) == "" {
		return def, nil
	}
	return requiredParam(q, name, parse)
}

func parseWord(s string) (string, error) { return s, nil }

// caseAndNumber reads the word, case and number parameters shared by
// the noun and adjective endpoints.
func caseAndNumber(q url.Values) (string, botanical.Case, botanical.Number, error) {
	word, err := requiredParam(q, "word", parseWord)
	if err != nil {
		return "", 0, 0, err
	}
	c, err := requiredParam(q, "case", botanical.ParseCase)
	if err != nil {
		return "", 0, 0, err
	}
	n, err := requiredParam(q, "number", botanical.ParseNumber)
	if err != nil {
		return "", 0, 0, err
	}
	return word, c, n, nil
}

// ---- handlers -----------------------------------------------------------

func handleNoun(inf *botanical.Inflector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word, c, n, err := caseAndNumber(r.URL.Query())
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		form, gender := inf.Noun(word, c, n)
		writeJSON(w, http.StatusOK, nounResponse{
			Word: word, Case: c, Number: n,
			Form: form, Gender: gender, Known: inf.HasNoun(word),
		})
	}
}

func handleAdjective(inf *botanical.Inflector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		q := r.URL.Query()
		word, c, n, err := caseAndNumber(q)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		g, err := requiredParam(q, "gender", botanical.ParseGender)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, adjectiveResponse{
			Word: word, Case: c, Number: n, Gender: g,
			Form: inf.Adjective(word, c, n, g), Known: inf.HasAdjective(word),
		})
	}
}

func handleDegrees(inf *botanical.Inflector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}
		if !inf.HasAdjective(word) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("adjective %q not found", word))
			return
		}
		resp := degreesResponse{Word: word}
		resp.Comparative, _ = inf.Comparative(word)
		resp.Superlative, _ = inf.Superlative(word)
		resp.Adverb, _ = inf.Adverb(word)
		writeJSON(w, http.StatusOK, resp)
	}
}

func handleVerb(inf *botanical.Inflector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		q := r.URL.Query()
		word, err := requiredParam(q, "word", parseWord)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		m, err := optionalParam(q, "mood", botanical.Indicative, botanical.ParseMood)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		v, err := optionalParam(q, "voice", botanical.Active, botanical.ParseVoice)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		t, err := requiredParam(q, "tense", botanical.ParseTense)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		n, err := requiredParam(q, "number", botanical.ParseNumber)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		p, err := requiredParam(q, "person", botanical.ParsePerson)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		form, err := inf.Verb(word, m, v, t, n, p)
		if errors.Is(err, botanical.ErrUnimplemented) {
			zerolog.Ctx(r.Context()).Debug().Err(err).Str("word", word).Msg("verb category not available")
			writeError(w, http.StatusNotImplemented, err.Error())
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if !inf.HasVerb(word) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("verb %q not found", word))
			return
		}
		writeJSON(w, http.StatusOK, verbResponse{
			Word: word, Mood: m.String(), Voice: v.String(), Tense: t.String(),
			Number: n.String(), Person: p.String(), Form: form,
		})
	}
}

func handlePrincipalParts(inf *botanical.Inflector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}
		pp, ok := inf.PrincipalParts(word)
		if !ok {
			writeError(w, http.StatusNotFound, fmt.Sprintf("verb %q not found", word))
			return
		}
		writeJSON(w, http.StatusOK, principalPartsResponse{Word: word, PrincipalParts: pp})
	}
}

func handlePhrase(inf *botanical.Inflector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body phraseRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON body: %v", err))
			return
		}
		if body.Head == "" || body.Case == nil || body.Number == nil {
			writeError(w, http.StatusBadRequest, "body must be JSON with 'head', 'case' and 'number' fields")
			return
		}
		writeJSON(w, http.StatusOK, phraseResponse{
			Phrase: inf.ComplexNoun(&body.ComplexNoun, *body.Case, *body.Number),
			Case:   *body.Case,
			Number: *body.Number,
		})
	}
}

func handleDeclension(inf *botanical.Inflector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}
		p := inf.Declension(word)
		forms := make(map[string]map[string]string, len(botanical.Numbers))
		for _, n := range botanical.Numbers {
			row := make(map[string]string, len(botanical.Cases))
			for _, c := range botanical.Cases {
				row[c.String()] = p.Form(c, n)
			}
			forms[n.String()] = row
		}
		writeJSON(w, http.StatusOK, declensionResponse{
			Word: word, Gender: p.Gender, Known: inf.HasNoun(word), Forms: forms,
		})
	}
}

func handleGuessNoun() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word, c, n, err := caseAndNumber(r.URL.Query())
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		form, gender := botanical.GuessNoun(word, c, n)
		writeJSON(w, http.StatusOK, nounResponse{Word: word, Case: c, Number: n, Form: form, Gender: gender})
	}
}

func handleGuessAdjective() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		q := r.URL.Query()
		word, c, n, err := caseAndNumber(q)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		g, err := requiredParam(q, "gender", botanical.ParseGender)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, adjectiveResponse{
			Word: word, Case: c, Number: n, Gender: g,
			Form: botanical.GuessAdjective(word, c, n, g),
		})
	}
}

func handleCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		cat := botanical.Catalog()
		out := make([]patternJSON, 0, len(cat))
		for _, ce := range cat {
			out = append(out, patternJSON{
				Name:   ce.Name,
				Gender: ce.Gender,
				NomSg:  ce.Ending(botanical.Nominative, botanical.Singular),
				GenSg:  ce.Ending(botanical.Genitive, botanical.Singular),
			})
		}
		writeJSON(w, http.StatusOK, catalogResponse{Patterns: out})
	}
}

func handleStats(inf *botanical.Inflector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		writeJSON(w, http.StatusOK, inf.Stats())
	}
}
