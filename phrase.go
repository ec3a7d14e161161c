package botanical

import "strings"

// ComplexNoun is a noun phrase request: a head noun, nouns in apposition
// and adjectives, each given as a lemma.
type ComplexNoun struct {
	Head        string   `json:"head"`
	Appositives []string `json:"appositives,omitempty"`
	Adjectives  []string `json:"adjectives,omitempty"`
}

// ComplexNoun inflects the phrase for case and number. The output is the
// head noun, then every appositive in order, then every adjective in
// order, separated by single spaces. Adjectives agree with the head
// noun's gender, not an appositive's. Empty inflected words are skipped.
func (inf *Inflector) ComplexNoun(cn *ComplexNoun, c Case, n Number) string {
	head, gender := inf.Noun(cn.Head, c, n)

	var sb strings.Builder
	sb.WriteString(head)
	appendWord := func(w string) {
		if w == "" {
			return
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(w)
	}
	for _, apos := range cn.Appositives {
		form, _ := inf.Noun(apos, c, n)
		appendWord(form)
	}
	for _, adj := range cn.Adjectives {
		appendWord(inf.Adjective(adj, c, n, gender))
	}
	return sb.String()
}
