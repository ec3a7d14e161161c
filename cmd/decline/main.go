// Command decline inflects botanical Latin words from the command line.
//
//	decline -pos noun -case gen -number pl hibiscus
//	decline -pos adjective -case abl -gender f grandis
//	decline -pos phrase -case abl -appositives manica lorica hamatus grandis
//	decline -pos verb -tense perfect -person 3 amo
//	decline -pos table agricola
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog/log"

	"github.com/cours-de-latin/botanical"
	"github.com/cours-de-latin/botanical/internal/config"
	"github.com/cours-de-latin/botanical/internal/logging"
)

type options struct {
	configPath  string
	nouns       string
	adjectives  string
	verbs       string
	pos         string
	caseName    string
	number      string
	gender      string
	tense       string
	person      string
	appositives string
}

func parseFlags(args []string, stderr io.Writer) (options, []string, error) {
	var opts options
	fs := flag.NewFlagSet("decline", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "path to YAML config (default $CONFIG_PATH, then ./config.yaml)")
	fs.StringVar(&opts.nouns, "nouns", "", "noun dictionary CSV, overrides the config")
	fs.StringVar(&opts.adjectives, "adjectives", "", "adjective dictionary CSV, overrides the config")
	fs.StringVar(&opts.verbs, "verbs", "", "verb dictionary CSV, overrides the config")
	fs.StringVar(&opts.pos, "pos", "noun", "noun, adjective, phrase, verb or table")
	fs.StringVar(&opts.caseName, "case", "nominative", "grammatical case")
	fs.StringVar(&opts.number, "number", "singular", "grammatical number")
	fs.StringVar(&opts.gender, "gender", "masculine", "adjective gender")
	fs.StringVar(&opts.tense, "tense", "present", "verb tense")
	fs.StringVar(&opts.person, "person", "first", "verb person")
	fs.StringVar(&opts.appositives, "appositives", "", "comma-separated appositive nouns for -pos phrase")
	if err := fs.Parse(args); err != nil {
		return opts, nil, err
	}
	if fs.NArg() == 0 {
		return opts, nil, errors.New("no word given")
	}
	return opts, fs.Args(), nil
}

func (opts options) dictionary(dc config.DictionaryConfig) config.DictionaryConfig {
	if opts.nouns != "" {
		dc.Nouns = opts.nouns
	}
	if opts.adjectives != "" {
		dc.Adjectives = opts.adjectives
	}
	if opts.verbs != "" {
		dc.Verbs = opts.verbs
	}
	return dc
}

func loadInflector(ctx context.Context, dc config.DictionaryConfig) (*botanical.Inflector, error) {
	if dc.Empty() {
		return botanical.New(nil, nil, nil), nil
	}
	return botanical.NewFromFiles(ctx, dc.Nouns, dc.Adjectives, dc.Verbs)
}

func inflect(inf *botanical.Inflector, opts options, words []string, stdout io.Writer) error {
	c, err := botanical.ParseCase(opts.caseName)
	if err != nil {
		return err
	}
	n, err := botanical.ParseNumber(opts.number)
	if err != nil {
		return err
	}

	switch opts.pos {
	case "noun":
		for _, w := range words {
			form, g := inf.Noun(w, c, n)
			fmt.Fprintf(stdout, "%s\t%s\n", form, g.Code())
		}
	case "adjective":
		g, err := botanical.ParseGender(opts.gender)
		if err != nil {
			return err
		}
		for _, w := range words {
			fmt.Fprintln(stdout, inf.Adjective(w, c, n, g))
		}
	case "phrase":
		cn := &botanical.ComplexNoun{Head: words[0], Adjectives: words[1:]}
		if opts.appositives != "" {
			cn.Appositives = strings.Split(opts.appositives, ",")
		}
		fmt.Fprintln(stdout, inf.ComplexNoun(cn, c, n))
	case "verb":
		t, err := botanical.ParseTense(opts.tense)
		if err != nil {
			return err
		}
		p, err := botanical.ParsePerson(opts.person)
		if err != nil {
			return err
		}
		for _, w := range words {
			form, err := inf.Verb(w, botanical.Indicative, botanical.Active, t, n, p)
			if err != nil {
				return err
			}
			if !inf.HasVerb(w) {
				return fmt.Errorf("verb %q not found", w)
			}
			fmt.Fprintln(stdout, form)
		}
	case "table":
		tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
		for _, w := range words {
			p := inf.Declension(w)
			fmt.Fprintf(tw, "%s (%s)\t%s\t%s\n", p.Word, p.Gender.Code(), botanical.Singular, botanical.Plural)
			for _, cs := range botanical.Cases {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", cs.Abbrev(), p.Form(cs, botanical.Singular), p.Form(cs, botanical.Plural))
			}
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown part of speech %q", opts.pos)
	}
	return nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, words, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if err := logging.Setup(cfg.Log.Path, cfg.Log.Level); err != nil {
		return err
	}
	dc := opts.dictionary(cfg.Dictionary)
	if err := dc.Validate(); err != nil {
		return fmt.Errorf("dictionary: %w", err)
	}
	inf, err := loadInflector(ctx, dc)
	if err != nil {
		return err
	}
	return inflect(inf, opts, words, stdout)
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal().Err(err).Msg("decline failed")
	}
}
