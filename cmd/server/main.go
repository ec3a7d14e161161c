// Command server exposes the botanical Latin inflector as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/noun?word=<w>&case=<c>&number=<n>
//	GET  /api/adjective?word=<w>&case=<c>&number=<n>&gender=<g>
//	GET  /api/adjective/degrees?word=<w>
//	GET  /api/verb?word=<w>[&mood=indicative][&voice=active]&tense=<t>&number=<n>&person=<p>
//	GET  /api/verb/principal-parts?word=<w>
//	POST /api/phrase   body: {"head":"...","appositives":[...],"adjectives":[...],"case":"...","number":"..."}
//	GET  /api/declension?word=<w>
//	GET  /api/guess/noun?word=<w>&case=<c>&number=<n>
//	GET  /api/guess/adjective?word=<w>&case=<c>&number=<n>&gender=<g>
//	GET  /api/catalog
//	GET  /api/stats
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/cours-de-latin/botanical"
	"github.com/cours-de-latin/botanical/internal/config"
	"github.com/cours-de-latin/botanical/internal/logging"
)

func loadInflector(ctx context.Context, dc config.DictionaryConfig) (*botanical.Inflector, error) {
	if dc.Empty() {
		log.Warn().Msg("no dictionaries configured, serving heuristic forms only")
		return botanical.New(nil, nil, nil), nil
	}
	return botanical.NewFromFiles(ctx, dc.Nouns, dc.Adjectives, dc.Verbs)
}

func main() {
	configPath := flag.String("config", "", "path to YAML config (default $CONFIG_PATH, then ./config.yaml)")
	addr := flag.String("addr", "", "listen address, overrides server.host and server.port")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if err := logging.Setup(cfg.Log.Path, cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("failed to set up logging")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	inf, err := loadInflector(ctx, cfg.Dictionary)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load dictionaries")
	}
	st := inf.Stats()
	log.Info().Int("nouns", st.Nouns).Int("adjectives", st.Adjectives).Int("verbs", st.Verbs).Msg("data loaded")

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      newRouter(inf, cfg.CORS),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	if *addr != "" {
		srv.Addr = *addr
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})
	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
