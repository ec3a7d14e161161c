package main

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	"github.com/cours-de-latin/botanical"
	"github.com/cours-de-latin/botanical/internal/config"
)

const requestIDHeader = "X-Request-ID"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withRequestID tags every request with an ID (the caller's X-Request-ID
// or a fresh UUID), puts a request-scoped logger in the context and logs
// the outcome.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)

		logger := log.With().Str("request_id", id).Logger()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r.WithContext(logger.WithContext(r.Context())))

		logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

func newRouter(inf *botanical.Inflector, cc config.CORSConfig) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/noun", handleNoun(inf))
	mux.HandleFunc("/api/adjective", handleAdjective(inf))
	mux.HandleFunc("/api/adjective/degrees", handleDegrees(inf))
	mux.HandleFunc("/api/verb", handleVerb(inf))
	mux.HandleFunc("/api/verb/principal-parts", handlePrincipalParts(inf))
	mux.HandleFunc("/api/phrase", handlePhrase(inf))
	mux.HandleFunc("/api/declension", handleDeclension(inf))
	mux.HandleFunc("/api/guess/noun", handleGuessNoun())
	mux.HandleFunc("/api/guess/adjective", handleGuessAdjective())
	mux.HandleFunc("/api/catalog", handleCatalog())
	mux.HandleFunc("/api/stats", handleStats(inf))

	c := cors.New(cors.Options{
		AllowedOrigins: cc.Origins(),
		AllowedMethods: cc.Methods(),
		AllowedHeaders: cc.Headers(),
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         cc.MaxAge,
	})
	return withRequestID(c.Handler(mux))
}
