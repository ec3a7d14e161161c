package config

import (
	"fmt"
	"strings"

	"github.com/cours-de-latin/botanical/internal/logging"
)

// Validate checks the loaded configuration. Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Server.validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Dictionary.Validate(); err != nil {
		return fmt.Errorf("dictionary: %w", err)
	}
	if !logging.ValidLevel(c.Log.Level) {
		return fmt.Errorf("log: unknown level %q", c.Log.Level)
	}
	if c.CORS.MaxAge < 0 {
		return fmt.Errorf("cors: max_age must be >= 0 (got %d)", c.CORS.MaxAge)
	}
	return nil
}

func (s *ServerConfig) validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return fmt.Errorf("port must be in 1..65535 (got %d)", s.Port)
	}
	if s.ReadTimeout <= 0 || s.WriteTimeout <= 0 || s.IdleTimeout <= 0 {
		return fmt.Errorf("read, write and idle timeouts must be > 0")
	}
	if s.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown_timeout must be > 0 (got %v)", s.ShutdownTimeout)
	}
	return nil
}

// Validate requires either no dictionary at all or all three files.
func (d DictionaryConfig) Validate() error {
	if d.Empty() {
		return nil
	}
	var missing []string
	if d.Nouns == "" {
		missing = append(missing, "nouns")
	}
	if d.Adjectives == "" {
		missing = append(missing, "adjectives")
	}
	if d.Verbs == "" {
		missing = append(missing, "verbs")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing %s path", strings.Join(missing, ", "))
	}
	return nil
}
