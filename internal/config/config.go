package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"localenorm/internal/domain"
)

// Variables d'environnement lues par FromEnv.
const (
	EnvDir           = "LOCALENORM_DIR"
	EnvLocales       = "LOCALENORM_LOCALES"
	EnvAtomic        = "LOCALENORM_ATOMIC"
	EnvTransactional = "LOCALENORM_TRANSACTIONAL"
	EnvVerify        = "LOCALENORM_VERIFY"
)

const DefaultDir = "resources/locales"

// DefaultLocales renvoie, dans l'ordre de traitement, les langues utilisées
// quand aucune n'est configurée.
func DefaultLocales() []string {
	return []string{"es", "fr", "de", "it", "pt", "ja", "ru"}
}

type Config struct {
	Dir           string
	Locales       []string
	Atomic        bool
	Transactional bool
	Verify        bool
}

// Load charge la configuration depuis les variables d'environnement et la valide.
func Load() (*Config, error) {
	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv lit la configuration sans la valider, pour que l'appelant puisse
// d'abord appliquer ses propres surcharges (drapeaux de la ligne de commande).
func FromEnv() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env est optionnel lorsque les variables sont fournies par l'environnement.
	}

	cfg := &Config{
		Dir:     os.Getenv(EnvDir),
		Locales: SplitLocales(os.Getenv(EnvLocales)),
		Atomic:  true,
	}

	var err error
	if cfg.Atomic, err = envBool(EnvAtomic, cfg.Atomic); err != nil {
		return nil, err
	}
	if cfg.Transactional, err = envBool(EnvTransactional, false); err != nil {
		return nil, err
	}
	if cfg.Verify, err = envBool(EnvVerify, false); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SplitLocales découpe "es, fr,de" en tags, dans l'ordre.
func SplitLocales(s string) []string {
	var tags []string
	for _, part := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Validate complète les valeurs par défaut et vérifie chaque tag de langue.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Dir) == "" {
		c.Dir = DefaultDir
	}
	if len(c.Locales) == 0 {
		c.Locales = DefaultLocales()
	}

	seen := make(map[string]bool, len(c.Locales))
	for _, tag := range c.Locales {
		if _, err := language.Parse(tag); err != nil {
			return fmt.Errorf("config: %w %q: %w", domain.ErrInvalidLocaleTag, tag, err)
		}
		if strings.ContainsAny(tag, `/\`) {
			return fmt.Errorf("config: %w %q", domain.ErrInvalidLocaleTag, tag)
		}
		if seen[tag] {
			return fmt.Errorf("config: %w %q", domain.ErrDuplicateLocaleTag, tag)
		}
		seen[tag] = true
	}
	return nil
}

func envBool(name string, fallback bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: %s invalide (%q): %w", name, v, err)
	}
	return b, nil
}
