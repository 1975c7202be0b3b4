package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"localenorm/internal/domain"
	"localenorm/internal/ports/output"
)

// Ensure Verifier implements the output.MessageVerifier port.
var _ output.MessageVerifier = (*Verifier)(nil)

// Verifier loads normalized content the way the application consuming the
// locale files does: TOML decoded by go-toml, messages parsed by go-i18n.
type Verifier struct {
	defaultLanguage language.Tag
}

// NewVerifier builds a Verifier whose bundle falls back to defaultLocale
// (e.g. "en").
func NewVerifier(defaultLocale string) *Verifier {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	return &Verifier{defaultLanguage: tag}
}

// Verify checks that data is a flat table of strings and that go-i18n
// accepts it as the message file named path.
func (v *Verifier) Verify(path string, data []byte) error {
	var table map[string]any
	if err := toml.Unmarshal(data, &table); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrInvalidMessageFile, path, err)
	}
	if err := checkStrings("", table); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrInvalidMessageFile, path, err)
	}

	bundle := i18n.NewBundle(v.defaultLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	mf, err := bundle.ParseMessageFileBytes(data, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrInvalidMessageFile, path, err)
	}
	if mf.Tag == language.Und {
		return fmt.Errorf("%w: %s: no language tag in file name", domain.ErrInvalidMessageFile, path)
	}
	return nil
}

// checkStrings accepts nested tables, since go-i18n joins dotted keys, but
// every leaf must be a string.
func checkStrings(prefix string, table map[string]any) error {
	for k, val := range table {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch t := val.(type) {
		case string:
		case map[string]any:
			if err := checkStrings(key, t); err != nil {
				return err
			}
		default:
			return fmt.Errorf("value of %q is a %T, not a string", key, val)
		}
	}
	return nil
}
