package i18n

import (
	"embed"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"paradereg/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

var _ output.Translator = (*Translator)(nil)

// Translator renders the es and en message bundles embedded in the binary.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	log             zerolog.Logger
}

// NewTranslator loads the embedded active.*.toml bundles. Unparseable locales
// fall back to Spanish.
func NewTranslator(defaultLocale string, log zerolog.Logger) (*Translator, error) {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		log.Warn().Str("locale", defaultLocale).Msg("unknown locale, using es")
		tag = language.Spanish
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range []string{"active.es.toml", "active.en.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, fmt.Errorf("i18n: load %s: %w", file, err)
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
		log:             log,
	}, nil
}

// DefaultLocale is the locale used when callers pass "".
func (t *Translator) DefaultLocale() string {
	return t.defaultLanguage.String()
}

// T looks key up in locale, then in the default locale. A key missing from
// both bundles is returned as is, so callers such as the CLI label helpers can
// detect the miss by comparing with the key. data fills {{.Name}} style
// placeholders.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	fallback := t.defaultLanguage.String()
	localizer := i18n.NewLocalizer(t.bundle, locale, fallback)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		t.log.Debug().Err(err).Str("key", key).Str("locale", locale).Msg("no translation")
		return key
	}
	return msg
}
