// Package i18n loads the embedded translation files and resolves message
// IDs for the active language.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "ru"

//go:embed locales/*.yaml
var localeFS embed.FS

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
)

// Init parses the embedded locale files and activates lang.
func Init(lang string) error {
	b := i18n.NewBundle(language.Russian)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return fmt.Errorf("reading locales: %w", err)
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			return fmt.Errorf("reading locale %s: %w", f.Name(), err)
		}
		if _, err := b.ParseMessageFileBytes(data, f.Name()); err != nil {
			return fmt.Errorf("parsing locale %s: %w", f.Name(), err)
		}
	}

	bundle = b
	localizer = i18n.NewLocalizer(bundle, lang, DefaultLanguage)
	return nil
}

// T translates messageID. Unknown IDs are returned unchanged.
func T(messageID string) string {
	if localizer == nil {
		_ = Init(DefaultLanguage)
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	return msg
}

// Tf translates messageID and fills its template with data.
func Tf(messageID string, data map[string]any) string {
	if localizer == nil {
		_ = Init(DefaultLanguage)
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID, TemplateData: data})
	if err != nil {
		return messageID
	}
	return msg
}

// Languages lists the tags of all loaded translations.
func Languages() []string {
	if bundle == nil {
		_ = Init(DefaultLanguage)
	}
	tags := bundle.LanguageTags()
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = t.String()
	}
	return out
}
