// Package locales embeds the gettext catalogues and installs one as the
// process-wide gotext locale.
package locales

import (
	"embed"
	"fmt"

	"github.com/leonelquinteros/gotext"
)

// DefaultLocale is used when the requested catalogue is missing
const DefaultLocale = "en_GB"

const domain = "default"

//go:embed */default.po
var catalogues embed.FS

// Load installs the catalogue for lang, falling back to DefaultLocale.
// It returns the locale actually installed.
func Load(lang string) (string, error) {
	data, err := catalogues.ReadFile(lang + "/" + domain + ".po")
	if err != nil {
		if lang == DefaultLocale {
			return "", fmt.Errorf("load locale %s: %w", lang, err)
		}
		return Load(DefaultLocale)
	}

	po := gotext.NewPo()
	po.Parse(data)

	l := gotext.NewLocale("", lang)
	l.AddTranslator(domain, po)

	gotext.SetLocales([]*gotext.Locale{l})

	return lang, nil
}
