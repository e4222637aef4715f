package form

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. They double as the English text.
const (
	msgRequired  = "%s is required"
	msgEmail     = "Invalid email"
	msgPhone     = "Invalid phone number"
	msgMinLength = "Minimum of %d characters"
	msgMaxLength = "Maximum of %d characters"
	msgPattern   = "Invalid format"
)

// SupportedLanguages lists the languages messages are available in. The first
// entry is the default.
var SupportedLanguages = []language.Tag{
	language.English,
	language.BrazilianPortuguese,
}

var (
	messages = newCatalog()
	matcher  = language.NewMatcher(SupportedLanguages)
)

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))

	pt := map[string]string{
		msgRequired:  "%s é obrigatório",
		msgEmail:     "Email inválido",
		msgPhone:     "Telefone inválido",
		msgMinLength: "Mínimo de %d caracteres",
		msgMaxLength: "Máximo de %d caracteres",
		msgPattern:   "Formato inválido",

		// Labels of DefaultContactRules.
		"Name":    "Nome",
		"Phone":   "Telefone",
		"Company": "Empresa",
		"Message": "Mensagem",
	}
	for key, msg := range pt {
		// SetString only fails on malformed messages; these are constants.
		_ = b.SetString(language.BrazilianPortuguese, key, msg)
	}
	return b
}

func newPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(messages))
}

// translateLabel returns the catalog entry for label, or label itself.
// Labels containing a verb are never looked up.
func translateLabel(p *message.Printer, label string) string {
	if strings.Contains(label, "%") {
		return label
	}
	return p.Sprintf(label)
}

// MatchLanguage picks the best supported language for an Accept-Language
// header value. Malformed or empty headers yield English.
func MatchLanguage(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return SupportedLanguages[0]
	}
	_, idx, _ := matcher.Match(tags...)
	return SupportedLanguages[idx]
}
