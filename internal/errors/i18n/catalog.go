// Package i18n provides localized user-facing messages for engine error codes.
package i18n

import (
	"strings"
	"text/template"
)

// Catalog holds user-facing messages for one locale.
type Catalog struct {
	locale   string
	messages map[string]string
}

// Locale returns the catalog locale tag.
func (c *Catalog) Locale() string {
	return c.locale
}

// Format renders the message for a code, templating in the given metadata.
// Unknown codes fall back to a generic message.
func (c *Catalog) Format(code string, metadata map[string]string) string {
	msg, ok := c.messages[code]
	if !ok {
		return "An unexpected error occurred"
	}
	if len(metadata) == 0 || !strings.Contains(msg, "{{") {
		return msg
	}

	tmpl, err := template.New(code).Parse(msg)
	if err != nil {
		return msg
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, metadata); err != nil {
		return msg
	}
	return b.String()
}

// GetCatalog returns the catalog for the requested locale, defaulting to en-US.
func GetCatalog(locale string) *Catalog {
	switch strings.ToLower(locale) {
	case "en-us", "en", "":
		return enUSCatalog
	default:
		return enUSCatalog
	}
}
