package logging

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists the lowercase HTTP header names that carry
// credentials. middleware.RedactHeaders reads it too.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

// Attribute names masked wherever they appear in a record.
var (
	redactedFields   = []string{"password", "secret", "token"}
	redactedPrefixes = []string{"secret_", "api_key"}
)

// Raw credential shapes masked regardless of the attribute name. JWT segments
// need ten characters so version strings like 1.2.3 pass through.
var redactedValues = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
	regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
}

// newRedactAttr builds the masq ReplaceAttr for New. extra names are masked
// on top of the built-in fields; blank names are skipped.
func newRedactAttr(extra ...string) func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0,
		len(SensitiveHeaders)+len(redactedFields)+len(extra)+len(redactedPrefixes)+len(redactedValues))

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range redactedFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range extra {
		if name = strings.TrimSpace(name); name != "" {
			opts = append(opts, masq.WithFieldName(name))
		}
	}
	for _, prefix := range redactedPrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range redactedValues {
		opts = append(opts, masq.WithRegex(re))
	}

	return masq.New(opts...)
}
