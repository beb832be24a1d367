package catalog

import (
	"strings"

	"github.com/snnyvrz/shelfshare/catalog-api/internal/model"
)

var languageCodes = map[string]model.Language{
	"spanish": model.LanguageSpanish,
	"english": model.LanguageEnglish,
}

var formatCodes = map[string]model.Format{
	"physical": model.FormatPhysical,
	"e-book":   model.FormatEBook,
}

// normalize trims and lowercases a raw lookup value.
func normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// LanguageCode maps a human language word to its stored code.
func LanguageCode(word string) (model.Language, bool) {
	code, ok := languageCodes[normalize(word)]
	return code, ok
}

// FormatCode maps a human format word to its stored code.
func FormatCode(word string) (model.Format, bool) {
	code, ok := formatCodes[normalize(word)]
	return code, ok
}

// SplitAuthorToken splits "First-Last" into its two names. Tokens with no
// hyphen, more than one hyphen, or an empty side are rejected, so hyphenated
// surnames have to go through the first_name/last_name query form.
func SplitAuthorToken(token string) (first, last string, ok bool) {
	parts := strings.Split(strings.TrimSpace(token), "-")
	if len(parts) != 2 {
		return "", "", false
	}

	first = strings.TrimSpace(parts[0])
	last = strings.TrimSpace(parts[1])
	if first == "" || last == "" {
		return "", "", false
	}
	return first, last, true
}
