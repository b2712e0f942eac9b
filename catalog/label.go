package catalog

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var upper = cases.Upper(language.Und)

// Label turns a template name into its button caption: the first letter is
// upper-cased and the first underscore becomes a line break, so
// "glider_gun" reads "Glider\ngun".
func Label(name string) string {
	if name == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(name)
	head, rest := name[:size], name[size:]
	return upper.String(head) + strings.Replace(rest, "_", "\n", 1)
}
