package pages

import "strings"

// escaper maps each HTML-special character to its named entity
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Escape replaces &, <, > and " with their named entities. Free text from
// the data file always goes through Escape before it reaches a page.
func Escape(s string) string {
	return escaper.Replace(s)
}
