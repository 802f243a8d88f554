package templates

import (
	"embed"
	"html/template"
	"strings"
	"unicode"
)

//go:embed *.html
var files embed.FS

// Pages holds every page of the portal. All request-derived values
// (carrera, periodo, usuario) pass through contextual auto-escaping.
var Pages = template.Must(template.New("").
	Funcs(template.FuncMap{
		"titleize": TitleFromSlug,
	}).
	ParseFS(files, "*.html"))

// TitleFromSlug turns a URL segment like "ciencias-politicas" into
// "Ciencias Politicas" for page headings.
func TitleFromSlug(slug string) string {
	words := strings.Fields(strings.ReplaceAll(slug, "-", " "))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
