// file: internals/helpers/sanitize/sanitize.go
package sanitize

import (
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Kebijakan allow-list untuk konten rich-text dari editor admin.
// Deny-list tidak dipakai: tag baru yang berbahaya otomatis tertolak.
var richTextPolicy = buildRichTextPolicy()

func buildRichTextPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowElements(
		"p", "br", "b", "i", "u", "strong", "em",
		"ul", "ol", "li",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"blockquote", "code", "pre",
		"span", "div",
	)

	// atribut umum
	p.AllowAttrs("class", "id", "title", "style").Globally()

	// link: hanya http/https/mailto + path relatif
	p.AllowAttrs("href", "target", "rel").OnElements("a")
	p.AllowElements("a")

	// gambar
	p.AllowAttrs("src", "alt", "title").OnElements("img")
	p.AllowElements("img")

	p.AllowURLSchemes("http", "https", "mailto")
	p.AllowRelativeURLs(true)
	p.RequireParseableURLs(true)

	return p
}

// HTML membersihkan string HTML hasil rich-text editor sebelum disimpan
// ataupun sebelum dirender. Idempoten: HTML(HTML(x)) == HTML(x).
// Input kosong menghasilkan string kosong, tidak pernah error.
func HTML(input string) string {
	if input == "" {
		return ""
	}
	return richTextPolicy.Sanitize(input)
}

// Escape meng-escape karakter signifikan HTML untuk konteks teks literal.
func Escape(text string) string {
	if text == "" {
		return ""
	}
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#x27;",
		"/", "&#x2F;",
	)
	return r.Replace(text)
}

// URL menerima URL absolut http/https/mailto atau path root-relative ("/...",
// bukan protocol-relative "//..."). Selain itu mengembalikan string kosong
// sebagai tanda "tidak aman, jangan dipakai".
func URL(raw string) string {
	if raw == "" {
		return ""
	}

	if u, err := url.Parse(raw); err == nil && u.IsAbs() {
		switch strings.ToLower(u.Scheme) {
		case "http", "https", "mailto":
			return raw
		}
		return ""
	}

	if strings.HasPrefix(raw, "/") && !strings.HasPrefix(raw, "//") {
		return raw
	}
	return ""
}
