package utils

import "github.com/microcosm-cc/bluemonday"

var (
	stripPolicy    = bluemonday.StrictPolicy()
	richTextPolicy = newRichTextPolicy()
)

// newRichTextPolicy builds the allow-list applied to post bodies on write and
// on the single-post detail view.
func newRichTextPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("h1", "h2", "b", "i", "u", "s", "p", "ul", "ol", "li", "blockquote", "a", "img")
	p.AllowAttrs("href", "name", "target").OnElements("a")
	p.AllowAttrs("src").OnElements("img")
	p.AllowAttrs("class").OnElements("li")
	p.AllowURLSchemes("data", "http", "https")
	return p
}

// StripHTML reduces a rich-text body to plain text for list previews.
func StripHTML(body string) string {
	return stripPolicy.Sanitize(body)
}

func SanitizeRichText(body string) string {
	return richTextPolicy.Sanitize(body)
}
