package respond

import "github.com/microcosm-cc/bluemonday"

// Analysis bodies embed verdict/advice text that can arrive through the
// runtime upsert endpoint, so everything HTML-formatted passes through this
// policy before leaving the core.
var htmlPolicy = newHTMLPolicy()

func newHTMLPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("strong", "br", "span")
	p.AllowAttrs("class").OnElements("span")
	return p
}

func sanitizeHTML(s string) string {
	return htmlPolicy.Sanitize(s)
}
