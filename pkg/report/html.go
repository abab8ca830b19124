package report

import (
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
)

var policy = newPolicy()

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
{{.Body}}</body>
</html>
`))

// newPolicy allows user-generated content plus the class attribute that
// fenced code blocks carry ("language-text").
func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "pre")
	p.AllowAttrs("id").Matching(bluemonday.SpaceSeparatedTokens).OnElements("h1", "h2")
	return p
}

// RenderToHTML converts markdown to sanitized HTML.
func RenderToHTML(markdown string) string {
	unsafeHTML := blackfriday.Run(
		[]byte(markdown),
		blackfriday.WithExtensions(blackfriday.CommonExtensions|blackfriday.AutoHeadingIDs),
	)
	return string(policy.SanitizeBytes(unsafeHTML))
}

// HTMLDocument wraps the rendered report in a standalone page.
func HTMLDocument(title string, lines []string) (string, error) {
	var b strings.Builder
	err := page.Execute(&b, struct {
		Title string
		Body  template.HTML
	}{
		Title: title,
		// Already sanitized by RenderToHTML.
		Body: template.HTML(RenderToHTML(Markdown(title, lines))),
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
