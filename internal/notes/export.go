// Package notes renders project notes, which are stored as Markdown, into
// standalone documents for export.
package notes

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	mdhtml "github.com/yuin/goldmark/renderer/html"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(mdhtml.WithHardWraps()),
)

const htmlShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s</body>
</html>
`

// ExportHTML converts a project's Markdown notes into a self-contained HTML
// document titled after the project.
func ExportHTML(title, markdown string) ([]byte, error) {
	var body bytes.Buffer
	if err := md.Convert([]byte(markdown), &body); err != nil {
		return nil, fmt.Errorf("render notes: %w", err)
	}
	return []byte(fmt.Sprintf(htmlShell, html.EscapeString(title), body.String())), nil
}
