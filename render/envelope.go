package render

import (
	"text/template"

	"github.com/samber/lo"
)

// envelope wraps a converted fragment into a self-contained HTML document.
// Only background, foreground and heading colors vary with the theme.
var envelope = lo.Must(template.New("envelope").Parse(`<html>
    <head>
        <meta charset="UTF-8">
        <style>
            body { font-family: {{ .FontFamily }}; margin: 20px; font-size: {{ .FontSize }}px; background-color: {{ .Background }}; color: {{ .Foreground }}; }
            h1 { color: {{ .Heading1 }}; }
            h2 { color: {{ .Heading2 }}; }
            h3 { color: {{ .Heading3 }}; }
            pre { background-color: #333; border: 1px solid #ddd; padding: 10px; border-radius: 5px; overflow: auto; }
            code { background-color: #444; padding: 2px 4px; border-radius: 3px; font-family: monospace; }
            blockquote { border-left: 2px solid #888; padding-left: 10px; color: inherit; margin: 0 0 10px; }
            ul, ol { margin-left: 20px; }
            a { color: #007BFF; text-decoration: none; }
            a:hover { text-decoration: underline; }
            img { max-width: 100%; height: auto; }
        </style>
    </head>
    <body>
{{ .Body }}    </body>
</html>
`))

type envelopeData struct {
	FontFamily string
	FontSize   int
	Background string
	Foreground string
	Heading1   string
	Heading2   string
	Heading3   string
	Body       string
}
