package web

import (
	"bytes"
	_ "embed"
	"fmt"
	"log"
	"net/http"

	"github.com/yuin/goldmark"
)

//go:embed docs.md
var docsMarkdown []byte

// renderDocs converts the embedded API docs from markdown once at startup.
func renderDocs(version string) []byte {
	var body bytes.Buffer
	if err := goldmark.Convert(docsMarkdown, &body); err != nil {
		log.Printf("failed to render docs: %v", err)
		body.Reset()
		body.WriteString("<p>String analysis service</p>")
	}

	var page bytes.Buffer
	fmt.Fprintf(&page, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>String Analysis Service</title>
</head>
<body>
%s
<hr>
<p><small>version %s</small></p>
</body>
</html>
`, body.String(), version)
	return page.Bytes()
}

// docsHandler serves the rendered API documentation page.
func docsHandler(docs []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(docs)
	}
}
