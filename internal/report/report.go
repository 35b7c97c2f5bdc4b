package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/runs-on/envreport/internal/env"
)

// ContentType is the CGI header line sent ahead of the document.
const ContentType = "Content-type: text/html"

// DefaultStylesheet is the href used when none is configured.
const DefaultStylesheet = "test.css"

const doctype = `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">`

// Ampersand goes first so the entities added by the later pairs are not escaped again.
var (
	textEscaper  = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	quoteEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

// Escape replaces &, < and > with their entities. When quote is set, " is
// replaced as well. Escape is not idempotent: an already escaped string has its
// ampersands escaped a second time.
func Escape(s string, quote bool) string {
	if quote {
		return quoteEscaper.Replace(s)
	}
	return textEscaper.Replace(s)
}

// RowClass returns the CSS class for the data row at index i.
func RowClass(i int) string {
	if i%2 == 0 {
		return "normal"
	}
	return "alt"
}

// Renderer writes the environment table as an XHTML document.
type Renderer struct {
	Stylesheet string
}

// New returns a Renderer linking the given stylesheet, or DefaultStylesheet if empty.
func New(stylesheet string) *Renderer {
	if stylesheet == "" {
		stylesheet = DefaultStylesheet
	}
	return &Renderer{Stylesheet: stylesheet}
}

// Render writes the document for entries to w.
func (r *Renderer) Render(w io.Writer, entries []env.Entry) error {
	b := &strings.Builder{}
	r.build(b, entries)
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// WriteCGI writes the content-type header, a blank line and the document to w
// in a single write.
func (r *Renderer) WriteCGI(w io.Writer, entries []env.Entry) error {
	b := &strings.Builder{}
	b.WriteString(ContentType)
	b.WriteString("\n\n")
	r.build(b, entries)
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write CGI response: %w", err)
	}
	return nil
}

func (r *Renderer) build(b *strings.Builder, entries []env.Entry) {
	stylesheet := r.Stylesheet
	if stylesheet == "" {
		stylesheet = DefaultStylesheet
	}

	b.WriteString(doctype + "\n")
	b.WriteString(`<html xmlns="http://www.w3.org/1999/xhtml">` + "\n")
	fmt.Fprintf(b, `<head><link rel="stylesheet" type="text/css" href="%s" /></head>`+"\n", Escape(stylesheet, true))
	b.WriteString(`<body class="test-data">` + "\n")
	b.WriteString("<table>\n")
	b.WriteString("<tr><th>Name</th><th>Value</th></tr>\n")
	for i, e := range entries {
		fmt.Fprintf(b, "<tr class=\"%s\"><td>%s</td><td>%s</td></tr>\n",
			RowClass(i), Escape(e.Key, false), Escape(e.Value, false))
	}
	b.WriteString("</table></body></html>\n")
}
