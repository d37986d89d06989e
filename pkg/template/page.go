package template

import (
	"fmt"
	"io"
)

// PageData contains all data needed to render a complete HTML document.
type PageData struct {
	// Body is the compiled template for the page content
	Body *Result

	// Title is the page title
	Title string

	// Lang is the language attribute for the html element
	// Defaults to "en" if not specified
	Lang string

	// Meta contains meta tags for the page
	Meta []MetaTag

	// StyleSheets contains paths to external stylesheets
	StyleSheets []string

	// InlineScripts contains script bodies emitted at the end of body
	// (used by the preview server to inject the live-reload client)
	InlineScripts []string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name    string // name attribute
	Content string // content attribute
	Charset string // charset attribute
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	if _, err := w.Write([]byte("<!DOCTYPE html>\n")); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, `<html lang="%s">`+"\n", escapeAttr(lang)); err != nil {
		return err
	}

	if err := r.renderHead(w, page); err != nil {
		return err
	}

	if _, err := w.Write([]byte("<body>\n")); err != nil {
		return err
	}
	if page.Body != nil {
		if err := r.Render(w, page.Body); err != nil {
			return err
		}
	}
	for _, script := range page.InlineScripts {
		if _, err := fmt.Fprintf(w, "\n<script>%s</script>", script); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte("\n</body>\n</html>\n"))
	return err
}

// renderHead renders the document head.
func (r *Renderer) renderHead(w io.Writer, page PageData) error {
	if _, err := w.Write([]byte("<head>\n")); err != nil {
		return err
	}
	if _, err := w.Write([]byte(`<meta charset="utf-8">` + "\n")); err != nil {
		return err
	}
	if _, err := w.Write([]byte(`<meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")); err != nil {
		return err
	}
	for _, meta := range page.Meta {
		switch {
		case meta.Charset != "":
			if _, err := fmt.Fprintf(w, `<meta charset="%s">`+"\n", escapeAttr(meta.Charset)); err != nil {
				return err
			}
		case meta.Name != "":
			if _, err := fmt.Fprintf(w, `<meta name="%s" content="%s">`+"\n",
				escapeAttr(meta.Name), escapeAttr(meta.Content)); err != nil {
				return err
			}
		}
	}
	if page.Title != "" {
		if _, err := fmt.Fprintf(w, "<title>%s</title>\n", escapeHTML(page.Title)); err != nil {
			return err
		}
	}
	for _, href := range page.StyleSheets {
		if _, err := fmt.Fprintf(w, `<link rel="stylesheet" href="%s">`+"\n", escapeAttr(href)); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte("</head>\n"))
	return err
}
