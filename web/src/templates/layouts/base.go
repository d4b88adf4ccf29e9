package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/nfrund/foodgram/internal/view"
	"golang.org/x/text/language"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// DocumentLanguage is the language of all page content.
var DocumentLanguage = language.Russian

const htmxScriptURL = "https://unpkg.com/htmx.org@2.0.4"

// Base wraps a page's content in the full HTML document.
func Base(meta PageMeta, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return document(meta, view.AdaptTemplToGomponentContext(ctx, content)).Render(w)
	})
}

func document(meta PageMeta, content cmp.Node) cmp.Node {
	return g.Doctype(
		g.HTML(
			cmp.Attr("lang", DocumentLanguage.String()),
			g.Head(
				g.Meta(cmp.Attr("charset", "utf-8")),
				g.Meta(cmp.Attr("name", "viewport"), cmp.Attr("content", "width=device-width, initial-scale=1")),
				Head(meta),
				g.Link(g.Rel("stylesheet"), g.Href("/static/css/app.css")),
				cmp.Map(meta.Stylesheets, func(href string) cmp.Node {
					return g.Link(g.Rel("stylesheet"), g.Href(href))
				}),
				g.Script(g.Src(htmxScriptURL), cmp.Attr("defer")),
			),
			g.Body(
				hx.Boost("true"),
				content,
			),
		),
	)
}
