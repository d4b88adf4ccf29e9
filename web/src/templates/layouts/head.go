package layouts

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// PageMeta describes the document metadata a page contributes to <head>.
type PageMeta struct {
	Title         string
	Description   string
	OGTitle       string
	OGDescription string
	OGImage       string

	// Stylesheets are page-specific stylesheet URLs linked after the site stylesheet.
	Stylesheets []string
}

// Head renders the page-specific metadata: the title, the description and
// the Open Graph preview tags. Empty optional fields are left out.
func Head(meta PageMeta) cmp.Node {
	nodes := cmp.Group{g.TitleEl(cmp.Text(CalculateTitle(meta.Title)))}
	if meta.Description != "" {
		nodes = append(nodes, metaName("description", meta.Description))
	}
	if meta.OGTitle != "" {
		nodes = append(nodes, metaProperty("og:title", meta.OGTitle))
	}
	if meta.OGDescription != "" {
		nodes = append(nodes, metaProperty("og:description", meta.OGDescription))
	}
	if meta.OGImage != "" {
		nodes = append(nodes, metaProperty("og:image", meta.OGImage))
	}
	return nodes
}

func metaName(name, content string) cmp.Node {
	return g.Meta(cmp.Attr("name", name), cmp.Attr("content", content))
}

func metaProperty(property, content string) cmp.Node {
	return g.Meta(cmp.Attr("property", property), cmp.Attr("content", content))
}
