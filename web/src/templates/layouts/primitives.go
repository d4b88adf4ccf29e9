package layouts

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Main is the page-level shell every page renders inside.
func Main(children ...cmp.Node) cmp.Node {
	return g.Main(g.Class("main"), cmp.Group(children))
}

// Container constrains content to the site's content width.
func Container(children ...cmp.Node) cmp.Node {
	return g.Div(g.Class("container"), cmp.Group(children))
}
