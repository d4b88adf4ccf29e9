// Package styles provides CSS-module style class lookups for gomponents pages.
package styles

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Module maps semantic style names to the generated class names of one stylesheet.
type Module struct {
	scope   string
	classes map[string]string
}

// New creates a Module whose classes are named "<scope>_<name>".
func New(scope string, names ...string) Module {
	classes := make(map[string]string, len(names))
	for _, name := range names {
		classes[name] = scope + "_" + name
	}
	return Module{scope: scope, classes: classes}
}

// Scope returns the stylesheet scope, which is also the stylesheet file name.
func (m Module) Scope() string {
	return m.scope
}

// Name returns the generated class name, or "" when name is not declared.
func (m Module) Name(name string) string {
	return m.classes[name]
}

// Class returns a class attribute for name. Undeclared names render nothing.
func (m Module) Class(name string) cmp.Node {
	class, ok := m.classes[name]
	if !ok {
		return cmp.Group(nil)
	}
	return g.Class(class)
}
