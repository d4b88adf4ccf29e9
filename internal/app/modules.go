package app

import (
	"github.com/nfrund/foodgram/internal/module"
	"github.com/nfrund/foodgram/internal/modules/technologies"
)

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which pages are enabled.
func NewModules() []module.Module {
	return []module.Module{
		// Add new page modules here.
		technologies.New(),
	}
}
