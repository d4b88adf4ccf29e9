package app

import (
	"github.com/nfrund/foodgram/internal/assets"
	"github.com/nfrund/foodgram/internal/registry"
)

// Dependencies holds the core services that are required by the application's modules.
// This struct is passed from the main application entrypoint to wire up the modules.
type Dependencies struct {
	Assets *assets.Resolver
}

// Provide publishes the core services in the registry, where modules look
// them up during Boot.
func (d Dependencies) Provide(reg *registry.Registry) {
	registry.Set(reg, registry.AssetResolverKey, d.Assets)
}
