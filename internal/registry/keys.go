package registry

import "github.com/nfrund/foodgram/internal/assets"

// Core service keys. Using constants prevents typos.
const (
	AssetResolverKey Key[*assets.Resolver] = "core.assets"
)
