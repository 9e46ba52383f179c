package catalog

import (
	"sync"

	"labkart/internal"
	"labkart/internal/assets"
	"labkart/internal/config"
)

var (
	defaultOnce     sync.Once
	defaultResolver *Resolver
)

// Default returns the process-wide resolver over the configured supplier
// assets. Single explicit accessor, no exported mutable state: the handle is
// constructed once and only moves from unbuilt to built.
func Default() *Resolver {
	defaultOnce.Do(func() {
		cfg, _ := config.Load()
		defaultResolver = NewResolver(func() []internal.Supplier {
			return assets.LoadAll(cfg)
		}, cfg.BrandPatterns)
	})
	return defaultResolver
}
