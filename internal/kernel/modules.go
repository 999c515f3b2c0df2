package kernel

import (
	"github.com/vk/corekit/components/logger"
	"github.com/vk/corekit/components/memcache"
	"github.com/vk/corekit/internal/registry"
)

// coreModules is the definitive list of component modules compiled into the
// binary. Their factory names form the built-in table consulted first during
// lazy resolution.
var coreModules = []registry.Module{
	&logger.Module{},
	&memcache.Module{},
}
