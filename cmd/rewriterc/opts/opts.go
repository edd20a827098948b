package opts

import (
	"github.com/walteh/rewriterc/pkg/config"
	"github.com/walteh/rewriterc/pkg/log"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config *config.Config
	Logger *log.Logger
}
