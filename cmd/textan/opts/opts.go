package opts

import (
	"github.com/walteh/textan/pkg/config"
	"github.com/walteh/textan/pkg/log"
	"github.com/walteh/textan/pkg/report"
	"github.com/walteh/textan/pkg/text"
)

// RootOpts contains shared options used by all commands
//
// Fields are populated by the root command's PersistentPreRunE, after flags are parsed.
type RootOpts struct {
	ConfigFile string
	Output     string
	Debug      bool

	Config     *config.Config
	Renderer   report.Renderer
	Replacer   text.Replacer
	UserLogger *log.UserLogger
}
