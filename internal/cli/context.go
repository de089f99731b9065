package cli

import (
	"github.com/brudil/launchgen/internal/config"
	"github.com/brudil/launchgen/internal/ide"
)

// Context bridges config and the host state for CLI commands.
type Context struct {
	Host   ide.Host
	Config *config.Config
}

var ctxOverride *Context

func SetContextOverride(ctx *Context) {
	ctxOverride = ctx
}

func ClearContextOverride() {
	ctxOverride = nil
}

// LoadContext captures the current process state and loads config from the
// working directory.
func LoadContext() (*Context, error) {
	if ctxOverride != nil {
		return ctxOverride, nil
	}
	host, err := ide.HostFromEnv()
	if err != nil {
		return nil, err
	}
	return LoadContextForHost(host)
}

// LoadContextForHost loads config from host.Dir.
func LoadContextForHost(host ide.Host) (*Context, error) {
	cfg, err := config.Load(host.Dir)
	if err != nil {
		return nil, err
	}
	return &Context{Host: host, Config: cfg}, nil
}

// Options converts the loaded config into writer options.
func (c *Context) Options(dryRun bool) ide.Options {
	return ide.Options{
		ExpandPath:          c.Config.ExpandPath(),
		Console:             c.Config.VSCode.Console,
		DryRun:              dryRun,
		DisableVSCode:       !c.Config.VSCodeEnabled(),
		DisableVisualStudio: !c.Config.VisualStudioEnabled(),
	}
}
