package main

import (
	"context"
	"io"

	"rampack-doctools/internal/config"
	"rampack-doctools/internal/helpdoc"
	"rampack-doctools/internal/logging"
)

type options struct {
	configPath string
	execPath   string
	docPath    string
	modes      []string
	check      bool
	toStdout   bool
}

type cliApp struct {
	stdout io.Writer
	opts   options
	logs   *logging.Provider
}

func run(argv []string, stdout io.Writer) error {
	cmd := newRootCmd(stdout)
	cmd.SetArgs(argv)
	return cmd.Execute()
}

// resolveConfig layers defaults, environment, config file and explicit flags.
func (app *cliApp) resolveConfig(changed func(name string) bool) (config.Generator, error) {
	cfg := config.Default()
	if app.opts.configPath != "" {
		loaded, err := config.Load(app.opts.configPath, cfg)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	var flags config.Generator
	if changed("exec") {
		flags.ExecPath = app.opts.execPath
	}
	if changed("doc") {
		flags.DocPath = app.opts.docPath
	}
	if changed("mode") {
		flags.Modes = app.opts.modes
	}
	cfg = cfg.Merge(flags)
	return cfg, cfg.Validate()
}

func (app *cliApp) execute(ctx context.Context, cfg config.Generator) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := app.logs.GetLogger("helpdoc")
	logger.Debug("configuration resolved", "exec", cfg.ExecPath, "doc", cfg.DocPath, "modes", cfg.Modes)

	gen := helpdoc.NewGenerator(helpdoc.ExecSource{Path: cfg.ExecPath}, logger)
	opts := helpdoc.Options{
		DocPath: cfg.DocPath,
		Modes:   cfg.Modes,
		Check:   app.opts.check,
	}
	if app.opts.toStdout {
		opts.Stdout = app.stdout
	}
	if _, err := gen.Run(ctx, opts); err != nil {
		return err
	}
	switch {
	case app.opts.check:
		_, err := io.WriteString(app.stdout, "'"+cfg.DocPath+"' is up to date\n")
		return err
	case app.opts.toStdout:
		return nil
	}
	_, err := io.WriteString(app.stdout, "Successfully updated '"+cfg.DocPath+"'\n")
	return err
}
