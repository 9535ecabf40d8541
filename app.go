package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type Options struct {
	NoLogo bool
	// Path switches to the non interactive mode.
	Path   string
	Remove bool
	Check  string
}

type App struct {
	Version  string
	Config   *Config
	Messages *Messages
	Fs       afero.Fs
	Prompter Prompter
	Runner   CommandRunner
	Out      io.Writer
	Logger   *zap.Logger

	// DropboxFolders is only used to warn about paths dropbox does not sync anyway.
	DropboxFolders []string
	// HasFlag reads back the ignore flag for --check.
	HasFlag func(path string) (bool, error)
}

func (a *App) Run(ctx context.Context, opts Options) error {
	if !opts.NoLogo {
		PrintLogo(a.Out, a.Version, a.Messages)
	}

	if opts.Check != "" {
		return a.check(opts.Check)
	}

	ignorer := NewIgnorer(ResolveStrategy(a.Config.Platform), a.Runner, a.Messages, a.Out, a.Logger)
	a.Logger.Debug("resolved platform",
		zap.String("platform", a.Config.Platform),
		zap.Bool("supported", ignorer.Strategy().Supported()),
		zap.Stringer("language", a.Messages.Language),
	)

	if opts.Path != "" {
		a.setIgnore(ctx, ignorer, IgnoreRequest{Path: opts.Path, Ignore: !opts.Remove})
		return nil
	}

	flow := NewNodeModulesFlow(a.Fs, a.Prompter, ignorer, a.Runner, a.Config, a.Messages, a.Out, a.Logger)
	outcome, err := flow.Run(ctx)
	if err != nil {
		return err
	}
	if outcome.Handled() {
		return nil
	}

	choice, err := a.Prompter.Select(a.Messages.Select, []string{a.Messages.AddToIgnoreList, a.Messages.RemoveFromIgnoreList})
	if err != nil {
		return err
	}
	path, err := a.Prompter.Input(a.Messages.EnterFilePath)
	if err != nil {
		return err
	}

	a.setIgnore(ctx, ignorer, IgnoreRequest{Path: path, Ignore: choice == 0})
	return nil
}

func (a *App) setIgnore(ctx context.Context, ignorer *Ignorer, req IgnoreRequest) SetResult {
	if len(a.DropboxFolders) > 0 && !IsInsideDropboxFolder(req.Path, a.DropboxFolders) {
		fmt.Fprintln(a.Out, color.YellowString(a.Messages.NotInsideDropbox, req.Path))
	}
	result := ignorer.SetIgnore(ctx, req)
	a.Logger.Info("set ignore flag", zap.String("path", req.Path), zap.Bool("ignore", req.Ignore), zap.Stringer("result", result))
	return result
}

func (a *App) check(path string) error {
	hasFlag, err := a.HasFlag(path)
	if err != nil {
		return fmt.Errorf("error reading ignore flag of %s: %w", path, err)
	}
	if hasFlag {
		fmt.Fprintln(a.Out, color.GreenString(a.Messages.IsIgnored, path))
	} else {
		fmt.Fprintf(a.Out, a.Messages.IsNotIgnored+"\n", path)
	}
	return nil
}
