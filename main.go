package main

import (
	"context"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

var version = "<VERSION>"

var cli struct {
	Path    string `short:"p" help:"Set the flag on this path without asking." type:"path"`
	Remove  bool   `short:"r" help:"Remove the path from the ignore list instead of adding it (with --path)."`
	Check   string `help:"Print whether the path is in the ignore list." type:"path" placeholder:"PATH"`
	NoLogo  bool   `help:"Do not print the logo."`
	Log     string `help:"The log file location (default: no log)." type:"path"`
	Verbose bool   `short:"v" help:"Log to stderr."`

	Version kong.VersionFlag `help:"Print the version."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("dropbox_ignore"),
		kong.Description("Add or remove files and folders from the dropbox ignore list."),
		kong.Vars{"version": version},
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(mainWithErr())
}

func mainWithErr() error {
	logger, err := NewLogger(cli.Log, cli.Verbose)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	logger.Debug("config loaded", zap.Any("config", cfg))

	homeDir, err := os.UserHomeDir()
	if err != nil {
		logger.Debug("error getting home dir", zap.Error(err))
	}
	dropboxFolders, err := ParseDropboxInfoPaths(DropboxInfoLocations(homeDir, os.LookupEnv))
	if err != nil {
		logger.Warn("error reading dropbox folders", zap.Error(err))
	}

	app := &App{
		Version:        version,
		Config:         cfg,
		Messages:       SelectMessages(cfg.Locale),
		Fs:             afero.NewOsFs(),
		Prompter:       NewTerminalPrompter(os.Stdin, color.Output),
		Runner:         NewExecRunner(logger),
		Out:            color.Output,
		Logger:         logger,
		DropboxFolders: dropboxFolders,
		HasFlag:        HasDropboxIgnoreFlag,
	}
	// ctrl+c keeps its default behavior, a prompt can not be interrupted otherwise
	return app.Run(context.Background(), Options{
		NoLogo: cli.NoLogo,
		Path:   cli.Path,
		Remove: cli.Remove,
		Check:  cli.Check,
	})
}
