package main

import (
	"os"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const EnvPrefix = "DROPBOX_IGNORE"

const (
	DefaultDependencyFolder = "node_modules"
	DefaultReinstallCommand = "npm i"
)

// Config is captured once at startup and not changed afterwards.
type Config struct {
	Platform string
	// raw locale value, e.g. ko_KR.UTF-8
	Locale           string
	WorkDir          string
	DependencyFolder string
	ReinstallCommand Command
}

func newConfigViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)

	v.SetDefault("platform", runtime.GOOS)
	v.SetDefault("folder", DefaultDependencyFolder)
	v.SetDefault("reinstall", DefaultReinstallCommand)
	_ = v.BindEnv("platform")
	_ = v.BindEnv("folder")
	_ = v.BindEnv("reinstall")

	// first non empty one wins
	_ = v.BindEnv("locale", "LC_ALL", "LC_MESSAGES", "LANG", "LANGUAGE")
	_ = v.BindEnv("workdir", "PWD")

	return v
}

func LoadConfig() (*Config, error) {
	v := newConfigViper()

	workDir := v.GetString("workdir")
	if workDir == "" {
		// PWD is not set by cmd.exe and powershell
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "error getting working directory")
		}
		workDir = wd
	}

	reinstall := strings.Fields(v.GetString("reinstall"))
	if len(reinstall) == 0 {
		return nil, errors.Errorf("%s_REINSTALL must not be empty", EnvPrefix)
	}

	folder := v.GetString("folder")
	if folder == "" {
		folder = DefaultDependencyFolder
	}

	return &Config{
		Platform:         v.GetString("platform"),
		Locale:           v.GetString("locale"),
		WorkDir:          workDir,
		DependencyFolder: folder,
		ReinstallCommand: Command{
			Name: reinstall[0],
			Args: reinstall[1:],
			Dir:  workDir,
		},
	}, nil
}
