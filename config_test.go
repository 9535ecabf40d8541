package main_test

import (
	"runtime"
	"testing"

	main "github.com/anton15x/dropbox_ignore_cli"
	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	for _, env := range []string{
		"LC_ALL", "LC_MESSAGES", "LANG", "LANGUAGE",
		"DROPBOX_IGNORE_PLATFORM", "DROPBOX_IGNORE_FOLDER", "DROPBOX_IGNORE_REINSTALL",
	} {
		t.Setenv(env, "")
	}
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name string
		f    func(t *testing.T)
	}{
		{
			name: "defaults",
			f: func(t *testing.T) {
				dir := t.TempDir()
				t.Setenv("PWD", dir)

				cfg, err := main.LoadConfig()
				requireNoError(t, err)
				require.Equal(t, runtime.GOOS, cfg.Platform)
				require.Equal(t, "", cfg.Locale)
				require.Equal(t, dir, cfg.WorkDir)
				require.Equal(t, "node_modules", cfg.DependencyFolder)
				require.Equal(t, main.Command{Name: "npm", Args: []string{"i"}, Dir: dir}, cfg.ReinstallCommand)
			},
		},
		{
			name: "locale_precedence",
			f: func(t *testing.T) {
				t.Setenv("LANGUAGE", "en")
				t.Setenv("LANG", "ko_KR.UTF-8")
				cfg, err := main.LoadConfig()
				requireNoError(t, err)
				require.Equal(t, "ko_KR.UTF-8", cfg.Locale)

				t.Setenv("LC_MESSAGES", "de_DE.UTF-8")
				cfg, err = main.LoadConfig()
				requireNoError(t, err)
				require.Equal(t, "de_DE.UTF-8", cfg.Locale)

				t.Setenv("LC_ALL", "C")
				cfg, err = main.LoadConfig()
				requireNoError(t, err)
				require.Equal(t, "C", cfg.Locale)
			},
		},
		{
			name: "overrides",
			f: func(t *testing.T) {
				t.Setenv("DROPBOX_IGNORE_PLATFORM", "plan9")
				t.Setenv("DROPBOX_IGNORE_FOLDER", "vendor")
				t.Setenv("DROPBOX_IGNORE_REINSTALL", "yarn install --frozen-lockfile")

				cfg, err := main.LoadConfig()
				requireNoError(t, err)
				require.Equal(t, "plan9", cfg.Platform)
				require.Equal(t, "vendor", cfg.DependencyFolder)
				require.Equal(t, "yarn", cfg.ReinstallCommand.Name)
				require.Equal(t, []string{"install", "--frozen-lockfile"}, cfg.ReinstallCommand.Args)
			},
		},
		{
			name: "blank_reinstall",
			f: func(t *testing.T) {
				t.Setenv("DROPBOX_IGNORE_REINSTALL", "   ")

				_, err := main.LoadConfig()
				require.Error(t, err)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			tt.f(t)
		})
	}
}
