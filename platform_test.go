package main_test

import (
	"testing"

	main "github.com/anton15x/dropbox_ignore_cli"
	"github.com/stretchr/testify/require"
)

func TestBuildCommand(t *testing.T) {
	tests := []struct {
		platform string
		path     string
		flag     int
		expected main.Command
	}{
		{
			platform: "darwin",
			path:     "/tmp/my folder",
			flag:     1,
			expected: main.Command{Name: "xattr", Args: []string{"-w", "com.dropbox.ignored", "1", "/tmp/my folder"}},
		},
		{
			platform: "darwin",
			path:     "/tmp/x",
			flag:     0,
			expected: main.Command{Name: "xattr", Args: []string{"-w", "com.dropbox.ignored", "0", "/tmp/x"}},
		},
		{
			platform: "linux",
			path:     "/tmp/x",
			flag:     1,
			expected: main.Command{Name: "attr", Args: []string{"-s", "com.dropbox.ignored", "-V", "1", "/tmp/x"}},
		},
		{
			platform: "linux",
			path:     `/tmp/"quoted"`,
			flag:     0,
			expected: main.Command{Name: "attr", Args: []string{"-s", "com.dropbox.ignored", "-V", "0", `/tmp/"quoted"`}},
		},
		{
			platform: "windows",
			path:     `C:\Users\me\Dropbox\node_modules`,
			flag:     1,
			expected: main.Command{Name: "powershell.exe", Args: []string{
				"-NoProfile", "-NonInteractive", "-Command",
				"Set-Content", "-LiteralPath", `'C:\Users\me\Dropbox\node_modules'`,
				"-Stream", "com.dropbox.ignored", "-Value", "1",
			}},
		},
		{
			platform: "windows",
			path:     `C:\it's here`,
			flag:     0,
			expected: main.Command{Name: "powershell.exe", Args: []string{
				"-NoProfile", "-NonInteractive", "-Command",
				"Set-Content", "-LiteralPath", `'C:\it''s here'`,
				"-Stream", "com.dropbox.ignored", "-Value", "0",
			}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.platform+"_"+tt.path, func(t *testing.T) {
			strategy := main.ResolveStrategy(tt.platform)
			require.True(t, strategy.Supported())
			require.Equal(t, tt.platform, strategy.Platform())

			cmd, ok := strategy.BuildCommand(tt.path, tt.flag)
			require.True(t, ok)
			require.Equal(t, tt.expected, cmd)
			require.NotContains(t, cmd.Args, "true")
			require.NotContains(t, cmd.Args, "false")
		})
	}
}

func TestResolveStrategyUnsupported(t *testing.T) {
	for _, platform := range []string{"freebsd", "plan9", "", "Linux"} {
		strategy := main.ResolveStrategy(platform)
		require.False(t, strategy.Supported(), platform)
		require.Equal(t, platform, strategy.Platform())

		_, ok := strategy.BuildCommand("/tmp/x", 1)
		require.False(t, ok, platform)
	}
}

func TestFlagValue(t *testing.T) {
	require.Equal(t, 1, main.FlagValue(true))
	require.Equal(t, 0, main.FlagValue(false))
}

func TestCommandString(t *testing.T) {
	cmd := main.Command{Name: "attr", Args: []string{"-s", "com.dropbox.ignored", "-V", "1", "/tmp/my folder"}}
	require.Equal(t, "attr -s com.dropbox.ignored -V 1 '/tmp/my folder'", cmd.String())
}
