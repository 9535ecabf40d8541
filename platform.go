package main

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const DropboxIgnoredAttribute = "com.dropbox.ignored"

const (
	PlatformDarwin  = "darwin"
	PlatformWindows = "windows"
	PlatformLinux   = "linux"
)

// Strategy builds the command that writes the ignore flag on one platform.
// BuildCommand returns false when no command exists for the platform.
type Strategy interface {
	Platform() string
	Supported() bool
	BuildCommand(path string, flag int) (Command, bool)
}

// FlagValue is the only representation of the ignore intent that ends up in a command.
func FlagValue(ignore bool) int {
	return lo.Ternary(ignore, 1, 0)
}

func ResolveStrategy(platform string) Strategy {
	switch platform {
	case PlatformDarwin:
		return MacStrategy{}
	case PlatformWindows:
		return WindowsStrategy{}
	case PlatformLinux:
		return LinuxStrategy{}
	default:
		return UnsupportedStrategy{platform: platform}
	}
}

/**
 * xattr -w com.dropbox.ignored 1 testfile
 * xattr -p com.dropbox.ignored testfile
 * xattr -d com.dropbox.ignored testfile
 */
type MacStrategy struct{}

func (MacStrategy) Platform() string { return PlatformDarwin }
func (MacStrategy) Supported() bool  { return true }
func (MacStrategy) BuildCommand(path string, flag int) (Command, bool) {
	return Command{
		Name: "xattr",
		Args: []string{"-w", DropboxIgnoredAttribute, strconv.Itoa(flag), path},
	}, true
}

// the command text after -Command is parsed by powershell again,
// so the path has to be a single quoted literal
type WindowsStrategy struct{}

func (WindowsStrategy) Platform() string { return PlatformWindows }
func (WindowsStrategy) Supported() bool  { return true }
func (WindowsStrategy) BuildCommand(path string, flag int) (Command, bool) {
	return Command{
		Name: "powershell.exe",
		Args: []string{
			"-NoProfile", "-NonInteractive", "-Command",
			"Set-Content", "-LiteralPath", powershellQuote(path),
			"-Stream", DropboxIgnoredAttribute,
			"-Value", strconv.Itoa(flag),
		},
	}, true
}

func powershellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

/**
 * Usage: attr [-LRSq] -s attrname [-V attrvalue] pathname  # set value
 *        attr [-LRSq] -g attrname pathname                 # get value
 *        attr [-LRSq] -r attrname pathname                 # remove attr
 *        attr [-LRq]  -l pathname                          # list attrs
 *
 * attr stores the value as user.com.dropbox.ignored
 */
type LinuxStrategy struct{}

func (LinuxStrategy) Platform() string { return PlatformLinux }
func (LinuxStrategy) Supported() bool  { return true }
func (LinuxStrategy) BuildCommand(path string, flag int) (Command, bool) {
	return Command{
		Name: "attr",
		Args: []string{"-s", DropboxIgnoredAttribute, "-V", strconv.Itoa(flag), path},
	}, true
}

type UnsupportedStrategy struct {
	platform string
}

func (s UnsupportedStrategy) Platform() string { return s.platform }
func (UnsupportedStrategy) Supported() bool    { return false }
func (UnsupportedStrategy) BuildCommand(string, int) (Command, bool) {
	return Command{}, false
}
