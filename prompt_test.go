package main_test

import (
	"bytes"
	"strings"
	"testing"

	main "github.com/anton15x/dropbox_ignore_cli"
	"github.com/stretchr/testify/require"
)

func TestTerminalPrompter(t *testing.T) {
	tests := []struct {
		name string
		f    func(t *testing.T)
	}{
		{
			name: "confirm_answers",
			f: func(t *testing.T) {
				var out bytes.Buffer
				p := main.NewTerminalPrompter(strings.NewReader("\ny\nYES\nn\nmaybe\nno\n"), &out)
				for _, expected := range []bool{true, true, true, false, false} {
					ok, err := p.Confirm("Ignore?")
					requireNoError(t, err)
					require.Equal(t, expected, ok)
				}
				require.Contains(t, out.String(), "? Ignore? (Y/n)")
			},
		},
		{
			name: "select_retries_invalid_input",
			f: func(t *testing.T) {
				var out bytes.Buffer
				p := main.NewTerminalPrompter(strings.NewReader("3\nabc\n2\n"), &out)
				i, err := p.Select("Select", []string{"Add into the ignore list", "Remove from the ignore list"})
				requireNoError(t, err)
				require.Equal(t, 1, i)
				require.Contains(t, out.String(), "  1) Add into the ignore list\n")
				require.Contains(t, out.String(), "invalid selection \"3\"")
			},
		},
		{
			name: "input_without_trailing_newline",
			f: func(t *testing.T) {
				var out bytes.Buffer
				p := main.NewTerminalPrompter(strings.NewReader("  /tmp/my folder  "), &out)
				s, err := p.Input("Please enter the file path")
				requireNoError(t, err)
				require.Equal(t, "/tmp/my folder", s)
			},
		},
		{
			name: "eof",
			f: func(t *testing.T) {
				var out bytes.Buffer
				p := main.NewTerminalPrompter(strings.NewReader(""), &out)
				_, err := p.Confirm("Ignore?")
				require.Error(t, err)
				_, err = p.Select("Select", []string{"a"})
				require.Error(t, err)
				_, err = p.Input("Path")
				require.Error(t, err)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.f(t)
		})
	}
}
