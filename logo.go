package main

import (
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

//go:embed ascii-art.txt
var asciiArt string

const logoTabSize = 4

// FormatLogo pads every line of the art and appends an empty line of the same
// width, so the background color forms a box.
func FormatLogo(art string) string {
	lines := strings.Split(strings.TrimRight(art, "\r\n"), "\n")
	tab := strings.Repeat(" ", logoTabSize)
	width := len([]rune(strings.TrimRight(lines[0], "\r"))) + logoTabSize*2

	var b strings.Builder
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		b.WriteString(tab)
		b.WriteString(line)
		b.WriteString(strings.Repeat(" ", max(0, width-logoTabSize*2-len([]rune(line)))))
		b.WriteString(tab)
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat(" ", width))
	return b.String()
}

func PrintLogo(w io.Writer, version string, messages *Messages) {
	logo := color.New(color.FgHiBlue, color.BgWhite)
	for _, line := range strings.Split(FormatLogo(asciiArt), "\n") {
		fmt.Fprintln(w, logo.Sprint(line))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s%s: %s\n\n", strings.Repeat(" ", logoTabSize), messages.Version, version)
}
