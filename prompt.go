package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

type Prompter interface {
	// Confirm defaults to yes on an empty answer.
	Confirm(message string) (bool, error)
	// Select returns the index of the chosen item.
	Select(message string, items []string) (int, error)
	Input(message string) (string, error)
}

// TerminalPrompter asks on w and reads line by line from r.
type TerminalPrompter struct {
	reader *bufio.Reader
	w      io.Writer
}

func NewTerminalPrompter(r io.Reader, w io.Writer) *TerminalPrompter {
	return &TerminalPrompter{
		reader: bufio.NewReader(r),
		w:      w,
	}
}

func (p *TerminalPrompter) question(message string) {
	fmt.Fprintf(p.w, "%s %s", color.GreenString("?"), color.New(color.Bold).Sprint(message))
}

func (p *TerminalPrompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return "", fmt.Errorf("error reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (p *TerminalPrompter) Confirm(message string) (bool, error) {
	for {
		p.question(message)
		fmt.Fprint(p.w, " (Y/n) ")

		answer, err := p.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "", "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

func (p *TerminalPrompter) Select(message string, items []string) (int, error) {
	if len(items) == 0 {
		return 0, fmt.Errorf("nothing to select for %q", message)
	}
	for {
		p.question(message)
		fmt.Fprintln(p.w)
		for i, item := range items {
			fmt.Fprintf(p.w, "  %d) %s\n", i+1, item)
		}
		fmt.Fprintf(p.w, "  [1-%d]: ", len(items))

		answer, err := p.readLine()
		if err != nil {
			return 0, err
		}
		num, err := strconv.Atoi(answer)
		if err == nil && num >= 1 && num <= len(items) {
			return num - 1, nil
		}
		fmt.Fprintln(p.w, color.RedString("invalid selection %q: choose 1-%d", answer, len(items)))
	}
}

func (p *TerminalPrompter) Input(message string) (string, error) {
	p.question(message)
	fmt.Fprint(p.w, " ")
	return p.readLine()
}
