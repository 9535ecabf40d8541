package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

type IgnoreRequest struct {
	Path   string
	Ignore bool
	// Silent suppresses everything except errors.
	Silent bool
}

type SetResult int

const (
	SetFailed SetResult = iota
	SetSucceeded
	SetUnsupported
)

func (r SetResult) OK() bool {
	return r == SetSucceeded
}

func (r SetResult) String() string {
	switch r {
	case SetSucceeded:
		return "succeeded"
	case SetUnsupported:
		return "unsupported"
	default:
		return "failed"
	}
}

// Ignorer writes the dropbox ignore flag through the platform command.
// The strategy is chosen once, when the Ignorer is created.
type Ignorer struct {
	strategy Strategy
	runner   CommandRunner
	messages *Messages
	out      io.Writer
	logger   *zap.Logger
}

func NewIgnorer(strategy Strategy, runner CommandRunner, messages *Messages, out io.Writer, logger *zap.Logger) *Ignorer {
	return &Ignorer{
		strategy: strategy,
		runner:   runner,
		messages: messages,
		out:      out,
		logger:   logger,
	}
}

func (i *Ignorer) Strategy() Strategy {
	return i.strategy
}

// SetIgnore never returns an error, every failure is reported to the user and
// ends up in the result.
func (i *Ignorer) SetIgnore(ctx context.Context, req IgnoreRequest) SetResult {
	flag := FlagValue(req.Ignore)
	cmd, ok := i.strategy.BuildCommand(req.Path, flag)
	if !ok {
		i.logger.Warn("unsupported platform", zap.String("platform", i.strategy.Platform()))
		if !req.Silent {
			fmt.Fprintf(i.out, i.messages.UnsupportedPlatform+"\n", i.strategy.Platform())
		}
		return SetUnsupported
	}

	i.logger.Info("setting ignore flag", zap.String("path", req.Path), zap.Int("flag", flag))
	_, err := i.runner.Run(ctx, cmd)
	if err != nil {
		i.logger.Error("error setting ignore flag", zap.String("path", req.Path), zap.Error(err))
		fmt.Fprintln(i.out)
		fmt.Fprintln(i.out, color.RedString("%s", err))
		return SetFailed
	}

	if !req.Silent {
		msg := i.messages.AddSuccess
		if !req.Ignore {
			msg = i.messages.RemoveSuccess
		}
		fmt.Fprintln(i.out, color.GreenString("%s", msg))
	}
	return SetSucceeded
}
