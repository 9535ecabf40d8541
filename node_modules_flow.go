package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type FlowState int

const (
	FlowStateIdle FlowState = iota
	FlowStateDetected
	FlowStateConfirmPending
	FlowStateDeleting
	FlowStateIgnoring
	FlowStateReinstalling
	FlowStateDone
)

func (s FlowState) String() string {
	switch s {
	case FlowStateIdle:
		return "idle"
	case FlowStateDetected:
		return "detected"
	case FlowStateConfirmPending:
		return "confirm-pending"
	case FlowStateDeleting:
		return "deleting"
	case FlowStateIgnoring:
		return "ignoring"
	case FlowStateReinstalling:
		return "reinstalling"
	case FlowStateDone:
		return "done"
	default:
		return fmt.Sprintf("FlowState(%d)", int(s))
	}
}

type FlowOutcome int

const (
	// FlowNotFound and FlowDeclined leave the folder untouched, the caller
	// continues with the manual prompts.
	FlowNotFound FlowOutcome = iota
	FlowDeclined
	FlowDone
	FlowAborted
	FlowUnsupported
)

func (o FlowOutcome) Handled() bool {
	return o != FlowNotFound && o != FlowDeclined
}

// NodeModulesFlow offers to exclude the dependency folder next to the working
// directory. The folder gets emptied first, because deleting it later would
// also delete the attribute, and is reinstalled afterwards.
type NodeModulesFlow struct {
	fs        afero.Fs
	prompter  Prompter
	ignorer   *Ignorer
	runner    CommandRunner
	messages  *Messages
	out       io.Writer
	logger    *zap.Logger
	workDir   string
	folder    string
	reinstall Command

	state FlowState
}

func NewNodeModulesFlow(fs afero.Fs, prompter Prompter, ignorer *Ignorer, runner CommandRunner, cfg *Config, messages *Messages, out io.Writer, logger *zap.Logger) *NodeModulesFlow {
	return &NodeModulesFlow{
		fs:        fs,
		prompter:  prompter,
		ignorer:   ignorer,
		runner:    runner,
		messages:  messages,
		out:       out,
		logger:    logger,
		workDir:   cfg.WorkDir,
		folder:    cfg.DependencyFolder,
		reinstall: cfg.ReinstallCommand,
	}
}

func (f *NodeModulesFlow) State() FlowState {
	return f.state
}

func (f *NodeModulesFlow) FolderPath() string {
	return filepath.Join(f.workDir, f.folder)
}

func (f *NodeModulesFlow) transition(state FlowState) {
	f.logger.Debug("dependency folder flow", zap.Stringer("from", f.state), zap.Stringer("to", state))
	f.state = state
}

// detection is best effort, any stat error counts as not found
func (f *NodeModulesFlow) detect(path string) bool {
	info, err := f.fs.Stat(path)
	if err != nil {
		if !os.IsNotExist(err) {
			f.logger.Debug("stat of dependency folder failed", zap.String("path", path), zap.Error(err))
		}
		return false
	}
	return info.IsDir()
}

func (f *NodeModulesFlow) folderSize(path string) uint64 {
	var size uint64
	_ = afero.Walk(f.fs, path, func(_ string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			size += uint64(info.Size())
		}
		return nil
	})
	return size
}

func (f *NodeModulesFlow) fail(err error) (FlowOutcome, error) {
	f.logger.Error("dependency folder flow aborted", zap.Stringer("state", f.state), zap.Error(err))
	fmt.Fprintln(f.out)
	fmt.Fprintln(f.out, color.RedString("%s: %s", f.messages.Aborted, err))
	return FlowAborted, nil
}

// Run returns an error only if the user could not be asked.
func (f *NodeModulesFlow) Run(ctx context.Context) (FlowOutcome, error) {
	path := f.FolderPath()
	f.state = FlowStateIdle
	if !f.detect(path) {
		return FlowNotFound, nil
	}
	f.transition(FlowStateDetected)

	f.transition(FlowStateConfirmPending)
	confirmed, err := f.prompter.Confirm(fmt.Sprintf(f.messages.DependencyFolderFound, f.folder))
	if err != nil {
		f.transition(FlowStateIdle)
		return FlowNotFound, errors.Wrap(err, "error asking to ignore dependency folder")
	}
	if !confirmed {
		f.transition(FlowStateIdle)
		return FlowDeclined, nil
	}

	if !f.ignorer.Strategy().Supported() {
		// nothing gets deleted, if the flag can not be set afterwards
		f.ignorer.SetIgnore(ctx, IgnoreRequest{Path: path, Ignore: true})
		return FlowUnsupported, nil
	}

	f.transition(FlowStateDeleting)
	fmt.Fprintf(f.out, f.messages.DeletingFolder+"\n", f.folder, humanize.Bytes(f.folderSize(path)))
	if err := f.fs.RemoveAll(path); err != nil {
		return f.fail(errors.Wrapf(err, "error deleting %s", path))
	}
	if err := f.fs.Mkdir(path, os.ModePerm); err != nil {
		return f.fail(errors.Wrapf(err, "error recreating %s", path))
	}

	f.transition(FlowStateIgnoring)
	switch f.ignorer.SetIgnore(ctx, IgnoreRequest{Path: path, Ignore: true}) {
	case SetSucceeded:
	case SetUnsupported:
		return FlowUnsupported, nil
	default:
		return f.fail(errors.Errorf("could not ignore %s", path))
	}

	f.transition(FlowStateReinstalling)
	fmt.Fprintln(f.out, f.messages.ReinstallingModule)
	result, err := f.runner.Run(ctx, f.reinstall)
	if err != nil {
		f.logger.Warn("reinstall failed", zap.Stringer("command", f.reinstall), zap.Int("exitCode", result.ExitCode), zap.Error(err))
	} else {
		f.logger.Info("reinstall finished", zap.Stringer("command", f.reinstall))
	}

	f.transition(FlowStateDone)
	return FlowDone, nil
}
