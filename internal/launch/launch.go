package launch

import (
	"log"
	"os/exec"
	"strings"
)

// Action is the symbolic name the UI sends in /action?action=.
type Action string

const (
	ActionExplorer Action = "explorer"
	ActionEditor   Action = "vscode"
	ActionTerminal Action = "terminal"
)

// Command is one external process invocation. Most commands take the target
// directory as their single argument. The terminal on Linux and other Unix
// systems is the exception: x-terminal-emulator has no portable directory
// flag, so it runs with no arguments and Dir set to the target.
type Command struct {
	Name string
	Args []string
	// Working directory for the child; empty inherits the server's.
	Dir string
}

// Launcher starts a process without waiting for it.
type Launcher interface {
	Launch(cmd Command) error
}

// Dispatcher maps actions to commands for a target directory.
type Dispatcher struct {
	launcher Launcher
	builders map[Action]func(dir string) Command
}

// NewDispatcher builds a dispatcher with the commands of the current
// platform. editorPath is the configured code editor executable.
func NewDispatcher(l Launcher, editorPath string) *Dispatcher {
	return &Dispatcher{
		launcher: l,
		builders: platformCommands(strings.TrimSpace(editorPath)),
	}
}

// Dispatch fires the command bound to action against dir. Unknown actions
// are ignored. Launch errors are logged and otherwise dropped; the return
// value only reports whether a launch was attempted.
func (d *Dispatcher) Dispatch(action, dir string) bool {
	build, ok := d.builders[Action(strings.TrimSpace(action))]
	if !ok {
		return false
	}
	cmd := build(dir)
	if cmd.Name == "" {
		log.Printf("launch: %s has no executable configured", action)
		return false
	}
	if err := d.launcher.Launch(cmd); err != nil {
		log.Printf("launch: %s %s: %v", action, dir, err)
	}
	return true
}

// ExecLauncher starts real processes, detached from the server: no stdio,
// own session or process group, reaped in the background.
type ExecLauncher struct{}

func (ExecLauncher) Launch(c Command) error {
	cmd := exec.Command(c.Name, c.Args...)
	cmd.Dir = c.Dir
	detach(cmd)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
