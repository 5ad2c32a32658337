package wm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds each i3-msg invocation. A timeout is treated
// like any other communication failure.
const DefaultTimeout = 5 * time.Second

// runner executes the i3-msg binary and returns stdout, stderr and the
// spawn/exit error. Injected so tests can run without i3.
type runner func(ctx context.Context, args ...string) (stdout, stderr []byte, err error)

func execRunner(ctx context.Context, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, "i3-msg", args...)
	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf
	err := cmd.Run()
	return out.Bytes(), errBuf.Bytes(), err
}

// I3Msg talks to i3 by invoking the i3-msg companion binary, the same
// transport the i3 distribution documents for scripting.
type I3Msg struct {
	timeout time.Duration
	run     runner
}

// NewI3Msg returns a client with the given per-call timeout.
// A timeout of 0 uses DefaultTimeout.
func NewI3Msg(timeout time.Duration) *I3Msg {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &I3Msg{timeout: timeout, run: execRunner}
}

// message runs one i3-msg invocation of the given type and decodes the
// JSON reply into v.
func (c *I3Msg) message(msgType string, payload string, v interface{}) error {
	args := []string{"-t", msgType}
	if payload != "" {
		args = append(args, payload)
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	stdout, stderr, err := c.run(ctx, args...)
	if err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return ErrMsgNotFound
		}
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %v", ErrNotRunning, ctx.Err())
		}
		msg := strings.TrimSpace(string(stderr))
		if msg == "" {
			msg = strings.TrimSpace(string(stdout))
		}
		if strings.Contains(msg, "Could not connect to i3") || strings.Contains(msg, "IPC") {
			return ErrNotRunning
		}
		if msg == "" {
			msg = err.Error()
		}
		return &CommandError{Msg: msg}
	}

	if err := json.Unmarshal(stdout, v); err != nil {
		return &CommandError{Msg: fmt.Sprintf("unexpected reply: %v", err)}
	}
	return nil
}

// command sends a run_command payload and checks the per-command
// success flags i3 reports.
func (c *I3Msg) command(payload string) error {
	var replies []struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := c.message("command", payload, &replies); err != nil {
		return err
	}
	if len(replies) == 0 {
		return &CommandError{Msg: "empty command reply"}
	}
	for _, r := range replies {
		if !r.Success {
			msg := r.Error
			if msg == "" {
				msg = fmt.Sprintf("command rejected: %s", payload)
			}
			return &CommandError{Msg: msg}
		}
	}
	return nil
}

// Workspaces implements Client.
func (c *I3Msg) Workspaces() ([]Workspace, error) {
	var workspaces []Workspace
	if err := c.message("get_workspaces", "", &workspaces); err != nil {
		return nil, err
	}
	return workspaces, nil
}

// Outputs implements Client.
func (c *I3Msg) Outputs() ([]Output, error) {
	var outputs []Output
	if err := c.message("get_outputs", "", &outputs); err != nil {
		return nil, err
	}
	return outputs, nil
}

// MoveWorkspace implements Client.
func (c *I3Msg) MoveWorkspace(name, output string) error {
	return c.command(fmt.Sprintf("[workspace=%q] move workspace to output %s", name, output))
}

// FocusWorkspace implements Client.
func (c *I3Msg) FocusWorkspace(name string) error {
	return c.command(fmt.Sprintf("workspace %q", name))
}
