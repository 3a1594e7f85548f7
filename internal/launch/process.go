package launch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

const pausePrompt = "Press enter to return to the menu…"

// process adapts exec.Cmd to tea.ExecCommand so the program can hand over
// its terminal streams, optionally holding the screen until enter is pressed.
type process struct {
	cmd    *exec.Cmd
	pause  bool
	stdin  io.Reader
	stdout io.Writer
}

func (p *process) SetStdin(r io.Reader) {
	p.stdin = r
	p.cmd.Stdin = r
}

func (p *process) SetStdout(w io.Writer) {
	p.stdout = w
	p.cmd.Stdout = w
}

func (p *process) SetStderr(w io.Writer) {
	p.cmd.Stderr = w
}

func (p *process) Run() error {
	err := p.cmd.Run()
	if p.pause {
		p.waitForEnter(err)
	}
	return err
}

func (p *process) waitForEnter(runErr error) {
	if p.stdin == nil || p.stdout == nil {
		return
	}
	var exitErr *exec.ExitError
	switch {
	case errors.As(runErr, &exitErr):
		fmt.Fprintf(p.stdout, "\nCommand exited with status %d.\n", exitErr.ExitCode())
	case runErr != nil:
		fmt.Fprintf(p.stdout, "\nCommand failed: %v\n", runErr)
	}
	fmt.Fprintf(p.stdout, "\n%s", pausePrompt)
	_, _ = bufio.NewReader(p.stdin).ReadString('\n')
}
