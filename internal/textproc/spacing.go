package textproc

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Spacer is the optional word-spacing corrector for Korean text that was
// scanned without reliable inter-word spacing. Implementations are
// best-effort: any error means "unavailable for this call" and the
// Normalizer keeps the input unchanged.
type Spacer interface {
	Space(text string) (string, error)
}

// NopSpacer is the default when no spacing service is configured.
type NopSpacer struct{}

func (NopSpacer) Space(text string) (string, error) { return text, nil }

// CommandSpacer pipes text through an external spacing binary
// (e.g. a kospacing CLI) via stdin/stdout.
type CommandSpacer struct {
	Command string
	Args    []string
	Timeout time.Duration // 0 -> 10s
}

func NewCommandSpacer(command string, args ...string) *CommandSpacer {
	return &CommandSpacer{Command: command, Args: args}
}

func (s *CommandSpacer) Space(text string) (string, error) {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.Command, s.Args...)
	cmd.Stdin = strings.NewReader(text)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("spacer %q: %w: %s", s.Command, err, strings.TrimSpace(errb.String()))
	}
	return out.String(), nil
}
