// Package export converts a note to another document format via pandoc.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/podratz/note/pkg/note"
	"github.com/podratz/note/pkg/store"
)

// Export resolves a note the same way open does and hands it to pandoc.
// Unlike open, export requires a resolvable path.
type Export struct {
	DateChoice string
	Name       string
	Format     string

	Now    time.Time
	Config store.Config

	// Run overrides the converter invocation, for tests.
	Run func(ctx context.Context, name string, args ...string) error
}

func (e *Export) Do(ctx context.Context) error {
	if e.Config == nil {
		return errors.New("can not export, no config")
	}
	format := strings.TrimPrefix(strings.TrimSpace(e.Format), ".")
	if format == "" {
		return errors.New("export format required")
	}
	now := e.Now
	if now.IsZero() {
		now = time.Now()
	}

	target, err := note.ResolveTarget(e.Config, e.DateChoice, e.Name, now)
	if err != nil {
		return fmt.Errorf("resolve note: %w", err)
	}

	args := Args(target.Path, format)
	fmt.Fprintln(os.Stderr, "pandoc "+strings.Join(args, " "))

	run := e.Run
	if run == nil {
		run = execRun
	}
	return run(ctx, "pandoc", args...)
}

// Args returns the pandoc arguments converting path into path.<format>.
func Args(path, format string) []string {
	return []string{path, "-o", path + "." + format}
}

func execRun(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
