// Package editor resolves the configured text editor and launches it
// against a note, injecting prefill text where the editor supports it.
package editor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Default is the editor used when none is configured.
const Default = "vi"

// ErrUnsupportedEditor reports that prefill injection is not known for the
// editor. Callers fall back to a plain invocation without prefill flags.
var ErrUnsupportedEditor = errors.New("prefill injection not supported for editor")

// Resolve returns the configured editor, falling back to the default.
func Resolve(configured string) string {
	if strings.TrimSpace(configured) == "" {
		return Default
	}
	return configured
}

// vimEscaper makes prefill text safe inside a double-quoted :execute string.
var vimEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
)

// PrefillArgs returns editor-specific startup arguments that position the
// cursor and insert the prefill text. The supported set is closed: the vi
// family shares one variant, anything else gets ErrUnsupportedEditor.
func PrefillArgs(editorName, prefill string) ([]string, error) {
	if prefill == "" {
		return nil, nil
	}
	switch filepath.Base(editorName) {
	case "vi", "vim", "nvim":
		cmd := `:set filetype=markdown|set path+=**|:exe "$normal A` + vimEscaper.Replace(prefill) + `"`
		return []string{"-c", cmd}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEditor, editorName)
	}
}

// execCommand builds the editor process. Swapped in tests.
var execCommand = exec.CommandContext

// Open launches the editor against path with the terminal attached,
// blocking until the editor exits. An empty path opens an untitled buffer.
func Open(ctx context.Context, editorName, path, prefill string) error {
	args, err := PrefillArgs(editorName, prefill)
	if err != nil {
		// Unsupported editors still open the note, just without prefill.
		args = nil
	}
	if path != "" {
		args = append(args, path)
	}

	cmd := execCommand(ctx, editorName, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
