package review

import (
	"os"
	"os/exec"
	"strings"

	"github.com/ariel-frischer/chlog/internal/errors"
)

// fallbackEditors are probed on PATH when no editor is configured.
var fallbackEditors = []string{"vim", "vi", "nano"}

// ResolveEditor picks the editor command: the configured override first,
// then $VISUAL, $EDITOR, and finally common editors found on PATH. The
// returned string may carry arguments.
func ResolveEditor(override string) (string, error) {
	for _, candidate := range []string{override, os.Getenv("VISUAL"), os.Getenv("EDITOR")} {
		if strings.TrimSpace(candidate) != "" {
			return candidate, nil
		}
	}
	for _, name := range fallbackEditors {
		if _, err := exec.LookPath(name); err == nil {
			return name, nil
		}
	}
	return "", errors.NewNotFoundError("no editor found",
		"set the EDITOR environment variable or the editor config key")
}

// InvokeEditor opens path in the editor, attached to the current terminal,
// and blocks until it exits.
func InvokeEditor(editor, path string) error {
	parts := strings.Fields(editor)
	args := append(parts[1:], path)

	cmd := exec.Command(parts[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return errors.WrapWithMessage(err, errors.Runtime, "editor exited with error")
	}
	return nil
}
