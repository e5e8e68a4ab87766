// Where: internal/app/confirm.go
// What: Confirmation prompt for destructive-ish commands.
// Why: Interactive confirm in a TTY, plain y/N fallback otherwise.
package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

func confirmPrompt(message string) (bool, error) {
	if isTerminal(os.Stdin) {
		var ok bool
		err := huh.NewConfirm().
			Title(message).
			Value(&ok).
			Run()
		if err != nil {
			return false, err
		}
		return ok, nil
	}

	reader := bufio.NewReader(os.Stdin)
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", message)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	trimmed := strings.TrimSpace(strings.ToLower(line))
	return trimmed == "y" || trimmed == "yes", nil
}

func isTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
