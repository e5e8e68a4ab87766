// Where: internal/app/version_cmd.go
// What: version command handler.
// Why: Surface build-time version information.
package app

import (
	"fmt"
	"io"

	"github.com/hideokamoto/aws-simple-stripe-event-notifier/internal/version"
)

func runVersion(_ CLI, _ Dependencies, out io.Writer) int {
	fmt.Fprintf(out, "stripe-notifier version %s\n", version.GetVersion())
	return 0
}
