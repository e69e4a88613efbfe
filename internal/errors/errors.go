package errors

import (
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/lifeboost/internal/logger"
)

var (
	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

// Format renders err with the "Error: " prefix shown to users.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs err, prints it to stderr and exits with status 1. A nil err is a no-op.
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("command failed", "error", err)
	fmt.Fprintln(stderr, Format(err))
	exit(1)
}
