//go:build !windows

package notification

import (
	"fmt"
	"log"
	"os"
)

// ShowBlockingError writes the error to stderr on non-Windows platforms.
func ShowBlockingError(title, message string) {
	log.Printf("%s: %s", title, message)
	fmt.Fprintf(os.Stderr, "%s: %s\n", title, message)
}
