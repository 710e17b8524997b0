package display

import (
	"fmt"
	"os"

	"github.com/teomat/vidkit/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, ` __     ___     _ _  ___ _
 \ \   / (_) __| | |/ (_) |_
  \ \ / /| |/ _`+"`"+` | ' /| | __|
   \ V / | | (_| | . \| | |_
    \_/  |_|\__,_|_|\_\_|\__|
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
