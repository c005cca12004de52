// Package display renders the banner, the run-report table, and small
// formatting helpers shared by CLI output.
package display

import (
	"fmt"
	"os"

	"github.com/backmassage/prefixrun/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, ` ____            __ _      ____
|  _ \ _ __ ___ / _(_)_  _|  _ \ _   _ _ __
| |_) | '__/ _ \ |_| \ \/ / |_) | | | | '_ \
|  __/| | |  __/  _| |>  <|  _ <| |_| | | | |
|_|   |_|  \___|_| |_/_/\_\_| \_\\__,_|_| |_|
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
