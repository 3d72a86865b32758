package app

import (
	"fmt"
	"io"
)

// Version is mplcalc's build version, overridable at link time with
// -ldflags "-X github.com/agbru/mpl/internal/app.Version=...".
var Version = "dev"

// HasVersionFlag reports whether args requests the version banner,
// checked before flag parsing so it works even with no other arguments.
func HasVersionFlag(args []string) bool {
	for _, a := range args {
		if a == "-version" || a == "--version" || a == "-v" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner to w.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "mplcalc %s\n", Version)
}
