// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their
// behavior:
//
//   - Display* functions write formatted output to an [io.Writer]. They
//     handle presentation logic and colorization.
//   - Format* functions return a formatted string without performing I/O.
//   - Write* functions write data to files on the filesystem.

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/mpl/internal/ui"
)

// Result is the presentation-layer view of a completed bigint/rational
// operation: just enough to render or persist it without internal/cli
// depending on bigint or rational directly.
type Result struct {
	Op    string
	A, B  string
	Value string
	Bits  int
}

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode suppresses verbose output.
	Quiet bool
	// Verbose shows timing and bit-length diagnostics alongside the value.
	Verbose bool
	// ShowValue enables the value display when true.
	ShowValue bool
}

// WriteResultToFile writes a computed result to a file, headed by a
// comment banner describing the operation.
func WriteResultToFile(result Result, duration time.Duration, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# MPL Calculation Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Operation: %s\n", result.Op)
	fmt.Fprintf(file, "# Operands: a=%s b=%s\n", result.A, result.B)
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "# Bits: %d\n", result.Bits)
	fmt.Fprintf(file, "# Digits: %d\n", len(result.Value))
	fmt.Fprintf(file, "\n%s\n", result.Value)

	return nil
}

// FormatQuietResult formats a result for quiet mode: a single line
// suitable for scripting.
func FormatQuietResult(result Result) string {
	return result.Value
}

// DisplayQuietResult outputs a result in quiet mode.
func DisplayQuietResult(out io.Writer, result Result) {
	fmt.Fprintln(out, FormatQuietResult(result))
}

// DisplayResult renders a result with coloring and, when the value is wide
// enough, truncates its middle digits so the terminal isn't flooded.
func DisplayResult(out io.Writer, result Result, duration time.Duration, verbose, showValue bool) {
	fmt.Fprintf(out, "%s%s(%s, %s) =%s\n", ui.ColorCyan(), result.Op, result.A, result.B, ui.ColorReset())
	if showValue {
		fmt.Fprintf(out, "%s%s%s\n", ui.ColorGreen(), truncate(result.Value, TruncationLimit, DisplayEdges), ui.ColorReset())
	}
	if verbose {
		fmt.Fprintf(out, "%sTime: %s  Bits: %d  Digits: %d%s\n",
			ui.ColorCyan(), FormatExecutionDuration(duration), result.Bits, len(result.Value), ui.ColorReset())
	}
}

// DisplayResultWithConfig displays result per config and saves it to a
// file when config.OutputFile is set.
func DisplayResultWithConfig(out io.Writer, result Result, duration time.Duration, config OutputConfig) error {
	if config.Quiet {
		DisplayQuietResult(out, result)
	} else {
		DisplayResult(out, result, duration, config.Verbose, config.ShowValue)
	}

	if config.OutputFile != "" {
		if err := WriteResultToFile(result, duration, config); err != nil {
			return err
		}
		if !config.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
		}
	}

	return nil
}
