// Package config parses and resolves mplcalc's configuration: CLI flags
// first, then MPL_-prefixed environment variable overrides for anything
// not explicitly set, then adaptive hardware-based defaults for anything
// still unset, mirroring the teacher's config package layering.
package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// EnvPrefix is prepended to every environment variable mplcalc honors.
const EnvPrefix = "MPL_"

// AppConfig holds every setting mplcalc needs to run a single
// bigint/rational operation and present its result.
type AppConfig struct {
	// Op names the operation to perform: add, sub, mul, div, mod, gcd, lcm,
	// extgcd, pow, shift, and, or, xor, bitrange, modpow2, rat-add, rat-sub,
	// rat-mul, rat-div, rat-floor, rat-ceil.
	Op string
	// A and B are the operand literals, parsed as rational.Rat when Op
	// starts with "rat-" and as bigint.Int otherwise.
	A, B string
	// Base is the numeric base used to parse integer operands. 0 requests
	// prefix auto-detection ("0x"/"0b"/"0o", or a bare leading "0" for
	// octal); any other value parses the literal verbatim in that base, so
	// a prefixed operand is rejected.
	Base int
	// StrictParse selects how an invalid operand literal is handled: when
	// true (the default) it is an error; when false the operand is treated
	// as zero.
	StrictParse bool

	MetricsAddr string
	TUI         bool

	Timeout time.Duration

	Verbose    bool
	Quiet      bool
	ShowValue  bool
	OutputFile string

	// KaratsubaParallelThreshold overrides bigint's default bit-length
	// threshold for parallel multiplication; 0 requests the adaptive
	// hardware-based estimate in thresholds.go.
	KaratsubaParallelThreshold int
}

// ParseConfig parses args (excluding the program name) into an AppConfig,
// applying environment overrides to flags left at their default and then
// adaptive hardware-based defaults to anything still zero. It writes usage
// output to errWriter on error, matching flag.FlagSet's own convention.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	cfg := AppConfig{}
	fs.StringVar(&cfg.Op, "op", "add", "operation: add|sub|mul|div|mod|gcd|lcm|extgcd|pow|shift|and|or|xor|bitrange|modpow2|rat-add|rat-sub|rat-mul|rat-div|rat-floor|rat-ceil")
	fs.StringVar(&cfg.A, "a", "0", "first operand")
	fs.StringVar(&cfg.B, "b", "0", "second operand")
	fs.IntVar(&cfg.Base, "base", 0, "base for parsing integer operands (0 = auto-detect prefix)")
	fs.BoolVar(&cfg.StrictParse, "strict-parse", true, "reject operand literals with invalid digits instead of treating them as zero")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "address to serve Prometheus /metrics on (e.g. :9090); empty disables the server")
	fs.BoolVar(&cfg.TUI, "tui", false, "launch the interactive expression REPL instead of evaluating -op once")
	fs.DurationVar(&cfg.Timeout, "timeout", 30*time.Second, "deadline for the run's context (ends a -tui session; an operation already running is not interrupted)")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "print timing, memory, and bit-length diagnostics")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "print only the bare result")
	fs.BoolVar(&cfg.ShowValue, "show-value", true, "print the result value (disable to only report success/failure)")
	fs.StringVar(&cfg.OutputFile, "output", "", "file to write the result to, in addition to stdout")
	fs.IntVar(&cfg.KaratsubaParallelThreshold, "karatsuba-parallel-threshold", 0, "bit length above which large multiplications run in parallel (0 = adaptive)")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)
	cfg = ApplyAdaptiveThresholds(cfg)

	if err := validate(cfg); err != nil {
		fmt.Fprintln(errWriter, err)
		return AppConfig{}, err
	}
	return cfg, nil
}

func validate(cfg AppConfig) error {
	if cfg.Base != 0 && (cfg.Base < 2 || cfg.Base > 36) {
		return fmt.Errorf("config: base must be 0 or between 2 and 36, got %d", cfg.Base)
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("config: timeout must be positive, got %s", cfg.Timeout)
	}
	return nil
}
