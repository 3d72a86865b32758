package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/agbru/mpl/bigint"
	"github.com/agbru/mpl/internal/cli"
	"github.com/agbru/mpl/internal/config"
	mplerrors "github.com/agbru/mpl/internal/errors"
	"github.com/agbru/mpl/internal/logging"
	"github.com/agbru/mpl/internal/metrics"
	"github.com/agbru/mpl/internal/server"
	"github.com/agbru/mpl/internal/sysmon"
	"github.com/agbru/mpl/internal/tui"
	"github.com/agbru/mpl/internal/ui"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
)

// tracer is mplcalc's OpenTelemetry tracer, backed by the global no-op
// provider unless a real SDK is wired up by the hosting environment — the
// same "instrument even with a no-op backend" posture the teacher takes
// with zerolog/prometheus.
var tracer = otel.Tracer("github.com/agbru/mpl/cmd/mplcalc")

// Application is the mplcalc application instance.
type Application struct {
	Config       config.AppConfig
	Logger       logging.Logger
	ErrWriter    io.Writer
	ops          *metrics.Operations
	memCollector *metrics.MemoryCollector
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger overrides the default logger, mainly for tests.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Logger == nil {
		app.Logger = logging.NewDefaultLogger()
	}
	app.memCollector = metrics.NewMemoryCollector()

	programName := "mplcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	bigint.SetParallelMulThreshold(cfg.KaratsubaParallelThreshold)
	return app, nil
}

// Run executes the application based on the configured mode, recovering
// any fatal library panic (division by zero, scratch exhaustion, a
// malformed operation request) into a diagnostic and an exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			code = a.handlePanic(r)
		}
	}()

	ui.InitTheme(false)

	if a.Config.MetricsAddr != "" {
		srv := server.New(a.Config.MetricsAddr, a.Logger)
		a.ops = metrics.NewOperations(srv.Registry())
		serverCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			if err := srv.Start(serverCtx); err != nil {
				a.Logger.Error("metrics server stopped", err)
			}
		}()
	} else {
		a.ops = metrics.NewOperations(prometheus.NewRegistry())
	}

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if a.Config.TUI {
		return a.runTUI(ctx, out)
	}
	return a.runCalculate(ctx, out)
}

// runCalculate parses the configured operands, dispatches the operation,
// and presents the result.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
	ctx, span := tracer.Start(ctx, "mplcalc.compute")
	defer span.End()

	a.Logger.Info("starting operation", logging.String("op", a.Config.Op))

	aVal, bVal, raVal, rbVal, err := parseOperands(a.Config.Op, a.Config.A, a.Config.B, a.Config.Base, a.Config.StrictParse)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return mplerrors.ExitErrorConfig
	}

	start := time.Now()
	var before sysmon.Stats
	var memBefore metrics.MemorySnapshot
	if a.Config.Verbose {
		before = sysmon.Sample()
		memBefore = a.memCollector.Snapshot()
	}

	var sp cli.Spinner
	if !a.Config.Quiet && (aVal.BitLen()+bVal.BitLen() > 1<<18) {
		sp = cli.NewSpinner(" computing...")
		sp.Start()
	}
	result := runOperation(ctx, a.Config.Op, aVal, bVal, raVal, rbVal)
	if sp != nil {
		sp.Stop()
	}
	duration := time.Since(start)
	a.ops.Observe(result.Op, result.Bits)

	if a.Config.Verbose {
		after := sysmon.Sample()
		memAfter := a.memCollector.Snapshot()
		fmt.Fprintf(out, "CPU: %.1f%% -> %.1f%%  Mem: %.1f%% -> %.1f%%\n",
			before.CPUPercent, after.CPUPercent, before.MemPercent, after.MemPercent)
		fmt.Fprintf(out, "Heap: %d -> %d bytes  GC cycles: %d\n",
			memBefore.HeapAlloc, memAfter.HeapAlloc, memAfter.NumGC-memBefore.NumGC)
	}

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
		ShowValue:  a.Config.ShowValue,
	}
	if err := cli.DisplayResultWithConfig(out, result, duration, outputCfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
		return mplerrors.ExitErrorGeneric
	}
	return mplerrors.ExitSuccess
}

// runTUI launches the interactive expression REPL.
func (a *Application) runTUI(ctx context.Context, out io.Writer) int {
	if err := tui.Run(ctx, out); err != nil {
		fmt.Fprintf(a.ErrWriter, "TUI error: %v\n", err)
		return mplerrors.ExitErrorGeneric
	}
	return mplerrors.ExitSuccess
}

// handlePanic converts a recovered fatal library panic into a diagnostic
// and the matching exit code.
func (a *Application) handlePanic(r any) int {
	err, ok := r.(error)
	if !ok {
		err = fmt.Errorf("%v", r)
	}
	fmt.Fprintf(a.ErrWriter, "Fatal: %v\n", err)
	var cfgErr mplerrors.ConfigError
	if errors.As(err, &cfgErr) {
		return mplerrors.ExitErrorConfig
	}
	return mplerrors.ExitErrorGeneric
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
