// Package tui implements an interactive expression REPL for entering
// bigint and rational operations and watching results grow, in the same
// palette posture as internal/ui/themes.go.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/mpl/bigint"
	"github.com/agbru/mpl/internal/cli"
	"github.com/agbru/mpl/rational"
)

const maxHistory = 200

// entry is one evaluated line of REPL history.
type entry struct {
	input  string
	result cli.Result
	errMsg string
}

// Model is the root bubbletea model for the expression REPL.
type Model struct {
	input   textinput.Model
	history []entry
	width   int
	height  int
	done    bool
}

// NewModel builds a fresh REPL model with an empty history.
func NewModel() Model {
	ti := textinput.New()
	ti.Placeholder = "add 123 456   |   rat-mul 1/2 3/4   |   pow 2 10"
	ti.Focus()
	ti.CharLimit = 4096
	ti.Width = 60
	return Model{input: ti}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.done = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.evaluate()
			m.input.Reset()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// evaluate parses the current input line, runs the requested operation,
// and appends the outcome to history.
func (m *Model) evaluate() {
	line := strings.TrimSpace(m.input.Value())
	if line == "" {
		return
	}
	fields := strings.Fields(line)
	if len(fields) != 3 {
		m.history = append(m.history, entry{input: line, errMsg: "expected: <op> <a> <b>"})
		m.trimHistory()
		return
	}

	op, aStr, bStr := fields[0], fields[1], fields[2]
	a, b, ra, rb, err := parseOperandStrings(op, aStr, bStr)
	if err != nil {
		m.history = append(m.history, entry{input: line, errMsg: err.Error()})
		m.trimHistory()
		return
	}

	result := func() (res cli.Result, errMsg string) {
		defer func() {
			if r := recover(); r != nil {
				errMsg = fmt.Sprint(r)
			}
		}()
		return evaluateOperation(op, a, b, ra, rb), ""
	}
	res, errMsg := result()
	m.history = append(m.history, entry{input: line, result: res, errMsg: errMsg})
	m.trimHistory()
}

func (m *Model) trimHistory() {
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("mplcalc — bigint / rational REPL") + "\n\n")

	start := 0
	visible := 15
	if len(m.history) > visible {
		start = len(m.history) - visible
	}
	for _, e := range m.history[start:] {
		b.WriteString(promptStyle.Render("> ") + inputStyle.Render(e.input) + "\n")
		if e.errMsg != "" {
			b.WriteString(errorStyle.Render("  error: "+e.errMsg) + "\n")
			continue
		}
		b.WriteString(resultOpStyle.Render(fmt.Sprintf("  %s(%s, %s) = ", e.result.Op, e.result.A, e.result.B)) +
			resultValStyle.Render(e.result.Value) + "\n")
		b.WriteString(metricLabelStyle.Render(fmt.Sprintf("  bits=%d", e.result.Bits)) + "\n")
	}

	b.WriteString("\n" + panelStyle.Render(m.input.View()) + "\n")
	b.WriteString(footerKeyStyle.Render("enter") + footerDescStyle.Render(" evaluate  ") +
		footerKeyStyle.Render("esc/ctrl+c") + footerDescStyle.Render(" quit"))
	return lipgloss.NewStyle().Render(b.String())
}

// Run starts the REPL, blocking until the user quits or ctx is cancelled.
func Run(ctx context.Context, _ io.Writer) error {
	initTUIStyles()

	model := NewModel()
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// evaluateOperation dispatches a subset of internal/app's operations over
// the same bigint/rational surface; extgcd, shift, bitrange and modpow2
// are not available in the REPL.
// Fatal library conditions (division by zero, scratch exhaustion) panic;
// evaluate recovers them into an error entry.
func evaluateOperation(op string, a, b bigint.Int, ra, rb rational.Rat) cli.Result {
	if strings.HasPrefix(op, "rat-") {
		result := cli.Result{Op: op, A: ra.String(), B: rb.String()}
		switch op {
		case "rat-add":
			setRat(&result, ra.Add(rb))
		case "rat-sub":
			setRat(&result, ra.Sub(rb))
		case "rat-mul":
			setRat(&result, ra.Mul(rb))
		case "rat-div":
			setRat(&result, ra.Quo(rb))
		case "rat-floor":
			set(&result, ra.Floor())
		case "rat-ceil":
			set(&result, ra.Ceiling())
		default:
			panic(fmt.Sprintf("unknown operation %q", op))
		}
		return result
	}

	result := cli.Result{Op: op, A: a.String(), B: b.String()}
	switch op {
	case "add":
		set(&result, a.Add(b))
	case "sub":
		set(&result, a.Sub(b))
	case "mul":
		set(&result, a.MulParallel(b))
	case "div":
		set(&result, a.Quo(b))
	case "mod":
		set(&result, a.Rem(b))
	case "gcd":
		set(&result, a.GCD(b))
	case "lcm":
		set(&result, a.LCM(b))
	case "pow":
		exp, ok := b.Uint64()
		if !ok {
			panic(fmt.Sprintf("pow: exponent %s does not fit in a uint64 or is negative", b.String()))
		}
		set(&result, a.Pow(exp))
	case "and":
		set(&result, a.And(b))
	case "or":
		set(&result, a.Or(b))
	case "xor":
		set(&result, a.Xor(b))
	default:
		panic(fmt.Sprintf("unknown operation %q", op))
	}
	return result
}

func set(r *cli.Result, v bigint.Int) {
	r.Value = v.String()
	r.Bits = v.BitLen()
}

func setRat(r *cli.Result, v rational.Rat) {
	r.Value = v.String()
	r.Bits = v.Num().BitLen() + v.Den().BitLen()
}

// parseOperandStrings parses a and b according to op's family, strictly
// (the REPL has no lenient fallback — a malformed operand is always an
// error the user can see and correct).
func parseOperandStrings(op, aStr, bStr string) (a, b bigint.Int, ra, rb rational.Rat, err error) {
	if strings.HasPrefix(op, "rat-") {
		if ra, err = rational.ParseString(aStr); err != nil {
			return
		}
		rb, err = rational.ParseString(bStr)
		return
	}
	if a, err = bigint.ParseString(aStr); err != nil {
		return
	}
	b, err = bigint.ParseString(bStr)
	return
}
