package tui

import (
	"strings"
	"testing"
)

func TestEvaluateAddAppendsHistory(t *testing.T) {
	m := NewModel()
	m.input.SetValue("add 123 456")
	m.evaluate()

	if len(m.history) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(m.history))
	}
	got := m.history[0]
	if got.errMsg != "" {
		t.Fatalf("unexpected error: %s", got.errMsg)
	}
	if got.result.Value != "579" {
		t.Errorf("add(123, 456) = %q, want %q", got.result.Value, "579")
	}
}

func TestEvaluateRationalOperation(t *testing.T) {
	m := NewModel()
	m.input.SetValue("rat-add 1/2 1/3")
	m.evaluate()

	got := m.history[0]
	if got.errMsg != "" {
		t.Fatalf("unexpected error: %s", got.errMsg)
	}
	if got.result.Value != "5/6" {
		t.Errorf("rat-add(1/2, 1/3) = %q, want %q", got.result.Value, "5/6")
	}
}

func TestEvaluateMalformedLineRecordsError(t *testing.T) {
	m := NewModel()
	m.input.SetValue("add 1")
	m.evaluate()

	if len(m.history) != 1 || m.history[0].errMsg == "" {
		t.Fatal("expected a malformed line to record an error entry")
	}
}

func TestEvaluateUnknownOperationRecovers(t *testing.T) {
	m := NewModel()
	m.input.SetValue("frobnicate 1 2")
	m.evaluate()

	if len(m.history) != 1 || m.history[0].errMsg == "" {
		t.Fatal("expected an unknown operation to be recovered into an error entry")
	}
}

func TestEvaluateDivisionByZeroRecovers(t *testing.T) {
	m := NewModel()
	m.input.SetValue("div 10 0")
	m.evaluate()

	if len(m.history) != 1 || m.history[0].errMsg == "" {
		t.Fatal("expected division by zero to be recovered into an error entry")
	}
}

func TestHistoryIsTrimmedToMax(t *testing.T) {
	m := NewModel()
	for i := 0; i < maxHistory+10; i++ {
		m.input.SetValue("add 1 1")
		m.evaluate()
	}
	if len(m.history) != maxHistory {
		t.Errorf("history length = %d, want %d", len(m.history), maxHistory)
	}
}

func TestViewRendersWithoutPanickingBeforeResize(t *testing.T) {
	m := NewModel()
	m.input.SetValue("add 1 1")
	m.evaluate()
	if view := m.View(); !strings.Contains(view, "add") {
		t.Error("expected the rendered view to mention the evaluated operation")
	}
}
