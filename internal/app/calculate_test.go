package app

import (
	"context"
	"testing"

	"github.com/agbru/mpl/bigint"
	"github.com/agbru/mpl/rational"
)

func TestParseOperandsIntAndRational(t *testing.T) {
	a, b, _, _, err := parseOperands("add", "10", "20", 0, true)
	if err != nil {
		t.Fatalf("parseOperands: %v", err)
	}
	if got, want := a.Add(b).String(), "30"; got != want {
		t.Errorf("a+b = %s, want %s", got, want)
	}

	_, _, ra, rb, err := parseOperands("rat-add", "1/2", "1/4", 0, true)
	if err != nil {
		t.Fatalf("parseOperands (rational): %v", err)
	}
	if got, want := ra.Add(rb).String(), "3/4"; got != want {
		t.Errorf("ra+rb = %s, want %s", got, want)
	}
}

func TestParseOperandsStrictRejectsBadDigit(t *testing.T) {
	if _, _, _, _, err := parseOperands("add", "12x4", "0", 10, true); err == nil {
		t.Fatal("expected a strict parse to reject an invalid digit")
	}
}

func TestParseOperandsLenientFallsBackToZero(t *testing.T) {
	a, _, _, _, err := parseOperands("add", "12x4", "0", 10, false)
	if err != nil {
		t.Fatalf("lenient parse should not error, got %v", err)
	}
	if !a.IsZero() {
		t.Errorf("lenient parse of a malformed literal should fall back to zero, got %s", a.String())
	}
}

func TestRunIntOperation(t *testing.T) {
	a := bigint.FromInt64(7)
	b := bigint.FromInt64(3)
	tests := []struct {
		op   string
		want string
	}{
		{"add", "10"},
		{"sub", "4"},
		{"mul", "21"},
		{"div", "2"},
		{"mod", "1"},
		{"gcd", "1"},
		{"lcm", "21"},
		{"pow", "343"},
		{"and", "3"},
		{"or", "7"},
		{"xor", "4"},
	}
	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			result := runOperation(context.Background(), tt.op, a, b, rational.Rat{}, rational.Rat{})
			if result.Value != tt.want {
				t.Errorf("%s(7, 3) = %s, want %s", tt.op, result.Value, tt.want)
			}
		})
	}
}

func TestRunOperationDivisionByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected division by zero to panic")
		}
	}()
	runOperation(context.Background(), "div", bigint.FromInt64(1), bigint.FromInt64(0), rational.Rat{}, rational.Rat{})
}

func TestRunOperationUnknownOpPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected an unknown operation to panic")
		}
	}()
	runOperation(context.Background(), "nope", bigint.FromInt64(1), bigint.FromInt64(1), rational.Rat{}, rational.Rat{})
}

func TestRunRationalOperationFloorCeil(t *testing.T) {
	r, _ := rational.ParseString("7/2")
	zero, _ := rational.ParseString("0")

	floor := runOperation(context.Background(), "rat-floor", bigint.Int{}, bigint.Int{}, r, zero)
	if floor.Value != "3" {
		t.Errorf("floor(7/2) = %s, want 3", floor.Value)
	}
	ceil := runOperation(context.Background(), "rat-ceil", bigint.Int{}, bigint.Int{}, r, zero)
	if ceil.Value != "4" {
		t.Errorf("ceil(7/2) = %s, want 4", ceil.Value)
	}
}
