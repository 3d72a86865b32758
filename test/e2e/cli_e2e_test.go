package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E verifies the built mplcalc binary functions correctly.
func TestCLI_E2E(t *testing.T) {
	tmpDir := t.TempDir()
	binName := "mplcalc"
	if runtime.GOOS == "windows" {
		binName = "mplcalc.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	rootDir := "../.."

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/mplcalc")
	cmd.Dir = rootDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build mplcalc: %v", err)
	}

	tests := []struct {
		name     string
		args     []string
		wantOut  string
		wantCode int
	}{
		{
			name:     "Add",
			args:     []string{"-op", "add", "-a", "123", "-b", "456"},
			wantOut:  "579",
			wantCode: 0,
		},
		{
			name:     "Mul",
			args:     []string{"-op", "mul", "-a", "999999999999", "-b", "999999999999"},
			wantOut:  "999999999998000000000001",
			wantCode: 0,
		},
		{
			name:     "GCD",
			args:     []string{"-op", "gcd", "-a", "462", "-b", "1071"},
			wantOut:  "21",
			wantCode: 0,
		},
		{
			name:     "RationalAdd",
			args:     []string{"-op", "rat-add", "-a", "1/2", "-b", "1/3"},
			wantOut:  "5/6",
			wantCode: 0,
		},
		{
			name:     "QuietMode",
			args:     []string{"-op", "add", "-a", "1", "-b", "2", "-quiet"},
			wantOut:  "3",
			wantCode: 0,
		},
		{
			name:     "Help",
			args:     []string{"--help"},
			wantOut:  "usage",
			wantCode: 0,
		},
		{
			name:     "DivisionByZeroIsFatal",
			args:     []string{"-op", "div", "-a", "10", "-b", "0"},
			wantOut:  "division by zero",
			wantCode: 1,
		},
		{
			name:     "UnknownOperationIsConfigError",
			args:     []string{"-op", "frobnicate", "-a", "1", "-b", "2"},
			wantOut:  "unknown operation",
			wantCode: 4,
		},
		{
			name:     "VersionFlag",
			args:     []string{"--version"},
			wantOut:  "mplcalc",
			wantCode: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			if tt.wantCode == 0 {
				if err != nil {
					t.Errorf("Command failed unexpectedly: %v\nOutput: %s", err, outStr)
				}
			} else {
				if err == nil {
					t.Errorf("Expected non-zero exit code, but command succeeded.\nOutput: %s", outStr)
				} else if exitErr, ok := err.(*exec.ExitError); ok {
					if exitErr.ExitCode() != tt.wantCode {
						t.Errorf("Exit code mismatch: got %d, want %d",
							exitErr.ExitCode(), tt.wantCode)
					}
				}
			}

			if tt.wantOut != "" {
				if !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
					t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
				}
			}
		})
	}
}
