package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	runErr := fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String(), runErr
}

func TestRunCheckUnknownFixture(t *testing.T) {
	checkTarget, checkJSON, checkConfigPath = "", false, absentConfigPath(t)
	err := runCheck(checkCmd, []string{"does-not-exist"})
	if err == nil {
		t.Fatal("expected an error for an unknown fixture")
	}
	if !strings.Contains(err.Error(), "unknown fixture") {
		t.Fatalf("got %v", err)
	}
}

func TestRunCheckHelloHasNoDiagnostics(t *testing.T) {
	checkTarget, checkJSON, checkConfigPath = "", false, absentConfigPath(t)
	out, err := captureStdout(t, func() error {
		return runCheck(checkCmd, []string{"hello"})
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "" {
		t.Fatalf("expected no diagnostics, got %q", out)
	}
}

func TestRunCheckUndeclaredVarReportsDiagnostic(t *testing.T) {
	checkTarget, checkJSON, checkConfigPath = "", false, absentConfigPath(t)
	out, err := captureStdout(t, func() error {
		return runCheck(checkCmd, []string{"undeclared-var"})
	})
	if err == nil {
		t.Fatal("expected a diagnostic error")
	}
	if !strings.Contains(out, "undeclared variable 'x'") {
		t.Fatalf("expected UndeclVar message, got %q", out)
	}
}

func absentConfigPath(t *testing.T) string {
	t.Helper()
	return t.TempDir() + "/absent.yaml"
}
