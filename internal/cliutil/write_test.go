package cliutil

import (
	"bytes"
	"errors"
	"testing"
)

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "%s\t%s\n", "userId", "camel")
	if got := buf.String(); got != "userId\tcamel\n" {
		t.Errorf("Writef() = %q, want %q", got, "userId\tcamel\n")
	}
}

func TestWritef_NoArgs(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "Usage: naming convert [flags] [file...]")
	if got := buf.String(); got != "Usage: naming convert [flags] [file...]" {
		t.Errorf("Writef() = %q", got)
	}
}

// failWriter always fails, to verify Writef does not panic on write errors.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("simulated write error")
}

func TestWritef_WriteError(t *testing.T) {
	Writef(failWriter{}, "this will fail")
}
