package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupDetectFlags(t *testing.T) {
	fs, flags := SetupDetectFlags()

	t.Run("default values", func(t *testing.T) {
		if flags.Format != FormatText {
			t.Errorf("expected Format '%s' by default, got '%s'", FormatText, flags.Format)
		}
		if flags.Output != "" {
			t.Errorf("expected Output to be empty by default, got '%s'", flags.Output)
		}
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"-f", "json", "-o", "out.json", "input.txt"}
		if err := fs.Parse(args); err != nil {
			t.Fatalf("unexpected parse error: %v", err)
		}

		if flags.Format != FormatJSON {
			t.Errorf("expected Format 'json', got '%s'", flags.Format)
		}
		if flags.Output != "out.json" {
			t.Errorf("expected Output 'out.json', got '%s'", flags.Output)
		}
	})
}

func TestHandleDetect_Help(t *testing.T) {
	err := HandleDetect([]string{"--help"})
	if err != nil {
		t.Errorf("unexpected error for help: %v", err)
	}
}

func TestHandleDetect_InvalidFormat(t *testing.T) {
	err := HandleDetect([]string{"-f", "xml", "input.txt"})
	if err == nil {
		t.Error("expected error for invalid output format")
	}
}

func TestHandleDetect_Text(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	output := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(input, []byte("USER_ID\nuser_id\nuser-id\nuserId\nUserId\n"), 0o644); err != nil {
		t.Fatalf("writing input: %v", err)
	}

	if err := HandleDetect([]string{"-o", output, input}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	expected := "USER_ID\tscreaming_snake\n" +
		"user_id\tsnake\n" +
		"user-id\tkebab\n" +
		"userId\tcamel\n" +
		"UserId\tpascal\n"
	if string(data) != expected {
		t.Errorf("unexpected output:\n%q\nwant:\n%q", string(data), expected)
	}
}

func TestHandleDetect_Unrecognized(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	output := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(input, []byte("user_id\n_broken-\n"), 0o644); err != nil {
		t.Fatalf("writing input: %v", err)
	}

	err := HandleDetect([]string{"-o", output, input})
	if err == nil {
		t.Fatal("expected error for unrecognized identifier")
	}

	// The report is still written before the command fails.
	data, readErr := os.ReadFile(output)
	if readErr != nil {
		t.Fatalf("reading output: %v", readErr)
	}
	if !strings.Contains(string(data), "_broken-\tunknown\n") {
		t.Errorf("unexpected output: %q", string(data))
	}
}

func TestHandleDetect_JSON(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	output := filepath.Join(dir, "out.json")
	if err := os.WriteFile(input, []byte("userId\n"), 0o644); err != nil {
		t.Fatalf("writing input: %v", err)
	}

	if err := HandleDetect([]string{"-f", "json", "-o", output, input}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	for _, want := range []string{`"identifier": "userId"`, `"convention": "camel"`, `"valid": true`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("output missing %q:\n%s", want, string(data))
		}
	}
}
