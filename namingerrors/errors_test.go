package namingerrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestInvalidCharacterError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &InvalidCharacterError{
			Input:    "user.id",
			Char:     '.',
			Position: 4,
		}
		if err.Error() != `invalid character '.' at position 4 in "user.id"` {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrInvalidCharacter", func(t *testing.T) {
		err := &InvalidCharacterError{Input: "a!b", Char: '!', Position: 1}
		if !errors.Is(err, ErrInvalidCharacter) {
			t.Error("InvalidCharacterError should match ErrInvalidCharacter")
		}
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &InvalidCharacterError{}
		if errors.Is(err, ErrConfig) {
			t.Error("InvalidCharacterError should not match ErrConfig")
		}
		if errors.Is(err, ErrExtract) {
			t.Error("InvalidCharacterError should not match ErrExtract")
		}
	})

	t.Run("As extracts InvalidCharacterError", func(t *testing.T) {
		var wrapped error = fmt.Errorf("segmenting line 3: %w",
			&InvalidCharacterError{Input: "x$y", Char: '$', Position: 1})

		var charErr *InvalidCharacterError
		if !errors.As(wrapped, &charErr) {
			t.Fatal("As should extract InvalidCharacterError")
		}
		if charErr.Char != '$' || charErr.Position != 1 {
			t.Errorf("unexpected fields: %+v", charErr)
		}
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ConfigError{
			Option:  "filter",
			Value:   "x",
			Message: "unknown filter flag",
		}
		want := `configuration error in option "filter": invalid value "x": unknown filter flag`
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ConfigError{}
		if err.Error() != "configuration error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrConfig", func(t *testing.T) {
		err := &ConfigError{Message: "test"}
		if !errors.Is(err, ErrConfig) {
			t.Error("ConfigError should match ErrConfig")
		}
	})
}

func TestExtractError(t *testing.T) {
	t.Run("Error message with cause", func(t *testing.T) {
		cause := errors.New("missing closing )")
		err := &ExtractError{
			Pattern: "(abc",
			Message: "compiling locator",
			Cause:   cause,
		}
		want := `extraction error for pattern "(abc": compiling locator: missing closing )`
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ExtractError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Unwrap returns nil when no cause", func(t *testing.T) {
		err := &ExtractError{}
		if err.Unwrap() != nil {
			t.Error("Unwrap should return nil when no cause")
		}
	})

	t.Run("Is matches ErrExtract", func(t *testing.T) {
		err := &ExtractError{Pattern: "["}
		if !errors.Is(err, ErrExtract) {
			t.Error("ExtractError should match ErrExtract")
		}
	})
}
