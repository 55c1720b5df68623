package segmenter

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casetools/naming/namingerrors"
)

func texts(words []Word) []string {
	if words == nil {
		return nil
	}
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.Text
	}
	return out
}

func TestSegment(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"camel boundary", "userId", []string{"user", "Id"}},
		{"trailing uppercase run", "userID", []string{"user", "ID"}},
		{"uppercase run before lowercase", "parseHTMLFile", []string{"parse", "HTML", "File"}},
		{"leading uppercase run", "HTMLFile", []string{"HTML", "File"}},
		{"pascal", "PascalCase", []string{"Pascal", "Case"}},
		{"snake", "already_snake_case", []string{"already", "snake", "case"}},
		{"kebab", "kebab-case", []string{"kebab", "case"}},
		{"screaming snake", "SCREAMING_SNAKE", []string{"SCREAMING", "SNAKE"}},
		{"spaces as delimiters", "hello world", []string{"hello", "world"}},
		{"digit run splits letters", "v2Api", []string{"v", "2", "Api"}},
		{"leading digit run", "2Fast", []string{"2", "Fast"}},
		{"trailing digit run", "base64", []string{"base", "64"}},
		{"purely numeric", "42", []string{"42"}},
		{"digit run between delimiters", "v_2_api", []string{"v", "2", "api"}},
		{"single lowercase letter", "a", []string{"a"}},
		{"single uppercase letter", "A", []string{"A"}},
		{"single digit", "7", []string{"7"}},
		{"uppercase pair", "ID", []string{"ID"}},
		{"two letter split", "aB", []string{"a", "B"}},
		{"short uppercase run before lowercase", "ABc", []string{"A", "Bc"}},
		{"mixed conventions", "mixed_caseInput-HERE", []string{"mixed", "case", "Input", "HERE"}},
		{"consecutive delimiters", "a__b--c  d", []string{"a", "b", "c", "d"}},
		{"leading and trailing delimiters", "_-trimmed- ", []string{"trimmed"}},
		{"empty input", "", nil},
		{"delimiters only", "_-_ -", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Segment(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, texts(got))
		})
	}
}

func TestSegmentWordKinds(t *testing.T) {
	got, err := Segment("v2Api")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, KindAlphabetic, got[0].Kind)
	assert.Equal(t, KindNumeric, got[1].Kind)
	assert.Equal(t, KindAlphabetic, got[2].Kind)
}

func TestSegmentCharacterPreservation(t *testing.T) {
	// Concatenating all words must reproduce the input's alphanumeric
	// content exactly: nothing created, duplicated, or lost.
	inputs := []string{
		"userId", "parseHTMLFile", "v2Api", "SCREAMING_SNAKE",
		"a__b--c d", "2Fast2Furious", "XMLHttpRequest", "base64Encode",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			got, err := Segment(input)
			require.NoError(t, err)

			stripped := strings.NewReplacer("_", "", "-", "", " ", "").Replace(input)
			assert.Equal(t, stripped, strings.Join(texts(got), ""))
		})
	}
}

func TestSegmentStrictMode(t *testing.T) {
	seg := New()
	seg.Strict = true

	t.Run("rejects unsupported character", func(t *testing.T) {
		_, err := seg.Segment("user.id")
		require.Error(t, err)

		var charErr *namingerrors.InvalidCharacterError
		require.ErrorAs(t, err, &charErr)
		assert.Equal(t, '.', charErr.Char)
		assert.Equal(t, 4, charErr.Position)
		assert.Equal(t, "user.id", charErr.Input)
		assert.True(t, errors.Is(err, namingerrors.ErrInvalidCharacter))
	})

	t.Run("accepts delimiters and alphanumerics", func(t *testing.T) {
		got, err := seg.Segment("valid_input-123 ok")
		require.NoError(t, err)
		assert.Equal(t, []string{"valid", "input", "123", "ok"}, texts(got))
	})

	t.Run("reports first offending character", func(t *testing.T) {
		_, err := seg.Segment("a!b?c")
		var charErr *namingerrors.InvalidCharacterError
		require.ErrorAs(t, err, &charErr)
		assert.Equal(t, '!', charErr.Char)
		assert.Equal(t, 1, charErr.Position)
	})
}

func TestSegmentPassthrough(t *testing.T) {
	// Non-strict mode: unsupported characters become their own literal word.
	got, err := Segment("user.id")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, Word{Text: "user", Kind: KindAlphabetic}, got[0])
	assert.Equal(t, Word{Text: ".", Kind: KindLiteral}, got[1])
	assert.Equal(t, Word{Text: "id", Kind: KindAlphabetic}, got[2])
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "alphabetic", KindAlphabetic.String())
	assert.Equal(t, "numeric", KindNumeric.String())
	assert.Equal(t, "literal", KindLiteral.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
