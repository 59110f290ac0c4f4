package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name      string
		mode      Mode
		text      string
		want      string
		wantError string
	}{
		{name: "upper", mode: ModeUpper, text: "Hello World", want: "HELLO WORLD"},
		{name: "lower", mode: ModeLower, text: "Hello World", want: "hello world"},
		{name: "title", mode: ModeTitle, text: "hello wide world", want: "Hello Wide World"},
		{name: "upper_unicode", mode: ModeUpper, text: "straße", want: "STRASSE"},
		{name: "lower_keeps_whitespace", mode: ModeLower, text: " A\tB\n", want: " a\tb\n"},
		{name: "empty", mode: ModeUpper, text: "", want: ""},
		{name: "unknown_mode", mode: Mode("sponge"), text: "x", wantError: "unknown transform mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.mode, tt.text)
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode(" UPPER ")
	require.NoError(t, err)
	assert.Equal(t, ModeUpper, m)

	_, err = ParseMode("camel")
	require.Error(t, err)
}

func TestFindTerms(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		terms []string
		want  []TermHit
	}{
		{
			name:  "default_python_found",
			text:  "I write PYTHON daily",
			terms: DefaultWatchTerms,
			want:  []TermHit{{Term: "python", Found: true}},
		},
		{
			name:  "not_found",
			text:  "I write Go daily",
			terms: DefaultWatchTerms,
			want:  []TermHit{{Term: "python", Found: false}},
		},
		{
			name:  "blank_terms_dropped",
			text:  "rust and go",
			terms: []string{"Go", " ", "zig"},
			want:  []TermHit{{Term: "Go", Found: true}, {Term: "zig", Found: false}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindTerms(tt.text, tt.terms))
		})
	}
}

func TestContainsTerm(t *testing.T) {
	assert.True(t, ContainsTerm("Monty Python", "python"))
	assert.False(t, ContainsTerm("Monty", "python"))
	assert.False(t, ContainsTerm("anything", ""))
}
