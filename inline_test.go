package md2html

import "testing"

func TestApplyInline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text unchanged",
			input:    "no markup here",
			expected: "no markup here",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "bold pair",
			input:    "**bold**",
			expected: "<b>bold</b>",
		},
		{
			name:     "emphasis pair",
			input:    "__emphasis__",
			expected: "<em>emphasis</em>",
		},
		{
			name:     "bold inside sentence",
			input:    "Some **bold** text.",
			expected: "Some <b>bold</b> text.",
		},
		{
			name:     "bold and emphasis on one line",
			input:    "**b** and __e__",
			expected: "<b>b</b> and <em>e</em>",
		},
		{
			name:     "only first bold pair converts",
			input:    "**one** then **two**",
			expected: "<b>one</b> then **two**",
		},
		{
			name:     "only first emphasis pair converts",
			input:    "__one__ then __two__",
			expected: "<em>one</em> then __two__",
		},
		{
			name:     "unmatched bold opener stays literal",
			input:    "**open",
			expected: "**open",
		},
		{
			name:     "unmatched emphasis closer stays literal",
			input:    "close__",
			expected: "close__",
		},
		{
			name:     "empty bold span",
			input:    "****",
			expected: "<b></b>",
		},
		{
			name:     "non-greedy match stops at first closer",
			input:    "**a** b**",
			expected: "<b>a</b> b**",
		},
		{
			name:     "emphasis nested in bold",
			input:    "__**both**__",
			expected: "<em><b>both</b></em>",
		},
		{
			name:     "interleaved pairs stay lexical",
			input:    "**a__b**c__",
			expected: "<b>a<em>b</b>c</em>",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := applyInline(tt.input)
			if got != tt.expected {
				t.Errorf("applyInline(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestReplaceFirstSpan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no match returns input",
			input:    "plain",
			expected: "plain",
		},
		{
			name:     "match at start",
			input:    "**x** rest",
			expected: "<b>x</b> rest",
		},
		{
			name:     "match at end",
			input:    "start **x**",
			expected: "start <b>x</b>",
		},
		{
			name:     "whole line",
			input:    "**x**",
			expected: "<b>x</b>",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := replaceFirstSpan(boldPattern, tt.input, "<b>", "</b>")
			if got != tt.expected {
				t.Errorf("replaceFirstSpan(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
