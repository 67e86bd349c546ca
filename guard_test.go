package classcss

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuardInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{
			name:    "plain classes pass",
			input:   "bg-blue-500 text-white p-4",
			wantMsg: "",
		},
		{
			name:    "exactly at length limit passes",
			input:   strings.Repeat("a", 10000),
			wantMsg: "",
		},
		{
			name:    "one past length limit fails",
			input:   strings.Repeat("a", 10001),
			wantMsg: msgInputTooLong(10000),
		},
		{
			name:    "script tag rejected",
			input:   "p-4 <script>alert(1)</script>",
			wantMsg: msgUnsafeContent,
		},
		{
			name:    "script tag rejected case-insensitively",
			input:   "<SCRIPT src=x>",
			wantMsg: msgUnsafeContent,
		},
		{
			name:    "javascript uri rejected",
			input:   "javascript:alert(1)",
			wantMsg: msgUnsafeContent,
		},
		{
			name:    "event handler rejected",
			input:   `x onclick=doEvil()`,
			wantMsg: msgUnsafeContent,
		},
		{
			name:    "iframe rejected",
			input:   "<iframe src=x>",
			wantMsg: msgUnsafeContent,
		},
		{
			name:    "eleven special characters rejected",
			input:   "a{}{}{}{}{}b}",
			wantMsg: msgTooManySpecials,
		},
		{
			name:    "ten special characters allowed",
			input:   "a{}{}{}{}{}b",
			wantMsg: "",
		},
		{
			name:    "arbitrary value brackets allowed in moderation",
			input:   "w-[137px] bg-[#1da1f2]",
			wantMsg: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMsg, guardInput(tt.input, 10000))
		})
	}
}

func TestGuardLengthPrecedesContentChecks(t *testing.T) {
	// Oversized input fails on length even when it also contains
	// unsafe content.
	input := "<script>" + strings.Repeat("a", 10000)
	assert.Equal(t, msgInputTooLong(10000), guardInput(input, 10000))
}

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain input unchanged",
			input: "bg-blue-500 p-4",
			want:  "bg-blue-500 p-4",
		},
		{
			name:  "brackets stripped",
			input: "w-[137px] (x) {y}",
			want:  "w-137px x y",
		},
		{
			name:  "whitespace collapsed and trimmed",
			input: "  a \t b\n\nc  ",
			want:  "a b c",
		},
		{
			name:  "only special characters",
			input: "<>{}",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeInput(tt.input))
		})
	}
}
