package ui

import "testing"

func TestToRoman(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, ""},
		{-3, ""},
		{1, "I"},
		{4, "IV"},
		{9, "IX"},
		{14, "XIV"},
		{40, "XL"},
		{99, "XCIX"},
		{2024, "MMXXIV"},
	}
	for _, tt := range tests {
		if got := toRoman(tt.in); got != tt.want {
			t.Errorf("toRoman(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
