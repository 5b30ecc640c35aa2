package helpers

import "testing"

func TestNullableString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *string
	}{
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
		{"plain value", "COMP", strPtr("COMP")},
		{"trims padding", "  COMP  ", strPtr("COMP")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NullableString(tt.input)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("NullableString(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("NullableString(%q) = %q, want %q", tt.input, *got, *tt.want)
			}
		})
	}
}

func TestSearchPattern(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
		want    string
	}{
		{"empty", "", ""},
		{"whitespace only", "  ", ""},
		{"plain keyword", "algo", "%algo%"},
		{"trims padding", " algo ", "%algo%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SearchPattern(tt.keyword); got != tt.want {
				t.Errorf("SearchPattern(%q) = %q, want %q", tt.keyword, got, tt.want)
			}
		})
	}
}

func TestRoundRating(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"whole number", 4.0, 4.0},
		{"average of 5 4 3", 4.0, 4.0},
		{"rounds down", 3.44, 3.4},
		{"rounds up", 3.46, 3.5},
		{"repeating fraction", 11.0 / 3.0, 3.7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoundRating(tt.input); got != tt.want {
				t.Errorf("RoundRating(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func strPtr(s string) *string { return &s }
