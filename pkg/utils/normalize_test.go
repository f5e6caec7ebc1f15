package utils

import "testing"

func TestNormalizeFlightID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "spaces stripped and uppercased", in: "tk 1001", want: "TK1001"},
		{name: "already normalized", in: "TK1001", want: "TK1001"},
		{name: "trailing whitespace", in: "tk1001 ", want: "TK1001"},
		{name: "tabs and inner runs", in: "\ttk \t 10 01", want: "TK1001"},
		{name: "empty", in: "", want: ""},
		{name: "whitespace only", in: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeFlightID(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeFlightID(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if again := NormalizeFlightID(got); again != got {
				t.Errorf("not idempotent: NormalizeFlightID(%q) = %q", got, again)
			}
		})
	}
}
