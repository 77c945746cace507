package greeter

import "testing"

func TestGreet(t *testing.T) {
	cases := []struct {
		name, want string
	}{
		{"World", "Hello, World!"},
		{"Gopher", "Hello, Gopher!"},
		{"", "Hello, !"},
	}

	for _, tc := range cases {
		if got := Greet(tc.name); got != tc.want {
			t.Errorf("Greet(%q) = %q; want %q", tc.name, got, tc.want)
		}
	}
}
