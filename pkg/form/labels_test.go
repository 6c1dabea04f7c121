package form

import "testing"

func TestLabelize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"title", "Title"},
		{"authorEmail", "Author Email"},
		{"published_at", "Published At"},
		{"user-id", "User Id"},
		{"line2", "Line 2"},
		{"HTTPPort", "Httpport"},
	}

	for _, tc := range cases {
		if got := Labelize(tc.in); got != tc.want {
			t.Fatalf("Labelize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
