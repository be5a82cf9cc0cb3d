package utils

import "testing"

func TestDetermineLocale(t *testing.T) {
	supported := []string{"en", "zh"}
	cases := []struct {
		name       string
		query      string
		accept     string
		def, want  string
	}{
		{"query wins", "zh", "en", "en", "zh"},
		{"query base tag", "zh-CN", "", "en", "zh"},
		{"unsupported query falls through", "fr", "zh", "en", "zh"},
		{"accept q ordering", "", "en;q=0.5,zh;q=0.9", "en", "zh"},
		{"accept region tag", "", "zh-TW,en;q=0.4", "en", "zh"},
		{"default when nothing matches", "", "fr,de;q=0.9", "en", "en"},
		{"empty everything", "", "", "en", "en"},
	}
	for _, c := range cases {
		if got := DetermineLocale(c.query, c.accept, supported, c.def); got != c.want {
			t.Fatalf("%s: DetermineLocale=%q, want %q", c.name, got, c.want)
		}
	}
	// Unsupported default picks the first supported locale.
	if got := DetermineLocale("", "", supported, "fr"); got != "en" {
		t.Fatalf("unsupported default = %q, want en", got)
	}
}
