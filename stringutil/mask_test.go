package stringutil

import "testing"

func TestPrintableCred(t *testing.T) {
	cases := []struct {
		name          string
		cred          string
		visible       int
		maskChar      string
		maskCharCount int
		want          string
	}{
		{"default shape", "my-secret-token", 1, "*", 4, "m****n"},
		{"two visible", "my-secret-token", 2, "*", 4, "my****en"},
		{"custom mask char", "my-secret-token", 1, "#", 3, "m###n"},
		{"visible clamped to one", "my-secret-token", 0, "*", 4, "m****n"},
		{"too short to mask", "ab", 2, "*", 4, "ab"},
		{"minimum maskable length", "ab", 1, "*", 4, "a****b"},
		{"empty cred", "", 1, "*", 4, ""},
		{"empty mask char falls back", "my-secret-token", 1, "", 4, "m****n"},
		{"negative count clamps to empty run", "my-secret-token", 1, "*", -1, "mn"},
		{"zero count", "my-secret-token", 1, "*", 0, "mn"},
		{"multibyte cred", "日本語トークン", 1, "*", 2, "日**ン"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PrintableCred(tc.cred, tc.visible, tc.maskChar, tc.maskCharCount)
			if got != tc.want {
				t.Fatalf("PrintableCred(%q): got %q want %q", tc.cred, got, tc.want)
			}
		})
	}
}

func TestPrintableCredHidesLength(t *testing.T) {
	short := PrintableCred("abcdef", 1, "*", 4)
	long := PrintableCred("abcdefghijklmnop", 1, "*", 4)
	if len(short) != len(long) {
		t.Fatalf("masked lengths should not reveal cred length: %q vs %q", short, long)
	}
}
