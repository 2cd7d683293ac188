package textclass

import "testing"

func TestIsLetter_LatinOnly(t *testing.T) {
	cases := []struct {
		r    rune
		want bool
	}{
		{r: 'a', want: true},
		{r: 'Z', want: true},
		{r: '5', want: false},
		{r: ' ', want: false},
		{r: ',', want: false},
		{r: 'é', want: false},
		{r: 'Ω', want: false},
	}
	for _, tc := range cases {
		if got := IsLetter(tc.r); got != tc.want {
			t.Fatalf("IsLetter(%q): got %v, want %v", tc.r, got, tc.want)
		}
	}
}

func TestIsWord_KeepsDigitsUnderscoreAndUnicodeLetters(t *testing.T) {
	for _, r := range []rune{'a', 'Q', '7', '_', 'é', '½', '²', 'Ⅻ', '٣'} {
		if !IsWord(r) {
			t.Fatalf("IsWord(%q) = false, want true", r)
		}
	}
	for _, r := range []rune{' ', ',', '-', '\n', '+', '€'} {
		if IsWord(r) {
			t.Fatalf("IsWord(%q) = true, want false", r)
		}
	}
}

func TestAllLetters(t *testing.T) {
	if AllLetters("") {
		t.Fatalf("AllLetters on empty string should be false")
	}
	if AllLetters("LEM0N") {
		t.Fatalf("AllLetters should reject digits")
	}
	if !AllLetters("lemon") {
		t.Fatalf("AllLetters should accept lowercase key")
	}
}

func TestDisplayAndWidth(t *testing.T) {
	if got := Display('\t'); got != ' ' {
		t.Fatalf("Display(tab)=%q, want space", got)
	}
	if got := Display('\n'); got != ' ' {
		t.Fatalf("Display(newline)=%q, want space", got)
	}
	if got := Width('\n'); got != 1 {
		t.Fatalf("Width(newline)=%d, want 1", got)
	}
	if got := Width('世'); got != 2 {
		t.Fatalf("Width(wide)=%d, want 2", got)
	}
	if got := Width('a'); got != 1 {
		t.Fatalf("Width(a)=%d, want 1", got)
	}
}
