package buffer

import "testing"

func TestDir_StepAndString(t *testing.T) {
	if got := DirLeft.Step(); got != -1 {
		t.Fatalf("DirLeft.Step: got %d, want %d", got, -1)
	}
	if got := DirRight.Step(); got != 1 {
		t.Fatalf("DirRight.Step: got %d, want %d", got, 1)
	}
	if got := DirLeft.String(); got != "left" {
		t.Fatalf("DirLeft.String: got %q, want %q", got, "left")
	}
}

func TestWrapIndex(t *testing.T) {
	cases := []struct {
		i, n, want int
	}{
		{i: 0, n: 5, want: 0},
		{i: 5, n: 5, want: 0},
		{i: -1, n: 5, want: 4},
		{i: -6, n: 5, want: 4},
		{i: 12, n: 5, want: 2},
		{i: 3, n: 0, want: 0},
	}
	for _, tc := range cases {
		if got := wrapIndex(tc.i, tc.n); got != tc.want {
			t.Fatalf("wrapIndex(%d, %d): got %d, want %d", tc.i, tc.n, got, tc.want)
		}
	}
}
