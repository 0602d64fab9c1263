package label

import "testing"

func TestCaseApply(t *testing.T) {
	tests := []struct {
		c        Case
		in, want string
	}{
		{Lower, "Northwest", "northwest"},
		{Lower, "LeftRight", "leftright"},
		{Kebab, "DoubleSharp", "double-sharp"},
		{Kebab, "Sharp1", "sharp1"},
		{Kebab, "BeforeBarline", "before-barline"},
		{Kebab, "DefaultX", "default-x"},
		{Kebab, "Regular", "regular"},
		{Verbatim, "TAB", "TAB"},
		{Verbatim, "Mensurstrich", "Mensurstrich"},
	}
	for _, tc := range tests {
		if got := tc.c.Apply(tc.in); got != tc.want {
			t.Errorf("%s(%q): got %q want %q", tc.c, tc.in, got, tc.want)
		}
	}
}
