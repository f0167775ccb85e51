package generator

import (
	"math/rand"
	"regexp"
	"testing"
)

func TestGenerateShapes(t *testing.T) {
	cases := []struct {
		digits  int
		pattern string
	}{
		{1, `^\d$`},
		{2, `^[1-9]\d$`},
		{3, `^[1-9]\d\d$`},
	}
	g := NewWithSource(rand.NewSource(1))
	for _, tc := range cases {
		re := regexp.MustCompile(tc.pattern)
		for i := 0; i < 100; i++ {
			target := g.Generate(tc.digits)
			if !re.MatchString(target) {
				t.Fatalf("Generate(%d) = %q, want match for %s", tc.digits, target, tc.pattern)
			}
		}
	}
}

func TestGenerateClampsLevel(t *testing.T) {
	g := NewWithSource(rand.NewSource(2))
	if target := g.Generate(0); len(target) != 1 {
		t.Fatalf("Generate(0) = %q, want single digit", target)
	}
	if target := g.Generate(7); len(target) != 3 {
		t.Fatalf("Generate(7) = %q, want three digits", target)
	}
}
