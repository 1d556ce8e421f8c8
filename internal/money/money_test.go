package money

import (
	"testing"

	"github.com/haseebajmal/finapp/internal/errs"
)

func TestParseRejectsMalformedInput(t *testing.T) {
	for _, input := range []string{"", "abc", "10.0.0", "1,000", "$5"} {
		if _, err := Parse(input); err == nil {
			t.Errorf("expected Parse(%q) to fail", input)
		} else if errs.KindOf(err) != errs.InvalidAmount {
			t.Errorf("expected invalid amount kind for %q, got %v", input, errs.KindOf(err))
		}
	}
}

func TestParseAcceptsDecimals(t *testing.T) {
	for _, input := range []string{"0", "100", "0.01", "-10", "99.99"} {
		if _, err := Parse(input); err != nil {
			t.Errorf("Parse(%q): %v", input, err)
		}
	}
}

func TestArithmeticIsExact(t *testing.T) {
	a := MustParse("0.1")
	b := MustParse("0.2")
	if got := a.Add(b).String(); got != "0.3" {
		t.Fatalf("0.1 + 0.2 = %s, want 0.3", got)
	}

	from := MustParse("100")
	if got := from.Sub(MustParse("10")).String(); got != "90" {
		t.Fatalf("100 - 10 = %s, want 90", got)
	}
}

func TestEqualityIgnoresTrailingZeros(t *testing.T) {
	if !MustParse("10").Equal(MustParse("10.00")) {
		t.Fatal("10 should equal 10.00")
	}
}

func TestComparisons(t *testing.T) {
	if !MustParse("-1").IsNegative() {
		t.Fatal("-1 should be negative")
	}
	if MustParse("0").IsNegative() {
		t.Fatal("0 should not be negative")
	}
	if !MustParse("200").GreaterThan(MustParse("100")) {
		t.Fatal("200 should be greater than 100")
	}
	if MustParse("100").GreaterThan(MustParse("100.00")) {
		t.Fatal("100 should not be greater than 100.00")
	}
}
