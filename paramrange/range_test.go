package paramrange

import (
	"reflect"
	"testing"
)

func TestParseRangeSingleValue(t *testing.T) {
	r, err := ParseRange("7")
	if err != nil {
		t.Fatalf("ParseRange: %v", err)
	}
	if got := r.Values(); !reflect.DeepEqual(got, []int64{7}) {
		t.Fatalf("Values = %v, want [7]", got)
	}
}

func TestParseRangeInclusive(t *testing.T) {
	r, err := ParseRange("3..6")
	if err != nil {
		t.Fatalf("ParseRange: %v", err)
	}
	if got := r.Values(); !reflect.DeepEqual(got, []int64{3, 4, 5, 6}) {
		t.Fatalf("Values = %v, want [3 4 5 6]", got)
	}
}

func TestParseRangeExclusiveWithStep(t *testing.T) {
	r, err := ParseRange("23..<42 step 5")
	if err != nil {
		t.Fatalf("ParseRange: %v", err)
	}
	want := []int64{23, 28, 33, 38}
	if got := r.Values(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Values = %v, want %v", got, want)
	}
}

func TestParseRangeInvalid(t *testing.T) {
	for _, s := range []string{"", "a..b", "3..6 step 0", "3..6 step -1"} {
		if _, err := ParseRange(s); err == nil {
			t.Fatalf("ParseRange(%q): expected error", s)
		}
	}
}
