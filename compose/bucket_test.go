package compose

import "testing"

func TestBucketedSizesAndOrder(t *testing.T) {
	got := Bucketed([]int{1, 2, 3, 4, 5}, 3)
	want := [][]int{{1, 2}, {3, 4}, {5}}
	if len(got) != len(want) {
		t.Fatalf("got %d buckets, want %d", len(got), len(want))
	}
	for i := range want {
		if len(got[i]) != len(want[i]) {
			t.Fatalf("bucket %d: got %v, want %v", i, got[i], want[i])
		}
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				t.Errorf("bucket %d[%d]: got %d, want %d", i, j, got[i][j], want[i][j])
			}
		}
	}
}

func TestBucketedConcatenationEqualsInput(t *testing.T) {
	input := []int{10, 20, 30, 40, 50, 60, 70}
	for k := 1; k <= 5; k++ {
		buckets := Bucketed(input, k)
		if len(buckets) != k {
			t.Fatalf("k=%d: got %d buckets", k, len(buckets))
		}
		var flat []int
		for _, b := range buckets {
			flat = append(flat, b...)
		}
		if len(flat) != len(input) {
			t.Fatalf("k=%d: concatenation has %d elements, want %d", k, len(flat), len(input))
		}
		for i := range input {
			if flat[i] != input[i] {
				t.Errorf("k=%d: element %d = %d, want %d", k, i, flat[i], input[i])
			}
		}
		min, max := len(input), 0
		for _, b := range buckets {
			if len(b) < min {
				min = len(b)
			}
			if len(b) > max {
				max = len(b)
			}
		}
		if max-min > 1 {
			t.Errorf("k=%d: bucket sizes differ by more than 1 (min=%d, max=%d)", k, min, max)
		}
	}
}

func TestBucketedEmptyInput(t *testing.T) {
	buckets := Bucketed([]int{}, 3)
	if len(buckets) != 3 {
		t.Fatalf("got %d buckets, want 3", len(buckets))
	}
	for _, b := range buckets {
		if len(b) != 0 {
			t.Errorf("expected empty bucket, got %v", b)
		}
	}
}
