package farthest

import "testing"

func TestCompact_FirstAppearanceOrder(t *testing.T) {
	got := Compact([]int{3, 3, 1, 5, 1})
	want := []int{1, 1, 2, 3, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Compact = %v, want %v", got, want)
		}
	}
}

func TestCompact_AlreadyDense(t *testing.T) {
	in := []int{1, 2, 1, 3}
	got := Compact(in)
	for i := range in {
		if got[i] != in[i] {
			t.Fatalf("Compact(%v) = %v, want unchanged", in, got)
		}
	}
}

func TestCompact_DoesNotModifyInput(t *testing.T) {
	in := []int{7, 7, 2}
	_ = Compact(in)
	if in[0] != 7 || in[1] != 7 || in[2] != 2 {
		t.Errorf("input modified: %v", in)
	}
}

func TestOrderBySize_LargestFirst(t *testing.T) {
	got := OrderBySize([]int{3, 1, 1, 5, 1})
	// Cluster 1 has 3 members, clusters 3 and 5 one each; ties keep
	// ascending original-label order.
	want := []int{2, 1, 1, 3, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("OrderBySize = %v, want %v", got, want)
		}
	}
}

func TestOrderBySize_TiesKeepLabelOrder(t *testing.T) {
	got := OrderBySize([]int{7, 7, 2, 2})
	want := []int{2, 2, 1, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("OrderBySize = %v, want %v", got, want)
		}
	}
}

func TestCompact_Empty(t *testing.T) {
	if got := Compact(nil); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
	if got := OrderBySize(nil); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}
