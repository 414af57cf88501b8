package route

import "testing"

func collectPerms(p *KPermutations) [][]int {
	var out [][]int
	for perm, ok := p.Next(); ok; perm, ok = p.Next() {
		out = append(out, perm)
	}
	return out
}

func TestKPermutationsCounts(t *testing.T) {
	cases := []struct {
		n, k, want int
	}{
		{1, 1, 1},
		{5, 1, 5},
		{5, 2, 20},
		{2, 2, 2},
	}
	for _, c := range cases {
		got := collectPerms(NewKPermutations(c.n, c.k))
		if len(got) != c.want {
			t.Errorf("KPermutations(%d,%d): got %d permutations, want %d", c.n, c.k, len(got), c.want)
		}
		seen := map[string]bool{}
		for _, perm := range got {
			if len(perm) != c.k {
				t.Errorf("KPermutations(%d,%d): permutation %v has wrong length", c.n, c.k, perm)
			}
			idxKey := ""
			for _, ix := range perm {
				idxKey += string(rune('a' + ix))
			}
			if seen[idxKey] {
				t.Errorf("KPermutations(%d,%d): duplicate permutation %v", c.n, c.k, perm)
			}
			seen[idxKey] = true
		}
	}
}

func collectFilterPerms(f *KPermutationsFilter) [][]int {
	var out [][]int
	for perm, ok := f.Next(); ok; perm, ok = f.Next() {
		out = append(out, perm)
	}
	return out
}

func TestKPermutationsFilterCounts(t *testing.T) {
	cases := []struct {
		classes []int
		k, want int
	}{
		{[]int{0, 0, 1, 1, 1}, 2, 4},
		{[]int{0, 0}, 2, 1},
		{[]int{0, 1}, 2, 2},
	}
	for _, c := range cases {
		got := collectFilterPerms(NewKPermutationsFilter(c.classes, c.k))
		if len(got) != c.want {
			t.Errorf("KPermutationsFilter(%v,%d): got %d, want %d", c.classes, c.k, len(got), c.want)
		}
	}
}

func TestKPermutationsFilterNeverRepeatsClassOrdering(t *testing.T) {
	classes := []int{0, 0, 1, 1, 1}
	f := NewKPermutationsFilter(classes, 3)
	seen := map[string]bool{}
	for perm, ok := f.Next(); ok; perm, ok = f.Next() {
		key := classKey(classes, perm)
		if seen[key] {
			t.Fatalf("class ordering %v yielded twice", key)
		}
		seen[key] = true
	}
}
