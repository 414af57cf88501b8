package route

// KPermutations iterates over k-permutations of {0, ..., n-1}: every
// ordered selection of k distinct indices out of n. It implements the
// "Simple, Efficient P(n, k) Algorithm" described by Alistair Israel
// (published in his JCombinatorics Java library), adapted to Go's
// pull-based Next/ok iteration style rather than Rust's Iterator trait.
type KPermutations struct {
	n, k  int
	a     []int
	edge  int
	first bool
	done  bool
}

// NewKPermutations creates an iterator over k-permutations of n items.
func NewKPermutations(n, k int) *KPermutations {
	a := make([]int, n)
	for i := range a {
		a[i] = i
	}
	edge := 0
	if k > 0 {
		edge = k - 1
	}
	return &KPermutations{n: n, k: k, a: a, edge: edge, first: true}
}

// Next returns the next k-permutation, or ok=false once exhausted. The
// returned slice is owned by the caller; it is a fresh copy each call.
func (p *KPermutations) Next() (perm []int, ok bool) {
	if p.done {
		return nil, false
	}

	if p.k == 0 {
		p.done = true
		return []int{}, true
	}

	if p.k == 1 {
		if len(p.a) == 0 {
			p.done = true
			return nil, false
		}
		last := p.a[len(p.a)-1]
		p.a = p.a[:len(p.a)-1]
		return []int{last}, true
	}

	if p.first {
		p.first = false
		return append([]int(nil), p.a[:p.k]...), true
	}

	n, k := p.n, p.k
	j := k
	for j < n && p.a[p.edge] >= p.a[j] {
		j++
	}
	if j < n {
		p.a[p.edge], p.a[j] = p.a[j], p.a[p.edge]
	} else {
		reverseRange(p.a, k, n-1)

		i := p.edge - 1
		for p.a[i] >= p.a[i+1] {
			if i == 0 {
				p.done = true
				return nil, false
			}
			i--
		}

		j = n - 1
		for j > i && p.a[i] >= p.a[j] {
			j--
		}
		p.a[i], p.a[j] = p.a[j], p.a[i]

		reverseRange(p.a, i+1, n-1)
	}

	return append([]int(nil), p.a[:p.k]...), true
}

func reverseRange(a []int, lo, hi int) {
	for lo < hi {
		a[lo], a[hi] = a[hi], a[lo]
		lo++
		hi--
	}
}

// KPermutationsFilter wraps KPermutations to skip any permutation whose
// sequence of element classes duplicates one already yielded: two
// elements in the same class are interchangeable for the caller's
// purposes, so only the first permutation of each class-ordering is
// useful.
type KPermutationsFilter struct {
	classes []int
	yielded map[string]bool
	perms   *KPermutations
}

// NewKPermutationsFilter creates a class-deduplicating k-permutation
// iterator over len(classes) items, where classes[i] names the class of
// item i.
func NewKPermutationsFilter(classes []int, k int) *KPermutationsFilter {
	return &KPermutationsFilter{
		classes: classes,
		yielded: map[string]bool{},
		perms:   NewKPermutations(len(classes), k),
	}
}

// Next returns the next permutation whose class-ordering has not already
// been yielded, or ok=false once the underlying iterator is exhausted.
func (f *KPermutationsFilter) Next() (perm []int, ok bool) {
	for {
		item, ok := f.perms.Next()
		if !ok {
			return nil, false
		}
		key := classKey(f.classes, item)
		if !f.yielded[key] {
			f.yielded[key] = true
			return item, true
		}
	}
}

func classKey(classes []int, item []int) string {
	b := make([]byte, 0, len(item)*4)
	for i, ix := range item {
		if i > 0 {
			b = append(b, ',')
		}
		b = appendInt(b, classes[ix])
	}
	return string(b)
}

func appendInt(b []byte, n int) []byte {
	if n == 0 {
		return append(b, '0')
	}
	neg := n < 0
	if neg {
		n = -n
	}
	start := len(b)
	for n > 0 {
		b = append(b, byte('0'+n%10))
		n /= 10
	}
	if neg {
		b = append(b, '-')
	}
	// reverse the digits just appended
	for i, j := start, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}
