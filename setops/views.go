package setops

import "iter"

// Merge yields the ascending union of a and b. When a key is present in
// both inputs the entry from a wins and both inputs advance.
func Merge[K, V any](a, b iter.Seq2[K, V], cmp func(K, K) int) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		nextA, stopA := iter.Pull2(a)
		defer stopA()
		nextB, stopB := iter.Pull2(b)
		defer stopB()

		ka, va, okA := nextA()
		kb, vb, okB := nextB()
		for okA || okB {
			switch {
			case !okB || (okA && cmp(ka, kb) < 0):
				if !yield(ka, va) {
					return
				}
				ka, va, okA = nextA()
			case !okA || cmp(kb, ka) < 0:
				if !yield(kb, vb) {
					return
				}
				kb, vb, okB = nextB()
			default:
				// equal keys: a wins, both advance
				if !yield(ka, va) {
					return
				}
				ka, va, okA = nextA()
				kb, vb, okB = nextB()
			}
		}
	}
}

// Overlap yields the entries of a whose keys also appear in b, in
// ascending order. It is the intersection with values taken from a.
func Overlap[K, V any](a, b iter.Seq2[K, V], cmp func(K, K) int) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		nextA, stopA := iter.Pull2(a)
		defer stopA()
		nextB, stopB := iter.Pull2(b)
		defer stopB()

		ka, va, okA := nextA()
		kb, _, okB := nextB()
		for okA && okB {
			c := cmp(ka, kb)
			switch {
			case c < 0:
				ka, va, okA = nextA()
			case c > 0:
				kb, _, okB = nextB()
			default:
				if !yield(ka, va) {
					return
				}
				ka, va, okA = nextA()
				kb, _, okB = nextB()
			}
		}
	}
}

// Subtract yields the entries of a whose keys do not appear in b, in
// ascending order.
func Subtract[K, V any](a, b iter.Seq2[K, V], cmp func(K, K) int) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		nextA, stopA := iter.Pull2(a)
		defer stopA()
		nextB, stopB := iter.Pull2(b)
		defer stopB()

		ka, va, okA := nextA()
		kb, _, okB := nextB()
		for okA {
			if !okB {
				if !yield(ka, va) {
					return
				}
				ka, va, okA = nextA()
				continue
			}
			c := cmp(ka, kb)
			switch {
			case c < 0:
				if !yield(ka, va) {
					return
				}
				ka, va, okA = nextA()
			case c > 0:
				kb, _, okB = nextB()
			default:
				// key in both: drop it from the output
				ka, va, okA = nextA()
				kb, _, okB = nextB()
			}
		}
	}
}

// Exclusive yields the entries whose keys appear in exactly one of a and
// b, in ascending order. It is the symmetric difference.
func Exclusive[K, V any](a, b iter.Seq2[K, V], cmp func(K, K) int) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		nextA, stopA := iter.Pull2(a)
		defer stopA()
		nextB, stopB := iter.Pull2(b)
		defer stopB()

		ka, va, okA := nextA()
		kb, vb, okB := nextB()
		for okA || okB {
			switch {
			case !okB:
				if !yield(ka, va) {
					return
				}
				ka, va, okA = nextA()
			case !okA:
				if !yield(kb, vb) {
					return
				}
				kb, vb, okB = nextB()
			default:
				c := cmp(ka, kb)
				switch {
				case c < 0:
					if !yield(ka, va) {
						return
					}
					ka, va, okA = nextA()
				case c > 0:
					if !yield(kb, vb) {
						return
					}
					kb, vb, okB = nextB()
				default:
					ka, va, okA = nextA()
					kb, vb, okB = nextB()
				}
			}
		}
	}
}
