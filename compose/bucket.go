package compose

// Bucketed splits items into exactly k sublists whose sizes differ by at
// most one: the first n mod k buckets have size ceil(n/k), the rest have
// size floor(n/k). Order within each bucket preserves input order.
func Bucketed[T any](items []T, k int) [][]T {
	n := len(items)
	buckets := make([][]T, k)
	base := n / k
	larger := n % k

	idx := 0
	for i := 0; i < k; i++ {
		size := base
		if i < larger {
			size++
		}
		bucket := make([]T, size)
		copy(bucket, items[idx:idx+size])
		buckets[i] = bucket
		idx += size
	}
	return buckets
}
