package entity

// Sweep removes every element for which keep returns false by swapping it
// with the last element and shrinking the slice. Order is not preserved;
// the backing array is reused.
func Sweep[T any](items []T, keep func(*T) bool) []T {
	n := len(items)
	for i := 0; i < n; {
		if keep(&items[i]) {
			i++
			continue
		}
		n--
		items[i] = items[n]
	}
	var zero T
	for i := n; i < len(items); i++ {
		items[i] = zero // не держим ссылки на удалённые элементы
	}
	return items[:n]
}
