package model

// Indexed pairs a value with its position in the unsorted input.
type Indexed[T any] struct {
	Value T
	Index int
}

// SortListsForDisplay returns incomplete lists followed by complete ones,
// keeping the input order inside each group.
func SortListsForDisplay(lists []List) []Indexed[List] {
	return partition(lists, List.IsComplete)
}

// SortTodosForDisplay returns open todos followed by completed ones,
// keeping the input order inside each group.
func SortTodosForDisplay(todos []Todo) []Indexed[Todo] {
	return partition(todos, func(t Todo) bool { return t.Completed })
}

func partition[T any](items []T, done func(T) bool) []Indexed[T] {
	out := make([]Indexed[T], 0, len(items))
	var tail []Indexed[T]
	for i, item := range items {
		if done(item) {
			tail = append(tail, Indexed[T]{Value: item, Index: i})
			continue
		}
		out = append(out, Indexed[T]{Value: item, Index: i})
	}
	return append(out, tail...)
}
