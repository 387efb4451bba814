package cpm

// Sequence orders ids so that each id comes after all of its predecessors.
//
// It is a depth-first visit over predecessors with three-colour marking, walking
// ids in the given order. A predecessor found in progress closes a cycle; it is
// skipped and hasCycle is reported instead of failing. Every id appears exactly
// once in order. Predecessors that are not in ids are ignored.
func Sequence(ids []string, preds map[string][]string) (order []string, hasCycle bool) {
	known := make(map[string]bool, len(ids))
	for _, id := range ids {
		known[id] = true
	}

	marks := make(map[string]mark, len(ids))
	order = make([]string, 0, len(ids))

	var visit func(id string)
	visit = func(id string) {
		switch marks[id] {
		case done:
			return
		case inProgress:
			hasCycle = true
			return
		}

		marks[id] = inProgress
		for _, p := range preds[id] {
			if known[p] {
				visit(p)
			}
		}
		marks[id] = done
		order = append(order, id)
	}

	for _, id := range ids {
		visit(id)
	}
	return order, hasCycle
}
