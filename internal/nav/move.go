package nav

// MoveElement returns a copy of list with the element at from relocated to
// to. All other elements keep their relative order. Out-of-range indices
// return the list unchanged.
func MoveElement[T any](list []T, from, to int) []T {
	if from < 0 || from >= len(list) || to < 0 || to >= len(list) {
		return list
	}
	result := make([]T, 0, len(list))
	result = append(result, list[:from]...)
	result = append(result, list[from+1:]...)
	moved := list[from]
	result = append(result[:to], append([]T{moved}, result[to:]...)...)
	return result
}

// DropKind distinguishes what a drag operation carries.
type DropKind string

const (
	DropGroup DropKind = "group"
	DropItem  DropKind = "item"
)

// DropTarget is a candidate location during a drag operation.
type DropTarget struct {
	Kind    DropKind
	ID      string
	GroupID string
}

// FilterDropTargets keeps only targets compatible with the active drag:
// groups reorder against groups, items against items. Mixed-kind drops are
// rejected up front rather than at apply time.
func FilterDropTargets(active DropTarget, candidates []DropTarget) []DropTarget {
	matched := make([]DropTarget, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.Kind != active.Kind {
			continue
		}
		if candidate.Kind == active.Kind && candidate.ID == active.ID && candidate.GroupID == active.GroupID {
			continue
		}
		matched = append(matched, candidate)
	}
	return matched
}
