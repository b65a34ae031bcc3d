package punch

// CanonicalOrder is the fixed daily punch sequence. The Nth type cannot
// be recorded until every earlier type exists for that (user, date).
var CanonicalOrder = []Type{TypeClockIn, TypeLunchOut, TypeLunchIn, TypeClockOut}

// NextType returns the first type in canonical order not yet present in
// recorded, and ok=false when all four exist (day complete). The input
// is treated as a set: duplicates count as already satisfied.
func NextType(recorded []Type) (next Type, ok bool) {
	seen := make(map[Type]struct{}, len(recorded))
	for _, t := range recorded {
		seen[t] = struct{}{}
	}

	for _, t := range CanonicalOrder {
		if _, done := seen[t]; !done {
			return t, true
		}
	}
	return "", false
}
