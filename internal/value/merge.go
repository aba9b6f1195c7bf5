package value

// DeepMerge combines mergee into merger and returns the result as a new Map.
// Neither input is modified. For each key of mergee, in order:
//   - map into map: merged recursively with the same rules
//   - list: concatenated after merger's list (merger items first), or taken
//     as is when merger has no list under that key
//   - anything else: mergee's value overwrites
//
// Keys already in merger keep their position; new keys are appended in
// mergee order. Concatenated lists are never deduplicated.
func DeepMerge(mergee, merger *Map) *Map {
	result := merger.Clone()

	for k, v := range mergee.All() {
		existing, ok := result.Get(k)

		switch {
		case v.Kind() == KindMap && existing.Kind() == KindMap:
			result.Set(k, MapOf(DeepMerge(v.Map(), existing.Map())))
		case v.Kind() == KindList && ok && existing.Kind() == KindList:
			items := make([]Value, 0, len(existing.Items())+len(v.Items()))
			items = append(items, existing.Items()...)
			for _, item := range v.Items() {
				items = append(items, item.Clone())
			}
			result.Set(k, List(items...))
		default:
			result.Set(k, v.Clone())
		}
	}

	return result
}

// MergeAll folds layers into a single Map, lowest precedence first.
func MergeAll(layers ...*Map) *Map {
	result := NewMap()
	for _, layer := range layers {
		result = DeepMerge(layer, result)
	}
	return result
}
