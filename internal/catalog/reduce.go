package catalog

// AnnotateCounts fills TotalRecordings and TotalSubworks for every node in
// the tree, bottom-up. For a leaf, TotalRecordings counts its own recordings
// and TotalSubworks is zero; for an internal node, both sum over the subtree
// (TotalSubworks counts descendant nodes, not recordings).
func AnnotateCounts(work *Work) {
	if len(work.Subworks) == 0 {
		work.TotalRecordings = len(work.Recordings)
		work.TotalSubworks = 0
		return
	}

	recordings, descendants := 0, 0
	for _, sub := range work.Subworks {
		AnnotateCounts(sub)
		recordings += sub.TotalRecordings
		descendants += 1 + sub.TotalSubworks
	}
	work.TotalRecordings = len(work.Recordings) + recordings
	work.TotalSubworks = descendants
}

// FlattenParts reduces a work tree to its ordered list of valid playable
// parts. A leaf qualifies when its own recording count meets minRecordings;
// an internal node flattens to the concatenation of its children's valid
// parts. When that concatenation is empty but the node's own direct
// recordings meet the threshold, the node itself is promoted to a single
// part; works whose sub-division is too granular to qualify individually
// can still surface through their undivided recordings.
//
// The second return value counts leaves dropped for insufficient recordings.
func FlattenParts(work *Work, minRecordings int) ([]*Work, int) {
	if len(work.Subworks) == 0 {
		if len(work.Recordings) >= minRecordings {
			return []*Work{work}, 0
		}
		return nil, 1
	}

	var parts []*Work
	dropped := 0
	for _, sub := range work.Subworks {
		subParts, subDropped := FlattenParts(sub, minRecordings)
		parts = append(parts, subParts...)
		dropped += subDropped
	}
	if len(parts) == 0 && len(work.Recordings) >= minRecordings {
		return []*Work{work}, dropped
	}
	return parts, dropped
}
