package farthest

import "sort"

// Compact renumbers a possibly sparse 1-based labeling to a dense 1..k
// labeling, assigning new labels in order of first appearance. The input
// is not modified. Compact is a post-processing step; nothing in the core
// algorithm calls it.
func Compact(labels []int) []int {
	out := make([]int, len(labels))
	remap := make(map[int]int, len(labels))
	next := 1
	for i, label := range labels {
		dense, ok := remap[label]
		if !ok {
			dense = next
			remap[label] = dense
			next++
		}
		out[i] = dense
	}
	return out
}

// OrderBySize renumbers a possibly sparse 1-based labeling to a dense
// 1..k labeling with the largest cluster first. Equal-sized clusters keep
// ascending original-label order. The input is not modified.
func OrderBySize(labels []int) []int {
	counts := make(map[int]int, len(labels))
	for _, label := range labels {
		counts[label]++
	}

	order := make([]int, 0, len(counts))
	for label := range counts {
		order = append(order, label)
	}
	sort.Slice(order, func(a, b int) bool {
		if counts[order[a]] != counts[order[b]] {
			return counts[order[a]] > counts[order[b]]
		}
		return order[a] < order[b]
	})

	rank := make(map[int]int, len(order))
	for i, label := range order {
		rank[label] = i + 1
	}

	out := make([]int, len(labels))
	for i, label := range labels {
		out[i] = rank[label]
	}
	return out
}
