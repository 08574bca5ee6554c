package farthest

import "fmt"

// Partition tracks cluster membership for a fixed set of n entities.
// Storage slot i holds the members of the cluster that started as input
// label i+1. Slots are stable: a slot emptied by Merge is never removed or
// recycled, it simply can no longer win a scan (an empty slot contributes
// no member pairs). Every entity belongs to exactly one slot at all times.
type Partition struct {
	members [][]int
	live    int
}

// NewPartition builds a partition from 1-based initial labels: entity i is
// placed in slot labels[i]-1. Returns ErrInvalidLabel if any label falls
// outside [1, n].
func NewPartition(labels []int) (*Partition, error) {
	n := len(labels)
	members := make([][]int, n)
	for i, label := range labels {
		if label < 1 || label > n {
			return nil, fmt.Errorf("farthest: label %d for entity %d outside [1, %d]: %w",
				label, i, n, ErrInvalidLabel)
		}
		members[label-1] = append(members[label-1], i)
	}

	p := &Partition{members: members}
	for _, m := range members {
		if len(m) > 0 {
			p.live++
		}
	}
	return p, nil
}

// Len returns the number of storage slots (n, one per entity in the worst
// case of all-singleton input).
func (p *Partition) Len() int {
	return len(p.members)
}

// Live returns the number of non-empty slots.
func (p *Partition) Live() int {
	return p.live
}

// IsEmpty reports whether slot holds no members.
func (p *Partition) IsEmpty(slot int) bool {
	return len(p.members[slot]) == 0
}

// Members returns the entities in slot, in insertion order. The returned
// slice is a view; callers must not modify it.
func (p *Partition) Members(slot int) []int {
	return p.members[slot]
}

// Merge appends every member of loser to winner and empties loser, which
// becomes permanently inert. Both slots must be distinct and non-empty.
// Runs in O(len(loser)).
func (p *Partition) Merge(winner, loser int) {
	if winner == loser {
		panic(fmt.Sprintf("farthest: Merge of slot %d with itself", winner))
	}
	if len(p.members[winner]) == 0 || len(p.members[loser]) == 0 {
		panic(fmt.Sprintf("farthest: Merge of empty slot (%d, %d)", winner, loser))
	}
	p.members[winner] = append(p.members[winner], p.members[loser]...)
	p.members[loser] = nil
	p.live--
}

// Labels encodes the partition as a 1-based labeling: entity e gets label
// s+1 where s is the slot holding e. Empty slots never appear, so the
// label set may be sparse.
func (p *Partition) Labels() []int {
	out := make([]int, len(p.members))
	for slot, m := range p.members {
		for _, e := range m {
			out[e] = slot + 1
		}
	}
	return out
}
