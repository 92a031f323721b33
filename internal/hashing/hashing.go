// Package hashing provides position hashing and repetition counting.
package hashing

// RepetitionTable counts how often each canonical position key has been seen.
// It is not safe for concurrent use.
type RepetitionTable struct {
	// counts maps a position key to its number of occurrences
	counts map[string]int
	// duplicateCount tracks keys added after their first occurrence
	duplicateCount int
}

// NewRepetitionTable creates an empty table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{
		counts: make(map[string]int),
	}
}

// NewRepetitionTableFrom creates a table holding every key of history.
func NewRepetitionTableFrom(history []string) *RepetitionTable {
	t := &RepetitionTable{
		counts: make(map[string]int, len(history)+1),
	}
	for _, key := range history {
		t.Add(key)
	}
	return t
}

// Add records one occurrence of key and returns its new count.
func (t *RepetitionTable) Add(key string) int {
	t.counts[key]++
	n := t.counts[key]
	if n > 1 {
		t.duplicateCount++
	}
	return n
}

// CheckAndAdd records key and reports whether it had been seen before.
func (t *RepetitionTable) CheckAndAdd(key string) bool {
	return t.Add(key) > 1
}

// Count returns how many times key has been recorded.
func (t *RepetitionTable) Count(key string) int {
	return t.counts[key]
}

// DuplicateCount returns the number of repeated additions.
func (t *RepetitionTable) DuplicateCount() int {
	return t.duplicateCount
}

// UniqueCount returns the number of distinct keys.
func (t *RepetitionTable) UniqueCount() int {
	return len(t.counts)
}

// Reset clears the table.
func (t *RepetitionTable) Reset() {
	t.counts = make(map[string]int)
	t.duplicateCount = 0
}
