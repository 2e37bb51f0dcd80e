// Package analyzer holds the per-facet pattern extractors and aggregators.
// Each facet is an explicit ordered list of textual pattern rules applied to
// raw file content; extraction never parses, never mutates the filesystem,
// and never lets a single odd file abort a pass.
package analyzer

import (
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/castellan/webscope/internal/fileproc"
	"github.com/castellan/webscope/internal/scanner"
)

// contextID returns a short stable identity hash for a fact, for
// traceability across runs. Identity only, not integrity: xxhash is enough.
func contextID(parts ...string) string {
	h := xxhash.New()
	for _, p := range parts {
		_, _ = h.WriteString(p)
		_, _ = h.Write([]byte{0})
	}
	return strconv.FormatUint(h.Sum64(), 16)
}

// nameCount pairs a name with its tally.
type nameCount struct {
	Name  string
	Count int
}

// counter tallies names while preserving first-seen order, so frequency
// rankings break ties by first-encountered position in the enumerated file
// sequence.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) Add(name string, n int) {
	if _, seen := c.counts[name]; !seen {
		c.order = append(c.order, name)
	}
	c.counts[name] += n
}

func (c *counter) Get(name string) int {
	return c.counts[name]
}

func (c *counter) Len() int {
	return len(c.order)
}

func (c *counter) Total() int {
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}

// Ranked returns entries sorted by descending count. The stable sort over
// first-seen insertion order gives the deterministic tie-break.
func (c *counter) Ranked() []nameCount {
	ranked := make([]nameCount, 0, len(c.order))
	for _, name := range c.order {
		ranked = append(ranked, nameCount{Name: name, Count: c.counts[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

// capList truncates items to max entries. Truncation silently caps, never
// errors, and is idempotent.
func capList[T any](items []T, max int) ([]T, bool) {
	if max <= 0 || len(items) <= max {
		return items, false
	}
	return items[:max], true
}

// loadAll reads every record's text with bounded concurrency. The result
// slice is index-aligned with records, so aggregation sees file contents in
// enumeration order no matter how the reads interleave. Unreadable or
// non-text files come back with Ok=false and are skipped by callers.
func loadAll(root string, records []scanner.FileRecord, maxWorkers int, onProgress fileproc.ProgressFunc) []fileproc.Result[string] {
	paths := make([]string, len(records))
	for i, rec := range records {
		paths[i] = rec.RelPath
	}
	return fileproc.MapOrderedWithProgress(paths, maxWorkers, func(rel string) (string, error) {
		return scanner.Load(root, rel)
	}, onProgress)
}
