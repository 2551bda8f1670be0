package collector

import (
	"sort"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"go-jobboard-automation/internal/browser"
)

// KeyedSet accumulates item markup keyed by the numeric index attribute
// the site renders on each listing node. The first observation of a key
// wins; later re-renders of the same index never overwrite it.
// Not safe for concurrent use; a collection run owns its set exclusively.
type KeyedSet struct {
	keys   mapset.Set[int]
	markup map[int]string
}

func NewKeyedSet() *KeyedSet {
	return &KeyedSet{
		keys:   mapset.NewThreadUnsafeSet[int](),
		markup: make(map[int]string),
	}
}

// Merge folds one snapshot into the set. Fragments whose key is missing
// or not numeric are skipped.
func (s *KeyedSet) Merge(fragments []browser.Fragment) {
	for _, f := range fragments {
		idx, err := strconv.Atoi(strings.TrimSpace(f.Key))
		if err != nil {
			continue
		}
		if s.keys.Add(idx) {
			s.markup[idx] = f.HTML
		}
	}
}

func (s *KeyedSet) Len() int {
	return s.keys.Cardinality()
}

// MaxKey returns the highest observed key, -1 when the set is empty.
func (s *KeyedSet) MaxKey() int {
	max := -1
	for _, k := range s.keys.ToSlice() {
		if k > max {
			max = k
		}
	}
	return max
}

// Document concatenates the collected markup in ascending numeric key
// order inside a <ul> wrapper. Keys are compared as numbers: lexical
// order would place 10 between 1 and 2.
func (s *KeyedSet) Document() string {
	keys := s.keys.ToSlice()
	sort.Ints(keys)

	var b strings.Builder
	b.WriteString("<ul>")
	for _, k := range keys {
		b.WriteString(s.markup[k])
	}
	b.WriteString("</ul>")
	return b.String()
}

// Sequence accumulates item markup blocks in encounter order. Pages are
// assumed disjoint, so nothing is keyed and nothing is deduplicated.
type Sequence struct {
	blocks []string
}

func NewSequence() *Sequence {
	return &Sequence{}
}

func (s *Sequence) Append(fragments []browser.Fragment) {
	for _, f := range fragments {
		s.blocks = append(s.blocks, f.HTML)
	}
}

func (s *Sequence) Len() int {
	return len(s.blocks)
}

// Document concatenates the blocks in encounter order inside a <div>
// wrapper.
func (s *Sequence) Document() string {
	var b strings.Builder
	b.WriteString("<div>")
	for _, block := range s.blocks {
		b.WriteString(block)
	}
	b.WriteString("</div>")
	return b.String()
}
