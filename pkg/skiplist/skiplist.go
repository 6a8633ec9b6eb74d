package skiplist

import (
	"fmt"
	"strings"
	"time"

	"Skipdex/pkg/util/random"
)

// Skiplist is an ordered map from Key to opaque values. Search, Insert
// and Delete take expected O(log n); Entries and Len walk level 0 in
// O(n). A single writer is assumed: callers sharing a list across
// goroutines must serialize mutating calls themselves.
type Skiplist struct {
	header      *Node
	level       int // highest level holding at least one real node
	maxLevel    int
	probability float64
	rand        Source
}

// New returns a list with default options. It cannot fail.
func New() *Skiplist {
	l, _ := NewWithOptions(NewDefaultOptions())
	return l
}

// NewWithOptions returns a list configured by opts, or an error when
// the options fail validation.
func NewWithOptions(opts Options) (*Skiplist, error) {
	if errs := opts.Validate(); len(errs) > 0 {
		return nil, errs[0]
	}
	if opts.Rand == nil {
		opts.Rand = random.New(uint32(time.Now().Unix()))
	}
	l := &Skiplist{
		// The header participates in every level up front and never
		// holds a key; traversal only ever compares successor keys, so
		// it behaves as a key smaller than all others.
		header:      newNode(nil, nil, opts.MaxLevel),
		maxLevel:    opts.MaxLevel,
		probability: opts.Probability,
		rand:        opts.Rand,
	}
	return l, nil
}

// randomLevel draws the level for a new node: each draw below the
// promotion probability buys one more level, clamped at maxLevel.
// Expected node height is 1/(1-p).
func (l *Skiplist) randomLevel() int {
	level := 0
	for l.rand.Float64() < l.probability && level < l.maxLevel {
		level++
	}
	return level
}

// findPrevs walks from the header at the current top level down to
// level 0, advancing while the successor key is strictly less than key.
// When update is non-nil, update[i] records the last node visited
// before descending out of level i, i.e. the strict predecessor of key
// on that level. Returns the level-0 successor of the final position,
// the only node that can hold key.
func (l *Skiplist) findPrevs(key Key, update []*Node) *Node {
	x := l.header
	for i := l.level; i >= 0; i-- {
		for {
			next := x.Next(i)
			if next == nil || next.key.Compare(key) >= 0 {
				break
			}
			x = next
		}
		if update != nil {
			update[i] = x
		}
	}
	return x.Next(0)
}

// Search returns the value stored under key, or false when the key is
// absent.
func (l *Skiplist) Search(key Key) (interface{}, bool) {
	x := l.findPrevs(key, nil)
	if x != nil && x.key.Compare(key) == 0 {
		return x.value, true
	}
	return nil, false
}

// Insert stores value under key. Re-inserting an existing key replaces
// its value wholesale; no links move and no duplicate node appears.
func (l *Skiplist) Insert(key Key, value interface{}) {
	update := make([]*Node, l.maxLevel+1)
	x := l.findPrevs(key, update)

	if x != nil && x.key.Compare(key) == 0 {
		x.value = value
		return
	}

	newLevel := l.randomLevel()
	if newLevel > l.level {
		// The node is taller than the list has ever been; the header
		// is the only predecessor on the fresh levels.
		for i := l.level + 1; i <= newLevel; i++ {
			update[i] = l.header
		}
		l.level = newLevel
	}

	o := newNode(key, value, newLevel)
	for i := 0; i <= newLevel; i++ {
		o.setNext(i, update[i].Next(i))
		update[i].setNext(i, o)
	}
}

// Delete unlinks the node holding key from every level it occupies and
// reports whether the key was present. Empty top levels are dropped
// immediately after the unlink.
func (l *Skiplist) Delete(key Key) bool {
	update := make([]*Node, l.maxLevel+1)
	x := l.findPrevs(key, update)
	if x == nil || x.key.Compare(key) != 0 {
		return false
	}

	for i := 0; i <= l.level; i++ {
		if update[i].Next(i) != x {
			// Level membership is a contiguous prefix, so the node is
			// absent from every level above this one as well.
			break
		}
		update[i].setNext(i, x.Next(i))
	}

	for l.level > 0 && l.header.Next(l.level) == nil {
		l.level--
	}
	return true
}

// Entry is one key/value pair reported by Entries.
type Entry struct {
	Key   Key
	Value interface{}
}

// Entries returns every pair in ascending key order, reflecting the
// live state at call time.
func (l *Skiplist) Entries() []Entry {
	entries := []Entry{}
	for x := l.header.Next(0); x != nil; x = x.Next(0) {
		entries = append(entries, Entry{Key: x.key, Value: x.value})
	}
	return entries
}

// Len counts the nodes on level 0. O(n): the list keeps no counter.
func (l *Skiplist) Len() int {
	n := 0
	for x := l.header.Next(0); x != nil; x = x.Next(0) {
		n++
	}
	return n
}

// Level returns the highest level currently holding a real node.
func (l *Skiplist) Level() int {
	return l.level
}

func (l *Skiplist) MaxLevel() int {
	return l.maxLevel
}

// DumpStructure renders the per-level links top-down, a debugging aid
// whose output format is not part of the list's contract.
func (l *Skiplist) DumpStructure() string {
	var b strings.Builder
	b.WriteString("Skip List Structure:\n")
	for i := l.level; i >= 0; i-- {
		fmt.Fprintf(&b, "Level %d: ", i)
		for x := l.header.Next(i); x != nil; x = x.Next(i) {
			fmt.Fprintf(&b, "(%v, %v) ", x.key, x.value)
		}
		b.WriteString("\n")
	}
	return b.String()
}
