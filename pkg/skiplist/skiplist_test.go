package skiplist

import (
	"testing"

	"Skipdex/pkg/util/random"

	"gotest.tools/assert"
)

// scriptedSource replays a fixed sequence of draws and then keeps
// returning 1, which always refuses promotion.
type scriptedSource struct {
	draws []float64
	pos   int
}

func (s *scriptedSource) Float64() float64 {
	if s.pos >= len(s.draws) {
		return 1
	}
	v := s.draws[s.pos]
	s.pos++
	return v
}

func newSeededList(t *testing.T, seed uint32) *Skiplist {
	opts := NewDefaultOptions()
	opts.Rand = random.New(seed)
	l, err := NewWithOptions(opts)
	assert.NilError(t, err)
	return l
}

func TestSkiplistScenario(t *testing.T) {
	l := newSeededList(t, 42)

	fruits := []struct {
		key   int
		value string
	}{
		{10, "Apple"},
		{20, "Banana"},
		{5, "Cherry"},
		{30, "Date"},
		{15, "Elderberry"},
		{25, "Fig"},
	}
	for _, f := range fruits {
		l.Insert(IntKey(f.key), f.value)
	}

	assert.Equal(t, l.Len(), 6)

	entries := l.Entries()
	wantKeys := []int{5, 10, 15, 20, 25, 30}
	wantValues := []string{"Cherry", "Apple", "Elderberry", "Banana", "Fig", "Date"}
	assert.Equal(t, len(entries), 6)
	for i, e := range entries {
		assert.Equal(t, int(e.Key.(IntKey)), wantKeys[i])
		assert.Equal(t, e.Value.(string), wantValues[i])
	}

	v, ok := l.Search(IntKey(15))
	assert.Assert(t, ok)
	assert.Equal(t, v.(string), "Elderberry")

	_, ok = l.Search(IntKey(35))
	assert.Assert(t, !ok)

	assert.Assert(t, l.Delete(IntKey(20)))
	assert.Assert(t, !l.Delete(IntKey(35)))
	assert.Assert(t, l.Delete(IntKey(5)))

	entries = l.Entries()
	wantKeys = []int{10, 15, 25, 30}
	wantValues = []string{"Apple", "Elderberry", "Fig", "Date"}
	assert.Equal(t, len(entries), 4)
	for i, e := range entries {
		assert.Equal(t, int(e.Key.(IntKey)), wantKeys[i])
		assert.Equal(t, e.Value.(string), wantValues[i])
	}
}

func TestInsertReplacesValueInPlace(t *testing.T) {
	l := newSeededList(t, 7)

	l.Insert(IntKey(1), "one")
	l.Insert(IntKey(2), "two")
	l.Insert(IntKey(1), "uno")

	assert.Equal(t, l.Len(), 2)
	v, ok := l.Search(IntKey(1))
	assert.Assert(t, ok)
	assert.Equal(t, v.(string), "uno")
}

func TestDeleteCorrectness(t *testing.T) {
	l := newSeededList(t, 7)

	for i := 0; i < 10; i++ {
		l.Insert(IntKey(i), i*10)
	}
	before := l.Len()

	assert.Assert(t, l.Delete(IntKey(4)))
	_, ok := l.Search(IntKey(4))
	assert.Assert(t, !ok)
	assert.Equal(t, l.Len(), before-1)

	// Deleting an absent key changes nothing.
	assert.Assert(t, !l.Delete(IntKey(4)))
	assert.Equal(t, l.Len(), before-1)
}

func TestOrderInvariant(t *testing.T) {
	l := newSeededList(t, 99)
	r := random.New(1234)

	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		k := int(r.Uniform(500))
		seen[k] = true
		l.Insert(IntKey(k), k)
	}

	entries := l.Entries()
	assert.Equal(t, len(entries), len(seen))
	assert.Equal(t, l.Len(), len(seen))
	for i := 1; i < len(entries); i++ {
		assert.Assert(t, entries[i-1].Key.Compare(entries[i].Key) < 0)
	}
}

func TestRoundTrip(t *testing.T) {
	l := newSeededList(t, 3)

	for i := 0; i < 200; i++ {
		l.Insert(IntKey(i*3), i)
	}
	for i := 0; i < 200; i++ {
		v, ok := l.Search(IntKey(i * 3))
		assert.Assert(t, ok)
		assert.Equal(t, v.(int), i)
	}
	_, ok := l.Search(IntKey(1))
	assert.Assert(t, !ok)
}

func TestLevelShrink(t *testing.T) {
	// Heights are scripted: key 1 stays on level 0, key 2 grows to
	// level 3. Removing key 2 must drop the list back to level 0 with
	// nothing reachable above it.
	opts := NewDefaultOptions()
	opts.Rand = &scriptedSource{draws: []float64{
		0.9,           // key 1: no promotion
		0.1, 0.1, 0.1, // key 2 promoted to level 3
		0.9,
	}}
	l, err := NewWithOptions(opts)
	assert.NilError(t, err)

	l.Insert(IntKey(1), "a")
	l.Insert(IntKey(2), "b")
	assert.Equal(t, l.Level(), 3)

	assert.Assert(t, l.Delete(IntKey(2)))
	assert.Equal(t, l.Level(), 0)
	for i := 1; i <= l.MaxLevel(); i++ {
		assert.Assert(t, l.header.Next(i) == nil)
	}

	v, ok := l.Search(IntKey(1))
	assert.Assert(t, ok)
	assert.Equal(t, v.(string), "a")
}

func TestRandomLevelClampsAtMaxLevel(t *testing.T) {
	opts := NewDefaultOptions()
	opts.MaxLevel = 4
	// Every draw promotes; the clamp must stop at the ceiling.
	opts.Rand = &scriptedSource{draws: []float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}}
	l, err := NewWithOptions(opts)
	assert.NilError(t, err)

	l.Insert(IntKey(1), nil)
	assert.Equal(t, l.Level(), 4)
}

func TestDeterministicStructureForFixedSeed(t *testing.T) {
	build := func() *Skiplist {
		opts := NewDefaultOptions()
		opts.Rand = random.New(42)
		l, err := NewWithOptions(opts)
		assert.NilError(t, err)
		for i := 0; i < 64; i++ {
			l.Insert(IntKey(i), i)
		}
		return l
	}

	a := build()
	b := build()
	assert.Equal(t, a.DumpStructure(), b.DumpStructure())
	assert.Equal(t, a.Level(), b.Level())
}

func TestOptionsValidation(t *testing.T) {
	for _, tc := range []struct {
		name string
		opts Options
	}{
		{"negative max level", Options{MaxLevel: -1, Probability: 0.5}},
		{"zero probability", Options{MaxLevel: 16, Probability: 0}},
		{"unit probability", Options{MaxLevel: 16, Probability: 1}},
		{"probability above one", Options{MaxLevel: 16, Probability: 1.5}},
	} {
		_, err := NewWithOptions(tc.opts)
		assert.Assert(t, err != nil, tc.name)
	}

	// MaxLevel 0 degenerates into a plain linked list but is legal.
	l, err := NewWithOptions(Options{MaxLevel: 0, Probability: 0.5, Rand: random.New(1)})
	assert.NilError(t, err)
	l.Insert(IntKey(2), "b")
	l.Insert(IntKey(1), "a")
	assert.Equal(t, l.Len(), 2)
	assert.Equal(t, l.Level(), 0)
}

func TestEmptyList(t *testing.T) {
	l := New()
	assert.Equal(t, l.Len(), 0)
	assert.Equal(t, len(l.Entries()), 0)
	_, ok := l.Search(IntKey(1))
	assert.Assert(t, !ok)
	assert.Assert(t, !l.Delete(IntKey(1)))
	assert.Assert(t, !l.Iterator().Valid())
}

func TestIterator(t *testing.T) {
	l := newSeededList(t, 5)
	l.Insert(StringKey("b"), 2)
	l.Insert(StringKey("a"), 1)
	l.Insert(StringKey("c"), 3)

	it := l.Iterator()
	assert.Assert(t, it.Valid())
	assert.Equal(t, string(it.Key().(StringKey)), "a")
	assert.Equal(t, it.Value().(int), 1)
	it.Next()
	assert.Equal(t, string(it.Key().(StringKey)), "b")
	it.Next()
	assert.Equal(t, string(it.Key().(StringKey)), "c")
	it.Next()
	assert.Assert(t, !it.Valid())
}

func TestDumpStructureListsEveryLevel(t *testing.T) {
	opts := NewDefaultOptions()
	opts.Rand = &scriptedSource{draws: []float64{
		0.9,      // 1 on level 0 only
		0.1, 0.9, // 2 on levels 0..1
	}}
	l, err := NewWithOptions(opts)
	assert.NilError(t, err)

	l.Insert(IntKey(1), "a")
	l.Insert(IntKey(2), "b")

	dump := l.DumpStructure()
	assert.Equal(t, dump,
		"Skip List Structure:\n"+
			"Level 1: (2, b) \n"+
			"Level 0: (1, a) (2, b) \n")
}
