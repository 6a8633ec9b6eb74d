package skiplist

// Iterator walks level 0 in ascending key order. It is a view over the
// live list; a fresh call to Iterator restarts from the front.
type Iterator struct {
	p *Node
}

func (l *Skiplist) Iterator() *Iterator {
	return &Iterator{p: l.header.Next(0)}
}

func (it *Iterator) Next() {
	if it.p != nil {
		it.p = it.p.Next(0)
	}
}

func (it *Iterator) Valid() bool {
	return it.p != nil
}

func (it *Iterator) Key() Key {
	return it.p.Key()
}

func (it *Iterator) Value() interface{} {
	return it.p.Value()
}
