package skiplist

// Node holds one key/value pair and its forward links. A node created
// at level L participates in levels 0..L and owns L+1 links; the level
// is fixed for the node's lifetime.
type Node struct {
	key   Key
	value interface{}
	next  []*Node
}

func newNode(key Key, value interface{}, level int) *Node {
	return &Node{
		key:   key,
		value: value,
		next:  make([]*Node, level+1),
	}
}

func (o *Node) Key() Key {
	return o.key
}

func (o *Node) Value() interface{} {
	return o.value
}

func (o *Node) Next(level int) *Node {
	if level >= len(o.next) {
		return nil
	}
	return o.next[level]
}

func (o *Node) setNext(level int, x *Node) {
	if level >= len(o.next) {
		panic("skiplist: setNext level out of range")
	}
	o.next[level] = x
}
