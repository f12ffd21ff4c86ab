package list

type Node[T any] struct {
	value T
	prev  *Node[T]
	next  *Node[T]
}

func (n *Node[T]) Value() T {
	return n.value
}

type Generic[T any] struct {
	Size uint32
	head *Node[T]
	tail *Node[T]
}

func CreateGeneric[T any]() *Generic[T] {
	return new(Generic[T])
}

// attach obj to the end of the linked list
func (g *Generic[T]) Append(obj T) *Node[T] {
	node := &Node[T]{value: obj}
	if g.tail == nil {
		g.head = node
		g.tail = node
	} else {
		node.prev = g.tail
		g.tail.next = node
		g.tail = node
	}
	g.Size++
	return node
}

func (g *Generic[T]) Head() (ans T, present bool) {
	if g.head != nil {
		ans = g.head.value
		present = true
	}
	return
}

func (g *Generic[T]) Tail() (ans T, present bool) {
	if g.tail != nil {
		ans = g.tail.value
		present = true
	}
	return
}

// remove and return the first element of the linked list
func (g *Generic[T]) Pop() (ans T, present bool) {
	if g.head == nil {
		return
	}
	ans = g.head.value
	present = true
	g.Remove(g.head)
	return
}

func (g *Generic[T]) Iterate(callback func(obj T, index uint32, remove func()) error) error {
	var i uint32
	for node := g.head; node != nil; node = node.next {
		n := node
		if err := callback(node.value, i, func() { g.Remove(n) }); err != nil {
			return err
		}
		i++
	}
	return nil
}

func (g *Generic[T]) Array() []T {
	ans := make([]T, 0, g.Size)
	g.Iterate(func(obj T, index uint32, remove func()) error {
		ans = append(ans, obj)
		return nil
	})
	return ans
}

func (g *Generic[T]) Remove(node *Node[T]) {
	if node == nil {
		return
	}
	if node.prev == nil {
		g.head = node.next
	} else {
		node.prev.next = node.next
	}
	if node.next == nil {
		g.tail = node.prev
	} else {
		node.next.prev = node.prev
	}
	node.prev = nil
	node.next = nil
	g.Size--
}
