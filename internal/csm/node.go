package csm

type csmNode interface {
	// Value returns the value held by the node.
	Value() int

	// Reset resets the node value to the minimum valid value.
	Reset()

	// Next changes the node value to the next valid value.
	// It returns true if the value overflowed and false otherwise.
	Next() bool
}

var _ csmNode = (*CommonNode)(nil)

// CommonNode is a node with a constant range of valid values.
type CommonNode struct {
	value int
	min   int
	max   int
}

// NewCommonNode returns a new CommonNode.
func NewCommonNode(value, min, max int) *CommonNode {
	return &CommonNode{value, min, max}
}

func (n *CommonNode) Value() int {
	return n.value
}

func (n *CommonNode) Reset() {
	n.value = n.min
}

func (n *CommonNode) Next() (overflowed bool) {
	n.value++
	if n.value > n.max {
		n.value = n.min
		return true
	}
	return false
}

var _ csmNode = (*YearNode)(nil)

// YearNode holds the most significant field. It never wraps.
type YearNode struct {
	value int
	bound int
}

// NewYearNode returns a new YearNode limited to [-bound, bound].
func NewYearNode(value, bound int) *YearNode {
	return &YearNode{value, bound}
}

func (n *YearNode) Value() int {
	return n.value
}

// Reset is a no-op, there is no less significant field to reset to.
func (n *YearNode) Reset() {}

func (n *YearNode) Next() (overflowed bool) {
	n.value++
	return n.value > n.bound
}

// InBounds reports whether the year is within the configured bound.
func (n *YearNode) InBounds() bool {
	return n.value <= n.bound && n.value >= -n.bound
}
