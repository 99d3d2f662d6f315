package aggregate

import "github.com/shopspring/decimal"

// ChildAggregate accumulates one child entity under a parent.
type ChildAggregate struct {
	Name      string
	Value     decimal.Decimal
	Shipments int
}

// AggregateNode is one parent entity with its children.
// TotalValue and TotalShipments always equal the sums over Children.
type AggregateNode struct {
	Name           string
	TotalValue     decimal.Decimal
	TotalShipments int
	children       map[string]*ChildAggregate
	childOrder     []*ChildAggregate
}

// Children returns the node's children in first-seen order.
func (n *AggregateNode) Children() []*ChildAggregate {
	return n.childOrder
}

// Child looks up a child by normalized name.
func (n *AggregateNode) Child(name string) (*ChildAggregate, bool) {
	c, ok := n.children[name]
	return c, ok
}

func (n *AggregateNode) add(child string, value decimal.Decimal) {
	c, ok := n.children[child]
	if !ok {
		c = &ChildAggregate{Name: child, Value: decimal.Zero}
		n.children[child] = c
		n.childOrder = append(n.childOrder, c)
	}
	c.Value = c.Value.Add(value)
	c.Shipments++

	n.TotalValue = n.TotalValue.Add(value)
	n.TotalShipments++
}

// Aggregation is the parent -> child tree built from one batch of records.
// It is owned by a single run and is not safe for concurrent mutation.
type Aggregation struct {
	parents map[string]*AggregateNode
	order   []*AggregateNode
}

// NewAggregation returns an empty tree.
func NewAggregation() *Aggregation {
	return &Aggregation{parents: make(map[string]*AggregateNode)}
}

// Add records one shipment of value under parent and child, creating either on first use.
func (a *Aggregation) Add(parent, child string, value decimal.Decimal) {
	node, ok := a.parents[parent]
	if !ok {
		node = &AggregateNode{
			Name:       parent,
			TotalValue: decimal.Zero,
			children:   make(map[string]*ChildAggregate),
		}
		a.parents[parent] = node
		a.order = append(a.order, node)
	}
	node.add(child, value)
}

// Parents returns the parent nodes in first-seen order.
func (a *Aggregation) Parents() []*AggregateNode {
	return a.order
}

// Parent looks up a parent by normalized name.
func (a *Aggregation) Parent(name string) (*AggregateNode, bool) {
	n, ok := a.parents[name]
	return n, ok
}

// Len is the number of distinct parents.
func (a *Aggregation) Len() int {
	return len(a.order)
}

// Aggregate folds records into a fresh tree in a single pass. Raw names repeat heavily
// across a batch, so each distinct raw value is normalized once per run.
func (p Pipeline) Aggregate(records []Record) *Aggregation {
	agg := NewAggregation()
	parents := make(map[string]string)
	children := make(map[string]string)
	for _, r := range records {
		parent := memoized(parents, p.ParentField(r), p.ParentName)
		child := memoized(children, p.ChildField(r), p.ChildName)
		agg.Add(parent, child, ParseValue(r.TotalValueUSD))
	}
	return agg
}

func memoized(seen map[string]string, raw string, name func(string) string) string {
	if n, ok := seen[raw]; ok {
		return n
	}
	n := name(raw)
	seen[raw] = n
	return n
}
