package aggregate

import (
	"sort"

	"github.com/shopspring/decimal"
)

const (
	// DefaultLimit is the number of parents kept when the caller does not ask for more.
	DefaultLimit = 5
	// MaxChildren is the number of children listed per parent before the rest is folded
	// into an "Others" row.
	MaxChildren = 5
)

var hundred = decimal.NewFromInt(100)

// MarketShareRow is one child entity's slice of its parent.
type MarketShareRow struct {
	Name       string
	Value      float64
	Shipments  int
	Percentage float64
	IsOthers   bool
}

// ParentRow is one retained parent with its top children.
type ParentRow struct {
	Name           string
	TotalValue     float64
	TotalShipments int
	MarketShare    float64
	ChildCount     int
	Children       []MarketShareRow
}

// Rollup is the formatted top-N view over an Aggregation. The totals cover every
// parent, not only the retained rows.
type Rollup struct {
	Kind           Kind
	Rows           []ParentRow
	TotalValue     float64
	TotalShipments int
	AverageValue   float64
	ParentCount    int
}

// FormatTopN sorts parents by value, keeps the first limit (DefaultLimit when limit < 1)
// and lists each one's top children plus an "Others" remainder row.
func (p Pipeline) FormatTopN(agg *Aggregation, limit int) Rollup {
	if limit < 1 {
		limit = DefaultLimit
	}

	parents := make([]*AggregateNode, len(agg.Parents()))
	copy(parents, agg.Parents())
	sort.SliceStable(parents, func(i, j int) bool {
		return parents[i].TotalValue.GreaterThan(parents[j].TotalValue)
	})

	globalValue := decimal.Zero
	globalShipments := 0
	for _, node := range parents {
		globalValue = globalValue.Add(node.TotalValue)
		globalShipments += node.TotalShipments
	}

	if len(parents) > limit {
		parents = parents[:limit]
	}

	rows := make([]ParentRow, 0, len(parents))
	for _, node := range parents {
		rows = append(rows, ParentRow{
			Name:           node.Name,
			TotalValue:     node.TotalValue.InexactFloat64(),
			TotalShipments: node.TotalShipments,
			MarketShare:    percentage(node.TotalValue, globalValue),
			ChildCount:     len(node.Children()),
			Children:       p.topChildren(node),
		})
	}

	average := decimal.Zero
	if globalShipments > 0 {
		average = globalValue.Div(decimal.NewFromInt(int64(globalShipments)))
	}

	return Rollup{
		Kind:           p.Kind,
		Rows:           rows,
		TotalValue:     globalValue.InexactFloat64(),
		TotalShipments: globalShipments,
		AverageValue:   average.InexactFloat64(),
		ParentCount:    agg.Len(),
	}
}

func (p Pipeline) topChildren(node *AggregateNode) []MarketShareRow {
	children := make([]*ChildAggregate, len(node.Children()))
	copy(children, node.Children())
	sort.SliceStable(children, func(i, j int) bool {
		return children[i].Value.GreaterThan(children[j].Value)
	})

	top := children
	if len(top) > MaxChildren {
		top = top[:MaxChildren]
	}

	rows := make([]MarketShareRow, 0, len(top)+1)
	topValue := decimal.Zero
	topShipments := 0
	for _, c := range top {
		topValue = topValue.Add(c.Value)
		topShipments += c.Shipments
		rows = append(rows, MarketShareRow{
			Name:       c.Name,
			Value:      c.Value.InexactFloat64(),
			Shipments:  c.Shipments,
			Percentage: percentage(c.Value, node.TotalValue),
		})
	}

	if len(children) > MaxChildren {
		othersValue := node.TotalValue.Sub(topValue)
		if othersValue.IsPositive() {
			rows = append(rows, MarketShareRow{
				Name:       OthersLabel(node.Name, p.Kind),
				Value:      othersValue.InexactFloat64(),
				Shipments:  node.TotalShipments - topShipments,
				Percentage: percentage(othersValue, node.TotalValue),
				IsOthers:   true,
			})
		}
	}

	return rows
}

// percentage is 100*part/total, or 0 when total is 0.
func percentage(part, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}
	return part.Mul(hundred).Div(total).InexactFloat64()
}
