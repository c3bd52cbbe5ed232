package takeoff

import (
	"regexp"
	"strconv"
)

// RowClass describes how a grid row participates in pricing.
type RowClass string

const (
	// RowClassStandalone is an item row priced on its own.
	RowClassStandalone RowClass = "standalone"
	// RowClassBundleTotal is a row whose total cell sums a contiguous span
	// of other rows. It carries the bundle's aggregate price.
	RowClassBundleTotal RowClass = "bundle_total"
	// RowClassBundledMember is an item row inside a bundle span. Its cost is
	// already counted by the bundle total, so it carries no bid type.
	RowClassBundledMember RowClass = "bundled_member"
)

// BundleSpan is one detected aggregation: the row holding the SUM formula
// and the inclusive row range it covers.
type BundleSpan struct {
	TotalRow int
	StartRow int
	EndRow   int
}

// SheetRow is the minimal view of a grid row the classifier needs: its
// 1-based sheet row number, whether it carries a scope code (item rows do,
// spacer and section-header rows do not), and the formula text of its total
// cell, if any.
type SheetRow struct {
	Row          int
	ScopeCode    string
	TotalFormula string
}

// Classification is the result of classifying a sheet's rows.
type Classification struct {
	Classes map[int]RowClass
	Spans   []BundleSpan
}

// aggregateFormula matches a same-column SUM over a contiguous row range,
// e.g. =SUM(O45:O47).
var aggregateFormula = regexp.MustCompile(`^=SUM\(([A-Z]+)(\d+):([A-Z]+)(\d+)\)$`)

// ParseAggregateFormula extracts the row span of a same-column SUM formula.
// It reports ok=false for anything else, including SUMs that cross columns
// or run backwards.
func ParseAggregateFormula(formula string) (start, end int, ok bool) {
	m := aggregateFormula.FindStringSubmatch(formula)
	if m == nil {
		return 0, 0, false
	}
	if m[1] != m[3] {
		return 0, 0, false
	}
	start, _ = strconv.Atoi(m[2])
	end, _ = strconv.Atoi(m[4])
	if start > end {
		return 0, 0, false
	}
	return start, end, true
}

// ClassifyRows partitions item rows into standalone rows, bundle totals, and
// bundled members. A row is a bundle total when its total cell is a
// same-column SUM over other rows; item rows inside any such span become
// bundled members. Rows without a scope code are never classified. A total
// row whose span includes itself is ignored as malformed.
func ClassifyRows(rows []SheetRow) *Classification {
	result := &Classification{Classes: make(map[int]RowClass)}

	for _, row := range rows {
		start, end, ok := ParseAggregateFormula(row.TotalFormula)
		if !ok {
			continue
		}
		if row.Row >= start && row.Row <= end {
			continue
		}
		result.Spans = append(result.Spans, BundleSpan{TotalRow: row.Row, StartRow: start, EndRow: end})
		result.Classes[row.Row] = RowClassBundleTotal
	}

	for _, row := range rows {
		if row.ScopeCode == "" {
			continue
		}
		if _, done := result.Classes[row.Row]; done {
			continue
		}
		if spanContaining(result.Spans, row.Row) != nil {
			result.Classes[row.Row] = RowClassBundledMember
		} else {
			result.Classes[row.Row] = RowClassStandalone
		}
	}

	return result
}

// BidTypeEligible reports whether a row of the given class may carry a bid
// type value. Bundled members may not; their pricing belongs to the bundle
// total row.
func BidTypeEligible(class RowClass) bool {
	return class != RowClassBundledMember
}

// RowsToClear returns the sheet rows whose bid type cells must be blanked:
// every bundled member that currently carries a scope code. Order follows
// the input.
func (c *Classification) RowsToClear() []int {
	var rows []int
	for _, span := range c.Spans {
		for row := span.StartRow; row <= span.EndRow; row++ {
			if c.Classes[row] == RowClassBundledMember {
				rows = append(rows, row)
			}
		}
	}
	return rows
}

func spanContaining(spans []BundleSpan, row int) *BundleSpan {
	for i := range spans {
		if row >= spans[i].StartRow && row <= spans[i].EndRow {
			return &spans[i]
		}
	}
	return nil
}
