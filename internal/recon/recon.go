// Package recon recombines the scan, return and order tables into one
// classified return dataset at read time. Nothing here is persisted: status
// and category are pure functions of the current tables, so a new scan
// upload changes historical reconciliation results retroactively. That is
// the intended behavior, at the cost of O(total rows) work per read.
package recon

import (
	"strings"
	"time"

	"github.com/haresh143heri/Ebasket-Return-App/internal/model"
	"github.com/haresh143heri/Ebasket-Return-App/internal/parser"
)

// Reconcile classifies every return record against the scanned-identifier
// set and enriches it with the order-side article name and category.
// Appends Status, Date, Article Name and Category columns; the row count of
// the input return table is preserved exactly.
func Reconcile(scans, rtv, orders *model.Table) *model.Table {
	out := cloneTable(rtv)
	if out == nil {
		out = &model.Table{}
	}

	scanSet := BuildScanSet(scans)
	skuArticle := BuildSKUArticleMap(orders)

	roles := parser.ResolveRoles(out.Header, append(append([]parser.Role(nil),
		parser.CandidateIDRoles...), parser.RoleSellerSKU, parser.RoleReturnCreatedDate))

	var candidateCols []int
	for _, role := range parser.CandidateIDRoles {
		if name, ok := roles.Column(role); ok {
			candidateCols = append(candidateCols, out.ColumnIndex(name))
		}
	}
	skuCol := -1
	if name, ok := roles.Column(parser.RoleSellerSKU); ok {
		skuCol = out.ColumnIndex(name)
	}
	createdCol := -1
	if name, ok := roles.Column(parser.RoleReturnCreatedDate); ok {
		createdCol = out.ColumnIndex(name)
	}

	n := out.Len()
	statuses := make([]string, n)
	dates := make([]string, n)
	articles := make([]string, n)
	categories := make([]string, n)

	for i := 0; i < n; i++ {
		statuses[i] = parser.StatusMissing
		for _, col := range candidateCols {
			id := parser.Canonicalize(out.Get(i, col))
			if id == "" {
				continue
			}
			if _, ok := scanSet[id]; ok {
				statuses[i] = parser.StatusMatched
				break
			}
		}

		if createdCol >= 0 {
			dates[i] = ParseDate(out.Get(i, createdCol))
		}

		if skuCol >= 0 {
			sku := parser.Canonicalize(out.Get(i, skuCol))
			articles[i] = skuArticle[sku]
		}
		categories[i] = parser.Classify(articles[i])
	}

	out.AppendColumn(parser.ColStatus, statuses)
	out.AppendColumn(parser.ColDate, dates)
	out.AppendColumn(parser.ColArticleName, articles)
	out.AppendColumn(parser.ColCategory, categories)
	return out
}

// BuildScanSet collects the canonicalized values of the scan table's
// designated identifier column. The Scanned_ID column is preferred; when a
// legacy tab lacks it the first column is taken, name untrusted. Empty
// canonical values are never added — an empty identifier must not turn
// everything into a match.
func BuildScanSet(scans *model.Table) map[string]struct{} {
	set := make(map[string]struct{})
	if scans.IsEmpty() {
		return set
	}
	col := scans.ColumnIndex(parser.ColScannedID)
	if col < 0 {
		col = 0
	}
	for i := 0; i < scans.Len(); i++ {
		if id := parser.Canonicalize(scans.Get(i, col)); id != "" {
			set[id] = struct{}{}
		}
	}
	return set
}

// BuildSKUArticleMap derives the SKU → article-name map from the order
// table. Duplicated SKUs keep their first occurrence's article name. An
// order table missing either role yields an empty map; the join then
// attaches empty article names and everything classifies as Other.
func BuildSKUArticleMap(orders *model.Table) map[string]string {
	m := make(map[string]string)
	if orders.IsEmpty() {
		return m
	}
	roles := parser.ResolveRoles(orders.Header, []parser.Role{parser.RoleSellerSKU, parser.RoleArticleName})
	skuName, okSKU := roles.Column(parser.RoleSellerSKU)
	artName, okArt := roles.Column(parser.RoleArticleName)
	if !okSKU || !okArt {
		return m
	}
	skuCol := orders.ColumnIndex(skuName)
	artCol := orders.ColumnIndex(artName)
	for i := 0; i < orders.Len(); i++ {
		sku := parser.Canonicalize(orders.Get(i, skuCol))
		if sku == "" {
			continue
		}
		if _, seen := m[sku]; !seen {
			m[sku] = strings.TrimSpace(orders.Get(i, artCol))
		}
	}
	return m
}

// dateLayouts covers the formats seen across export revisions. ISO forms
// are tried first; the slash/dash forms are day-first because the upstream
// marketplaces export day-first.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02-01-2006 15:04:05",
	"02-01-2006 15:04",
	"02-01-2006",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
}

// ParseDate normalizes a raw date cell into YYYY-MM-DD. A literal trailing
// " IST" token is stripped before parsing. Unparseable values yield "" —
// the record stays, it just drops out of date-bucketed views.
func ParseDate(raw string) string {
	s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), " IST"))
	if s == "" || strings.EqualFold(s, "nan") || strings.EqualFold(s, "nat") {
		return ""
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.Format("2006-01-02")
		}
	}
	return ""
}

func cloneTable(t *model.Table) *model.Table {
	if t == nil {
		return nil
	}
	out := &model.Table{Header: append([]string(nil), t.Header...)}
	out.Rows = make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		out.Rows[i] = append([]string(nil), row...)
	}
	return out
}
