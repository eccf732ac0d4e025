package recon

import (
	"fmt"
	"math"
	"sort"

	"github.com/haresh143heri/Ebasket-Return-App/internal/model"
	"github.com/haresh143heri/Ebasket-Return-App/internal/parser"
)

// Dataset is the read-time view handed to the presentation layer: the three
// tables with returns classified and orders date-bucketed.
type Dataset struct {
	Scans   *model.Table
	Returns *model.Table // enriched with Status/Date/Article Name/Category
	Orders  *model.Table // enriched with Date

	// Warnings names the role-resolution misses hit while building, one
	// line each. A miss degrades the derived columns instead of failing,
	// so it has to be surfaced here to be visible at all.
	Warnings []string

	skuArticle map[string]string
	retSKUCol  int
	ordSKUCol  int
}

// Build reconciles the raw tables into a Dataset. Recomputed from scratch
// on every call; callers cache the result, not this package.
func Build(scans, rtv, orders *model.Table) *Dataset {
	ds := &Dataset{
		Scans:      scans,
		Returns:    Reconcile(scans, rtv, orders),
		Orders:     EnrichOrders(orders),
		skuArticle: BuildSKUArticleMap(orders),
		retSKUCol:  -1,
		ordSKUCol:  -1,
	}

	if roles := parser.ResolveRoles(ds.Returns.Header, []parser.Role{parser.RoleSellerSKU}); len(roles) > 0 {
		if name, ok := roles.Column(parser.RoleSellerSKU); ok {
			ds.retSKUCol = ds.Returns.ColumnIndex(name)
		}
	}
	if !ds.Orders.IsEmpty() {
		if roles := parser.ResolveRoles(ds.Orders.Header, []parser.Role{parser.RoleSellerSKU}); len(roles) > 0 {
			if name, ok := roles.Column(parser.RoleSellerSKU); ok {
				ds.ordSKUCol = ds.Orders.ColumnIndex(name)
			}
		}
	}

	if !rtv.IsEmpty() {
		candidates := parser.ResolveRoles(rtv.Header, parser.CandidateIDRoles)
		if len(candidates) == 0 {
			ds.Warnings = append(ds.Warnings, "return table has no candidate identifier column, every row is Missing")
		}
		if ds.retSKUCol < 0 {
			ds.Warnings = append(ds.Warnings, "return table has no seller SKU column, per-SKU return stats are empty")
		}
	}
	if !orders.IsEmpty() {
		roles := parser.ResolveRoles(orders.Header, []parser.Role{parser.RoleSellerSKU, parser.RoleArticleName})
		if _, ok := roles.Column(parser.RoleSellerSKU); !ok {
			ds.Warnings = append(ds.Warnings, "order table has no seller SKU column, categories degrade to Other")
		} else if _, ok := roles.Column(parser.RoleArticleName); !ok {
			ds.Warnings = append(ds.Warnings, "order table has no article name column, categories degrade to Other")
		}
	}
	return ds
}

// EnrichOrders appends a normalized Date column parsed from the
// role-resolved order-date column. Absent role → all dates empty.
func EnrichOrders(orders *model.Table) *model.Table {
	out := cloneTable(orders)
	if out == nil {
		out = &model.Table{}
	}
	dateCol := -1
	if roles := parser.ResolveRoles(out.Header, []parser.Role{parser.RoleOrderDate}); len(roles) > 0 {
		if name, ok := roles.Column(parser.RoleOrderDate); ok {
			dateCol = out.ColumnIndex(name)
		}
	}
	dates := make([]string, out.Len())
	if dateCol >= 0 {
		for i := range dates {
			dates[i] = ParseDate(out.Get(i, dateCol))
		}
	}
	out.AppendColumn(parser.ColDate, dates)
	return out
}

// Daily reports order/return/missing volume for one date (YYYY-MM-DD) plus
// the day's classified return rows.
func (ds *Dataset) Daily(date string) *model.DailyReport {
	rep := &model.DailyReport{Date: date}

	ordDate := ds.Orders.ColumnIndex(parser.ColDate)
	for i := 0; i < ds.Orders.Len(); i++ {
		if ds.Orders.Get(i, ordDate) == date {
			rep.Orders++
		}
	}

	retDate := ds.Returns.ColumnIndex(parser.ColDate)
	day := ds.Returns.Select(func(row int) bool {
		return ds.Returns.Get(row, retDate) == date
	})
	rep.Returns = day.Len()
	statusCol := day.ColumnIndex(parser.ColStatus)
	for i := 0; i < day.Len(); i++ {
		if day.Get(i, statusCol) == parser.StatusMissing {
			rep.Missing++
		}
	}
	rep.Rows = day.Records()
	return rep
}

// Monthly returns twelve buckets for the year: order volume and matched
// returns per month. Months with no data stay at zero so the trend always
// spans the full year.
func (ds *Dataset) Monthly(year int) []model.MonthBucket {
	buckets := make([]model.MonthBucket, 12)
	index := make(map[string]int, 12)
	for m := 1; m <= 12; m++ {
		key := fmt.Sprintf("%04d-%02d", year, m)
		buckets[m-1].Month = key
		index[key] = m - 1
	}

	ordDate := ds.Orders.ColumnIndex(parser.ColDate)
	for i := 0; i < ds.Orders.Len(); i++ {
		d := ds.Orders.Get(i, ordDate)
		if len(d) >= 7 {
			if b, ok := index[d[:7]]; ok {
				buckets[b].Orders++
			}
		}
	}

	retDate := ds.Returns.ColumnIndex(parser.ColDate)
	retStatus := ds.Returns.ColumnIndex(parser.ColStatus)
	for i := 0; i < ds.Returns.Len(); i++ {
		if ds.Returns.Get(i, retStatus) != parser.StatusMatched {
			continue
		}
		d := ds.Returns.Get(i, retDate)
		if len(d) >= 7 {
			if b, ok := index[d[:7]]; ok {
				buckets[b].Returns++
			}
		}
	}
	return buckets
}

// CategoryStats compares sales volume to matched returns per category.
// Sales classify through the order's SKU → article mapping; the ratio is
// matched returns over sales, in percent, rounded to two decimals.
func (ds *Dataset) CategoryStats() []model.CategoryStat {
	sales := make(map[string]int)
	if ds.ordSKUCol >= 0 {
		for i := 0; i < ds.Orders.Len(); i++ {
			sku := parser.Canonicalize(ds.Orders.Get(i, ds.ordSKUCol))
			sales[parser.Classify(ds.skuArticle[sku])]++
		}
	}

	returns := make(map[string]int)
	retStatus := ds.Returns.ColumnIndex(parser.ColStatus)
	retCat := ds.Returns.ColumnIndex(parser.ColCategory)
	for i := 0; i < ds.Returns.Len(); i++ {
		if ds.Returns.Get(i, retStatus) == parser.StatusMatched {
			returns[ds.Returns.Get(i, retCat)]++
		}
	}

	var out []model.CategoryStat
	for _, cat := range parser.Categories() {
		s, r := sales[cat], returns[cat]
		if s == 0 && r == 0 {
			continue
		}
		stat := model.CategoryStat{Category: cat, Sales: s, Returns: r}
		if s > 0 {
			stat.Ratio = math.Round(float64(r)/float64(s)*100*100) / 100
		}
		out = append(out, stat)
	}
	return out
}

// SKUStats aggregates sales and matched returns per seller SKU, sorted by
// sales volume descending. Only SKUs that appear in a return are listed;
// the aggregate view answers "what comes back", not "what sells".
func (ds *Dataset) SKUStats() []model.SKUStat {
	sales := make(map[string]int)
	if ds.ordSKUCol >= 0 {
		for i := 0; i < ds.Orders.Len(); i++ {
			if sku := parser.Canonicalize(ds.Orders.Get(i, ds.ordSKUCol)); sku != "" {
				sales[sku]++
			}
		}
	}

	returns := make(map[string]int)
	retStatus := ds.Returns.ColumnIndex(parser.ColStatus)
	for i := 0; i < ds.Returns.Len(); i++ {
		if ds.Returns.Get(i, retStatus) != parser.StatusMatched || ds.retSKUCol < 0 {
			continue
		}
		if sku := parser.Canonicalize(ds.Returns.Get(i, ds.retSKUCol)); sku != "" {
			returns[sku]++
		}
	}

	out := make([]model.SKUStat, 0, len(returns))
	for sku, r := range returns {
		out = append(out, model.SKUStat{SKU: sku, Sales: sales[sku], Returns: r})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Sales != out[j].Sales {
			return out[i].Sales > out[j].Sales
		}
		return out[i].SKU < out[j].SKU
	})
	return out
}

// DailySKUSales counts orders per SKU for one date, sorted by volume.
func (ds *Dataset) DailySKUSales(date string) []model.SKUStat {
	counts := make(map[string]int)
	ordDate := ds.Orders.ColumnIndex(parser.ColDate)
	for i := 0; i < ds.Orders.Len(); i++ {
		if ds.Orders.Get(i, ordDate) != date || ds.ordSKUCol < 0 {
			continue
		}
		if sku := parser.Canonicalize(ds.Orders.Get(i, ds.ordSKUCol)); sku != "" {
			counts[sku]++
		}
	}
	out := make([]model.SKUStat, 0, len(counts))
	for sku, n := range counts {
		out = append(out, model.SKUStat{SKU: sku, Sales: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Sales != out[j].Sales {
			return out[i].Sales > out[j].Sales
		}
		return out[i].SKU < out[j].SKU
	})
	return out
}

// Missing returns the still-unscanned return rows.
func (ds *Dataset) Missing() *model.Table {
	statusCol := ds.Returns.ColumnIndex(parser.ColStatus)
	return ds.Returns.Select(func(row int) bool {
		return ds.Returns.Get(row, statusCol) == parser.StatusMissing
	})
}
