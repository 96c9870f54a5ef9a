package queries

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"emy-orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidFilterDate  = errs.New("invalid filter date")
	ErrInvalidFilterMonth = errs.New("invalid filter month")
)

type FilterKind string

const (
	FilterAll   FilterKind = "all"
	FilterDay   FilterKind = "day"
	FilterMonth FilterKind = "month"
	FilterRange FilterKind = "range"
)

// FilterSpec is the tagged selection of the reporting window. A new
// spec is built per request, so switching mode never leaks the previous
// mode's parameters.
type FilterSpec struct {
	kind   FilterKind
	prefix string    // ISO date prefix for day ("2006-01-02") and month ("2006-01") modes
	start  time.Time // range mode, normalized to 00:00:00.000 UTC
	end    time.Time // range mode, normalized to 23:59:59.999 UTC
}

func NewAllFilter() FilterSpec {
	return FilterSpec{kind: FilterAll}
}

func NewDayFilter(day string) (FilterSpec, error) {
	if _, err := time.Parse("2006-01-02", day); err != nil {
		return FilterSpec{}, errs.Mark(err, ErrInvalidFilterDate)
	}
	return FilterSpec{kind: FilterDay, prefix: day}, nil
}

func NewMonthFilter(year, month int) (FilterSpec, error) {
	if year < 1 || month < 1 || month > 12 {
		return FilterSpec{}, ErrInvalidFilterMonth
	}
	return FilterSpec{kind: FilterMonth, prefix: fmt.Sprintf("%04d-%02d", year, month)}, nil
}

// NewRangeFilter takes inclusive ISO day bounds. A range with
// start == end covers that entire day.
func NewRangeFilter(startDay, endDay string) (FilterSpec, error) {
	start, err := time.Parse("2006-01-02", startDay)
	if err != nil {
		return FilterSpec{}, errs.Mark(err, ErrInvalidFilterDate)
	}
	end, err := time.Parse("2006-01-02", endDay)
	if err != nil {
		return FilterSpec{}, errs.Mark(err, ErrInvalidFilterDate)
	}
	return FilterSpec{
		kind:  FilterRange,
		start: time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC),
		end:   time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999000000, time.UTC),
	}, nil
}

func (f FilterSpec) Kind() FilterKind {
	if f.kind == "" {
		return FilterAll
	}
	return f.kind
}

func (f FilterSpec) Matches(t time.Time) bool {
	switch f.kind {
	case FilterDay, FilterMonth:
		return strings.HasPrefix(t.UTC().Format("2006-01-02"), f.prefix)
	case FilterRange:
		return !t.Before(f.start) && !t.After(f.end)
	default:
		return true
	}
}

type ReportSaleView struct {
	SaleView
	Customer *CustomerView `json:"customer,omitempty"`
}

type ReportView struct {
	Sales []ReportSaleView `json:"sales"`
	Total decimal.Decimal  `json:"total"`
}

type SalesReadStore interface {
	Sales(ctx context.Context) ([]SaleView, error)
	PendingSales(ctx context.Context) ([]SaleView, error)
	PendingSalesByCustomer(ctx context.Context, customerID string) ([]SaleView, error)
}

type DirectoryReadStore interface {
	Customers(ctx context.Context) ([]CustomerView, error)
}

type ReportQueries interface {
	SalesReport(ctx context.Context, filter FilterSpec) (*ReportView, error)
}

type reportQueriesImpl struct {
	sales     SalesReadStore
	directory DirectoryReadStore
}

func NewReportQueries(sales SalesReadStore, directory DirectoryReadStore) ReportQueries {
	return &reportQueriesImpl{sales: sales, directory: directory}
}

// SalesReport fetches the confirmed sale set and the customer directory
// once, filters by the requested window, and aggregates. A sale whose
// customer is missing from the directory renders without one
// ("unregistered customer"); that is a valid state, not an error.
func (q *reportQueriesImpl) SalesReport(ctx context.Context, filter FilterSpec) (*ReportView, error) {
	sales, err := q.sales.Sales(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to fetch sales")
	}
	customers, err := q.directory.Customers(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to fetch customers")
	}

	byID := make(map[string]CustomerView, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}

	filtered := make([]ReportSaleView, 0, len(sales))
	total := decimal.Zero
	for _, sale := range sales {
		if !filter.Matches(sale.Date) {
			continue
		}
		view := ReportSaleView{SaleView: sale}
		if sale.CustomerID != nil {
			if c, ok := byID[*sale.CustomerID]; ok {
				customer := c
				view.Customer = &customer
			}
		}
		filtered = append(filtered, view)
		total = total.Add(sale.Total)
	}

	// Newest first for display.
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date)
	})

	return &ReportView{Sales: filtered, Total: total.Round(2)}, nil
}
