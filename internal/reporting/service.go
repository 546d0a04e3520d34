package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/adiwijaya/warungpos-backend/internal/transactions"
	"github.com/adiwijaya/warungpos-backend/pkg/db/models"
	"github.com/adiwijaya/warungpos-backend/pkg/enums"
	pkgerrors "github.com/adiwijaya/warungpos-backend/pkg/errors"
	"github.com/adiwijaya/warungpos-backend/pkg/money"
)

type menuLister interface {
	List(ctx context.Context) ([]models.MenuItem, error)
}

// DashboardStats is the storefront overview for the current calendar day.
type DashboardStats struct {
	Revenue          int                  `json:"revenue"`
	RevenueFormatted string               `json:"revenue_formatted"`
	TransactionCount int                  `json:"transaction_count"`
	TopMenu          string               `json:"top_menu"`
	ActiveMenus      int                  `json:"active_menus"`
	Recent           []models.Transaction `json:"recent"`
}

// RevenuePoint is one day of the revenue chart.
type RevenuePoint struct {
	Date    string `json:"date"`
	Label   string `json:"label"`
	Revenue int    `json:"revenue"`
}

// RangeSummary aggregates sales across an inclusive date range.
type RangeSummary struct {
	TotalRevenue      int `json:"total_revenue"`
	TotalDiscount     int `json:"total_discount"`
	TotalTransactions int `json:"total_transactions"`
	AvgOrderValue     int `json:"avg_order_value"`
}

// HistoryFilter narrows the ledger listing. From and To are inclusive
// ISO dates ("2006-01-02") in the store's calendar; empty means unbounded
// on that side. CashierID limits the listing to one cashier's sales.
type HistoryFilter struct {
	From      string
	To        string
	CashierID string
}

// Service answers the dashboard and report queries over the sales ledger.
type Service interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
	RevenueSeries(ctx context.Context, days int) ([]RevenuePoint, error)
	Summary(ctx context.Context, filter HistoryFilter) (*RangeSummary, error)
	History(ctx context.Context, filter HistoryFilter) ([]models.Transaction, error)
}

type service struct {
	ledger  *transactions.Repository
	catalog menuLister
	loc     *time.Location
	days    int
	now     func() time.Time
}

// NewService builds the reporting engine. loc fixes the calendar used for
// day boundaries; days is the default revenue series length.
func NewService(ledger *transactions.Repository, catalog menuLister, loc *time.Location, days int) (Service, error) {
	if ledger == nil {
		return nil, fmt.Errorf("transactions repository required")
	}
	if catalog == nil {
		return nil, fmt.Errorf("menu lister required")
	}
	if loc == nil {
		loc = time.UTC
	}
	if days <= 0 {
		days = 7
	}
	return &service{
		ledger:  ledger,
		catalog: catalog,
		loc:     loc,
		days:    days,
		now:     time.Now,
	}, nil
}

// Dashboard reports today's revenue, sale count, and best seller, plus the
// five most recent sales overall.
func (s *service) Dashboard(ctx context.Context) (*DashboardStats, error) {
	start := startOfDay(s.now().In(s.loc))
	todays, err := s.ledger.ListRange(ctx, start, start.AddDate(0, 0, 1), "")
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load today's sales")
	}

	revenue := 0
	for _, trx := range todays {
		revenue += trx.Total
	}

	menus, err := s.catalog.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load menu catalog")
	}
	activeMenus := 0
	for _, item := range menus {
		if item.Status == enums.MenuStatusActive {
			activeMenus++
		}
	}

	recent, err := s.ledger.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load recent sales")
	}
	if len(recent) > 5 {
		recent = recent[:5]
	}

	return &DashboardStats{
		Revenue:          revenue,
		RevenueFormatted: money.FormatIDR(int64(revenue)),
		TransactionCount: len(todays),
		TopMenu:          topMenu(todays),
		ActiveMenus:      activeMenus,
		Recent:           recent,
	}, nil
}

// RevenueSeries returns one point per day for the trailing window, oldest
// first, today last. Days at zero falls back to the configured default.
func (s *service) RevenueSeries(ctx context.Context, days int) ([]RevenuePoint, error) {
	if days <= 0 {
		days = s.days
	}

	today := startOfDay(s.now().In(s.loc))
	windowStart := today.AddDate(0, 0, -(days - 1))

	rows, err := s.ledger.ListRange(ctx, windowStart, today.AddDate(0, 0, 1), "")
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load revenue window")
	}

	totals := map[string]int{}
	for _, trx := range rows {
		key := trx.Timestamp.In(s.loc).Format("2006-01-02")
		totals[key] += trx.Total
	}

	points := make([]RevenuePoint, 0, days)
	for i := 0; i < days; i++ {
		day := windowStart.AddDate(0, 0, i)
		key := day.Format("2006-01-02")
		points = append(points, RevenuePoint{
			Date:    key,
			Label:   day.Format("Mon 2"),
			Revenue: totals[key],
		})
	}
	return points, nil
}

// Summary aggregates revenue, discount, count, and average order value over
// the filter's range.
func (s *service) Summary(ctx context.Context, filter HistoryFilter) (*RangeSummary, error) {
	rows, err := s.History(ctx, filter)
	if err != nil {
		return nil, err
	}

	summary := &RangeSummary{TotalTransactions: len(rows)}
	for _, trx := range rows {
		summary.TotalRevenue += trx.Total
		summary.TotalDiscount += trx.Discount
	}
	summary.AvgOrderValue = int(money.Average(int64(summary.TotalRevenue), int64(len(rows))))
	return summary, nil
}

// History lists ledger entries in the filter's inclusive date range, newest
// first.
func (s *service) History(ctx context.Context, filter HistoryFilter) ([]models.Transaction, error) {
	from, to, err := s.rangeBounds(filter)
	if err != nil {
		return nil, err
	}

	rows, err := s.ledger.ListRange(ctx, from, to, filter.CashierID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load sales history")
	}
	return rows, nil
}

func (s *service) rangeBounds(filter HistoryFilter) (time.Time, time.Time, error) {
	from := time.Date(1970, 1, 1, 0, 0, 0, 0, s.loc)
	if filter.From != "" {
		parsed, err := time.ParseInLocation("2006-01-02", filter.From, s.loc)
		if err != nil {
			return time.Time{}, time.Time{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid start date").
				WithDetails(map[string]string{"from": filter.From})
		}
		from = parsed
	}

	to := startOfDay(s.now().In(s.loc)).AddDate(0, 0, 1)
	if filter.To != "" {
		parsed, err := time.ParseInLocation("2006-01-02", filter.To, s.loc)
		if err != nil {
			return time.Time{}, time.Time{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid end date").
				WithDetails(map[string]string{"to": filter.To})
		}
		to = parsed.AddDate(0, 0, 1)
	}

	if !to.After(from) {
		return time.Time{}, time.Time{}, pkgerrors.New(pkgerrors.CodeValidation, "end date is before start date")
	}
	return from, to, nil
}

// topMenu finds the best-selling item name by total quantity. The first
// name to reach the maximum keeps it on ties; no sales yields "N/A".
func topMenu(rows []models.Transaction) string {
	counts := map[string]int{}
	var order []string
	for _, trx := range rows {
		for _, line := range trx.Lines {
			if _, seen := counts[line.Name]; !seen {
				order = append(order, line.Name)
			}
			counts[line.Name] += line.Quantity
		}
	}

	top := "N/A"
	maxQty := 0
	for _, name := range order {
		if counts[name] > maxQty {
			maxQty = counts[name]
			top = name
		}
	}
	return top
}

func startOfDay(ts time.Time) time.Time {
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location())
}
