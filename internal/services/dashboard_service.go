package services

import (
	"math"
	"time"

	"emunah/internal/domain"
	"emunah/internal/money"
	"emunah/internal/store"
)

// DashboardStats is the read-only summary shown on the admin home page.
// Every field except pendingOrders is scoped to the calendar month
// containing now.
type DashboardStats struct {
	TotalSales     money.Amount `json:"totalSales"`
	ApprovedQuotes int          `json:"approvedQuotes"`
	ConversionRate int          `json:"conversionRate"` // integer percentage
	NewClients     int          `json:"newClients"`
	PendingOrders  int          `json:"pendingOrders"`
	TotalOrders    int          `json:"totalOrders"`
	TotalQuotes    int          `json:"totalQuotes"`
}

// DashboardService recomputes the summary on every call by scanning current
// store contents. No caching; the data volumes here don't warrant one.
type DashboardService struct {
	Store store.Storage
}

func NewDashboardService(st store.Storage) *DashboardService { return &DashboardService{Store: st} }

func (s *DashboardService) Stats() (*DashboardStats, error) {
	return s.StatsAt(time.Now())
}

// StatsAt computes the summary for the calendar month containing now (UTC,
// matching the stored timestamps).
func (s *DashboardService) StatsAt(now time.Time) (*DashboardStats, error) {
	now = now.UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).Format(domain.TimeLayout)
	month := store.Filter{StartDate: monthStart}

	monthOrders, err := s.Store.ListOrders(month)
	if err != nil {
		return nil, err
	}
	monthQuotes, err := s.Store.ListQuotes(month)
	if err != nil {
		return nil, err
	}
	allOrders, err := s.Store.ListOrders(store.Filter{})
	if err != nil {
		return nil, err
	}
	clients, err := s.Store.ListClients()
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalOrders: len(monthOrders),
		TotalQuotes: len(monthQuotes),
	}
	for _, o := range monthOrders {
		stats.TotalSales += o.Total
	}
	for _, q := range monthQuotes {
		if q.Status == domain.QuoteStatusApproved {
			stats.ApprovedQuotes++
		}
	}
	if len(monthQuotes) > 0 {
		stats.ConversionRate = int(math.Round(float64(stats.ApprovedQuotes) / float64(len(monthQuotes)) * 100))
	}
	for _, o := range allOrders {
		if o.Status == domain.OrderStatusPending || o.Status == domain.OrderStatusApproved {
			stats.PendingOrders++
		}
	}
	for _, c := range clients {
		if c.CreatedAt >= monthStart {
			stats.NewClients++
		}
	}
	return stats, nil
}
