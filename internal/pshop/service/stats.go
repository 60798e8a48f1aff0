package service

import (
	"context"
	"time"

	"github.com/pshophq/pshop/internal/pshop/domain"
	"github.com/pshophq/pshop/internal/pshop/store"
)

type StatsService struct {
	Store store.Store
}

// GetStats aggregates the user's full sales and expense history into the
// dashboard view.
func (s *StatsService) GetStats(ctx context.Context, userID string) (domain.Stats, error) {
	sales, err := s.Store.Sales().ListSales(ctx, userID)
	if err != nil {
		return domain.Stats{}, err
	}
	expenses, err := s.Store.Expenses().ListExpenses(ctx, userID)
	if err != nil {
		return domain.Stats{}, err
	}
	return ComputeStats(sales, expenses, time.Now().UTC()), nil
}

// ComputeStats derives lifetime totals, calendar-month totals and the 7-day
// activity series from raw sales and expenses. The series always holds
// exactly 7 entries: today and the 6 preceding days, oldest first,
// zero-filled for days without activity.
func ComputeStats(sales []domain.Sale, expenses []domain.Expense, now time.Time) domain.Stats {
	st := domain.Stats{Last7Days: make([]domain.DayStat, 7)}

	dayIndex := make(map[string]int, 7)
	for i := range st.Last7Days {
		key := now.AddDate(0, 0, i-6).Format("2006-01-02")
		st.Last7Days[i] = domain.DayStat{Date: key}
		dayIndex[key] = i
	}

	for _, s := range sales {
		st.TotalSales++
		st.TotalRevenue += s.Total
		st.TotalProfit += s.Profit
		st.TotalItemsSold += s.Quantity

		if sameMonth(s.SaleDate, now) {
			st.MonthSales++
			st.MonthRevenue += s.Total
			st.MonthProfit += s.Profit
		}
		if i, ok := dayIndex[s.SaleDate.Format("2006-01-02")]; ok {
			st.Last7Days[i].SalesRevenue += s.Total
			st.Last7Days[i].Profit += s.Profit
		}
	}

	for _, e := range expenses {
		st.TotalExpenses++
		st.TotalExpensesAmount += e.Amount

		if sameMonth(e.ExpenseDate, now) {
			st.MonthExpenses += e.Amount
		}
		if i, ok := dayIndex[e.ExpenseDate.Format("2006-01-02")]; ok {
			st.Last7Days[i].ExpensesAmount += e.Amount
		}
	}

	st.NetProfit = st.TotalProfit - st.TotalExpensesAmount
	st.MonthNetProfit = st.MonthProfit - st.MonthExpenses
	return st
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
