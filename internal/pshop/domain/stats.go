package domain

// DayStat is one entry of the 7-day activity series.
type DayStat struct {
	Date           string  `json:"date"` // YYYY-MM-DD
	SalesRevenue   float64 `json:"salesRevenue"`
	Profit         float64 `json:"profit"`
	ExpensesAmount float64 `json:"expensesAmount"`
}

// Stats is the derived aggregate view over one user's sales and expenses.
type Stats struct {
	TotalSales          int     `json:"totalSales"`
	TotalRevenue        float64 `json:"totalRevenue"`
	TotalProfit         float64 `json:"totalProfit"`
	TotalItemsSold      int     `json:"totalItemsSold"`
	TotalExpenses       int     `json:"totalExpenses"`
	TotalExpensesAmount float64 `json:"totalExpensesAmount"`
	NetProfit           float64 `json:"netProfit"`

	MonthSales     int     `json:"monthSales"`
	MonthRevenue   float64 `json:"monthRevenue"`
	MonthProfit    float64 `json:"monthProfit"`
	MonthExpenses  float64 `json:"monthExpenses"`
	MonthNetProfit float64 `json:"monthNetProfit"`

	Last7Days []DayStat `json:"last7Days"` // always exactly 7 entries, oldest first
}
