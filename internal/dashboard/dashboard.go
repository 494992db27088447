package dashboard

// Revenue is one reporting period of the revenue chart.
type Revenue struct {
	Month   string
	Revenue int64
}

// StatusTotals holds invoice sums in cents split by status.
type StatusTotals struct {
	Paid    int64
	Pending int64
}

// Cards are the summary figures at the top of the dashboard.
type Cards struct {
	NumberOfInvoices     int
	NumberOfCustomers    int
	TotalPaidInvoices    string
	TotalPendingInvoices string
}
