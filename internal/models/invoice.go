package models

type Invoice struct {
	ID             string        `json:"id"`
	Company        string        `json:"company"`
	TotalAmount    float64       `json:"total_amount"`
	IsPaid         bool          `json:"is_paid"`
	Deadline       string        `json:"deadline"`
	DeadlineStatus string        `json:"deadline_status"`
	CreatedAt      string        `json:"created_at"`
	UpdatedAt      string        `json:"updated_at"`
	Items          []InvoiceItem `json:"items"`
}

type InvoiceItem struct {
	Service   string  `json:"service"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"created_at"`
}
