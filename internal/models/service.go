package models

type Service struct {
	ID                    int      `json:"id"`
	Company               string   `json:"company"`
	ServiceProvider       string   `json:"service_provider"`
	RecipientAddress      int      `json:"recipient_address"`
	CompanyCard           *string  `json:"company_card"`
	Title                 string   `json:"title"`
	Slug                  string   `json:"slug"`
	Descriptions          string   `json:"descriptions"`
	PaymentStatus         string   `json:"payment_status"`
	PaymentStatusDisplay  string   `json:"payment_status_display"`
	ServiceStatus         string   `json:"service_status"`
	ServiceStatusDisplay  string   `json:"service_status_display"`
	IsInvoiced            bool     `json:"is_invoiced"`
	StartedAt             string   `json:"started_at"`
	FinishedAt            string   `json:"finished_at"`
	CreatedAt             string   `json:"created_at"`
	UpdatedAt             string   `json:"updated_at"`
	OverallScore          *float64 `json:"overall_score"`
	TimeElapsed           float64  `json:"time_elapsed"`
	PaymentMethod         string   `json:"payment_method"`
	TransactionScreenshot string   `json:"transaction_screenshot"`
}

// ServiceRequest is the outbound draft posted to create a new service.
// CompanySlug is route-derived and survives a successful submit; every other
// field is cleared.
type ServiceRequest struct {
	CompanySlug        string `json:"company_slug"`
	RecipientAddressID string `json:"recipient_address_id"`
	Title              string `json:"title"`
	Slug               string `json:"slug"`
	Descriptions       string `json:"descriptions"`
}
