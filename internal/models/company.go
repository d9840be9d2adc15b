package models

type Company struct {
	ID                  int                 `json:"id"`
	Logo                *string             `json:"logo"`
	Banner              string              `json:"banner"`
	IntroVideo          *string             `json:"intro_video"`
	ValidationStatus    ValidationStatus    `json:"validation_status"`
	Workdays            []Workday           `json:"workdays"`
	CompaniesFirstItem  []CompanyFirstItem  `json:"companies_first_item"`
	CompaniesSecondItem []CompanySecondItem `json:"companies_second_item"`
	Name                string              `json:"name"`
	Slug                string              `json:"slug"`
	Description         string              `json:"description"`
	Website             *string             `json:"website"`
	Email               string              `json:"email"`
	PhoneNumber         string              `json:"phone_number"`
	PostalCode          string              `json:"postal_code"`
	FoundedDate         string              `json:"founded_date"`
	Linkedin            *string             `json:"linkedin"`
	Twitter             *string             `json:"twitter"`
	Instagram           *string             `json:"instagram"`
	ServiceType         string              `json:"service_type"`
	IsValidated         bool                `json:"is_validated"`
	IsOffSeason         bool                `json:"is_off_season"`
	CreatedAt           string              `json:"created_at"`
	UpdatedAt           string              `json:"updated_at"`
	Employer            int                 `json:"employer"`
	Industry            int                 `json:"industry"`
}

type ValidationStatus struct {
	ID                    int     `json:"id"`
	ValidatedBy           string  `json:"validated_by"`
	BusinessLicense       *string `json:"business_license"`
	BusinessLicenseStatus bool    `json:"business_license_status"`
	OverallStatus         string  `json:"overall_status"`
	ValidatedAt           string  `json:"validated_at"`
	ValidationNotes       string  `json:"validation_notes"`
	CreatedAt             string  `json:"created_at"`
	UpdatedAt             string  `json:"updated_at"`
	Company               int     `json:"company"`
}

// Workday carries the server-computed is_open_now flag; it is valid only for
// the moment the page was fetched and is never stored.
type Workday struct {
	Company          int    `json:"company"`
	DayOfWeek        string `json:"day_of_week"`
	DayOfWeekDisplay string `json:"day_of_week_display"`
	OpenTime         string `json:"open_time"`
	CloseTime        string `json:"close_time"`
	IsClosed         bool   `json:"is_closed"`
	TimeRange        string `json:"time_range"`
	IsOpenNow        bool   `json:"is_open_now"`
}

type FeatureItem struct {
	ID   int     `json:"id"`
	Icon *string `json:"icon"`
	Name string  `json:"name"`
	Slug string  `json:"slug"`
}

// The backend serializes the owning company id under "compay".
type CompanyFirstItem struct {
	ID        int         `json:"id"`
	FirstItem FeatureItem `json:"first_item"`
	Company   int         `json:"compay"`
}

type CompanySecondItem struct {
	ID         int         `json:"id"`
	SecondItem FeatureItem `json:"second_item"`
	Company    int         `json:"compay"`
}
