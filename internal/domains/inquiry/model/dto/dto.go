package dto

import (
	"workation/internal/domains/inquiry/analytics"
	"workation/internal/domains/inquiry/model"
	"workation/shared/constant"
	"workation/shared/timezone"
)

type CreateInquiryRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Company string `json:"company" validate:"omitempty,max=100"`
	Email   string `json:"email"   validate:"required,email,max=100"`
	Phone   string `json:"phone"   validate:"omitempty,max=20"`
	Package string `json:"package" validate:"omitempty,max=50"`
	Checkin string `json:"checkin" validate:"omitempty,max=20"`
	Guests  string `json:"guests"  validate:"omitempty,max=10"`
	Message string `json:"message" validate:"omitempty,max=2000"`
}

// ToModel builds the record to append. The id is the submission-time clock
// reading in milliseconds; uniqueness is intended but not enforced.
func (c *CreateInquiryRequest) ToModel() model.Inquiry {
	now := timezone.Now()

	return model.Inquiry{
		ID:        now.UnixMilli(),
		Timestamp: now.Format(constant.DateFormat),
		Name:      c.Name,
		Company:   c.Company,
		Email:     c.Email,
		Phone:     c.Phone,
		Package:   c.Package,
		Checkin:   c.Checkin,
		Guests:    c.Guests,
		Message:   c.Message,
		Status:    model.StatusPending,
	}
}

type InquiryResponse struct {
	ID           int64  `json:"id"`
	Timestamp    string `json:"timestamp"`
	Name         string `json:"name"`
	Company      string `json:"company"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Package      string `json:"package"`
	PackageLabel string `json:"package_label"`
	Checkin      string `json:"checkin"`
	Guests       string `json:"guests"`
	Message      string `json:"message"`
	Status       string `json:"status"`
}

func (r *InquiryResponse) FromModel(record model.Inquiry) {
	r.ID = record.ID
	r.Timestamp = record.Timestamp
	r.Name = record.Name
	r.Company = record.Company
	r.Email = record.Email
	r.Phone = record.Phone
	r.Package = record.Package
	r.PackageLabel = model.PackageLabel(record.Package)
	r.Checkin = record.Checkin
	r.Guests = record.Guests
	r.Message = record.Message
	r.Status = record.Status
}

type GetInquiriesResponse struct {
	Inquiries   []InquiryResponse `json:"inquiries"`
	TotalData   int               `json:"total_data"`
	Degraded    bool              `json:"degraded,omitempty"`
	GeneratedAt string            `json:"generated_at"`
}

func (r *GetInquiriesResponse) FromModels(records []model.Inquiry) {
	r.TotalData = len(records)
	r.GeneratedAt = timezone.Format(timezone.Now(), constant.DateFormat)

	r.Inquiries = make([]InquiryResponse, len(records))
	for i, record := range records {
		r.Inquiries[i].FromModel(record)
	}
}

type StatsResponse struct {
	Total           int    `json:"total"`
	Today           int    `json:"today"`
	Last7Days       int    `json:"last_7_days"`
	TopPackage      string `json:"top_package"`
	TopPackageLabel string `json:"top_package_label"`
	Degraded        bool   `json:"degraded,omitempty"`
	GeneratedAt     string `json:"generated_at"`
}

func (r *StatsResponse) FromStats(stats analytics.Stats) {
	r.Total = stats.Total
	r.Today = stats.Today
	r.Last7Days = stats.Last7Days
	r.TopPackage = stats.TopPackage
	r.TopPackageLabel = model.PackageLabel(stats.TopPackage)
	r.GeneratedAt = timezone.Format(timezone.Now(), constant.DateFormat)
}
