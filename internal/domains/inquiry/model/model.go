package model

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

const (
	// StoreKey is the document key holding the full inquiry collection.
	StoreKey   = "workationInquiries"
	EntityName = "inquiry"

	FieldID        = "id"
	FieldTimestamp = "timestamp"
	FieldName      = "name"
	FieldCompany   = "company"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldPackage   = "package"
	FieldCheckin   = "checkin"
	FieldGuests    = "guests"
	FieldMessage   = "message"
	FieldStatus    = "status"
)

const (
	PackageStarter      = "starter"
	PackageProfessional = "professional"
	PackageNomad        = "nomad"
	PackageParadise     = "paradise"
	PackageCustom       = "custom"
)

const (
	StatusPending = "pending"
)

// packageLabels maps catalog package keys to their display names.
var packageLabels = map[string]string{
	PackageStarter:      "Starter",
	PackageProfessional: "Professional",
	PackageNomad:        "Nomad",
	PackageParadise:     "Paradise",
	PackageCustom:       "기업 맞춤",
}

// PackageLabel returns the display name for a package key, falling back to
// the raw value since package is a display key, not a validated enum.
func PackageLabel(pkg string) string {
	if label, ok := packageLabels[pkg]; ok {
		return label
	}

	return pkg
}

// Inquiry is one submitted contact/booking request. Once appended it is
// immutable from the store's point of view; status exists for future workflow
// use and is never transitioned here.
type Inquiry struct {
	ID        int64  `json:"id"`
	Timestamp string `json:"timestamp"`
	Name      string `json:"name"`
	Company   string `json:"company"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Package   string `json:"package"`
	Checkin   string `json:"checkin"`
	Guests    string `json:"guests"`
	Message   string `json:"message"`
	Status    string `json:"status"`
}

// Normalize maps an untrusted row object onto an Inquiry. It is total: any
// object-like input yields a record, with missing or oddly-typed fields
// normalized to empty strings and status defaulted to pending. Applying it to
// a record's own row representation is a no-op.
func Normalize(row map[string]any) Inquiry {
	inquiry := Inquiry{
		ID:        intField(row, FieldID),
		Timestamp: stringField(row, FieldTimestamp),
		Name:      stringField(row, FieldName),
		Company:   stringField(row, FieldCompany),
		Email:     stringField(row, FieldEmail),
		Phone:     stringField(row, FieldPhone),
		Package:   stringField(row, FieldPackage),
		Checkin:   stringField(row, FieldCheckin),
		Guests:    stringField(row, FieldGuests),
		Message:   stringField(row, FieldMessage),
		Status:    stringField(row, FieldStatus),
	}

	if inquiry.Status == "" {
		inquiry.Status = StatusPending
	}

	return inquiry
}

// ToRow converts the record to the loose row shape used on the mirror wire.
func (i Inquiry) ToRow() map[string]any {
	return map[string]any{
		FieldID:        i.ID,
		FieldTimestamp: i.Timestamp,
		FieldName:      i.Name,
		FieldCompany:   i.Company,
		FieldEmail:     i.Email,
		FieldPhone:     i.Phone,
		FieldPackage:   i.Package,
		FieldCheckin:   i.Checkin,
		FieldGuests:    i.Guests,
		FieldMessage:   i.Message,
		FieldStatus:    i.Status,
	}
}

// ParseTimestamp parses a record timestamp. The second return reports whether
// the value was parseable; unparseable timestamps sort oldest and are
// excluded from period filters.
func ParseTimestamp(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}

	return time.Time{}, false
}

func stringField(row map[string]any, key string) string {
	value, ok := row[key]
	if !ok || value == nil {
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func intField(row map[string]any, key string) int64 {
	value, ok := row[key]
	if !ok || value == nil {
		return 0
	}

	switch v := value.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}

		return int64(v)
	case string:
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0
		}

		return parsed
	default:
		return 0
	}
}
