package handler

import "time"

// dateFormats are accepted for the loss/find date, most specific first.
var dateFormats = []string{time.RFC3339, "2006-01-02"}

// parseItemDate parses the loss/find date from either an RFC3339 timestamp
// or a plain calendar date.
func parseItemDate(s string) (time.Time, bool) {
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

type createItemRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category"    validate:"required,oneof=electronics clothing accessories documents jewelry other"`
	Type        string `json:"type"        validate:"required,oneof=lost found"`
	Location    string `json:"location"    validate:"required"`
	Date        string `json:"date"        validate:"required"`
	Contact     string `json:"contact"     validate:"required"`
}

// updateItemRequest is a partial update; absent fields are left untouched.
// reportedBy is deliberately not bindable.
type updateItemRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	Category    *string `json:"category"    validate:"omitempty,oneof=electronics clothing accessories documents jewelry other"`
	Type        *string `json:"type"        validate:"omitempty,oneof=lost found"`
	Location    *string `json:"location"    validate:"omitempty,min=1"`
	Date        *string `json:"date"`
	Contact     *string `json:"contact"     validate:"omitempty,min=1"`
	Status      *string `json:"status"      validate:"omitempty,oneof=active resolved"`
}
