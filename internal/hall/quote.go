package hall

import (
	"github.com/megapark/hotel-backend/internal"
)

// QuoteDTO is the event quote request submitted from the public site.
// Only the contact name and phone are mandatory, the rest depends on how
// far the visitor got through the booking form.
type QuoteDTO struct {
	HallID       string `json:"hallId"`
	HallName     string `json:"hallName"`
	PackageID    string `json:"packageId"`
	PackageName  string `json:"packageName"`
	EventDate    string `json:"eventDate"`
	EventTime    string `json:"eventTime"`
	GuestCount   int    `json:"guestCount"`
	ContactName  string `json:"contactName"`
	ContactPhone string `json:"contactPhone"`
	ContactEmail string `json:"contactEmail"`
	Notes        string `json:"notes"`
}

func (d *QuoteDTO) Validate() error {
	var errs []internal.ValidationError

	if d.ContactName == "" {
		errs = append(errs, internal.ValidationError{Field: "contactName", Message: "contact name required", Code: string(internal.ErrCodeValidationFailed)})
	}
	if len(d.ContactPhone) < 5 {
		errs = append(errs, internal.ValidationError{Field: "contactPhone", Message: "contact phone required", Code: string(internal.ErrCodeValidationFailed)})
	}

	if len(errs) > 0 {
		return internal.NewValidationFieldErrors(errs)
	}
	return nil
}

type QuoteResult struct {
	Sent bool `json:"sent"`
}
