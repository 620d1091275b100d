package booking

import (
	"net/url"

	"photobooking/internal/domain"
)

// Form field names posted by the booking page.
const (
	FieldEventType       = "event_type"
	FieldStartDate       = "start_date"
	FieldEndDate         = "end_date"
	FieldClientName      = "user_name"
	FieldClientEmail     = "email"
	FieldClientPhone     = "phone"
	FieldPackage         = "package"
	FieldPhotographerID  = "photographer_id"
	FieldPaymentMethod   = "payment_method"
	FieldSpecialRequests = "special_requests"
)

// FormValues flattens a posted form, keeping the first value of each field.
// Fields absent from the post stay absent from the map.
func FormValues(v url.Values) map[string]string {
	out := make(map[string]string, len(v))
	for k, vals := range v {
		if len(vals) > 0 {
			out[k] = vals[0]
		}
	}
	return out
}

// bookingFromForm maps form fields onto a Booking without validating them.
func bookingFromForm(form map[string]string) *domain.Booking {
	field := func(key string) *string {
		v, ok := form[key]
		if !ok {
			return nil
		}
		return &v
	}

	return &domain.Booking{
		EventType:       field(FieldEventType),
		StartDate:       field(FieldStartDate),
		EndDate:         field(FieldEndDate),
		ClientName:      field(FieldClientName),
		ClientEmail:     field(FieldClientEmail),
		ClientPhone:     field(FieldClientPhone),
		Package:         field(FieldPackage),
		PhotographerID:  field(FieldPhotographerID),
		PaymentMethod:   field(FieldPaymentMethod),
		SpecialRequests: form[FieldSpecialRequests],
	}
}

type ListBookingsResponse struct {
	Bookings []domain.Booking `json:"bookings"`
	Count    int              `json:"count"`
}

// Delivery reports which confirmation channels succeeded.
type Delivery struct {
	BookingID string `json:"booking_id"`
	Email     bool   `json:"email"`
	SMS       bool   `json:"sms"`
}
