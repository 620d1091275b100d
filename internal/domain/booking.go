package domain

// Booking is a client's request to reserve a photographer for an event.
// It is written once on submission and never updated or deleted.
//
// Fields the booking form is expected to carry are pointers: a field missing
// from the submission is stored as NULL rather than rejected.
type Booking struct {
	BookingID       string  `json:"booking_id" gorm:"column:booking_id;primaryKey"`
	EventType       *string `json:"event_type" gorm:"column:event_type"`
	StartDate       *string `json:"start_date" gorm:"column:start_date"`
	EndDate         *string `json:"end_date" gorm:"column:end_date"`
	ClientName      *string `json:"user_name" gorm:"column:user_name"`
	ClientEmail     *string `json:"email" gorm:"column:email"`
	ClientPhone     *string `json:"phone" gorm:"column:phone"`
	Package         *string `json:"package" gorm:"column:package"`
	PhotographerID  *string `json:"photographer_id" gorm:"column:photographer_id;index"`
	PaymentMethod   *string `json:"payment_method" gorm:"column:payment_method"`
	SpecialRequests string  `json:"special_requests" gorm:"column:special_requests;type:text"`
	// CreatedAt is an RFC 3339 UTC timestamp, sortable as text.
	CreatedAt string `json:"timestamp" gorm:"column:timestamp;index"`
}

func (Booking) TableName() string { return "bookings" }

// StringOr returns *p, or def when p is nil.
func StringOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}
