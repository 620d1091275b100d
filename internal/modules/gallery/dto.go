package gallery

import "photobooking/internal/domain"

type AssembleRequest struct {
	Filenames []string `json:"filenames"`
}

type NotifyRequest struct {
	Filenames []string `json:"filenames"`
	Name      string   `json:"name"`
	Email     string   `json:"email" binding:"omitempty,email"`
	Phone     string   `json:"phone"`
}

// Recipient is who a gallery is delivered to. Either contact may be empty.
type Recipient struct {
	Name  string
	Email string
	Phone string
}

type Delivery struct {
	Gallery *domain.Gallery `json:"gallery"`
	Link    string          `json:"link"`
	Email   bool            `json:"email"`
	SMS     bool            `json:"sms"`
}
