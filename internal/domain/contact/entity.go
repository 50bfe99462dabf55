package contact

import "time"

// Message is a validated contact-form submission.
type Message struct {
	ID        int64     `json:"-"`
	Reference string    `json:"contactId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
