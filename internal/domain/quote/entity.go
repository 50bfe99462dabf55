package quote

import "time"

// Move types offered on the public quote form.
const (
	MoveTypeLocal        = "local"
	MoveTypeLongDistance = "long-distance"
	MoveTypeCommercial   = "commercial"
)

// QuoteRequest is a validated quote submission from the public site.
type QuoteRequest struct {
	ID        int64  `json:"-"`
	Reference string `json:"quoteId"`

	// Personal information
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	// Move details. MoveDate is kept as the raw string the customer
	// submitted; the form never promises a parseable date.
	MoveType string `json:"moveType"`
	MoveDate string `json:"moveDate"`

	// Addresses
	FromAddress string `json:"fromAddress"`
	FromCity    string `json:"fromCity"`
	FromState   string `json:"fromState"`
	FromZip     string `json:"fromZip"`
	ToAddress   string `json:"toAddress"`
	ToCity      string `json:"toCity"`
	ToState     string `json:"toState"`
	ToZip       string `json:"toZip"`

	// Property and services
	HomeSize       string `json:"homeSize"`
	PackingService bool   `json:"packingService"`
	StorageService bool   `json:"storageService"`

	SpecialItems    string `json:"specialItems,omitempty"`
	AdditionalNotes string `json:"additionalNotes,omitempty"`
	HearAboutUs     string `json:"hearAboutUs,omitempty"`

	EstimatedCost int       `json:"estimatedCost"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CustomerName returns the customer's full name for emails and logs.
func (q *QuoteRequest) CustomerName() string {
	return q.FirstName + " " + q.LastName
}

// Submission is what the service returns to the handler after a quote
// has been accepted: the tracking reference and the quoted cost.
type Submission struct {
	Reference     string
	EstimatedCost int
}
