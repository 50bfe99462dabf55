package quote

// SubmitQuoteRequest is the wire shape of POST /api/quote. The binding
// tags mirror the client-side form schema field for field so the server
// rejects anything the form would have rejected.
type SubmitQuoteRequest struct {
	FirstName string `json:"firstName" binding:"required,min=2"`
	LastName  string `json:"lastName" binding:"required,min=2"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required,min=10"`

	MoveType string `json:"moveType" binding:"required,oneof=local long-distance commercial"`
	MoveDate string `json:"moveDate" binding:"required"`

	FromAddress string `json:"fromAddress" binding:"required,min=5"`
	FromCity    string `json:"fromCity" binding:"required,min=2"`
	FromState   string `json:"fromState" binding:"required,min=2"`
	FromZip     string `json:"fromZip" binding:"required,min=5"`

	ToAddress string `json:"toAddress" binding:"required,min=5"`
	ToCity    string `json:"toCity" binding:"required,min=2"`
	ToState   string `json:"toState" binding:"required,min=2"`
	ToZip     string `json:"toZip" binding:"required,min=5"`

	HomeSize string `json:"homeSize" binding:"required,oneof=studio 1-bedroom 2-bedroom 3-bedroom 4-bedroom 5+bedroom office warehouse"`

	// Absent booleans decode to false, matching the form defaults.
	PackingService bool `json:"packingService"`
	StorageService bool `json:"storageService"`

	SpecialItems    string `json:"specialItems"`
	AdditionalNotes string `json:"additionalNotes"`
	HearAboutUs     string `json:"hearAboutUs" binding:"omitempty,oneof=google facebook referral repeat-customer other"`
}

// ToEntity copies the validated request into a QuoteRequest entity.
func (r *SubmitQuoteRequest) ToEntity() *QuoteRequest {
	return &QuoteRequest{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Phone:           r.Phone,
		MoveType:        r.MoveType,
		MoveDate:        r.MoveDate,
		FromAddress:     r.FromAddress,
		FromCity:        r.FromCity,
		FromState:       r.FromState,
		FromZip:         r.FromZip,
		ToAddress:       r.ToAddress,
		ToCity:          r.ToCity,
		ToState:         r.ToState,
		ToZip:           r.ToZip,
		HomeSize:        r.HomeSize,
		PackingService:  r.PackingService,
		StorageService:  r.StorageService,
		SpecialItems:    r.SpecialItems,
		AdditionalNotes: r.AdditionalNotes,
		HearAboutUs:     r.HearAboutUs,
	}
}

// SubmitQuoteResponse is the success body of POST /api/quote.
type SubmitQuoteResponse struct {
	Success       bool   `json:"success"`
	QuoteID       string `json:"quoteId"`
	EstimatedCost int    `json:"estimatedCost"`
	Message       string `json:"message"`
}

// EstimatePreviewRequest is the body of POST /api/quote/estimate.
// The live preview is deliberately lenient: partial form state is fine,
// the calculator falls back to defaults for anything unrecognized.
type EstimatePreviewRequest struct {
	MoveType       string `json:"moveType"`
	HomeSize       string `json:"homeSize"`
	PackingService bool   `json:"packingService"`
	StorageService bool   `json:"storageService"`
}

// EstimatePreviewResponse carries the point estimate and the displayed range.
type EstimatePreviewResponse struct {
	Success       bool `json:"success"`
	EstimatedCost int  `json:"estimatedCost"`
	RangeLow      int  `json:"rangeLow"`
	RangeHigh     int  `json:"rangeHigh"`
}
