package contact

// SubmitContactRequest is the wire shape of POST /api/contact.
type SubmitContactRequest struct {
	Name    string `json:"name" binding:"required,min=2"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required,min=10"`
	Subject string `json:"subject" binding:"required,min=5"`
	Message string `json:"message" binding:"required,min=10"`
}

// ToEntity copies the validated request into a Message entity.
func (r *SubmitContactRequest) ToEntity() *Message {
	return &Message{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Subject: r.Subject,
		Message: r.Message,
	}
}

// SubmitContactResponse is the success body of POST /api/contact.
type SubmitContactResponse struct {
	Success   bool   `json:"success"`
	ContactID string `json:"contactId"`
	Message   string `json:"message"`
}
