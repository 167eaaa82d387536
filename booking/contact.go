package booking

import "github.com/go-playground/validator/v10"

// ContactMessage is a general enquiry from the contact form. Name, email and
// the message body are required; phone is optional.
type ContactMessage struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" validate:"required"`
}

func (m *ContactMessage) Validate() error {
	validate := validator.New()
	return validate.Struct(m)
}
