package dto

import (
	"ridebook/internal/domains/contact/model"
	"ridebook/shared/constant"
	"ridebook/shared/timezone"
)

type SubmitContactRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Email   string `json:"email"   validate:"required,email,max=100"`
	Subject string `json:"subject" validate:"omitempty,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

type SubmitContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ContactResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
}

func (r *ContactResponse) FromModel(mod model.ContactSubmission) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Email = mod.Email
	r.Subject = mod.Subject
	r.Message = mod.Message
	r.CreatedAt = timezone.Format(mod.CreatedAt, constant.DateFormat)
}

type GetContactsResponse struct {
	Contacts  []ContactResponse `json:"contacts"`
	TotalData int               `json:"totalData"`
}

func (r *GetContactsResponse) FromModels(models []model.ContactSubmission) {
	r.TotalData = len(models)

	r.Contacts = make([]ContactResponse, len(models))
	for i, mod := range models {
		r.Contacts[i].FromModel(mod)
	}
}
