package response_models

import (
	"encoding/json"

	"promptly/internal/models/db_models"
)

type ServiceResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	StartingPrice int64  `json:"startingPrice"`
	IsActive      bool   `json:"isActive"`
	CreatedAt     int64  `json:"createdAt"`
}

func NewServiceResponse(s *db_models.Service) ServiceResponse {
	return ServiceResponse{
		ID:            s.ID.String(),
		Title:         s.Title,
		Description:   s.Description,
		StartingPrice: s.StartingPrice,
		IsActive:      s.IsActive,
		CreatedAt:     s.CreatedAt,
	}
}

type RequestUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ServiceRequestResponse struct {
	ID            string          `json:"id"`
	ServiceID     string          `json:"serviceId"`
	ServiceTitle  string          `json:"serviceTitle,omitempty"`
	User          *RequestUser    `json:"user,omitempty"`
	Budget        string          `json:"budget,omitempty"`
	Deadline      string          `json:"deadline,omitempty"`
	Requirements  json.RawMessage `json:"requirements"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"paymentStatus"`
	PaymentRef    string          `json:"paymentRef,omitempty"`
	CreatedAt     int64           `json:"createdAt"`
}

// NewServiceRequestResponse is the owner's view of their own request.
func NewServiceRequestResponse(r *db_models.ServiceRequest) ServiceRequestResponse {
	return ServiceRequestResponse{
		ID:            r.ID.String(),
		ServiceID:     r.ServiceID.String(),
		ServiceTitle:  r.Service.Title,
		Budget:        r.Budget,
		Deadline:      r.Deadline,
		Requirements:  json.RawMessage(r.Requirements),
		Status:        string(r.Status),
		PaymentStatus: string(r.PaymentStatus),
		PaymentRef:    r.PaymentRef,
		CreatedAt:     r.CreatedAt,
	}
}

// NewAdminRequestResponse adds the requesting user for the admin queue.
func NewAdminRequestResponse(r *db_models.ServiceRequest) ServiceRequestResponse {
	resp := NewServiceRequestResponse(r)
	resp.User = &RequestUser{Name: r.User.Name, Email: r.User.Email}
	return resp
}
