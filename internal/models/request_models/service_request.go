package request_models

import "encoding/json"

type CreateServiceRequest struct {
	Title         string `json:"title" binding:"required,min=1"`
	Description   string `json:"description" binding:"required,min=1"`
	StartingPrice int64  `json:"startingPrice" binding:"min=0"`
	IsActive      *bool  `json:"isActive"`
}

type UpdateServiceRequest struct {
	Title         *string `json:"title" binding:"omitempty,min=1"`
	Description   *string `json:"description" binding:"omitempty,min=1"`
	StartingPrice *int64  `json:"startingPrice" binding:"omitempty,min=0"`
	IsActive      *bool   `json:"isActive"`
}

type CreateRequestRequest struct {
	ServiceID    string          `json:"serviceId" binding:"required,uuid"`
	Budget       string          `json:"budget"`
	Deadline     string          `json:"deadline"`
	Requirements json.RawMessage `json:"requirements" binding:"required"`
	PaymentRef   string          `json:"paymentRef"`
}

type UpdateRequestStatus struct {
	ID     string `json:"id" binding:"required,uuid"`
	Status string `json:"status" binding:"required,oneof=NEW IN_PROGRESS COMPLETED REJECTED"`
}

type UpdateRequestPayment struct {
	ID            string `json:"id" binding:"required,uuid"`
	PaymentStatus string `json:"paymentStatus" binding:"required,oneof=unpaid verifying paid"`
}
