package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type RequestStatus string

const (
	RequestStatusNew        RequestStatus = "NEW"
	RequestStatusInProgress RequestStatus = "IN_PROGRESS"
	RequestStatusCompleted  RequestStatus = "COMPLETED"
	RequestStatusRejected   RequestStatus = "REJECTED"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid    PaymentStatus = "unpaid"
	PaymentStatusVerifying PaymentStatus = "verifying"
	PaymentStatusPaid      PaymentStatus = "paid"
)

// legalTransitions is the full lifecycle: admins drive a request forward,
// COMPLETED and REJECTED are terminal.
var legalTransitions = map[RequestStatus][]RequestStatus{
	RequestStatusNew:        {RequestStatusInProgress, RequestStatusRejected},
	RequestStatusInProgress: {RequestStatusCompleted, RequestStatusRejected},
}

func CanTransition(from, to RequestStatus) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func ValidRequestStatus(s RequestStatus) bool {
	switch s {
	case RequestStatusNew, RequestStatusInProgress, RequestStatusCompleted, RequestStatusRejected:
		return true
	}
	return false
}

func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentStatusUnpaid, PaymentStatusVerifying, PaymentStatusPaid:
		return true
	}
	return false
}

type ServiceRequest struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ServiceID uuid.UUID `gorm:"type:uuid;not null;index"`

	Budget       string
	Deadline     string
	Requirements datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Status RequestStatus `gorm:"size:16;default:'NEW';index"`

	// Manual payment verification: the customer supplies a transfer
	// reference and an admin flips the status once the money shows up.
	PaymentStatus PaymentStatus `gorm:"size:16;default:'unpaid'"`
	PaymentRef    string

	User    User    `gorm:"foreignKey:UserID"`
	Service Service `gorm:"foreignKey:ServiceID"`
}
