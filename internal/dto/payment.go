package dto

import (
	"time"

	"github.com/buffetjuniors/buffet_management_app/internal/core/domain"
	"github.com/buffetjuniors/buffet_management_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest defines the data needed to record a payment installment.
// PaidDate is required when status is paid.
type CreatePaymentRequest struct {
	EventID  string               `json:"eventID" binding:"required,uuid"`
	Amount   decimal.Decimal      `json:"amount" binding:"required"`
	Method   domain.PaymentMethod `json:"method" binding:"required,oneof=pix cash credit_card debit_card transfer"`
	Status   domain.PaymentStatus `json:"status" binding:"omitempty,oneof=pending paid overdue"`
	DueDate  string               `json:"dueDate" binding:"required,datetime=2006-01-02"`
	PaidDate *string              `json:"paidDate" binding:"omitempty,datetime=2006-01-02"`
	Notes    string               `json:"notes"`
}

// UpdatePaymentRequest defines the data allowed for updating a payment.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdatePaymentRequest struct {
	Amount   *decimal.Decimal      `json:"amount"`
	Method   *domain.PaymentMethod `json:"method" binding:"omitempty,oneof=pix cash credit_card debit_card transfer"`
	Status   *domain.PaymentStatus `json:"status" binding:"omitempty,oneof=pending paid overdue"`
	DueDate  *string               `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	PaidDate *string               `json:"paidDate" binding:"omitempty,datetime=2006-01-02"`
	Notes    *string               `json:"notes"`
}

// ListPaymentsParams defines query parameters for listing payments.
type ListPaymentsParams struct {
	Status  string `form:"status" binding:"omitempty,oneof=pending paid overdue"`
	EventID string `form:"eventID" binding:"omitempty,uuid"`
	DueFrom string `form:"dueFrom" binding:"omitempty,datetime=2006-01-02"`
	DueTo   string `form:"dueTo" binding:"omitempty,datetime=2006-01-02"`
	PageParams
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID string               `json:"paymentID"`
	EventID   string               `json:"eventID"`
	Amount    decimal.Decimal      `json:"amount"`
	Method    domain.PaymentMethod `json:"method"`
	Status    domain.PaymentStatus `json:"status"`
	DueDate   string               `json:"dueDate"`            // YYYY-MM-DD
	PaidDate  *string              `json:"paidDate,omitempty"` // YYYY-MM-DD
	Notes     string               `json:"notes"`
	CreatedAt time.Time            `json:"createdAt"`
}

// ListPaymentsResponse wraps one page of payments.
type ListPaymentsResponse struct {
	Data []PaymentResponse `json:"data"`
	Pagination
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO
func ToPaymentResponse(payment *domain.Payment) PaymentResponse {
	resp := PaymentResponse{
		PaymentID: payment.PaymentID,
		EventID:   payment.EventID,
		Amount:    payment.Amount,
		Method:    payment.Method,
		Status:    payment.Status,
		DueDate:   utils.FormatDateOnly(payment.DueDate),
		Notes:     payment.Notes,
		CreatedAt: payment.CreatedAt,
	}
	if payment.PaidDate != nil {
		paid := utils.FormatDateOnly(*payment.PaidDate)
		resp.PaidDate = &paid
	}
	return resp
}

// ToListPaymentsResponse converts a page of domain payments to ListPaymentsResponse DTO
func ToListPaymentsResponse(payments []domain.Payment, p Pagination) ListPaymentsResponse {
	data := make([]PaymentResponse, len(payments))
	for i, pm := range payments {
		data[i] = ToPaymentResponse(&pm)
	}
	return ListPaymentsResponse{Data: data, Pagination: p}
}
