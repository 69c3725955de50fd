package http

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// RequestValidator adapts go-playground/validator to echo's Validator
// interface so request DTOs are checked right after binding.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the validator used for all request DTOs.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// CreateShipmentRequest is the body of POST /shipments.
type CreateShipmentRequest struct {
	TrackingID          string `json:"trackingId" validate:"required"`
	CustomerID          string `json:"customerId" validate:"required,uuid"`
	ServiceType         string `json:"serviceType" validate:"required"`
	PickupLocation      string `json:"pickupLocation" validate:"required"`
	DestinationLocation string `json:"destinationLocation" validate:"required"`
	PackageType         string `json:"packageType" validate:"required"`
	Weight              string `json:"weight" validate:"required"`
	Dimensions          string `json:"dimensions" validate:"required"`
	Phone               string `json:"phone" validate:"required"`
	ReceiverPhone       string `json:"receiverPhone"`
}

// UpdateStatusRequest is the body of PATCH /shipments/{id}/status.
type UpdateStatusRequest struct {
	Status    string `json:"status" validate:"required"`
	Note      string `json:"note"`
	AdminName string `json:"adminName"`
}

// AddCheckpointRequest is the body of POST /shipments/{id}/checkpoints.
type AddCheckpointRequest struct {
	Location    string `json:"location" validate:"required"`
	Description string `json:"description" validate:"required"`
	AdminName   string `json:"adminName"`
}

// AddNoteRequest is the body of POST /shipments/{id}/notes.
type AddNoteRequest struct {
	Text      string `json:"text" validate:"required"`
	AdminName string `json:"adminName"`
}

// UpdateAmountRequest is the body of PATCH /shipments/{id}/amount.
// Amount binds as json.Number so fractional or non-numeric wire values are
// rejected here, before reaching the domain.
type UpdateAmountRequest struct {
	Amount json.Number `json:"amount" validate:"required"`
}

// ParseAmount converts the wire amount to a whole number of currency units.
func (r UpdateAmountRequest) ParseAmount() (int64, error) {
	amount, err := strconv.ParseInt(r.Amount.String(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("amount must be a whole number: %q", r.Amount.String())
	}
	return amount, nil
}
