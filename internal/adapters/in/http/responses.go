package http

import (
	"time"

	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/shipment"
)

// Envelope is the wire wrapper for successful responses. Callers unwrap
// Data before use.
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ErrorResponse is the wire shape for failed requests.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func envelope(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// ShipmentResponse is the wire representation of a shipment. The audit
// collections are present on single-shipment reads and omitted from list
// rows.
type ShipmentResponse struct {
	ID                  string    `json:"id"`
	TrackingID          string    `json:"trackingId"`
	CustomerID          string    `json:"customerId"`
	ServiceType         string    `json:"serviceType"`
	Status              string    `json:"status"`
	PickupLocation      string    `json:"pickupLocation"`
	DestinationLocation string    `json:"destinationLocation"`
	PackageType         string    `json:"packageType"`
	Weight              string    `json:"weight"`
	Dimensions          string    `json:"dimensions"`
	Phone               string    `json:"phone"`
	ReceiverPhone       string    `json:"receiverPhone,omitempty"`
	Amount              int64     `json:"amount"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`

	Customer      *CustomerResponse       `json:"customer,omitempty"`
	StatusHistory []StatusHistoryResponse `json:"statusHistory,omitempty"`
	Checkpoints   []CheckpointResponse    `json:"checkpoints,omitempty"`
	Notes         []NoteResponse          `json:"notes,omitempty"`
	NextStatuses  []string                `json:"nextStatuses,omitempty"`
}

// CustomerResponse is the read-only customer snapshot attached to a
// shipment.
type CustomerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// StatusHistoryResponse is one audit-trail entry on the wire.
type StatusHistoryResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	AdminName string    `json:"adminName,omitempty"`
	Note      string    `json:"note,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// CheckpointResponse is one transit checkpoint on the wire.
type CheckpointResponse struct {
	ID          string    `json:"id"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	AdminName   string    `json:"adminName,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// NoteResponse is one internal note on the wire.
type NoteResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	AdminName string    `json:"adminName,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// CustomerRollupResponse is one customer group of the rollup summary.
type CustomerRollupResponse struct {
	CustomerName   string            `json:"customerName"`
	CustomerEmail  string            `json:"customerEmail,omitempty"`
	TotalCount     int               `json:"totalCount"`
	ActiveCount    int               `json:"activeCount"`
	LatestShipment LatestShipmentRef `json:"latestShipment"`
}

// LatestShipmentRef identifies the most recent shipment of a rollup group.
type LatestShipmentRef struct {
	ID         string    `json:"id"`
	TrackingID string    `json:"trackingId"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// DashboardCountersResponse carries the dashboard counters keyed by status
// wire token.
type DashboardCountersResponse struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"byStatus"`
}

// MessageResponse carries a confirmation message, used by DELETE.
type MessageResponse struct {
	Message string `json:"message"`
}

func statusTokens(statuses []shipment.Status) []string {
	tokens := make([]string, 0, len(statuses))
	for _, s := range statuses {
		tokens = append(tokens, s.String())
	}
	return tokens
}

func shipmentFromSummary(summary queries.ShipmentSummaryResponse) ShipmentResponse {
	return ShipmentResponse{
		ID:                  summary.ID.String(),
		TrackingID:          summary.TrackingID,
		CustomerID:          summary.CustomerID.String(),
		ServiceType:         summary.ServiceType.String(),
		Status:              summary.Status.String(),
		PickupLocation:      summary.PickupLocation,
		DestinationLocation: summary.DestinationLocation,
		PackageType:         summary.PackageType,
		Weight:              summary.Weight,
		Dimensions:          summary.Dimensions,
		Phone:               summary.Phone,
		ReceiverPhone:       summary.ReceiverPhone,
		Amount:              summary.Amount,
		CreatedAt:           summary.CreatedAt,
		UpdatedAt:           summary.UpdatedAt,
	}
}

func shipmentFromQuery(result queries.GetShipmentQueryResponse) ShipmentResponse {
	response := shipmentFromSummary(result.ShipmentSummaryResponse)
	response.NextStatuses = statusTokens(result.NextStatuses)

	if result.Customer != nil {
		response.Customer = &CustomerResponse{
			ID:    result.Customer.ID.String(),
			Name:  result.Customer.Name,
			Email: result.Customer.Email,
			Phone: result.Customer.Phone,
		}
	}

	response.StatusHistory = make([]StatusHistoryResponse, 0, len(result.StatusHistory))
	for _, item := range result.StatusHistory {
		response.StatusHistory = append(response.StatusHistory, StatusHistoryResponse{
			ID:        item.ID.String(),
			Status:    item.Status.String(),
			AdminName: item.AdminName,
			Note:      item.Note,
			Timestamp: item.Timestamp,
		})
	}
	response.Checkpoints = make([]CheckpointResponse, 0, len(result.Checkpoints))
	for _, checkpoint := range result.Checkpoints {
		response.Checkpoints = append(response.Checkpoints, CheckpointResponse{
			ID:          checkpoint.ID.String(),
			Location:    checkpoint.Location,
			Description: checkpoint.Description,
			AdminName:   checkpoint.AdminName,
			Timestamp:   checkpoint.Timestamp,
		})
	}
	response.Notes = make([]NoteResponse, 0, len(result.Notes))
	for _, note := range result.Notes {
		response.Notes = append(response.Notes, NoteResponse{
			ID:        note.ID.String(),
			Text:      note.Text,
			AdminName: note.AdminName,
			Timestamp: note.Timestamp,
		})
	}

	return response
}

func shipmentFromAggregate(aggregate *shipment.Shipment) ShipmentResponse {
	details := aggregate.Details()
	response := ShipmentResponse{
		ID:                  aggregate.ID().String(),
		TrackingID:          aggregate.TrackingID(),
		CustomerID:          aggregate.CustomerID().String(),
		ServiceType:         aggregate.ServiceType().String(),
		Status:              aggregate.Status().String(),
		PickupLocation:      details.PickupLocation,
		DestinationLocation: details.DestinationLocation,
		PackageType:         details.PackageType,
		Weight:              details.Weight,
		Dimensions:          details.Dimensions,
		Phone:               details.Phone,
		ReceiverPhone:       details.ReceiverPhone,
		Amount:              aggregate.Amount(),
		CreatedAt:           aggregate.CreatedAt(),
		UpdatedAt:           aggregate.UpdatedAt(),
		NextStatuses:        statusTokens(aggregate.NextStatuses()),
	}

	response.StatusHistory = make([]StatusHistoryResponse, 0, len(aggregate.StatusHistory()))
	for _, item := range aggregate.StatusHistory() {
		response.StatusHistory = append(response.StatusHistory, StatusHistoryResponse{
			ID:        item.ID().String(),
			Status:    item.Status().String(),
			AdminName: item.AdminName(),
			Note:      item.Note(),
			Timestamp: item.Timestamp(),
		})
	}
	response.Checkpoints = make([]CheckpointResponse, 0, len(aggregate.Checkpoints()))
	for _, checkpoint := range aggregate.Checkpoints() {
		response.Checkpoints = append(response.Checkpoints, CheckpointResponse{
			ID:          checkpoint.ID().String(),
			Location:    checkpoint.Location(),
			Description: checkpoint.Description(),
			AdminName:   checkpoint.AdminName(),
			Timestamp:   checkpoint.Timestamp(),
		})
	}
	response.Notes = make([]NoteResponse, 0, len(aggregate.Notes()))
	for _, note := range aggregate.Notes() {
		response.Notes = append(response.Notes, NoteResponse{
			ID:        note.ID().String(),
			Text:      note.Text(),
			AdminName: note.AdminName(),
			Timestamp: note.Timestamp(),
		})
	}

	return response
}

func checkpointFromEntity(checkpoint *shipment.Checkpoint) CheckpointResponse {
	return CheckpointResponse{
		ID:          checkpoint.ID().String(),
		Location:    checkpoint.Location(),
		Description: checkpoint.Description(),
		AdminName:   checkpoint.AdminName(),
		Timestamp:   checkpoint.Timestamp(),
	}
}

func noteFromEntity(note *shipment.Note) NoteResponse {
	return NoteResponse{
		ID:        note.ID().String(),
		Text:      note.Text(),
		AdminName: note.AdminName(),
		Timestamp: note.Timestamp(),
	}
}
