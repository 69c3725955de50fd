// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. This package implements the repository pattern
// for the shipment domain aggregate, handling the conversion between domain
// entities and database representations.
package shipmentrepo

import (
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. Indexed by customer and status for the list and rollup reads.
type ShipmentDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingID          string    `gorm:"uniqueIndex"`
	CustomerID          uuid.UUID `gorm:"type:uuid;index"`
	ServiceType         string
	Status              string `gorm:"index"`
	PickupLocation      string
	DestinationLocation string
	PackageType         string
	Weight              string
	Dimensions          string
	Phone               string
	ReceiverPhone       string
	Amount              int64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName specifies the database table name for shipment aggregates.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// StatusHistoryItemDTO represents one persisted status transition record.
// Position preserves append order across round-trips.
type StatusHistoryItemDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID uuid.UUID `gorm:"type:uuid;index"`
	Status     string
	AdminName  string
	Note       string
	Position   int
	CreatedAt  time.Time
}

// TableName specifies the database table name for status history records.
func (StatusHistoryItemDTO) TableName() string {
	return "shipment_status_history"
}

// CheckpointDTO represents one persisted transit checkpoint record.
type CheckpointDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID  uuid.UUID `gorm:"type:uuid;index"`
	Location    string
	Description string
	AdminName   string
	Position    int
	CreatedAt   time.Time
}

// TableName specifies the database table name for checkpoint records.
func (CheckpointDTO) TableName() string {
	return "shipment_checkpoints"
}

// NoteDTO represents one persisted internal note record.
type NoteDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID uuid.UUID `gorm:"type:uuid;index"`
	Text       string
	AdminName  string
	Position   int
	CreatedAt  time.Time
}

// TableName specifies the database table name for note records.
func (NoteDTO) TableName() string {
	return "shipment_notes"
}

// CustomerDTO maps the customers table. Customer lifecycle is managed by an
// external system; this service only reads the table to attach snapshots to
// shipment read models. The DTO exists for schema migration and test setup.
type CustomerDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string
	Email string `gorm:"index"`
	Phone string
}

// TableName specifies the database table name for customer snapshots.
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a shipment domain aggregate to its database
// representation: the shipment row plus the owned audit records with their
// positions assigned from slice order.
func fromDomain(
	aggregate *shipment.Shipment,
) (ShipmentDTO, []StatusHistoryItemDTO, []CheckpointDTO, []NoteDTO) {
	details := aggregate.Details()
	dto := ShipmentDTO{
		ID:                  aggregate.ID().Bytes(),
		TrackingID:          aggregate.TrackingID(),
		CustomerID:          aggregate.CustomerID().Bytes(),
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
	}

	history := make([]StatusHistoryItemDTO, 0, len(aggregate.StatusHistory()))
	for i, item := range aggregate.StatusHistory() {
		history = append(history, StatusHistoryItemDTO{
			ID:         item.ID().Bytes(),
			ShipmentID: dto.ID,
			Status:     item.Status().String(),
			AdminName:  item.AdminName(),
			Note:       item.Note(),
			Position:   i,
			CreatedAt:  item.Timestamp(),
		})
	}

	checkpoints := make([]CheckpointDTO, 0, len(aggregate.Checkpoints()))
	for i, checkpoint := range aggregate.Checkpoints() {
		checkpoints = append(checkpoints, CheckpointDTO{
			ID:          checkpoint.ID().Bytes(),
			ShipmentID:  dto.ID,
			Location:    checkpoint.Location(),
			Description: checkpoint.Description(),
			AdminName:   checkpoint.AdminName(),
			Position:    i,
			CreatedAt:   checkpoint.Timestamp(),
		})
	}

	notes := make([]NoteDTO, 0, len(aggregate.Notes()))
	for i, note := range aggregate.Notes() {
		notes = append(notes, NoteDTO{
			ID:         note.ID().Bytes(),
			ShipmentID: dto.ID,
			Text:       note.Text(),
			AdminName:  note.AdminName(),
			Position:   i,
			CreatedAt:  note.Timestamp(),
		})
	}

	return dto, history, checkpoints, notes
}

// toDomain converts database rows back to a shipment domain aggregate.
// Child rows must already be ordered by position.
func toDomain(
	dto ShipmentDTO,
	historyDTOs []StatusHistoryItemDTO,
	checkpointDTOs []CheckpointDTO,
	noteDTOs []NoteDTO,
) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	serviceType, err := shipment.ServiceTypeFromString(dto.ServiceType)
	if err != nil {
		return nil, err
	}
	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	history := make([]*shipment.StatusHistoryItem, 0, len(historyDTOs))
	for _, itemDTO := range historyDTOs {
		itemID, idErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		itemStatus, statusErr := shipment.StatusFromString(itemDTO.Status)
		if statusErr != nil {
			return nil, statusErr
		}
		item, itemErr := shipment.NewStatusHistoryItem(
			itemID, itemStatus, itemDTO.CreatedAt, itemDTO.AdminName, itemDTO.Note)
		if itemErr != nil {
			return nil, itemErr
		}
		history = append(history, item)
	}

	checkpoints := make([]*shipment.Checkpoint, 0, len(checkpointDTOs))
	for _, checkpointDTO := range checkpointDTOs {
		checkpointID, idErr := kernel.UUIDFromBytes(checkpointDTO.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		checkpoint, checkpointErr := shipment.NewCheckpoint(
			checkpointID, checkpointDTO.Location, checkpointDTO.Description,
			checkpointDTO.CreatedAt, checkpointDTO.AdminName)
		if checkpointErr != nil {
			return nil, checkpointErr
		}
		checkpoints = append(checkpoints, checkpoint)
	}

	notes := make([]*shipment.Note, 0, len(noteDTOs))
	for _, noteDTO := range noteDTOs {
		noteID, idErr := kernel.UUIDFromBytes(noteDTO.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		note, noteErr := shipment.NewNote(noteID, noteDTO.Text, noteDTO.CreatedAt, noteDTO.AdminName)
		if noteErr != nil {
			return nil, noteErr
		}
		notes = append(notes, note)
	}

	return shipment.RestoreShipment(
		id,
		dto.TrackingID,
		customerID,
		serviceType,
		status,
		shipment.Details{
			PickupLocation:      dto.PickupLocation,
			DestinationLocation: dto.DestinationLocation,
			PackageType:         dto.PackageType,
			Weight:              dto.Weight,
			Dimensions:          dto.Dimensions,
			Phone:               dto.Phone,
			ReceiverPhone:       dto.ReceiverPhone,
		},
		dto.Amount,
		dto.CreatedAt,
		dto.UpdatedAt,
		history,
		checkpoints,
		notes,
	)
}
