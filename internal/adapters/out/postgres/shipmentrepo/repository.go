package shipmentrepo

import (
	"context"
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment to the database, including the seeded status
// history.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, history, checkpoints, notes := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	if err := r.appendAuditRecords(ctx, history, checkpoints, notes); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shipment to the database. Audit records are
// immutable: new ones are inserted, rows already present are left untouched.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, history, checkpoints, notes := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipment", aggregate.ID().String())
	}

	if err := r.appendAuditRecords(ctx, history, checkpoints, notes); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// appendAuditRecords inserts the aggregate's owned records. Existing rows
// conflict on primary key and are skipped, so re-persisting the aggregate
// never rewrites history.
func (r *GormShipmentRepository) appendAuditRecords(
	ctx context.Context,
	history []StatusHistoryItemDTO,
	checkpoints []CheckpointDTO,
	notes []NoteDTO,
) error {
	db := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true})

	if len(history) > 0 {
		if err := db.Create(&history).Error; err != nil {
			return err
		}
	}
	if len(checkpoints) > 0 {
		if err := db.Create(&checkpoints).Error; err != nil {
			return err
		}
	}
	if len(notes) > 0 {
		if err := db.Create(&notes).Error; err != nil {
			return err
		}
	}
	return nil
}

// Get retrieves a shipment by ID with its audit collections in append order.
// The shipment row is read FOR UPDATE: inside a unit-of-work transaction,
// concurrent writers of the same shipment serialize on this read and the
// later one observes the earlier one's committed state.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, err
	}

	return r.loadAggregate(ctx, dto)
}

// GetByTrackingID retrieves a shipment by its human-facing tracking
// identifier, with the same row lock as Get.
func (r *GormShipmentRepository) GetByTrackingID(ctx context.Context, trackingID string) (*shipment.Shipment, error) {
	if trackingID == "" {
		return nil, errs.NewValueIsRequiredError("trackingId")
	}

	var dto ShipmentDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "tracking_id = ?", trackingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", trackingID)
		}
		return nil, err
	}

	return r.loadAggregate(ctx, dto)
}

func (r *GormShipmentRepository) loadAggregate(ctx context.Context, dto ShipmentDTO) (*shipment.Shipment, error) {
	var history []StatusHistoryItemDTO
	err := r.db.WithContext(ctx).
		Where("shipment_id = ?", dto.ID).
		Order("position").
		Find(&history).Error
	if err != nil {
		return nil, err
	}

	var checkpoints []CheckpointDTO
	err = r.db.WithContext(ctx).
		Where("shipment_id = ?", dto.ID).
		Order("position").
		Find(&checkpoints).Error
	if err != nil {
		return nil, err
	}

	var notes []NoteDTO
	err = r.db.WithContext(ctx).
		Where("shipment_id = ?", dto.ID).
		Order("position").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto, history, checkpoints, notes)
}

// Delete removes a shipment and its owned audit records.
func (r *GormShipmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	raw := id.Bytes()
	if err := r.db.WithContext(ctx).Delete(&StatusHistoryItemDTO{}, "shipment_id = ?", raw).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&CheckpointDTO{}, "shipment_id = ?", raw).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&NoteDTO{}, "shipment_id = ?", raw).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ShipmentDTO{}, "id = ?", raw)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipment", id.String())
	}
	return nil
}
