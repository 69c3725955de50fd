package commands

import (
	"context"
	"time"

	"shiptrack/internal/core/domain/model/shipment"
)

// AddNoteCommandHandler appends an internal annotation to a shipment's note
// collection. Notes never touch the status lifecycle.
type AddNoteCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewAddNoteCommandHandler creates a handler for note appends.
func NewAddNoteCommandHandler(uowFactory ShipmentUoWFactory) AddNoteCommandHandler {
	return AddNoteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the note append command and returns the created note
// record.
func (h *AddNoteCommandHandler) Handle(ctx context.Context, cmd AddNoteCommand) (*shipment.Note, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()
	aggregate, err := repo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	note, err := aggregate.AddNote(cmd.Text(), cmd.AdminName(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return note, nil
}
