// Package http exposes the shipment tracking REST API over echo.
// Handlers translate between the wire contract (envelope responses,
// upper-snake enum tokens) and the application's command/query handlers.
package http

import (
	"errors"
	"net/http"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createShipmentHandler commands.CreateShipmentCommandHandler
	updateStatusHandler   commands.UpdateShipmentStatusCommandHandler
	addCheckpointHandler  commands.AddCheckpointCommandHandler
	addNoteHandler        commands.AddNoteCommandHandler
	updateAmountHandler   commands.UpdateAmountCommandHandler
	deleteShipmentHandler commands.DeleteShipmentCommandHandler

	// Query handlers
	getShipmentHandler       queries.GetShipmentQueryHandler
	listShipmentsHandler     queries.ListShipmentsQueryHandler
	customerRollupHandler    queries.CustomerRollupQueryHandler
	dashboardCountersHandler queries.DashboardCountersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	updateStatusHandler commands.UpdateShipmentStatusCommandHandler,
	addCheckpointHandler commands.AddCheckpointCommandHandler,
	addNoteHandler commands.AddNoteCommandHandler,
	updateAmountHandler commands.UpdateAmountCommandHandler,
	deleteShipmentHandler commands.DeleteShipmentCommandHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
	listShipmentsHandler queries.ListShipmentsQueryHandler,
	customerRollupHandler queries.CustomerRollupQueryHandler,
	dashboardCountersHandler queries.DashboardCountersQueryHandler,
) *Server {
	return &Server{
		createShipmentHandler:    createShipmentHandler,
		updateStatusHandler:      updateStatusHandler,
		addCheckpointHandler:     addCheckpointHandler,
		addNoteHandler:           addNoteHandler,
		updateAmountHandler:      updateAmountHandler,
		deleteShipmentHandler:    deleteShipmentHandler,
		getShipmentHandler:       getShipmentHandler,
		listShipmentsHandler:     listShipmentsHandler,
		customerRollupHandler:    customerRollupHandler,
		dashboardCountersHandler: dashboardCountersHandler,
	}
}

// RegisterRoutes mounts the API under /api/v1 plus the /health liveness
// endpoint.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	v1 := e.Group("/api/v1")
	v1.POST("/shipments", s.CreateShipment)
	v1.GET("/shipments", s.ListShipments)
	v1.GET("/shipments/summary/customers", s.GetCustomerRollup)
	v1.GET("/shipments/summary/dashboard", s.GetDashboardCounters)
	v1.GET("/shipments/:id", s.GetShipment)
	v1.PATCH("/shipments/:id/status", s.UpdateShipmentStatus)
	v1.POST("/shipments/:id/checkpoints", s.AddCheckpoint)
	v1.POST("/shipments/:id/notes", s.AddNote)
	v1.PATCH("/shipments/:id/amount", s.UpdateAmount)
	v1.DELETE("/shipments/:id", s.DeleteShipment)
	v1.GET("/tracking/:trackingId", s.TrackShipment)
}

// respondError maps application errors to the wire taxonomy: missing
// records to 404, illegal lifecycle moves to 409, malformed fields to 400,
// everything else to a generic 500.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error()})
	case errors.Is(err, shipment.ErrSameStatus), errors.Is(err, shipment.ErrInvalidTransition):
		return ctx.JSON(http.StatusConflict, ErrorResponse{Message: err.Error()})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, kernel.ErrUUIDIsNotConstructed):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal server error"})
	}
}

func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: message})
}

func shipmentIDParam(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// CreateShipment handles POST /api/v1/shipments.
//
//	@Summary	Create a shipment
//	@Tags		shipments
//	@Accept		json
//	@Produce	json
//	@Param		shipment	body		CreateShipmentRequest	true	"New shipment"
//	@Success	201			{object}	Envelope{data=ShipmentResponse}
//	@Failure	400			{object}	ErrorResponse
//	@Router		/shipments [post]
func (s *Server) CreateShipment(ctx echo.Context) error {
	var request CreateShipmentRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return respondBadRequest(ctx, "customerId must be a UUID")
	}
	serviceType, err := shipment.ServiceTypeFromString(request.ServiceType)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(),
		request.TrackingID,
		customerID,
		serviceType,
		shipment.Details{
			PickupLocation:      request.PickupLocation,
			DestinationLocation: request.DestinationLocation,
			PackageType:         request.PackageType,
			Weight:              request.Weight,
			Dimensions:          request.Dimensions,
			Phone:               request.Phone,
			ReceiverPhone:       request.ReceiverPhone,
		},
	)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, envelope(shipmentFromAggregate(created)))
}

// ListShipments handles GET /api/v1/shipments.
//
//	@Summary	List shipments
//	@Tags		shipments
//	@Produce	json
//	@Param		customerId	query		string	false	"Filter by customer id"
//	@Param		status		query		string	false	"Filter by status token"
//	@Success	200			{object}	Envelope{data=[]ShipmentResponse}
//	@Router		/shipments [get]
func (s *Server) ListShipments(ctx echo.Context) error {
	var customerID *kernel.UUID
	if raw := ctx.QueryParam("customerId"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return respondBadRequest(ctx, "customerId must be a UUID")
		}
		customerID = &id
	}

	var status *shipment.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := shipment.StatusFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		status = &parsed
	}

	query, err := queries.NewListShipmentsQuery(customerID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	summaries, err := s.listShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ShipmentResponse, 0, len(summaries))
	for _, summary := range summaries {
		response = append(response, shipmentFromSummary(summary))
	}
	return ctx.JSON(http.StatusOK, envelope(response))
}

// GetShipment handles GET /api/v1/shipments/:id.
//
//	@Summary	Get one shipment with its audit trail
//	@Tags		shipments
//	@Produce	json
//	@Param		id	path		string	true	"Shipment id"
//	@Success	200	{object}	Envelope{data=ShipmentResponse}
//	@Failure	404	{object}	ErrorResponse
//	@Router		/shipments/{id} [get]
func (s *Server) GetShipment(ctx echo.Context) error {
	id, err := shipmentIDParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, "id must be a UUID")
	}

	query, err := queries.NewGetShipmentQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, envelope(shipmentFromQuery(result)))
}

// TrackShipment handles GET /api/v1/tracking/:trackingId, the public lookup
// by tracking identifier.
//
//	@Summary	Track a shipment by tracking id
//	@Tags		tracking
//	@Produce	json
//	@Param		trackingId	path		string	true	"Tracking id"
//	@Success	200			{object}	Envelope{data=ShipmentResponse}
//	@Failure	404			{object}	ErrorResponse
//	@Router		/tracking/{trackingId} [get]
func (s *Server) TrackShipment(ctx echo.Context) error {
	query, err := queries.NewGetShipmentQueryByTrackingID(ctx.Param("trackingId"))
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, envelope(shipmentFromQuery(result)))
}

// UpdateShipmentStatus handles PATCH /api/v1/shipments/:id/status.
//
//	@Summary	Move a shipment to a new lifecycle status
//	@Tags		shipments
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Shipment id"
//	@Param		change	body		UpdateStatusRequest	true	"Target status"
//	@Success	200		{object}	Envelope{data=ShipmentResponse}
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/shipments/{id}/status [patch]
func (s *Server) UpdateShipmentStatus(ctx echo.Context) error {
	id, err := shipmentIDParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, "id must be a UUID")
	}

	var request UpdateStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err = ctx.Validate(&request); err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	target, err := shipment.StatusFromString(request.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateShipmentStatusCommand(id, target, request.AdminName, request.Note)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, envelope(shipmentFromAggregate(updated)))
}

// AddCheckpoint handles POST /api/v1/shipments/:id/checkpoints.
//
//	@Summary	Append a transit checkpoint
//	@Tags		shipments
//	@Accept		json
//	@Produce	json
//	@Param		id			path		string					true	"Shipment id"
//	@Param		checkpoint	body		AddCheckpointRequest	true	"Checkpoint"
//	@Success	201			{object}	Envelope{data=CheckpointResponse}
//	@Failure	404			{object}	ErrorResponse
//	@Router		/shipments/{id}/checkpoints [post]
func (s *Server) AddCheckpoint(ctx echo.Context) error {
	id, err := shipmentIDParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, "id must be a UUID")
	}

	var request AddCheckpointRequest
	if err = ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err = ctx.Validate(&request); err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAddCheckpointCommand(id, request.Location, request.Description, request.AdminName)
	if err != nil {
		return respondError(ctx, err)
	}

	checkpoint, err := s.addCheckpointHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, envelope(checkpointFromEntity(checkpoint)))
}

// AddNote handles POST /api/v1/shipments/:id/notes.
//
//	@Summary	Append an internal note
//	@Tags		shipments
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"Shipment id"
//	@Param		note	body		AddNoteRequest	true	"Note"
//	@Success	201		{object}	Envelope{data=NoteResponse}
//	@Failure	404		{object}	ErrorResponse
//	@Router		/shipments/{id}/notes [post]
func (s *Server) AddNote(ctx echo.Context) error {
	id, err := shipmentIDParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, "id must be a UUID")
	}

	var request AddNoteRequest
	if err = ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err = ctx.Validate(&request); err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAddNoteCommand(id, request.Text, request.AdminName)
	if err != nil {
		return respondError(ctx, err)
	}

	note, err := s.addNoteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, envelope(noteFromEntity(note)))
}

// UpdateAmount handles PATCH /api/v1/shipments/:id/amount.
//
//	@Summary	Update the quoted amount
//	@Tags		shipments
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Shipment id"
//	@Param		amount	body		UpdateAmountRequest	true	"Amount"
//	@Success	200		{object}	Envelope{data=ShipmentResponse}
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/shipments/{id}/amount [patch]
func (s *Server) UpdateAmount(ctx echo.Context) error {
	id, err := shipmentIDParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, "id must be a UUID")
	}

	var request UpdateAmountRequest
	if err = ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err = ctx.Validate(&request); err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	amount, err := request.ParseAmount()
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewUpdateAmountCommand(id, amount)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateAmountHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, envelope(shipmentFromAggregate(updated)))
}

// DeleteShipment handles DELETE /api/v1/shipments/:id.
//
//	@Summary	Delete a shipment and its audit trail
//	@Tags		shipments
//	@Produce	json
//	@Param		id	path		string	true	"Shipment id"
//	@Success	200	{object}	Envelope{data=MessageResponse}
//	@Failure	404	{object}	ErrorResponse
//	@Router		/shipments/{id} [delete]
func (s *Server) DeleteShipment(ctx echo.Context) error {
	id, err := shipmentIDParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, "id must be a UUID")
	}

	cmd, err := commands.NewDeleteShipmentCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, envelope(MessageResponse{Message: "shipment deleted"}))
}

// GetCustomerRollup handles GET /api/v1/shipments/summary/customers.
//
//	@Summary	Per-customer shipment rollup
//	@Tags		summary
//	@Produce	json
//	@Success	200	{object}	Envelope{data=[]CustomerRollupResponse}
//	@Router		/shipments/summary/customers [get]
func (s *Server) GetCustomerRollup(ctx echo.Context) error {
	result, err := s.customerRollupHandler.Handle(ctx.Request().Context(), queries.NewCustomerRollupQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]CustomerRollupResponse, 0, len(result))
	for _, group := range result {
		response = append(response, CustomerRollupResponse{
			CustomerName:  group.CustomerName,
			CustomerEmail: group.CustomerEmail,
			TotalCount:    group.TotalCount,
			ActiveCount:   group.ActiveCount,
			LatestShipment: LatestShipmentRef{
				ID:         group.LatestShipment.ID.String(),
				TrackingID: group.LatestShipment.TrackingID,
				Status:     group.LatestShipment.Status.String(),
				CreatedAt:  group.LatestShipment.CreatedAt,
			},
		})
	}
	return ctx.JSON(http.StatusOK, envelope(response))
}

// GetDashboardCounters handles GET /api/v1/shipments/summary/dashboard.
//
//	@Summary	Dashboard counters
//	@Tags		summary
//	@Produce	json
//	@Success	200	{object}	Envelope{data=DashboardCountersResponse}
//	@Router		/shipments/summary/dashboard [get]
func (s *Server) GetDashboardCounters(ctx echo.Context) error {
	result, err := s.dashboardCountersHandler.Handle(ctx.Request().Context(), queries.NewDashboardCountersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	byStatus := make(map[string]int64, len(result.ByStatus))
	for status, count := range result.ByStatus {
		byStatus[status.String()] = count
	}
	return ctx.JSON(http.StatusOK, envelope(DashboardCountersResponse{
		Total:    result.Total,
		ByStatus: byStatus,
	}))
}
