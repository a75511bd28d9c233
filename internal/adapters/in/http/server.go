package http

import (
	"errors"
	"net/http"

	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/application/usecases/queries"
	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes the depot use cases over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createClientHandler        commands.CreateClientCommandHandler
	createParcelHandler        commands.CreateParcelCommandHandler
	changeParcelWeightHandler  commands.ChangeParcelWeightCommandHandler
	createManifestHandler      commands.CreateManifestCommandHandler
	assignParcelHandler        commands.AssignParcelCommandHandler
	bulkAssignParcelsHandler   commands.BulkAssignParcelsCommandHandler
	startDistributionHandler   commands.StartDistributionCommandHandler
	createFailureReasonHandler commands.CreateFailureReasonCommandHandler
	assignFailureReasonHandler commands.AssignFailureReasonCommandHandler

	// Query handlers
	getManifestSummaryHandler queries.GetManifestSummaryQueryHandler
	getDepotParcelsHandler    queries.GetDepotParcelsQueryHandler
	listFailureReasonsHandler queries.ListFailureReasonsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createClientHandler commands.CreateClientCommandHandler,
	createParcelHandler commands.CreateParcelCommandHandler,
	changeParcelWeightHandler commands.ChangeParcelWeightCommandHandler,
	createManifestHandler commands.CreateManifestCommandHandler,
	assignParcelHandler commands.AssignParcelCommandHandler,
	bulkAssignParcelsHandler commands.BulkAssignParcelsCommandHandler,
	startDistributionHandler commands.StartDistributionCommandHandler,
	createFailureReasonHandler commands.CreateFailureReasonCommandHandler,
	assignFailureReasonHandler commands.AssignFailureReasonCommandHandler,
	getManifestSummaryHandler queries.GetManifestSummaryQueryHandler,
	getDepotParcelsHandler queries.GetDepotParcelsQueryHandler,
	listFailureReasonsHandler queries.ListFailureReasonsQueryHandler,
) *Server {
	return &Server{
		createClientHandler:        createClientHandler,
		createParcelHandler:        createParcelHandler,
		changeParcelWeightHandler:  changeParcelWeightHandler,
		createManifestHandler:      createManifestHandler,
		assignParcelHandler:        assignParcelHandler,
		bulkAssignParcelsHandler:   bulkAssignParcelsHandler,
		startDistributionHandler:   startDistributionHandler,
		createFailureReasonHandler: createFailureReasonHandler,
		assignFailureReasonHandler: assignFailureReasonHandler,
		getManifestSummaryHandler:  getManifestSummaryHandler,
		getDepotParcelsHandler:     getDepotParcelsHandler,
		listFailureReasonsHandler:  listFailureReasonsHandler,
	}
}

// RegisterRoutes attaches all depot routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/clients", s.CreateClient)

	api.POST("/parcels", s.CreateParcel)
	api.PUT("/parcels/:parcelId/weight", s.ChangeParcelWeight)
	api.GET("/parcels/depot", s.GetDepotParcels)

	api.POST("/manifests", s.CreateManifest)
	api.GET("/manifests/:manifestId", s.GetManifestSummary)
	api.POST("/manifests/:manifestId/parcels", s.AssignParcel)
	api.POST("/manifests/:manifestId/parcels/bulk", s.BulkAssignParcels)
	api.POST("/manifests/:manifestId/distribute", s.StartDistribution)

	api.POST("/failure-reasons", s.CreateFailureReason)
	api.GET("/failure-reasons", s.ListFailureReasons)
	api.PUT("/line-items/:lineItemId/failure-reason", s.AssignFailureReason)
}

// CreateClient handles POST /api/v1/clients - registers a new sender client.
func (s *Server) CreateClient(ctx echo.Context) error {
	var req NewClient
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	clientID := kernel.NewUUID()
	cmd, err := commands.NewCreateClientCommand(clientID, req.Name, req.Email, req.Phone, req.Address)
	if err != nil {
		return badRequest(ctx, "Invalid client data: "+err.Error())
	}

	if handleErr := s.createClientHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondDomainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: clientID.String()})
}

// CreateParcel handles POST /api/v1/parcels - registers a parcel into depot custody.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var req NewParcel
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	clientID, err := kernel.UUIDFromString(req.ClientID)
	if err != nil {
		return badRequest(ctx, "Invalid client id: "+err.Error())
	}

	parcelID := kernel.NewUUID()
	cmd, err := commands.NewCreateParcelCommand(parcelID, clientID,
		req.Tracking, req.RecipientName, req.RecipientPhone, req.RecipientAddress,
		req.WeightGrams, req.HeightCm)
	if err != nil {
		return badRequest(ctx, "Invalid parcel data: "+err.Error())
	}

	if handleErr := s.createParcelHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondDomainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: parcelID.String()})
}

// ChangeParcelWeight handles PUT /api/v1/parcels/{parcelId}/weight - corrects
// a parcel's weight after re-weighing.
func (s *Server) ChangeParcelWeight(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("parcelId"))
	if err != nil {
		return badRequest(ctx, "Invalid parcel id: "+err.Error())
	}

	var req ParcelWeight
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeParcelWeightCommand(parcelID, req.WeightGrams)
	if err != nil {
		return badRequest(ctx, "Invalid weight data: "+err.Error())
	}

	if handleErr := s.changeParcelWeightHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDepotParcels handles GET /api/v1/parcels/depot - lists parcels in depot custody.
func (s *Server) GetDepotParcels(ctx echo.Context) error {
	query := queries.NewGetDepotParcelsQuery()

	parcels, err := s.getDepotParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve depot parcels",
		})
	}

	response := make([]DepotParcel, len(parcels))
	for i, p := range parcels {
		response[i] = DepotParcel{
			ID:          p.ID.String(),
			ClientName:  p.ClientName,
			Tracking:    p.Tracking,
			WeightGrams: p.WeightGrams,
			Size:        p.Size,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateManifest handles POST /api/v1/manifests - opens a new dispatch manifest.
func (s *Server) CreateManifest(ctx echo.Context) error {
	var req NewManifest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	manifestID := kernel.NewUUID()
	cmd, err := commands.NewCreateManifestCommand(manifestID, req.Number)
	if err != nil {
		return badRequest(ctx, "Invalid manifest data: "+err.Error())
	}

	if handleErr := s.createManifestHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondDomainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: manifestID.String()})
}

// GetManifestSummary handles GET /api/v1/manifests/{manifestId} - returns the
// manifest with its line items and running total weight.
func (s *Server) GetManifestSummary(ctx echo.Context) error {
	manifestID, err := kernel.UUIDFromString(ctx.Param("manifestId"))
	if err != nil {
		return badRequest(ctx, "Invalid manifest id: "+err.Error())
	}

	query, err := queries.NewGetManifestSummaryQuery(manifestID)
	if err != nil {
		return badRequest(ctx, "Invalid manifest id: "+err.Error())
	}

	summary, err := s.getManifestSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondDomainError(ctx, err)
	}

	items := make([]ManifestItem, len(summary.Items))
	for i, item := range summary.Items {
		items[i] = ManifestItem{
			LineItemID:        item.LineItemID.String(),
			ParcelID:          item.ParcelID.String(),
			Tracking:          item.Tracking,
			Position:          item.Position,
			WeightGrams:       item.WeightGrams,
			State:             item.State,
			FailureReasonCode: item.FailureReasonCode,
		}
	}

	return ctx.JSON(http.StatusOK, ManifestSummary{
		ID:               summary.ManifestID.String(),
		Number:           summary.Number,
		CreatedAt:        summary.CreatedAt,
		TotalWeightGrams: summary.TotalWeightGrams,
		Items:            items,
	})
}

// AssignParcel handles POST /api/v1/manifests/{manifestId}/parcels - assigns
// one parcel to the manifest.
func (s *Server) AssignParcel(ctx echo.Context) error {
	manifestID, err := kernel.UUIDFromString(ctx.Param("manifestId"))
	if err != nil {
		return badRequest(ctx, "Invalid manifest id: "+err.Error())
	}

	var req ParcelAssignment
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	parcelID, err := kernel.UUIDFromString(req.ParcelID)
	if err != nil {
		return badRequest(ctx, "Invalid parcel id: "+err.Error())
	}

	cmd, err := commands.NewAssignParcelCommand(manifestID, parcelID)
	if err != nil {
		return badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	if handleErr := s.assignParcelHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// BulkAssignParcels handles POST /api/v1/manifests/{manifestId}/parcels/bulk -
// assigns a batch of parcels atomically. Either every parcel in the batch is
// assigned or none are.
func (s *Server) BulkAssignParcels(ctx echo.Context) error {
	manifestID, err := kernel.UUIDFromString(ctx.Param("manifestId"))
	if err != nil {
		return badRequest(ctx, "Invalid manifest id: "+err.Error())
	}

	var req ParcelBatchAssignment
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	parcelIDs := make([]kernel.UUID, 0, len(req.ParcelIDs))
	for _, raw := range req.ParcelIDs {
		parcelID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return badRequest(ctx, "Invalid parcel id: "+idErr.Error())
		}
		parcelIDs = append(parcelIDs, parcelID)
	}

	cmd, err := commands.NewBulkAssignParcelsCommand(manifestID, parcelIDs)
	if err != nil {
		return badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	if handleErr := s.bulkAssignParcelsHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// StartDistribution handles POST /api/v1/manifests/{manifestId}/distribute -
// moves every parcel on the manifest out of depot custody. Safe to retry; a
// repeated call reports zero transitions.
func (s *Server) StartDistribution(ctx echo.Context) error {
	manifestID, err := kernel.UUIDFromString(ctx.Param("manifestId"))
	if err != nil {
		return badRequest(ctx, "Invalid manifest id: "+err.Error())
	}

	cmd, err := commands.NewStartDistributionCommand(manifestID)
	if err != nil {
		return badRequest(ctx, "Invalid manifest id: "+err.Error())
	}

	changed, err := s.startDistributionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DistributionResult{TransitionedParcels: changed})
}

// CreateFailureReason handles POST /api/v1/failure-reasons - adds a catalog entry.
func (s *Server) CreateFailureReason(ctx echo.Context) error {
	var req NewFailureReason
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	reasonID := kernel.NewUUID()
	cmd, err := commands.NewCreateFailureReasonCommand(reasonID, req.Code, req.Name, req.Description, active)
	if err != nil {
		return badRequest(ctx, "Invalid failure reason data: "+err.Error())
	}

	if handleErr := s.createFailureReasonHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondDomainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: reasonID.String()})
}

// ListFailureReasons handles GET /api/v1/failure-reasons - lists all catalog
// entries, active and inactive.
func (s *Server) ListFailureReasons(ctx echo.Context) error {
	query := queries.NewListFailureReasonsQuery()

	reasons, err := s.listFailureReasonsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve failure reasons",
		})
	}

	response := make([]FailureReason, len(reasons))
	for i, r := range reasons {
		response[i] = FailureReason{
			ID:          r.ID.String(),
			Code:        r.Code,
			Name:        r.Name,
			Description: r.Description,
			Active:      r.Active,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignFailureReason handles PUT /api/v1/line-items/{lineItemId}/failure-reason -
// records why a delivery attempt failed for one line item.
func (s *Server) AssignFailureReason(ctx echo.Context) error {
	lineItemID, err := kernel.UUIDFromString(ctx.Param("lineItemId"))
	if err != nil {
		return badRequest(ctx, "Invalid line item id: "+err.Error())
	}

	var req FailureReasonAssignment
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	reasonID, err := kernel.UUIDFromString(req.ReasonID)
	if err != nil {
		return badRequest(ctx, "Invalid reason id: "+err.Error())
	}

	cmd, err := commands.NewAssignFailureReasonCommand(lineItemID, reasonID)
	if err != nil {
		return badRequest(ctx, "Invalid failure reason data: "+err.Error())
	}

	if handleErr := s.assignFailureReasonHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondDomainError maps domain errors onto HTTP status codes: missing
// objects become 404, state and capacity conflicts become 409, validation
// failures become 400, everything else is a 500.
func respondDomainError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidState), errors.Is(err, errs.ErrCapacityExceeded):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
