package http

import (
	"errors"
	"log/slog"
	"net/http"

	"subscriptions/internal/core/application/usecases/commands"
	"subscriptions/internal/core/application/usecases/queries"
	"subscriptions/internal/core/domain/model/kernel"
	"subscriptions/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the subscription service.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	subscribeHandler commands.SubscribeCommandHandler
	pauseHandler     commands.PauseSubscriptionCommandHandler
	resumeHandler    commands.ResumeSubscriptionCommandHandler
	cancelHandler    commands.CancelSubscriptionCommandHandler

	// Query handlers
	getCustomerSubscriptionHandler queries.GetCustomerSubscriptionQueryHandler
	getPendingDeliveriesHandler    queries.GetPendingDeliveriesQueryHandler
	getAssignableAgentsHandler     queries.GetAssignableAgentsQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	subscribeHandler commands.SubscribeCommandHandler,
	pauseHandler commands.PauseSubscriptionCommandHandler,
	resumeHandler commands.ResumeSubscriptionCommandHandler,
	cancelHandler commands.CancelSubscriptionCommandHandler,
	getCustomerSubscriptionHandler queries.GetCustomerSubscriptionQueryHandler,
	getPendingDeliveriesHandler queries.GetPendingDeliveriesQueryHandler,
	getAssignableAgentsHandler queries.GetAssignableAgentsQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		subscribeHandler:               subscribeHandler,
		pauseHandler:                   pauseHandler,
		resumeHandler:                  resumeHandler,
		cancelHandler:                  cancelHandler,
		getCustomerSubscriptionHandler: getCustomerSubscriptionHandler,
		getPendingDeliveriesHandler:    getPendingDeliveriesHandler,
		getAssignableAgentsHandler:     getAssignableAgentsHandler,
		logger:                         logger.With("component", "http_server"),
	}
}

// RegisterRoutes attaches the server's handlers to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/subscriptions", s.Subscribe)
	api.POST("/subscriptions/:id/pause", s.PauseSubscription)
	api.POST("/subscriptions/:id/resume", s.ResumeSubscription)
	api.POST("/subscriptions/:id/cancel", s.CancelSubscription)
	api.GET("/customers/:id/subscription", s.GetCustomerSubscription)
	api.GET("/deliveries/pending", s.GetPendingDeliveries)
	api.GET("/agents/assignable", s.GetAssignableAgents)
}

// Subscribe handles POST /api/v1/subscriptions - creates a new subscription.
func (s *Server) Subscribe(ctx echo.Context) error {
	var body NewSubscription
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	customerID, err := kernel.UUIDFromBytes(body.CustomerID[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid customer id",
		})
	}

	planID, err := kernel.UUIDFromBytes(body.PlanID[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid plan id",
		})
	}

	subscriptionID := kernel.NewUUID()
	cmd, err := commands.NewSubscribeCommand(subscriptionID, customerID, planID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid subscription data: " + err.Error(),
		})
	}

	if handleErr := s.subscribeHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.commandError(ctx, handleErr, "Failed to create subscription")
	}

	return ctx.JSON(http.StatusCreated, SubscriptionCreated{ID: subscriptionID.Bytes()})
}

// PauseSubscription handles POST /api/v1/subscriptions/:id/pause.
func (s *Server) PauseSubscription(ctx echo.Context) error {
	subscriptionID, ok := s.pathUUID(ctx, "id")
	if !ok {
		return nil
	}

	cmd, err := commands.NewPauseSubscriptionCommand(subscriptionID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid subscription id: " + err.Error(),
		})
	}

	if handleErr := s.pauseHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.commandError(ctx, handleErr, "Failed to pause subscription")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ResumeSubscription handles POST /api/v1/subscriptions/:id/resume.
func (s *Server) ResumeSubscription(ctx echo.Context) error {
	subscriptionID, ok := s.pathUUID(ctx, "id")
	if !ok {
		return nil
	}

	cmd, err := commands.NewResumeSubscriptionCommand(subscriptionID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid subscription id: " + err.Error(),
		})
	}

	if handleErr := s.resumeHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.commandError(ctx, handleErr, "Failed to resume subscription")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelSubscription handles POST /api/v1/subscriptions/:id/cancel.
func (s *Server) CancelSubscription(ctx echo.Context) error {
	subscriptionID, ok := s.pathUUID(ctx, "id")
	if !ok {
		return nil
	}

	cmd, err := commands.NewCancelSubscriptionCommand(subscriptionID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid subscription id: " + err.Error(),
		})
	}

	if handleErr := s.cancelHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.commandError(ctx, handleErr, "Failed to cancel subscription")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCustomerSubscription handles GET /api/v1/customers/:id/subscription.
func (s *Server) GetCustomerSubscription(ctx echo.Context) error {
	customerID, ok := s.pathUUID(ctx, "id")
	if !ok {
		return nil
	}

	query, err := queries.NewGetCustomerSubscriptionQuery(customerID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid customer id: " + err.Error(),
		})
	}

	view, err := s.getCustomerSubscriptionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Subscription not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve subscription",
		})
	}

	history := make([]PauseWindow, len(view.PauseHistory))
	for i, item := range view.PauseHistory {
		history[i] = PauseWindow{
			PauseDate:  item.PauseDate,
			ResumeDate: item.ResumeDate,
		}
	}

	return ctx.JSON(http.StatusOK, CustomerSubscription{
		ID:               view.ID.Bytes(),
		PlanID:           view.PlanID.Bytes(),
		PlanName:         view.PlanName,
		Status:           view.Status,
		StartDate:        view.StartDate,
		EndDate:          view.EndDate,
		NextDeliveryDate: view.NextDeliveryDate,
		PauseHistory:     history,
	})
}

// GetPendingDeliveries handles GET /api/v1/deliveries/pending - retrieves the
// delivery schedule.
func (s *Server) GetPendingDeliveries(ctx echo.Context) error {
	query := queries.NewGetPendingDeliveriesQuery()

	entries, err := s.getPendingDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve pending deliveries",
		})
	}

	response := make([]PendingDelivery, len(entries))
	for i, entry := range entries {
		response[i] = PendingDelivery{
			ID:           entry.ID.Bytes(),
			CustomerID:   entry.CustomerID.Bytes(),
			AgentName:    entry.AgentName,
			DeliveryDate: entry.DeliveryDate,
			Description:  entry.Description,
			IsRecurring:  entry.IsRecurring,
		}
		if entry.AgentID != nil {
			agentID := entry.AgentID.Bytes()
			response[i].AgentID = &agentID
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAssignableAgents handles GET /api/v1/agents/assignable - retrieves the
// rotation pool.
func (s *Server) GetAssignableAgents(ctx echo.Context) error {
	query := queries.NewGetAssignableAgentsQuery()

	agents, err := s.getAssignableAgentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve agents",
		})
	}

	response := make([]Agent, len(agents))
	for i, a := range agents {
		response[i] = Agent{
			ID:   a.ID.Bytes(),
			Name: a.Name,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// pathUUID parses the named path parameter as a UUID. On failure it writes a
// 400 response and returns ok=false.
func (s *Server) pathUUID(ctx echo.Context, name string) (kernel.UUID, bool) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		_ = ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid " + name + " path parameter",
		})
		return kernel.UUID{}, false
	}
	return id, true
}

// commandError maps application errors onto HTTP status codes.
func (s *Server) commandError(ctx echo.Context, err error, message string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: message + ": not found",
		})
	case errors.Is(err, commands.ErrSubscriptionAlreadyExists),
		errors.Is(err, errs.ErrInvalidTransition):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: message + ": " + err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: message + ": " + err.Error(),
		})
	case errors.Is(err, errs.ErrDataConsistency):
		s.logger.ErrorContext(ctx.Request().Context(), "Data consistency violation", "error", err)
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: message + ": data consistency violation, investigation required",
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: message,
		})
	}
}
