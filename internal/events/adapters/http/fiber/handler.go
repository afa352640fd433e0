package fiber

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"stats-service/internal/events/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type RecordEventUseCase interface {
	Execute(ctx context.Context, in usecase.RecordEventInput) (usecase.RecordEventResult, error)
	BulkRecord(ctx context.Context, in usecase.BulkRecordInput) (usecase.BulkRecordResult, error)
	Increase(ctx context.Context, key string, opts ...usecase.RecordOption) (usecase.RecordEventResult, error)
	Decrease(ctx context.Context, key string, opts ...usecase.RecordOption) (usecase.RecordEventResult, error)
	Set(ctx context.Context, key string, value int64, opts ...usecase.RecordOption) (usecase.RecordEventResult, error)
}

type EventHandler struct {
	recordUC RecordEventUseCase
	log      *slog.Logger
}

func NewEventHandler(recordUC RecordEventUseCase, log *slog.Logger) *EventHandler {
	if log == nil {
		log = slog.Default()
	}
	return &EventHandler{recordUC: recordUC, log: log}
}

// Register mounts the write routes.
func (h *EventHandler) Register(r fiber.Router) {
	r.Post("/events", h.CreateEvent)
	r.Post("/events/bulk", h.BulkCreateEvents)
	r.Post("/stats/:key/increase", h.Increase)
	r.Post("/stats/:key/decrease", h.Decrease)
	r.Post("/stats/:key/set", h.Set)
}

// statisticKey copies the route param; fiber reuses its buffer after the
// handler returns.
func statisticKey(c *fiber.Ctx) string {
	return strings.Clone(c.Params("key"))
}

func unixPtr(ts *int64) *time.Time {
	if ts == nil {
		return nil
	}
	t := time.Unix(*ts, 0).UTC()
	return &t
}

func toInput(req CreateEventRequest) usecase.RecordEventInput {
	return usecase.RecordEventInput{
		ID:           req.ID,
		StatisticKey: req.Statistic,
		Kind:         req.Type,
		Value:        req.Value,
		Timestamp:    unixPtr(req.Timestamp),
	}
}

func (h *EventHandler) fail(c *fiber.Ctx, err error) error {
	if errors.Is(err, usecase.ErrInvalidEvent) {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_event",
			Message: err.Error(),
		})
	}

	h.log.Error("record event failed",
		slog.String("path", c.Path()),
		slog.Any("error", err),
	)
	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
		Error: "internal_server_error",
	})
}

func (h *EventHandler) respond(c *fiber.Ctx, res usecase.RecordEventResult) error {
	resp := EventResponse{
		Status:    "created",
		ID:        res.Event.ID.String(),
		Statistic: res.Event.StatisticKey,
		Type:      res.Event.Kind.String(),
		Value:     res.Event.Value,
		Timestamp: res.Event.Timestamp.Unix(),
	}
	if !res.Created {
		resp.Status = "duplicate"
		return c.Status(http.StatusOK).JSON(resp)
	}
	return c.Status(http.StatusCreated).JSON(resp)
}

func invalidJSON(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error:   "invalid_json",
		Message: "request body is not valid JSON",
	})
}

// CreateEvent godoc
// @Summary Record a raw event
// @Description Appends a set or change event; replaying the same id is a no-op
// @Tags Events
// @Accept json
// @Produce json
// @Param request body CreateEventRequest true "Event payload"
// @Success 201 {object} EventResponse
// @Success 200 {object} EventResponse "Duplicate event"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var req CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	res, err := h.recordUC.Execute(c.UserContext(), toInput(req))
	if err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, res)
}

// BulkCreateEvents godoc
// @Summary Bulk record events
// @Description Validates every event, then appends the batch at once
// @Tags Events
// @Accept json
// @Produce json
// @Param request body BulkCreateEventsRequest true "Bulk event payload"
// @Success 201 {object} BulkCreateEventsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events/bulk [post]
func (h *EventHandler) BulkCreateEvents(c *fiber.Ctx) error {
	var req BulkCreateEventsRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	if len(req.Events) == 0 {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "events_list_required",
			Message: "events must not be empty",
		})
	}

	inputs := make([]usecase.RecordEventInput, len(req.Events))
	for i, e := range req.Events {
		inputs[i] = toInput(e)
	}

	result, err := h.recordUC.BulkRecord(c.UserContext(), usecase.BulkRecordInput{Events: inputs})
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(http.StatusCreated).JSON(BulkCreateEventsResponse{
		Created:    result.Created,
		Duplicates: result.Duplicates,
	})
}

func options(ts *int64, id string) []usecase.RecordOption {
	var opts []usecase.RecordOption
	if t := unixPtr(ts); t != nil {
		opts = append(opts, usecase.At(*t))
	}
	if id != "" {
		opts = append(opts, usecase.WithEventID(id))
	}
	return opts
}

func (h *EventHandler) adjust(c *fiber.Ctx, record func(ctx context.Context, key string, opts ...usecase.RecordOption) (usecase.RecordEventResult, error)) error {
	var req AdjustRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return invalidJSON(c)
		}
	}

	opts := options(req.Timestamp, req.ID)
	if req.Amount != nil {
		opts = append(opts, usecase.WithAmount(*req.Amount))
	}

	res, err := record(c.UserContext(), statisticKey(c), opts...)
	if err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, res)
}

// Increase godoc
// @Summary Increase a statistic
// @Description Records a positive change (amount defaults to 1)
// @Tags Stats
// @Accept json
// @Produce json
// @Param key path string true "Statistic key"
// @Param request body AdjustRequest false "Amount, timestamp and id"
// @Success 201 {object} EventResponse
// @Success 200 {object} EventResponse "Duplicate event"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /stats/{key}/increase [post]
func (h *EventHandler) Increase(c *fiber.Ctx) error {
	return h.adjust(c, h.recordUC.Increase)
}

// Decrease godoc
// @Summary Decrease a statistic
// @Description Records a negative change (amount defaults to 1)
// @Tags Stats
// @Accept json
// @Produce json
// @Param key path string true "Statistic key"
// @Param request body AdjustRequest false "Amount, timestamp and id"
// @Success 201 {object} EventResponse
// @Success 200 {object} EventResponse "Duplicate event"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /stats/{key}/decrease [post]
func (h *EventHandler) Decrease(c *fiber.Ctx) error {
	return h.adjust(c, h.recordUC.Decrease)
}

// Set godoc
// @Summary Set a statistic
// @Description Records an absolute value
// @Tags Stats
// @Accept json
// @Produce json
// @Param key path string true "Statistic key"
// @Param request body SetRequest true "Value, timestamp and id"
// @Success 201 {object} EventResponse
// @Success 200 {object} EventResponse "Duplicate event"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /stats/{key}/set [post]
func (h *EventHandler) Set(c *fiber.Ctx) error {
	var req SetRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	res, err := h.recordUC.Set(c.UserContext(), statisticKey(c), req.Value, options(req.Timestamp, req.ID)...)
	if err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, res)
}
