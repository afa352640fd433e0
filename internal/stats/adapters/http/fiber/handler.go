package fiber

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"stats-service/internal/stats/core/domain"
	"stats-service/internal/stats/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetStatsUseCase interface {
	Execute(ctx context.Context, in usecase.GetStatsInput) (*usecase.StatsReport, error)
	GetValue(ctx context.Context, key string, at time.Time) (int64, error)
}

type StatsHandler struct {
	uc    GetStatsUseCase
	log   *slog.Logger
	clock func() time.Time
}

func NewStatsHandler(uc GetStatsUseCase, log *slog.Logger) *StatsHandler {
	if log == nil {
		log = slog.Default()
	}
	return &StatsHandler{uc: uc, log: log, clock: time.Now}
}

// Register mounts the read routes.
func (h *StatsHandler) Register(r fiber.Router) {
	r.Get("/stats/:key/value", h.GetValue)
	r.Get("/stats/:key", h.GetStats)
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error:   "invalid_query",
		Message: msg,
	})
}

// unixParam parses an optional unix-seconds query parameter.
func unixParam(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name, "")
	if raw == "" {
		return nil, nil
	}
	sec, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid '%s' parameter", name)
	}
	t := time.Unix(sec, 0).UTC()
	return &t, nil
}

func (h *StatsHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuery),
		errors.Is(err, domain.ErrUnsupportedGranularity):
		return badRequest(c, err.Error())
	default:
		h.log.Error("stats query failed",
			slog.String("path", c.Path()),
			slog.Any("error", err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

// GetValue godoc
// @Summary Value of a statistic at an instant
// @Description Resolves the latest set plus later changes up to and including at
// @Tags Stats
// @Produce json
// @Param key path string true "Statistic key"
// @Param at query int false "Unix timestamp (defaults to now)"
// @Success 200 {object} ValueResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /stats/{key}/value [get]
func (h *StatsHandler) GetValue(c *fiber.Ctx) error {
	at, err := unixParam(c, "at")
	if err != nil {
		return badRequest(c, err.Error())
	}
	if at == nil {
		now := h.clock().UTC()
		at = &now
	}

	key := strings.Clone(c.Params("key"))
	value, err := h.uc.GetValue(c.UserContext(), key, *at)
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(http.StatusOK).JSON(ValueResponse{
		Statistic: key,
		At:        at.Unix(),
		Value:     value,
	})
}

// GetStats godoc
// @Summary Period report for a statistic
// @Description Returns one data point per period between start and end
// @Tags Stats
// @Produce json
// @Param key path string true "Statistic key"
// @Param start query int false "Inclusive start, unix seconds (defaults to one month ago)"
// @Param end query int false "Exclusive end, unix seconds (defaults to now)"
// @Param group_by query string false "hour | day | week | month | year (defaults to week)"
// @Param aligned query bool false "Widen the range to whole calendar periods"
// @Success 200 {object} StatsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /stats/{key} [get]
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	start, err := unixParam(c, "start")
	if err != nil {
		return badRequest(c, err.Error())
	}
	end, err := unixParam(c, "end")
	if err != nil {
		return badRequest(c, err.Error())
	}

	in := usecase.GetStatsInput{
		Key:     strings.Clone(c.Params("key")),
		Start:   start,
		End:     end,
		GroupBy: c.Query("group_by", ""),
		Aligned: c.QueryBool("aligned", false),
	}

	res, err := h.uc.Execute(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err)
	}

	resp := StatsResponse{
		Statistic:  res.Key,
		Start:      res.Start.Unix(),
		End:        res.End.Unix(),
		GroupBy:    res.Granularity.String(),
		Aligned:    res.Aligned,
		DataPoints: make([]DataPointResponse, 0, len(res.DataPoints)),
	}

	for _, p := range res.DataPoints {
		resp.DataPoints = append(resp.DataPoints, DataPointResponse{
			Start:      p.Start.Unix(),
			End:        p.End.Unix(),
			Label:      p.Label,
			Value:      p.Value,
			Increments: p.Increments,
			Decrements: p.Decrements,
			Difference: p.Difference,
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}
