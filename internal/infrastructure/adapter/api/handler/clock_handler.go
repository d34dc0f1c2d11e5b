package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/relay-race-book/internal/domain/port/core"
	"github.com/amirhossein-jamali/relay-race-book/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/relay-race-book/internal/infrastructure/adapter/api/dto"
)

// ClockHandler handles time-of-day and duration arithmetic requests
type ClockHandler struct {
	clock  usecase.ClockUseCase
	logger coreport.Logger
}

// NewClockHandler creates a new clock handler instance
func NewClockHandler(clock usecase.ClockUseCase, logger coreport.Logger) *ClockHandler {
	return &ClockHandler{
		clock:  clock,
		logger: logger,
	}
}

// Now handles the GET /clock/now endpoint
func (h *ClockHandler) Now(c *gin.Context) {
	c.JSON(http.StatusOK, dto.TimeResponse{Time: h.clock.Now().String()})
}

// Shift handles the POST /clock/shift endpoint
func (h *ClockHandler) Shift(c *gin.Context) {
	var req dto.ShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.logger, err)
		return
	}

	result, err := h.clock.Shift(req.Time, req.Duration, usecase.Direction(req.Direction))
	if err != nil {
		respondError(c, h.logger, "Error shifting time", err)
		return
	}

	c.JSON(http.StatusOK, dto.TimeResponse{Time: result.String()})
}

// Gap handles the POST /clock/gap endpoint
func (h *ClockHandler) Gap(c *gin.Context) {
	var req dto.GapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.logger, err)
		return
	}

	gap, err := h.clock.Gap(req.From, req.To)
	if err != nil {
		respondError(c, h.logger, "Error measuring time gap", err)
		return
	}

	c.JSON(http.StatusOK, dto.DurationResponse{Duration: gap.String()})
}

// Compare handles the POST /clock/compare endpoint
func (h *ClockHandler) Compare(c *gin.Context) {
	var req dto.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.logger, err)
		return
	}

	result, err := h.clock.CompareTimes(req.Left, req.Right)
	if err != nil {
		respondError(c, h.logger, "Error comparing times", err)
		return
	}

	c.JSON(http.StatusOK, dto.CompareResponse{Result: result})
}

// CombineDurations handles the POST /durations/combine endpoint
func (h *ClockHandler) CombineDurations(c *gin.Context) {
	var req dto.CombineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.logger, err)
		return
	}

	result, err := h.clock.CombineDurations(req.Left, req.Right, usecase.DurationOperation(req.Operation))
	if err != nil {
		respondError(c, h.logger, "Error combining durations", err)
		return
	}

	c.JSON(http.StatusOK, dto.DurationResponse{Duration: result.String()})
}
