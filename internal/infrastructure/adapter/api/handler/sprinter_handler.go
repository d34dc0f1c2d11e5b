package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/relay-race-book/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/relay-race-book/internal/domain/error"
	coreport "github.com/amirhossein-jamali/relay-race-book/internal/domain/port/core"
	"github.com/amirhossein-jamali/relay-race-book/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/relay-race-book/internal/infrastructure/adapter/api/dto"
)

// SprinterHandler handles race book HTTP requests
type SprinterHandler struct {
	raceBook usecase.RaceBookUseCase
	logger   coreport.Logger
}

// NewSprinterHandler creates a new sprinter handler instance
func NewSprinterHandler(raceBook usecase.RaceBookUseCase, logger coreport.Logger) *SprinterHandler {
	return &SprinterHandler{
		raceBook: raceBook,
		logger:   logger,
	}
}

// CreateSprinter handles the POST /sprinters endpoint
func (h *SprinterHandler) CreateSprinter(c *gin.Context) {
	var req dto.CreateSprinterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.logger, err)
		return
	}

	sprinter, err := h.raceBook.AddSprinter(c.Request.Context(), req.FirstName, req.LastName, req.RunningTime)
	if err != nil {
		respondError(c, h.logger, "Error adding sprinter", err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSprinterResponse(sprinter))
}

// ListSprinters handles the GET /sprinters endpoint.
// Optional atMost or atLeast query parameters filter by running time.
func (h *SprinterHandler) ListSprinters(c *gin.Context) {
	atMost, hasAtMost := c.GetQuery("atMost")
	atLeast, hasAtLeast := c.GetQuery("atLeast")
	ctx := c.Request.Context()

	var (
		sprinters []*entity.Sprinter
		err       error
	)
	switch {
	case hasAtMost && hasAtLeast:
		err = fmt.Errorf("%w: use either atMost or atLeast, not both", domainerr.ErrInvalidRequest)
	case hasAtMost:
		sprinters, err = h.raceBook.SprintersAtMost(ctx, atMost)
	case hasAtLeast:
		sprinters, err = h.raceBook.SprintersAtLeast(ctx, atLeast)
	default:
		sprinters, err = h.raceBook.ListSprinters(ctx)
	}
	if err != nil {
		respondError(c, h.logger, "Error listing sprinters", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSprinterListResponse(sprinters))
}

// BestSprinter handles the GET /sprinters/best endpoint
func (h *SprinterHandler) BestSprinter(c *gin.Context) {
	sprinter, err := h.raceBook.BestSprinter(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "Error finding best sprinter", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSprinterResponse(sprinter))
}

// ModifyTime handles the POST /sprinters/{firstName}/{lastName}/time endpoint
func (h *SprinterHandler) ModifyTime(c *gin.Context) {
	firstName := c.Param("firstName")
	lastName := c.Param("lastName")

	var req dto.ModifyTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.logger, err)
		return
	}

	var (
		sprinter *entity.Sprinter
		err      error
	)
	if req.Operation == "add" {
		sprinter, err = h.raceBook.AddTime(c.Request.Context(), firstName, lastName, req.Duration)
	} else {
		sprinter, err = h.raceBook.SubtractTime(c.Request.Context(), firstName, lastName, req.Duration)
	}
	if err != nil {
		respondError(c, h.logger, "Error modifying running time", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSprinterResponse(sprinter))
}
