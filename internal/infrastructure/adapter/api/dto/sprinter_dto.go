package dto

import (
	"time"

	"github.com/amirhossein-jamali/relay-race-book/internal/domain/entity"
)

// CreateSprinterRequest represents the API request for registering a sprinter
type CreateSprinterRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	RunningTime string `json:"runningTime"`
}

// ModifyTimeRequest represents the API request for changing a sprinter's running time
type ModifyTimeRequest struct {
	Duration  string `json:"duration"`
	Operation string `json:"operation" binding:"required,oneof=add subtract"`
}

// SprinterResponse represents a sprinter in API responses
type SprinterResponse struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	RunningTime string    `json:"runningTime"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SprinterListResponse represents a list of sprinters in registration order
type SprinterListResponse struct {
	Sprinters []SprinterResponse `json:"sprinters"`
	Count     int                `json:"count"`
}

// NewSprinterResponse maps a sprinter entity to its API representation
func NewSprinterResponse(sprinter *entity.Sprinter) SprinterResponse {
	return SprinterResponse{
		ID:          sprinter.ID,
		FirstName:   sprinter.FirstName,
		LastName:    sprinter.LastName,
		RunningTime: sprinter.RunningTime().String(),
		CreatedAt:   sprinter.CreatedAt,
		UpdatedAt:   sprinter.UpdatedAt,
	}
}

// NewSprinterListResponse maps sprinter entities to a list response
func NewSprinterListResponse(sprinters []*entity.Sprinter) SprinterListResponse {
	items := make([]SprinterResponse, len(sprinters))
	for i, sprinter := range sprinters {
		items[i] = NewSprinterResponse(sprinter)
	}
	return SprinterListResponse{Sprinters: items, Count: len(items)}
}
