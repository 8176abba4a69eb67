package response

import (
	"time"

	"field-booking/internal/data/entity"
)

type FieldResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description,omitempty"`
	PricePerSlot int64     `json:"price_per_slot"`
	ImageURL     *string   `json:"image_url,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

func FieldToResponse(field *entity.Field) FieldResponse {
	return FieldResponse{
		ID:           field.ID.String(),
		Name:         field.Name,
		Description:  field.Description,
		PricePerSlot: field.PricePerSlot,
		ImageURL:     field.ImageURL,
		IsActive:     field.IsActive,
		CreatedAt:    field.CreatedAt,
	}
}
