package request

type FieldRequest struct {
	Name         string  `json:"name" validate:"required,min=1,max=100"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=500"`
	PricePerSlot int64   `json:"price_per_slot" validate:"required,min=1"`
	ImageURL     *string `json:"image_url,omitempty" validate:"omitempty,url"`
}

type FieldUpdateRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=500"`
	PricePerSlot *int64  `json:"price_per_slot,omitempty" validate:"omitempty,min=1"`
	ImageURL     *string `json:"image_url,omitempty" validate:"omitempty,url"`
	IsActive     *bool   `json:"is_active,omitempty"`
}
