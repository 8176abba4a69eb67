package entity

type Field struct {
	Base
	Name         string  `db:"name"`
	Description  *string `db:"description"`
	PricePerSlot int64   `db:"price_per_slot"` // rupiah per slot, integer arithmetic only
	ImageURL     *string `db:"image_url"`
	IsActive     bool    `db:"is_active"`
}
