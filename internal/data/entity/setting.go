package entity

import "time"

// Well-known setting keys.
const (
	SettingSiteName            = "site_name"
	SettingHeroBanner          = "hero_banner"
	SettingQRISImage           = "qris_image"
	SettingPaymentInstructions = "payment_instructions"
	SettingWhatsAppAdmin       = "whatsapp_admin"
	SettingWebhookBooking      = "webhook_booking"
	SettingWebhookPayment      = "webhook_payment"
)

type Setting struct {
	Key       string    `db:"key"`
	Value     string    `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}
