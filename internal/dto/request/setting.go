package request

// UpdateSettingRequest carries the new value for a settings key. An empty
// value is allowed; it clears the setting (e.g. disabling a webhook).
type UpdateSettingRequest struct {
	Value string `json:"value" validate:"max=2000"`
}
