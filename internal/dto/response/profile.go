package response

import (
	"time"

	"field-booking/internal/data/entity"
)

type ProfileResponse struct {
	UserID    string    `json:"user_id"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ProfileToResponse(profile *entity.Profile) ProfileResponse {
	return ProfileResponse{
		UserID:    profile.UserID.String(),
		FullName:  profile.FullName,
		Phone:     profile.Phone,
		UpdatedAt: profile.UpdatedAt,
	}
}
