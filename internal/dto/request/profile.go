package request

type ProfileRequest struct {
	FullName string `json:"full_name" validate:"required,min=1,max=100"`
	Phone    string `json:"phone" validate:"required,e164"`
}
