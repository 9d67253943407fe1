package payload

import (
	"bucketlist/internal/core"

	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 0)),
		validation.Field(&r.Email, validation.Required, is.Email),
	)
}

func (r RegisterRequest) ToMessage() core.RegisterMessage {
	return core.RegisterMessage{
		Username: r.Username,
		Password: r.Password,
		Email:    r.Email,
	}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (l LoginRequest) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Username, validation.Required),
		validation.Field(&l.Password, validation.Required),
	)
}

func (l LoginRequest) ToMessage() core.AuthMessage {
	return core.AuthMessage{
		Username: l.Username,
		Password: l.Password,
	}
}
