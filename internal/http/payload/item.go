package payload

import (
	"github.com/jellydator/validation"
)

// ItemRequest carries the item fields for create and update. Done travels as
// a string: only "true"/"True" mark an item done, and create ignores it
// entirely.
type ItemRequest struct {
	Name string `json:"name"`
	Done string `json:"done"`
}

func (i ItemRequest) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required, validation.Length(1, 256)),
	)
}
