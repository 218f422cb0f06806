package auth

import (
	"fmt"
	"trashtalk/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type senderIdentity struct {
	Sender string `validate:"required,max=128,printascii"`
}

// ValidateSender checks that an identity can be recorded as a board owner.
func ValidateSender(sender string) error {
	if err := validate.Struct(senderIdentity{Sender: sender}); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrMissingSender, err)
	}
	return nil
}
