package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyAccount     = errors.New("account is required")
	ErrEmptyPassword    = errors.New("password is required")
	ErrEmptyKey         = errors.New("key is required")
	ErrNothingToEncrypt = errors.New("no characters of the alphabet to encrypt")
)
