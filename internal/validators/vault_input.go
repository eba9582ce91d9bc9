package validators

import (
	"context"

	"github.com/MKhiriev/go-key-vault/internal/cipher"
	"github.com/MKhiriev/go-key-vault/models"
)

// Field name constants restrict validation to a subset of fields.
const (
	// FieldAccount targets the account label of a save request.
	FieldAccount = "account"

	// FieldPassword targets the plaintext password of a save request.
	FieldPassword = "password"

	// FieldKey targets the user key of a save or list request.
	FieldKey = "key"
)

// VaultInputValidator implements Validator for vault requests. Passwords and
// keys are checked against the codec as well: a value whose characters are
// all dropped by the codec encodes to nothing and is rejected.
type VaultInputValidator struct {
	codec *cipher.Codec
}

func NewVaultInputValidator(codec *cipher.Codec) *VaultInputValidator {
	return &VaultInputValidator{codec: codec}
}

func (v *VaultInputValidator) Validate(ctx context.Context, data any, fields ...string) error {
	switch value := data.(type) {
	case models.SaveRequest:
		return v.validateSaveRequest(ctx, value, fields...)
	case *models.SaveRequest:
		return v.validateSaveRequest(ctx, *value, fields...)

	case models.ListRequest:
		return v.validateListRequest(ctx, value, fields...)
	case *models.ListRequest:
		return v.validateListRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *VaultInputValidator) validateSaveRequest(ctx context.Context, request models.SaveRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAccount, FieldPassword, FieldKey}
	}

	for _, f := range fields {
		switch f {
		case FieldAccount:
			if request.Account == "" {
				return ErrEmptyAccount
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
			if !v.encodes(request.Password) {
				return ErrNothingToEncrypt
			}
		case FieldKey:
			if err := v.validateKey(request.Key); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultInputValidator) validateListRequest(ctx context.Context, request models.ListRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKey}
	}

	for _, f := range fields {
		switch f {
		case FieldKey:
			if err := v.validateKey(request.Key); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultInputValidator) validateKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if !v.encodes(key) {
		return ErrNothingToEncrypt
	}
	return nil
}

func (v *VaultInputValidator) encodes(text string) bool {
	if v.codec == nil {
		return true
	}
	return len(v.codec.OrdinalsOf(text)) > 0
}
