package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"bookreview/internal/models"
)

var (
	ErrInvalidID   = errors.New("invalid id")
	ErrInvalidRole = errors.New("invalid role")
)

// BcryptMaxBytes is the longest password bcrypt will hash.
const BcryptMaxBytes = 72

var setupOnce sync.Once

// Setup registers the json tag names and the custom "role" rule on gin's
// binding validator. Safe to call more than once.
func Setup() {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		Register(v)
	})
}

// Register applies the custom rules to v.
func Register(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return ValidateRole(fl.Field().String()) == nil
	})
	// min/max count runes; bcrypt counts bytes.
	_ = v.RegisterValidation("bcryptlen", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= BcryptMaxBytes
	})
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// ValidateRole accepts the two known roles only.
func ValidateRole(role string) error {
	if !models.Role(role).Valid() {
		return ErrInvalidRole
	}
	return nil
}

// ParseID checks that a path parameter is a canonical UUID.
func ParseID(raw string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", ErrInvalidID
	}
	return id.String(), nil
}

// FieldErrors turns validator errors into field -> messages. It returns nil
// for anything else, such as a malformed body.
func FieldErrors(err error) map[string][]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = append(out[fe.Field()], message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "uuid", "uuid4":
		return "must be a valid id"
	case "role":
		return "must be one of: user, admin"
	case "bcryptlen":
		return fmt.Sprintf("must be at most %d bytes", BcryptMaxBytes)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return "is invalid"
	}
}

// Check runs gin's binding rules against obj outside of a request.
func Check(obj any) map[string][]string {
	Setup()
	if err := binding.Validator.ValidateStruct(obj); err != nil {
		if fields := FieldErrors(err); fields != nil {
			return fields
		}
		return map[string][]string{"_": {err.Error()}}
	}
	return nil
}
