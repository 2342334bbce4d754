package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/anime-api/internal/domain"
)

// MaxRequestBodyBytes caps JSON request bodies.
const MaxRequestBodyBytes = 1 << 20

// Global validator instance for reuse
var validate = newValidator()

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeJSON decodes the request body into v. Malformed or empty bodies
// produce a domain.ValidationError.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	body := http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.NewValidationError("", "request body is required", nil)
		}
		return domain.NewValidationError("", "malformed JSON body", fmt.Errorf("%w: %v", domain.ErrValidation, err))
	}
	return nil
}

// ValidateRequest runs the struct's validate tags, then its own Validate
// method when it has one.
func ValidateRequest(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			// Prefer the type's own message when it has one.
			if self, ok := v.(interface{ Validate() error }); ok {
				if selfErr := self.Validate(); selfErr != nil {
					return selfErr
				}
			}
			fe := verrs[0]
			return domain.NewValidationError(fe.Field(), fmt.Sprintf("%s failed on the '%s' tag", fe.Field(), fe.Tag()), nil)
		}
		return err
	}

	if self, ok := v.(interface{ Validate() error }); ok {
		return self.Validate()
	}
	return nil
}
