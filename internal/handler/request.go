package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"foodpool-be/internal/middleware"
	"foodpool-be/internal/session"
	"foodpool-be/internal/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const maxBodyBytes = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decode reads a JSON body into dst and runs its validate tags.
func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed JSON body", ErrBadRequest)
	}
	if err := validate.Struct(dst); err != nil {
		return validationError(err)
	}
	return nil
}

func validationError(err error) error {
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) || len(fields) == 0 {
		return fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	fe := fields[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%w: %s is required", ErrBadRequest, fe.Field())
	case "min", "max", "gte", "lte":
		return fmt.Errorf("%w: %s must be %s %s", ErrBadRequest, fe.Field(), fe.Tag(), fe.Param())
	default:
		return fmt.Errorf("%w: %s is invalid", ErrBadRequest, fe.Field())
	}
}

func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, ok := utils.ParseUUID(chi.URLParam(r, name))
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: %s must be a UUID", ErrBadRequest, name)
	}
	return id, nil
}

// queryFloat parses an optional query parameter.
func queryFloat(r *http.Request, name string) (*float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a number", ErrBadRequest, name)
	}
	return &f, nil
}

// caller is the signed-in user. Routes using it sit behind RequireAuth or
// RequireRole, so the session is always present.
func caller(r *http.Request) *session.Session {
	s, _ := middleware.SessionFrom(r.Context())
	return s
}

func ordersPath(role session.Role) string {
	if role == session.RoleCook {
		return "/api/cook/orders"
	}
	return "/api/customer/orders"
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
