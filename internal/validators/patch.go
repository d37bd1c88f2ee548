package validators

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

// PatchNormalizer lets an update shape rewrite decoded values into their
// column types (for example timestamps sent as strings).
type PatchNormalizer interface {
	Normalize(changes booking.Changes) error
}

// BindPatch decodes a partial-update body into req and returns only the
// fields the caller actually sent.
//
// Fields of req must be pointers or slices tagged with their JSON name.
// An explicit null is accepted only when the field carries
// `patch:"nullable"`; it is returned as a nil value.
func BindPatch(c *gin.Context, req any) (booking.Changes, error) {
	body, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	return DecodePatch(body, req)
}

func DecodePatch(body []byte, req any) (booking.Changes, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return booking.Changes{}, nil
	}

	var present map[string]json.RawMessage
	if err := json.Unmarshal(body, &present); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(body, req); err != nil {
		return nil, err
	}
	if err := binding.Validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	changes, err := collect(req, present)
	if err != nil {
		return nil, err
	}

	if n, ok := req.(PatchNormalizer); ok {
		if err := n.Normalize(changes); err != nil {
			return nil, err
		}
	}
	return changes, nil
}

func collect(req any, present map[string]json.RawMessage) (booking.Changes, error) {
	v := reflect.Indirect(reflect.ValueOf(req))
	t := v.Type()

	changes := booking.Changes{}
	var invalid []httperr.FieldError

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)

		name := strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}

		raw, ok := present[name]
		if !ok {
			continue
		}

		if string(bytes.TrimSpace(raw)) == "null" {
			if sf.Tag.Get("patch") != "nullable" {
				invalid = append(invalid, httperr.FieldError{Field: name, Reason: "may not be null"})
				continue
			}
			changes[name] = nil
			continue
		}

		fv := v.Field(i)
		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				continue
			}
			fv = fv.Elem()
		}
		changes[name] = fv.Interface()
	}

	if len(invalid) > 0 {
		return nil, &httperr.ValidationError{Fields: invalid}
	}
	return changes, nil
}
