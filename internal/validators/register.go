package validators

import (
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// DateTimeLayout is the only timestamp format accepted in request bodies.
const DateTimeLayout = time.RFC3339

var registerOnce sync.Once

// Register installs the custom tags on gin's validator and makes error
// field names follow the JSON tags. Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("dayname", func(fl validator.FieldLevel) bool {
			return IsDayName(fl.Field().String())
		})
		_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
			return IsClock(fl.Field().String())
		})
		_ = v.RegisterValidation("timezone", func(fl validator.FieldLevel) bool {
			return timezone.IsValid(fl.Field().String())
		})
	})
}
