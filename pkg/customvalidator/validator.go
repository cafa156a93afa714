// Файл: pkg/customvalidator/validator.go

package customvalidator

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"tire-service/internal/entities"
	"tire-service/internal/pricing"
)

// Буквы, разрешенные в российских госномерах (кириллица и совпадающая латиница).
const plateLetters = "АВЕКМНОРСТУХABEKMHOPCTYX"

var (
	truckPlateRe   = regexp.MustCompile(`^[` + plateLetters + `]\d{3}[` + plateLetters + `]{2}\d{2,3}$`)
	trailerPlateRe = regexp.MustCompile(`^[` + plateLetters + `]{2}\d{4}\d{2,3}$`)
)

// RegisterCustomValidations регистрирует правила предметной области в валидаторе.
func RegisterCustomValidations(v *validator.Validate) error {
	// decimal.Decimal проверяется как число: gt=0, lte=... работают как для float64.
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	if err := v.RegisterValidation("truck_type", isTruckType); err != nil {
		return err
	}
	if err := v.RegisterValidation("wheel_position", isWheelPosition); err != nil {
		return err
	}
	if err := v.RegisterValidation("payment_method", isPaymentMethod); err != nil {
		return err
	}
	if err := v.RegisterValidation("vehicle_number", isVehicleNumber); err != nil {
		return err
	}
	return nil
}

// New - валидатор со всеми правилами. Паникует только при ошибке в самих правилах.
func New() *validator.Validate {
	v := validator.New()
	if err := RegisterCustomValidations(v); err != nil {
		panic(err)
	}
	return v
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func isTruckType(fl validator.FieldLevel) bool {
	return pricing.TruckType(fl.Field().String()).Valid()
}

func isWheelPosition(fl validator.FieldLevel) bool {
	_, err := pricing.ParsePosition(fl.Field().String())
	return err == nil
}

func isPaymentMethod(fl validator.FieldLevel) bool {
	return entities.PaymentMethod(fl.Field().String()).Valid()
}

func isVehicleNumber(fl validator.FieldLevel) bool {
	return ValidVehicleNumber(fl.Field().String())
}

// NormalizeVehicleNumber убирает пробелы и дефисы и приводит к верхнему регистру.
func NormalizeVehicleNumber(s string) string {
	s = strings.ToUpper(s)
	return strings.NewReplacer(" ", "", "-", "").Replace(s)
}

// ValidVehicleNumber - номер грузовика (А123ВС77) или прицепа (АВ123477).
func ValidVehicleNumber(s string) bool {
	n := NormalizeVehicleNumber(s)
	return truckPlateRe.MatchString(n) || trailerPlateRe.MatchString(n)
}
