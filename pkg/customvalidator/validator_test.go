package customvalidator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tire-service/internal/entities"
)

func TestValidVehicleNumber(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"грузовик кириллицей", "А123ВС77", true},
		{"грузовик латиницей, трехзначный регион", "A123BC777", true},
		{"смешанные буквы", "A123ВС77", true},
		{"строчные буквы", "а123вс77", true},
		{"пробелы", "а 123 вс 77", true},
		{"дефисы", "А123-ВС-77", true},
		{"прицеп", "АВ123477", true},
		{"прицеп латиницей с пробелами", "ab 1234 777", true},
		{"недопустимая буква", "Ж123ВС77", false},
		{"короткий регион", "А123ВС7", false},
		{"лишняя цифра", "А1234ВС77", false},
		{"прицеп без региона", "АВ12347", false},
		{"только цифры", "12345", false},
		{"пустая строка", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidVehicleNumber(tc.input), tc.input)
		})
	}
}

func TestNormalizeVehicleNumber(t *testing.T) {
	assert.Equal(t, "А123ВС77", NormalizeVehicleNumber("а 123-вс 77"))
	assert.Equal(t, "AB1234777", NormalizeVehicleNumber("ab-1234 777"))
}

type orderForm struct {
	Truck   string                 `validate:"truck_type"`
	Wheel   string                 `validate:"wheel_position"`
	Payment entities.PaymentMethod `validate:"payment_method"`
	Plate   string                 `validate:"vehicle_number"`
	Price   decimal.Decimal        `validate:"gt=0"`
}

func validForm() orderForm {
	return orderForm{
		Truck:   "type1",
		Wheel:   "left_2_inner",
		Payment: entities.PaymentCash,
		Plate:   "А123ВС77",
		Price:   decimal.NewFromInt(500),
	}
}

func TestRules_ValidForm(t *testing.T) {
	v := New()
	require.NoError(t, v.Struct(validForm()))

	form := validForm()
	form.Wheel = "spare"
	form.Truck = "type2"
	form.Payment = entities.PaymentTransfer
	form.Price = decimal.RequireFromString("0.5")
	assert.NoError(t, v.Struct(form))
}

func TestRules_RejectInvalidFields(t *testing.T) {
	v := New()
	cases := []struct {
		name  string
		edit  func(*orderForm)
		field string
		tag   string
	}{
		{"тип грузовика", func(f *orderForm) { f.Truck = "type3" }, "Truck", "truck_type"},
		{"позиция", func(f *orderForm) { f.Wheel = "middle_1" }, "Wheel", "wheel_position"},
		{"способ оплаты", func(f *orderForm) { f.Payment = "crypto" }, "Payment", "payment_method"},
		{"номер", func(f *orderForm) { f.Plate = "ABC" }, "Plate", "vehicle_number"},
		{"отрицательная цена", func(f *orderForm) { f.Price = decimal.NewFromInt(-5) }, "Price", "gt"},
		{"нулевая цена", func(f *orderForm) { f.Price = decimal.Zero }, "Price", "gt"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := validForm()
			tc.edit(&form)

			var ve validator.ValidationErrors
			require.ErrorAs(t, v.Struct(form), &ve)
			require.Len(t, ve, 1)
			assert.Equal(t, tc.field, ve[0].Field())
			assert.Equal(t, tc.tag, ve[0].Tag())
		})
	}
}
