package pricing

import (
	"fmt"
	"strconv"
	"strings"
)

// TruckType - конфигурация грузовика, определяет количество осей.
type TruckType string

const (
	// TruckType1 - 3 оси: рулевая + 2 ведущие со спаркой.
	TruckType1 TruckType = "type1"
	// TruckType2 - 4 оси: рулевая + 3 со спаркой.
	TruckType2 TruckType = "type2"
)

// Axles возвращает общее количество осей, включая рулевую.
func (t TruckType) Axles() int {
	switch t {
	case TruckType1:
		return 3
	case TruckType2:
		return 4
	default:
		return 0
	}
}

func (t TruckType) Valid() bool {
	return t.Axles() > 0
}

func ParseTruckType(s string) (TruckType, error) {
	t := TruckType(strings.TrimSpace(s))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTruckType, s)
	}
	return t, nil
}

type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// SubPosition - место колеса в спарке. Пустое значение - одиночное колесо.
type SubPosition string

const (
	SubNone  SubPosition = ""
	SubInner SubPosition = "inner"
	SubOuter SubPosition = "outer"
)

const spareKey = "spare"

// WheelPosition - точка установки колеса. Нулевое значение означает "не выбрано".
type WheelPosition struct {
	Side  Side
	Axle  int
	Sub   SubPosition
	Spare bool
}

// Spare - запасное колесо.
var Spare = WheelPosition{Spare: true}

func (p WheelPosition) IsZero() bool {
	return p == WheelPosition{}
}

// String кодирует позицию в ключ вида left_2_inner.
func (p WheelPosition) String() string {
	if p.Spare {
		return spareKey
	}
	if p.IsZero() {
		return ""
	}
	key := fmt.Sprintf("%s_%d", p.Side, p.Axle)
	if p.Sub != SubNone {
		key += "_" + string(p.Sub)
	}
	return key
}

// Label - человекочитаемое название позиции для бланка заказа.
func (p WheelPosition) Label() string {
	if p.Spare {
		return "Запасное колесо"
	}
	if p.IsZero() {
		return ""
	}

	side := "Левое"
	if p.Side == SideRight {
		side = "Правое"
	}
	if p.Axle == 1 {
		return side + " рулевое"
	}

	label := fmt.Sprintf("%s %d-я ось", side, p.Axle)
	switch p.Sub {
	case SubInner:
		label += " внутреннее"
	case SubOuter:
		label += " внешнее"
	}
	return label
}

// ValidFor проверяет, существует ли позиция на грузовике данного типа.
func (p WheelPosition) ValidFor(t TruckType) bool {
	if p.Spare {
		return t.Valid()
	}
	if p.Axle < 1 || p.Axle > t.Axles() {
		return false
	}
	if p.Side != SideLeft && p.Side != SideRight {
		return false
	}
	if p.Axle == 1 {
		return p.Sub == SubNone
	}
	return p.Sub == SubInner || p.Sub == SubOuter
}

// ParsePosition разбирает ключ позиции. Пустая строка и "all" дают нулевую позицию.
func ParsePosition(s string) (WheelPosition, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "", "all":
		return WheelPosition{}, nil
	case spareKey:
		return Spare, nil
	}

	parts := strings.Split(s, "_")
	if len(parts) < 2 || len(parts) > 3 {
		return WheelPosition{}, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}

	side := Side(parts[0])
	if side != SideLeft && side != SideRight {
		return WheelPosition{}, fmt.Errorf("%w: неизвестная сторона %q", ErrInvalidPosition, parts[0])
	}

	axle, err := strconv.Atoi(parts[1])
	if err != nil || axle < 1 {
		return WheelPosition{}, fmt.Errorf("%w: неверный номер оси %q", ErrInvalidPosition, parts[1])
	}

	pos := WheelPosition{Side: side, Axle: axle}
	if len(parts) == 3 {
		sub := SubPosition(parts[2])
		if sub != SubInner && sub != SubOuter {
			return WheelPosition{}, fmt.Errorf("%w: неизвестное место в спарке %q", ErrInvalidPosition, parts[2])
		}
		pos.Sub = sub
	}

	// Рулевые колеса всегда одиночные, остальные оси - только спарка.
	if axle == 1 && pos.Sub != SubNone {
		return WheelPosition{}, fmt.Errorf("%w: рулевая ось не имеет спарки", ErrInvalidPosition)
	}
	if axle > 1 && pos.Sub == SubNone {
		return WheelPosition{}, fmt.Errorf("%w: для оси %d нужно указать inner/outer", ErrInvalidPosition, axle)
	}
	return pos, nil
}

// Positions перечисляет все допустимые позиции для типа грузовика в порядке бланка:
// рулевые, затем по четыре на каждую ось со спаркой, затем запаска.
func Positions(t TruckType) []WheelPosition {
	axles := t.Axles()
	if axles == 0 {
		return nil
	}

	out := make([]WheelPosition, 0, 2+4*(axles-1)+1)
	out = append(out,
		WheelPosition{Side: SideLeft, Axle: 1},
		WheelPosition{Side: SideRight, Axle: 1},
	)
	for axle := 2; axle <= axles; axle++ {
		out = append(out,
			WheelPosition{Side: SideLeft, Axle: axle, Sub: SubInner},
			WheelPosition{Side: SideLeft, Axle: axle, Sub: SubOuter},
			WheelPosition{Side: SideRight, Axle: axle, Sub: SubInner},
			WheelPosition{Side: SideRight, Axle: axle, Sub: SubOuter},
		)
	}
	return append(out, Spare)
}
