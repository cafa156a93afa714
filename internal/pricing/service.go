package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// WheelType - тип монтажа колеса.
type WheelType string

const (
	WheelAny    WheelType = "any"
	WheelSingle WheelType = "single"
	WheelDual   WheelType = "dual"
)

// WheelType для позиции: спарка для inner/outer, иначе одиночка
// (рулевые, запаска и невыбранная позиция).
func (p WheelPosition) WheelType() WheelType {
	if p.Sub == SubInner || p.Sub == SubOuter {
		return WheelDual
	}
	return WheelSingle
}

// Classify определяет тип монтажа по строковому ключу позиции.
func Classify(key string) WheelType {
	if strings.HasSuffix(key, "_"+string(SubInner)) || strings.HasSuffix(key, "_"+string(SubOuter)) {
		return WheelDual
	}
	return WheelSingle
}

// ServiceKind - вид услуги. Только монтаж и демонтаж зависят от типа колеса.
type ServiceKind string

const (
	KindGeneric  ServiceKind = "generic"
	KindMount    ServiceKind = "mount"
	KindDismount ServiceKind = "dismount"
)

func (k ServiceKind) wheelDependent() bool {
	return k == KindMount || k == KindDismount
}

// Service - услуга из прайса договора.
type Service struct {
	ID         int64
	Name       string
	Kind       ServiceKind
	AppliesTo  WheelType
	Price      decimal.Decimal
	ContractID int64
}

// Ключевые слова из названий услуг в прайсах бэкенда.
const (
	keywordDismount = "Снятие"
	keywordMount    = "Установка"
	keywordDual     = "спарка"
	keywordSingle   = "одиночка"
)

// ClassifyServiceName восстанавливает вид услуги и тип колеса по названию.
// Используется только на границе с бэкендом, который не передает вид услуги явно.
func ClassifyServiceName(name string) (ServiceKind, WheelType) {
	kind := KindGeneric
	switch {
	case strings.Contains(name, keywordDismount):
		kind = KindDismount
	case strings.Contains(name, keywordMount):
		kind = KindMount
	}
	if kind == KindGeneric {
		return kind, WheelAny
	}

	switch {
	case strings.Contains(name, keywordDual):
		return kind, WheelDual
	case strings.Contains(name, keywordSingle):
		return kind, WheelSingle
	}
	// Монтаж без указания типа колеса не подходит ни к одной позиции.
	return kind, WheelAny
}
