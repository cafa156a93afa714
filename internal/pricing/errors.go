package pricing

import "errors"

var (
	ErrUnknownTruckType = errors.New("неизвестный тип грузовика")
	ErrInvalidPosition  = errors.New("неверная позиция колеса")
	ErrPositionMismatch = errors.New("позиция не существует для выбранного типа грузовика")
)
