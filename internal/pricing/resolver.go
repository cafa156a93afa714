package pricing

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Resolution - результат определения цены услуги для позиции.
type Resolution string

const (
	ResolutionPriced   Resolution = "priced"
	ResolutionMismatch Resolution = "mismatch"
	ResolutionNoPrice  Resolution = "no_price"
)

// Resolve возвращает цену услуги для данного типа колеса.
// Монтаж/демонтаж стоят ноль, если услуга рассчитана на другой тип колеса.
// Услуга без положительной цены тоже дает ноль и помечается отдельно.
func Resolve(s Service, wheel WheelType) (decimal.Decimal, Resolution) {
	if s.Kind.wheelDependent() && s.AppliesTo != wheel {
		return decimal.Zero, ResolutionMismatch
	}
	if !s.Price.IsPositive() {
		return decimal.Zero, ResolutionNoPrice
	}
	return s.Price, ResolutionPriced
}

type priceKey struct {
	kind  ServiceKind
	wheel WheelType
}

// Catalogue - прайс услуг одного договора.
type Catalogue struct {
	ContractID int64
	services   []Service
	byID       map[int64]Service
	variants   map[priceKey]Service
}

func NewCatalogue(contractID int64, services []Service) *Catalogue {
	c := &Catalogue{
		ContractID: contractID,
		services:   make([]Service, 0, len(services)),
		byID:       make(map[int64]Service, len(services)),
		variants:   make(map[priceKey]Service),
	}
	for _, s := range services {
		if _, dup := c.byID[s.ID]; dup {
			continue
		}
		c.services = append(c.services, s)
		c.byID[s.ID] = s
		if s.Kind.wheelDependent() && s.AppliesTo != WheelAny {
			key := priceKey{kind: s.Kind, wheel: s.AppliesTo}
			if _, ok := c.variants[key]; !ok {
				c.variants[key] = s
			}
		}
	}
	return c
}

func (c *Catalogue) Services() []Service {
	out := make([]Service, len(c.services))
	copy(out, c.services)
	return out
}

func (c *Catalogue) Len() int { return len(c.services) }

func (c *Catalogue) Get(id int64) (Service, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// Variant находит услугу монтажа/демонтажа для нужного типа колеса.
func (c *Catalogue) Variant(kind ServiceKind, wheel WheelType) (Service, bool) {
	s, ok := c.variants[priceKey{kind: kind, wheel: wheel}]
	return s, ok
}

// SwapVariants заменяет выбранный монтаж/демонтаж, рассчитанный на другой тип
// колеса, на такую же услугу для wheel. Услуги без варианта в прайсе остаются.
func (c *Catalogue) SwapVariants(selected []int64, wheel WheelType) ([]int64, bool) {
	out := make([]int64, 0, len(selected))
	changed := false
	for _, id := range selected {
		s, ok := c.Get(id)
		if ok && s.Kind.wheelDependent() && s.AppliesTo != wheel {
			if v, found := c.Variant(s.Kind, wheel); found {
				out = append(out, v.ID)
				changed = true
				continue
			}
		}
		out = append(out, id)
	}
	return uniqueIDs(out), changed
}

// QuoteLine - строка расчета заказа.
type QuoteLine struct {
	ServiceID  int64           `json:"service_id"`
	Name       string          `json:"name"`
	BasePrice  decimal.Decimal `json:"base_price"`
	Price      decimal.Decimal `json:"price"`
	Resolution Resolution      `json:"resolution"`
}

// Quote - расчет суммы заказа.
type Quote struct {
	Position  string          `json:"position"`
	WheelType WheelType       `json:"wheel_type"`
	Lines     []QuoteLine     `json:"lines"`
	Total     decimal.Decimal `json:"total"`
	Missing   []int64         `json:"missing,omitempty"`
	Unpriced  []int64         `json:"unpriced,omitempty"`
}

// Complete - все выбранные услуги найдены в прайсе и имеют цену.
func (q Quote) Complete() bool {
	return len(q.Missing) == 0 && len(q.Unpriced) == 0
}

// BuildQuote суммирует цены выбранных услуг для позиции.
// Услуги, которых нет в прайсе, пропускаются и попадают в Missing.
func BuildQuote(c *Catalogue, selected []int64, pos WheelPosition) Quote {
	wheel := pos.WheelType()
	q := Quote{
		Position:  pos.String(),
		WheelType: wheel,
		Lines:     make([]QuoteLine, 0, len(selected)),
		Total:     decimal.Zero,
	}

	for _, id := range uniqueIDs(selected) {
		s, ok := Service{}, false
		if c != nil {
			s, ok = c.Get(id)
		}
		if !ok {
			q.Missing = append(q.Missing, id)
			continue
		}

		price, res := Resolve(s, wheel)
		if res != ResolutionPriced {
			q.Unpriced = append(q.Unpriced, id)
		}
		q.Lines = append(q.Lines, QuoteLine{
			ServiceID:  s.ID,
			Name:       s.Name,
			BasePrice:  s.Price,
			Price:      price,
			Resolution: res,
		})
		q.Total = q.Total.Add(price)
	}
	return q
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
