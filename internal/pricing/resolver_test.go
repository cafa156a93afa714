package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namedService(id int64, name string, price int64) Service {
	kind, wheel := ClassifyServiceName(name)
	return Service{
		ID:        id,
		Name:      name,
		Kind:      kind,
		AppliesTo: wheel,
		Price:     decimal.NewFromInt(price),
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, WheelDual, Classify("left_2_inner"))
	assert.Equal(t, WheelDual, Classify("right_3_outer"))
	for _, key := range []string{"left_1", "right_1", "spare", "", "all"} {
		assert.Equal(t, WheelSingle, Classify(key), key)
	}
}

func TestClassify_AgreesWithPositionWheelType(t *testing.T) {
	for _, p := range Positions(TruckType2) {
		assert.Equal(t, Classify(p.String()), p.WheelType(), p.String())
	}
}

func TestClassifyServiceName(t *testing.T) {
	cases := []struct {
		name  string
		kind  ServiceKind
		wheel WheelType
	}{
		{"Снятие колеса (спарка)", KindDismount, WheelDual},
		{"Установка колеса (одиночка)", KindMount, WheelSingle},
		{"Снятие колеса (одиночка)", KindDismount, WheelSingle},
		{"Установка колеса", KindMount, WheelAny},
		{"Балансировка колеса", KindGeneric, WheelAny},
	}
	for _, tc := range cases {
		kind, wheel := ClassifyServiceName(tc.name)
		assert.Equal(t, tc.kind, kind, tc.name)
		assert.Equal(t, tc.wheel, wheel, tc.name)
	}
}

func TestResolve_DismountDual(t *testing.T) {
	s := namedService(1, "Снятие колеса (спарка)", 500)

	price, res := Resolve(s, WheelSingle)
	assert.True(t, price.IsZero())
	assert.Equal(t, ResolutionMismatch, res)

	price, res = Resolve(s, WheelDual)
	assert.True(t, price.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, ResolutionPriced, res)
}

func TestResolve_GenericIgnoresWheelType(t *testing.T) {
	s := namedService(2, "Балансировка колеса", 300)
	for _, wheel := range []WheelType{WheelSingle, WheelDual} {
		price, res := Resolve(s, wheel)
		assert.True(t, price.Equal(decimal.NewFromInt(300)))
		assert.Equal(t, ResolutionPriced, res)
	}
}

func TestResolve_MountWithoutWheelKeywordNeverPriced(t *testing.T) {
	s := namedService(3, "Установка колеса", 400)
	for _, wheel := range []WheelType{WheelSingle, WheelDual} {
		price, res := Resolve(s, wheel)
		assert.True(t, price.IsZero())
		assert.Equal(t, ResolutionMismatch, res)
	}
}

func TestResolve_ZeroPriceIsFlagged(t *testing.T) {
	s := namedService(4, "Подкачка", 0)
	price, res := Resolve(s, WheelSingle)
	assert.True(t, price.IsZero())
	assert.Equal(t, ResolutionNoPrice, res)
}

func TestCatalogue_Variant(t *testing.T) {
	c := NewCatalogue(7, []Service{
		namedService(1, "Снятие колеса (спарка)", 500),
		namedService(2, "Снятие колеса (одиночка)", 350),
		namedService(3, "Балансировка колеса", 300),
		namedService(3, "Дубликат", 1),
	})

	assert.Equal(t, 3, c.Len())
	s, ok := c.Variant(KindDismount, WheelSingle)
	require.True(t, ok)
	assert.Equal(t, int64(2), s.ID)

	_, ok = c.Variant(KindMount, WheelDual)
	assert.False(t, ok)

	got, ok := c.Get(3)
	require.True(t, ok)
	assert.Equal(t, "Балансировка колеса", got.Name)
}

func TestCatalogue_SwapVariants(t *testing.T) {
	c := NewCatalogue(7, []Service{
		namedService(1, "Снятие колеса (спарка)", 500),
		namedService(2, "Снятие колеса (одиночка)", 350),
		namedService(3, "Балансировка колеса", 300),
		namedService(4, "Установка колеса (спарка)", 450),
	})

	ids, changed := c.SwapVariants([]int64{1, 3, 4}, WheelSingle)
	assert.True(t, changed)
	assert.Equal(t, []int64{2, 3, 4}, ids, "монтажа одиночки в прайсе нет, услуга 4 остается")

	ids, changed = c.SwapVariants([]int64{2, 3}, WheelDual)
	assert.True(t, changed)
	assert.Equal(t, []int64{1, 3}, ids)

	ids, changed = c.SwapVariants([]int64{1, 2}, WheelDual)
	assert.True(t, changed)
	assert.Equal(t, []int64{1}, ids)

	ids, changed = c.SwapVariants([]int64{3, 99}, WheelSingle)
	assert.False(t, changed)
	assert.Equal(t, []int64{3, 99}, ids)
}

func TestBuildQuote_EmptySelection(t *testing.T) {
	c := NewCatalogue(1, []Service{namedService(1, "Балансировка колеса", 300)})
	q := BuildQuote(c, nil, WheelPosition{})
	assert.True(t, q.Total.IsZero())
	assert.Empty(t, q.Lines)
	assert.True(t, q.Complete())
}

func TestBuildQuote_MissingServiceSkipped(t *testing.T) {
	c := NewCatalogue(1, []Service{namedService(1, "Балансировка колеса", 300)})
	q := BuildQuote(c, []int64{1, 99}, WheelPosition{})

	assert.True(t, q.Total.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, []int64{99}, q.Missing)
	assert.False(t, q.Complete())
}

func TestBuildQuote_DuplicateSelectionCountedOnce(t *testing.T) {
	c := NewCatalogue(1, []Service{namedService(1, "Балансировка колеса", 300)})
	q := BuildQuote(c, []int64{1, 1}, WheelPosition{})
	assert.True(t, q.Total.Equal(decimal.NewFromInt(300)))
	assert.Len(t, q.Lines, 1)
}

func TestBuildQuote_Scenario(t *testing.T) {
	c := NewCatalogue(1, []Service{
		namedService(10, "Снятие колеса (спарка)", 500),
		namedService(20, "Балансировка колеса", 300),
	})

	positions := Positions(TruckType1)
	var pos WheelPosition
	for _, p := range positions {
		if p.String() == "left_2_inner" {
			pos = p
		}
	}
	require.False(t, pos.IsZero())
	require.Equal(t, WheelDual, pos.WheelType())

	q := BuildQuote(c, []int64{10, 20}, pos)
	assert.True(t, q.Total.Equal(decimal.NewFromInt(800)), q.Total.String())
	assert.True(t, q.Complete())

	q = BuildQuote(c, []int64{20}, pos)
	assert.True(t, q.Total.Equal(decimal.NewFromInt(300)), q.Total.String())
}

func TestBuildQuote_PositionChangeReprices(t *testing.T) {
	c := NewCatalogue(1, []Service{
		namedService(10, "Снятие колеса (спарка)", 500),
		namedService(20, "Балансировка колеса", 300),
	})
	steering, err := ParsePosition("left_1")
	require.NoError(t, err)

	q := BuildQuote(c, []int64{10, 20}, steering)
	assert.True(t, q.Total.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, []int64{10}, q.Unpriced)
	assert.False(t, q.Complete())
}
