package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keys(positions []WheelPosition) []string {
	out := make([]string, 0, len(positions))
	for _, p := range positions {
		out = append(out, p.String())
	}
	return out
}

func TestPositions_Count(t *testing.T) {
	assert.Len(t, Positions(TruckType1), 11)
	assert.Len(t, Positions(TruckType2), 15)
	assert.Empty(t, Positions(TruckType("type3")))
}

func TestPositions_OrderType1(t *testing.T) {
	expected := []string{
		"left_1", "right_1",
		"left_2_inner", "left_2_outer", "right_2_inner", "right_2_outer",
		"left_3_inner", "left_3_outer", "right_3_inner", "right_3_outer",
		"spare",
	}
	assert.Equal(t, expected, keys(Positions(TruckType1)))
}

func TestPositions_SteeringAxleIsAlwaysSingle(t *testing.T) {
	for _, truck := range []TruckType{TruckType1, TruckType2} {
		for _, p := range Positions(truck) {
			if p.Spare {
				continue
			}
			if p.Axle == 1 {
				assert.Equal(t, SubNone, p.Sub, p.String())
			} else {
				assert.NotEqual(t, SubNone, p.Sub, p.String())
			}
			assert.True(t, p.ValidFor(truck), p.String())
		}
	}
}

func TestParsePosition_RoundTrip(t *testing.T) {
	for _, p := range Positions(TruckType2) {
		parsed, err := ParsePosition(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}
}

func TestParsePosition_EmptyAndAll(t *testing.T) {
	for _, in := range []string{"", "all", "  "} {
		p, err := ParsePosition(in)
		require.NoError(t, err)
		assert.True(t, p.IsZero())
	}
}

func TestParsePosition_Invalid(t *testing.T) {
	cases := []string{
		"middle_1",
		"left_x",
		"left_0",
		"left_1_inner",
		"left_2",
		"left_2_middle",
		"left_2_inner_extra",
		"spare_1",
	}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			_, err := ParsePosition(in)
			assert.ErrorIs(t, err, ErrInvalidPosition)
		})
	}
}

func TestWheelPosition_ValidFor(t *testing.T) {
	p, err := ParsePosition("right_4_outer")
	require.NoError(t, err)

	assert.False(t, p.ValidFor(TruckType1))
	assert.True(t, p.ValidFor(TruckType2))
	assert.True(t, Spare.ValidFor(TruckType1))
}

func TestWheelPosition_Label(t *testing.T) {
	cases := map[string]string{
		"spare":         "Запасное колесо",
		"left_1":        "Левое рулевое",
		"right_1":       "Правое рулевое",
		"left_2_inner":  "Левое 2-я ось внутреннее",
		"right_3_outer": "Правое 3-я ось внешнее",
	}
	for key, label := range cases {
		p, err := ParsePosition(key)
		require.NoError(t, err)
		assert.Equal(t, label, p.Label())
	}
	assert.Equal(t, "", WheelPosition{}.Label())
}

func TestParseTruckType(t *testing.T) {
	tt, err := ParseTruckType("type2")
	require.NoError(t, err)
	assert.Equal(t, 4, tt.Axles())

	_, err = ParseTruckType("semi")
	assert.ErrorIs(t, err, ErrUnknownTruckType)
}
