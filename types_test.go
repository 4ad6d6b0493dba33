package leverage

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input   string
		want    Direction
		wantErr bool
	}{
		{"long", Long, false},
		{"LONG", Long, false},
		{" buy ", Long, false},
		{"short", Short, false},
		{"S", Short, false},
		{"sell", Short, false},
		{"flat", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDirection(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownDirection)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDirection_JSON(t *testing.T) {
	raw, err := json.Marshal(Short)
	require.NoError(t, err)
	assert.Equal(t, `"short"`, string(raw))

	_, err = json.Marshal(Direction(7))
	assert.Error(t, err)

	for input, want := range map[string]Direction{`"long"`: Long, `"Short"`: Short, `0`: Long, `1`: Short} {
		var d Direction
		require.NoError(t, json.Unmarshal([]byte(input), &d), input)
		assert.Equal(t, want, d, input)
	}

	for _, input := range []string{`2`, `-1`, `"up"`, `true`} {
		var d Direction
		assert.ErrorIs(t, json.Unmarshal([]byte(input), &d), ErrUnknownDirection, input)
	}
}

func TestParseValuationMode(t *testing.T) {
	for input, want := range map[string]ValuationMode{"cost-basis": CostBasis, "cost": CostBasis, "manual": ManualOverride} {
		got, err := ParseValuationMode(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseValuationMode("fifo")
	assert.Error(t, err)

	assert.Equal(t, "cost-basis", CostBasis.String())
	assert.Equal(t, "manual", ManualOverride.String())
}

func TestParseTotalsPolicy(t *testing.T) {
	for _, p := range []TotalsPolicy{AutoSum, KeepOverride} {
		got, err := ParseTotalsPolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := ParseTotalsPolicy("sometimes")
	assert.Error(t, err)
}

func TestMoney(t *testing.T) {
	assert.Equal(t, Rate(0), TWD(10).Ratio(TWD(0)))
	assert.Equal(t, Rate(0.5), TWD(5).Ratio(TWD(10)))
	assert.Equal(t, "-", TWD(0).SignedString())
	assert.Equal(t, "USD", TWD(3).In("USD").Currency())
	assert.True(t, M(5, "").Add(TWD(5)).Equal(TWD(10)), "an untyped amount takes the other currency")
	assert.Panics(t, func() { TWD(1).Add(M(1, "USD")) })
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "1.50%", Percent(1.5).String())
	assert.Equal(t, "+1.50%", Percent(1.5).SignedString())
	assert.Equal(t, "-2.00%", Percent(-2).SignedString())
	assert.Equal(t, "-", Percent(0.001).SignedString())
	assert.True(t, Percent(0.87).Equal(0.8699999))
}

func TestPercent_nonFinite(t *testing.T) {
	tests := []struct {
		name string
		rate Rate
		want float64 // sign of the infinite percent, 0 for NaN
	}{
		{name: "overflow", rate: Rate(1e308), want: 1},
		{name: "negative overflow", rate: Rate(-1e308), want: -1},
		{name: "infinite", rate: Rate(math.Inf(1)), want: 1},
		{name: "NaN", rate: Rate(math.NaN())},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Percent
			require.NotPanics(t, func() { got = tt.rate.Percent() })
			if tt.want == 0 {
				assert.True(t, math.IsNaN(float64(got)))
				return
			}
			assert.True(t, math.IsInf(float64(got), int(tt.want)), "got %v", got)
		})
	}

	for _, p := range []Percent{Percent(math.NaN()), Percent(math.Inf(1)), Percent(math.Inf(-1))} {
		assert.Equal(t, Rate(0), PercentRate(p), "PercentRate(%v)", float64(p))
	}
	assert.Equal(t, Rate(1e306), PercentRate(1e308))
}
