package leverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		exposure     Money
		capital      Money
		wantLeverage string
		wantTier     RiskTier
	}{
		{"no exposure", TWD(0), TWD(100), "0", Stable},
		{"below one", TWD(120000), TWD(170000), "0.7059", Stable},
		{"exactly one", TWD(100), TWD(100), "1", Stable},
		{"just above one", TWD(101), TWD(100), "1.01", Moderate},
		{"exactly two", TWD(200), TWD(100), "2", Moderate},
		{"above two", TWD(201), TWD(100), "2.01", HighRisk},
		{"zero capital", TWD(100), TWD(0), "0", Danger},
		{"negative capital", TWD(100), TWD(-50), "0", Danger},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leverage, tier := Classify(tt.exposure, tt.capital)
			assert.Equal(t, tt.wantTier, tier)
			assert.True(t, leverage.Round(4).Equal(dec(tt.wantLeverage)), "leverage = %v, want %v", leverage, tt.wantLeverage)
		})
	}
}

func TestRiskTier_String(t *testing.T) {
	assert.Equal(t, "Stable", Stable.String())
	assert.Equal(t, "Moderate", Moderate.String())
	assert.Equal(t, "High risk", HighRisk.String())
	assert.Equal(t, "Danger (capital ≤ 0)", Danger.String())
}
