package dice_test

import (
	"testing"

	"github.com/lecrapal/Cairn-FoundryVTT/internal/dice"
	mockdice "github.com/lecrapal/Cairn-FoundryVTT/internal/dice/mock"
	cairnerr "github.com/lecrapal/Cairn-FoundryVTT/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockRoller_Roll(t *testing.T) {
	tests := []struct {
		name       string
		setupRolls []int
		count      int
		sides      int
		bonus      int
		wantTotal  int
		wantRolls  []int
		wantErr    bool
	}{
		{
			name:       "ability score 3d6",
			setupRolls: []int{4, 5, 6},
			count:      3,
			sides:      6,
			wantTotal:  15,
			wantRolls:  []int{4, 5, 6},
		},
		{
			name:       "age 2d10+10",
			setupRolls: []int{3, 7},
			count:      2,
			sides:      10,
			bonus:      10,
			wantTotal:  20,
			wantRolls:  []int{3, 7},
		},
		{
			name:       "not enough rolls",
			setupRolls: []int{2},
			count:      2,
			sides:      6,
			wantErr:    true,
		},
		{
			name:       "invalid roll for die size",
			setupRolls: []int{7},
			count:      1,
			sides:      6,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := mockdice.NewManualMockRoller()
			roller.SetRolls(tt.setupRolls)

			result, err := roller.Roll(tt.count, tt.sides, tt.bonus)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, result.Total)
			assert.Equal(t, tt.wantRolls, result.Rolls)
		})
	}
}

func TestParseExpression(t *testing.T) {
	tests := []struct {
		expr      string
		count     int
		sides     int
		bonus     int
		wantError bool
	}{
		{expr: "3d6", count: 3, sides: 6},
		{expr: "2d10+10", count: 2, sides: 10, bonus: 10},
		{expr: "1d6-1", count: 1, sides: 6, bonus: -1},
		{expr: "d20", count: 1, sides: 20},
		{expr: " 1D12 ", count: 1, sides: 12},
		{expr: "0d6", wantError: true},
		{expr: "3d0", wantError: true},
		{expr: "3x6", wantError: true},
		{expr: "3d6+x", wantError: true},
		{expr: "", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			count, sides, bonus, err := dice.ParseExpression(tt.expr)
			if tt.wantError {
				require.Error(t, err)
				assert.True(t, cairnerr.IsInvalidArgument(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.count, count)
			assert.Equal(t, tt.sides, sides)
			assert.Equal(t, tt.bonus, bonus)
		})
	}
}

func TestRollString(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{9, 1})

	result, err := dice.RollString(roller, "2d10+10")
	require.NoError(t, err)
	assert.Equal(t, 20, result.Total)
	assert.Equal(t, 10, result.RawTotal)
	assert.Equal(t, "2d10+10", result.Expression())
	assert.Equal(t, "2d10+10 [9,1] = 20", result.String())
}

func TestSeededRoller_Deterministic(t *testing.T) {
	a := dice.NewSeededRoller(42)
	b := dice.NewSeededRoller(42)

	for i := 0; i < 20; i++ {
		ra, err := a.Roll(3, 6, 0)
		require.NoError(t, err)
		rb, err := b.Roll(3, 6, 0)
		require.NoError(t, err)
		assert.Equal(t, ra.Rolls, rb.Rolls)
		assert.GreaterOrEqual(t, ra.Total, 3)
		assert.LessOrEqual(t, ra.Total, 18)
	}
}

func TestRandomRoller_RejectsInvalidDice(t *testing.T) {
	roller := dice.NewRandomRoller()

	_, err := roller.Roll(0, 6, 0)
	assert.Error(t, err)

	_, err = roller.Roll(1, 0, 0)
	assert.Error(t, err)
}
