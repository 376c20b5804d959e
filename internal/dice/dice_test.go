package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/scribble/internal/domain"
)

// seqSource returns the queued values in order, wrapping around
type seqSource struct {
	values []int
	next   int
}

func (s *seqSource) Intn(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

func TestRoll_Bounds(t *testing.T) {
	r := NewRoller(nil)
	for i := 0; i < 500; i++ {
		res, err := r.Roll(3, 6)
		require.NoError(t, err)
		assert.Len(t, res.Dice, 3)
		assert.GreaterOrEqual(t, res.Total, 3)
		assert.LessOrEqual(t, res.Total, 18)
		assert.False(t, res.Critical, "only d20 rolls can be critical")
		for _, d := range res.Dice {
			assert.True(t, d >= 1 && d <= 6, "die %d out of range", d)
		}
	}
}

func TestRoll_SingleD20Critical(t *testing.T) {
	for face := 1; face <= 20; face++ {
		r := NewRoller(&seqSource{values: []int{face - 1}})

		res, err := r.Roll(1, 20)

		require.NoError(t, err)
		assert.Equal(t, face, res.Total)
		assert.Equal(t, face == 20, res.Critical, "face %d", face)
	}
}

func TestRoll_Critical(t *testing.T) {
	tests := []struct {
		name     string
		values   []int
		count    int
		sides    int
		wantDice []int
		wantCrit bool
	}{
		{name: "20 on first of two d20", values: []int{19, 4}, count: 2, sides: 20, wantDice: []int{20, 5}, wantCrit: true},
		{name: "20 on last of two d20", values: []int{4, 19}, count: 2, sides: 20, wantDice: []int{5, 20}, wantCrit: true},
		{name: "no 20", values: []int{0, 18}, count: 2, sides: 20, wantDice: []int{1, 19}},
		{name: "max face on d100 is not critical", values: []int{99}, count: 1, sides: 100, wantDice: []int{100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := NewRoller(&seqSource{values: tt.values}).Roll(tt.count, tt.sides)

			require.NoError(t, err)
			assert.Equal(t, tt.wantDice, res.Dice)
			assert.Equal(t, tt.wantCrit, res.Critical)
		})
	}
}

func TestRoll_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		count int
		sides int
		msg   string
	}{
		{"zero dice", 0, 6, ErrMsgCountRange},
		{"negative dice", -2, 6, ErrMsgCountRange},
		{"too many dice", MaxDice + 1, 6, ErrMsgCountRange},
		{"zero sides", 1, 0, ErrMsgSidesRange},
		{"too many sides", 1, MaxSides + 1, ErrMsgSidesRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &seqSource{values: []int{0}}

			res, err := NewRoller(src).Roll(tt.count, tt.sides)

			require.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.msg)
			assert.Nil(t, res)
			assert.Zero(t, src.next, "no dice drawn")
		})
	}
}

func TestParseExpression(t *testing.T) {
	tests := []struct {
		expr      string
		wantCount int
		wantSides int
		wantErr   bool
	}{
		{expr: "3d6", wantCount: 3, wantSides: 6},
		{expr: " 2D20 ", wantCount: 2, wantSides: 20},
		{expr: "d20", wantCount: 1, wantSides: 20},
		{expr: "20", wantErr: true},
		{expr: "xd6", wantErr: true},
		{expr: "3d", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			count, sides, err := ParseExpression(tt.expr)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, count)
			assert.Equal(t, tt.wantSides, sides)
		})
	}
}

func TestParseInts(t *testing.T) {
	c, s, err := ParseInts(" 4", "8 ")
	require.NoError(t, err)
	assert.Equal(t, 4, c)
	assert.Equal(t, 8, s)

	_, _, err = ParseInts("four", "8")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, _, err = ParseInts("4", "1.5")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestResultString(t *testing.T) {
	res := Result{Count: 2, Sides: 20, Dice: []int{20, 3}, Total: 23, Critical: true}
	assert.Equal(t, "2d20 → [20 3] = 23 CRITICAL", res.String())
}
