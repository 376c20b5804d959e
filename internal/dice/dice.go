// Package dice rolls polyhedral dice for the campaign notebook.
package dice

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/osse101/scribble/internal/domain"
	"github.com/osse101/scribble/internal/metrics"
	"github.com/osse101/scribble/internal/utils"
)

// Roll limits
const (
	MaxDice  = 100
	MaxSides = 1000

	// CriticalSides is the die size whose maximum face counts as a critical
	CriticalSides = 20
)

// Error messages
const (
	ErrMsgCountRange    = "number of dice must be between 1 and 100"
	ErrMsgSidesRange    = "number of sides must be between 1 and 1000"
	ErrMsgNotInteger    = "must be a whole number"
	ErrMsgBadExpression = "expected an expression like 3d6"
)

// Source is the randomness provider for dice rolls.
//
// Implementations must be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// defaultSource draws from crypto/rand and falls back to math/rand if the
// system entropy source fails.
type defaultSource struct{}

func (defaultSource) Intn(n int) int {
	if v, err := utils.SecureRandomInt(0, n-1); err == nil {
		return v
	}
	return utils.RandomInt(0, n-1)
}

// RollRequest is a roll of Count dice with Sides faces each
type RollRequest struct {
	Count int `json:"count" validate:"min=1,max=100"`
	Sides int `json:"sides" validate:"min=1,max=1000"`
}

// Result holds every die of a roll and the derived totals
type Result struct {
	Count    int   `json:"count"`
	Sides    int   `json:"sides"`
	Dice     []int `json:"dice"`
	Total    int   `json:"total"`
	Critical bool  `json:"critical"`
}

// Expression returns the roll in NdM notation
func (r Result) Expression() string {
	return fmt.Sprintf("%dd%d", r.Count, r.Sides)
}

// String returns a human-readable audit string such as "3d6 → [4 2 6] = 12"
func (r Result) String() string {
	s := fmt.Sprintf("%s → %v = %d", r.Expression(), r.Dice, r.Total)
	if r.Critical {
		s += " CRITICAL"
	}
	return s
}

// Roller rolls dice from a Source
type Roller struct {
	src Source
}

// NewRoller creates a Roller. A nil src uses the process-wide random source.
func NewRoller(src Source) *Roller {
	if src == nil {
		src = defaultSource{}
	}
	return &Roller{src: src}
}

// Roll draws count uniform values in [1, sides]. A roll is critical when the
// dice are d20s and any die shows 20.
func (r *Roller) Roll(count, sides int) (*Result, error) {
	if count < 1 || count > MaxDice {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgCountRange)
	}
	if sides < 1 || sides > MaxSides {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgSidesRange)
	}

	res := &Result{Count: count, Sides: sides, Dice: make([]int, count)}
	for i := range res.Dice {
		d := r.src.Intn(sides) + 1
		res.Dice[i] = d
		res.Total += d
		if sides == CriticalSides && d == CriticalSides {
			res.Critical = true
		}
	}

	metrics.DiceRolled.WithLabelValues(strconv.Itoa(sides)).Inc()
	if res.Critical {
		metrics.CriticalRolls.Inc()
	}
	return res, nil
}

// ParseInts converts the raw count and sides text typed by a user
func ParseInts(count, sides string) (int, int, error) {
	c, err := strconv.Atoi(strings.TrimSpace(count))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: count %s", domain.ErrInvalidInput, ErrMsgNotInteger)
	}
	s, err := strconv.Atoi(strings.TrimSpace(sides))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: sides %s", domain.ErrInvalidInput, ErrMsgNotInteger)
	}
	return c, s, nil
}

// ParseExpression parses NdM notation. A missing N means one die, so "d20"
// is the same as "1d20".
func ParseExpression(expr string) (int, int, error) {
	expr = strings.ToLower(strings.TrimSpace(expr))
	count, sides, ok := strings.Cut(expr, "d")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgBadExpression)
	}
	if count == "" {
		count = "1"
	}
	return ParseInts(count, sides)
}
