// Package dice is the random draw source: it parses simple dice notation
// (NdM, NdM+K, NdM-K) and rolls it through a Roller.
package dice

import (
	"fmt"
	"strconv"
	"strings"

	cairnerr "github.com/lecrapal/Cairn-FoundryVTT/internal/errors"
)

// RollResult is the outcome of rolling Count dice of Sides faces plus Bonus
type RollResult struct {
	Total    int
	RawTotal int
	Rolls    []int
	Bonus    int
	Count    int
	Sides    int
}

// Expression returns the dice notation that produced the result
func (r *RollResult) Expression() string {
	switch {
	case r.Bonus > 0:
		return fmt.Sprintf("%dd%d+%d", r.Count, r.Sides, r.Bonus)
	case r.Bonus < 0:
		return fmt.Sprintf("%dd%d%d", r.Count, r.Sides, r.Bonus)
	default:
		return fmt.Sprintf("%dd%d", r.Count, r.Sides)
	}
}

func (r *RollResult) String() string {
	compact := strings.ReplaceAll(fmt.Sprintf("%v", r.Rolls), " ", ",")
	return fmt.Sprintf("%s %s = %d", r.Expression(), compact, r.Total)
}

// Max returns the highest total the expression can produce
func Max(count, sides, bonus int) int {
	return count*sides + bonus
}

// ParseExpression splits dice notation into count, sides and bonus.
// A missing count ("d20") means one die.
func ParseExpression(expr string) (count, sides, bonus int, err error) {
	expr = strings.ToLower(strings.ReplaceAll(expr, " ", ""))

	dIdx := strings.Index(expr, "d")
	if dIdx == -1 {
		return 0, 0, 0, cairnerr.InvalidArgumentf("invalid dice expression %q", expr)
	}

	count = 1
	if countStr := expr[:dIdx]; countStr != "" {
		count, err = strconv.Atoi(countStr)
		if err != nil {
			return 0, 0, 0, cairnerr.InvalidArgumentf("invalid dice count in %q", expr)
		}
	}

	rest := expr[dIdx+1:]
	sidesStr := rest
	if opIdx := strings.IndexAny(rest, "+-"); opIdx != -1 {
		sidesStr = rest[:opIdx]
		bonus, err = strconv.Atoi(rest[opIdx:])
		if err != nil {
			return 0, 0, 0, cairnerr.InvalidArgumentf("invalid dice bonus in %q", expr)
		}
	}

	sides, err = strconv.Atoi(sidesStr)
	if err != nil {
		return 0, 0, 0, cairnerr.InvalidArgumentf("invalid dice size in %q", expr)
	}

	if count < 1 {
		return 0, 0, 0, cairnerr.InvalidArgumentf("dice count must be at least 1 in %q", expr)
	}
	if sides < 1 {
		return 0, 0, 0, cairnerr.InvalidArgumentf("dice size must be at least 1 in %q", expr)
	}

	return count, sides, bonus, nil
}

// RollString parses expr and rolls it with r
func RollString(r Roller, expr string) (*RollResult, error) {
	count, sides, bonus, err := ParseExpression(expr)
	if err != nil {
		return nil, err
	}
	return r.Roll(count, sides, bonus)
}
