// Package allocation implements the engine that distributes an income
// deposit across a user's savings targets.
package allocation

import (
	"github.com/shopspring/decimal"

	"github.com/savings-tracker/backend/internal/domain/entity"
)

// Distribute applies a positive deposit across targets in two rounds and
// returns the amount that could not be absorbed.
//
// Round 1 splits the deposit evenly: each under-funded target gains
// min(floor(amount/len(targets)), remaining capacity). Round 2 sweeps the
// targets once more in order, letting each under-funded target absorb as
// much of the leftover as it can. A single sweep is enough to saturate
// every target when the deposit covers the total remaining capacity; any
// surplus beyond that is returned to the caller rather than re-looped.
//
// Targets are mutated in place (only Collected changes) and order is
// preserved. With an empty target slice the full amount is returned.
// Collected never exceeds Price.
func Distribute(targets []*entity.Target, amount decimal.Decimal) decimal.Decimal {
	if len(targets) == 0 {
		return amount
	}

	share := amount.Div(decimal.NewFromInt(int64(len(targets)))).Floor()
	remaining := amount

	for _, t := range targets {
		if t.IsFunded() {
			continue
		}
		added := decimal.Min(share, t.Remaining())
		t.Collected = t.Collected.Add(added)
		remaining = remaining.Sub(added)
	}

	if remaining.IsPositive() {
		for _, t := range targets {
			if !remaining.IsPositive() {
				break
			}
			if t.IsFunded() {
				continue
			}
			added := decimal.Min(remaining, t.Remaining())
			t.Collected = t.Collected.Add(added)
			remaining = remaining.Sub(added)
		}
	}

	return remaining
}
