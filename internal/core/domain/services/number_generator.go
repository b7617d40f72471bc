package services

import (
	"sitta/internal/core/domain/model/delivery"
)

// NumberGenerator derives delivery order numbers from the orders already present.
//
// Business rules:
//   - Only numbers of the requested year are considered
//   - The greatest sequence wins, compared numerically
//   - The first order of a year gets sequence 1
//
// Next has no side effect; a number is only taken when an order carrying it is
// stored. Callers that need uniqueness must call Next and store the order under
// the same unit of work.
type NumberGenerator struct{}

func NewNumberGenerator() NumberGenerator {
	return NumberGenerator{}
}

// Next returns the number following the greatest existing number of year.
// Unconstructed numbers in existing are skipped.
func (NumberGenerator) Next(existing []delivery.Number, year int) (delivery.Number, error) {
	maxSequence := 0
	for _, n := range existing {
		if n.Validate() != nil || n.Year() != year {
			continue
		}
		if n.Sequence() > maxSequence {
			maxSequence = n.Sequence()
		}
	}
	return delivery.NewNumber(year, maxSequence+1)
}
