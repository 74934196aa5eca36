package order

import "fmt"

// Progress is the position of an order on the forward progress bar shared by the
// client, business and driver tracking views.
type Progress struct {
	// Fraction is in [0, 1].
	Fraction float64
	// Step is the index of the highlighted tracking step, 0 to 3.
	Step int
}

var progressByStatus = map[Status]Progress{
	Pending:   {Fraction: 0.25, Step: 0},
	Confirmed: {Fraction: 0.25, Step: 0},
	Preparing: {Fraction: 0.40, Step: 1},
	Ready:     {Fraction: 0.50, Step: 1},
	Assigned:  {Fraction: 0.65, Step: 2},
	PickingUp: {Fraction: 0.75, Step: 2},
	InTransit: {Fraction: 0.85, Step: 2},
	Delivered: {Fraction: 1.0, Step: 3},
}

// ProgressOf maps a status to its progress. It takes no role: every viewer sees the
// same value. Cancelled orders return ErrNoProgress and must be displayed apart.
func ProgressOf(s Status) (Progress, error) {
	if err := s.Validate(); err != nil {
		return Progress{}, err
	}
	p, ok := progressByStatus[s]
	if !ok {
		return Progress{}, fmt.Errorf("%w: %s", ErrNoProgress, s)
	}
	return p, nil
}
