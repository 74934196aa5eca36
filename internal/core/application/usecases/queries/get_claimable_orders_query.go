package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const (
	MinClaimableLimit = 1
	MaxClaimableLimit = 100
)

var ErrGetClaimableOrdersQueryIsNotConstructed = errors.New(
	"GetClaimableOrdersQuery must be created via NewGetClaimableOrdersQuery constructor",
)

// GetClaimableOrdersQuery lists orders drivers may claim: ready and without a
// driver, oldest first.
//
// Example:
//
//	query, err := NewGetClaimableOrdersQuery(20)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type GetClaimableOrdersQuery struct {
	limit int
	guard guard.ConstructorGuard
}

// NewGetClaimableOrdersQuery creates a query for ready, unassigned orders.
// Returns errs.ValueIsOutOfRangeError if limit is outside
// [MinClaimableLimit, MaxClaimableLimit].
func NewGetClaimableOrdersQuery(limit int) (GetClaimableOrdersQuery, error) {
	if limit < MinClaimableLimit || limit > MaxClaimableLimit {
		return GetClaimableOrdersQuery{}, errs.NewValueIsOutOfRangeError(
			"limit", limit, MinClaimableLimit, MaxClaimableLimit)
	}

	return GetClaimableOrdersQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the query was built by NewGetClaimableOrdersQuery.
func (q GetClaimableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetClaimableOrdersQueryIsNotConstructed)
}

// Limit returns the page size.
func (q GetClaimableOrdersQuery) Limit() int {
	return q.limit
}

// ClaimableOrder carries what a driver needs to pick an order. Version is the
// expected version to claim with.
type ClaimableOrder struct {
	ID          kernel.UUID
	BusinessID  kernel.UUID
	Street      string
	Coordinates kernel.Coordinates
	Total       kernel.Money
	ItemCount   int
	CreatedAt   time.Time
	Version     int64
}
