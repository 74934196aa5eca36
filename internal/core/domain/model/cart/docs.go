// Package cart provides the Cart aggregate: the per-client, pre-checkout list of
// products picked from a single business.
//
// Key business rules:
//   - a cart holds products of one business only; adding a product of another
//     business fails with ErrBusinessMismatch and the client has to clear the cart
//     first
//   - the business of a cart is fixed by its first line and forgotten once the cart
//     is empty again
//   - each line keeps the unit price seen when it was added; checkout re-prices
//     every line from the catalog
package cart
