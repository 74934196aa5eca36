// Package catalog holds what a business sells: the Business itself with its
// ordering terms and the Products it offers.
//
// Checkout reads both at the moment of purchase. Prices copied into an order are
// never re-read afterwards.
package catalog
