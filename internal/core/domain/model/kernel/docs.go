// Package kernel holds the value objects shared by every aggregate of the
// marketplace: identifiers, money, coordinates and the acting party of a request.
//
// All kernel values are immutable. Zero values are invalid and fail Validate, so
// aggregates can detect fields that were never set through a constructor.
package kernel
