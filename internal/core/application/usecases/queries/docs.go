// Package queries contains read-only use cases. Handlers read straight from the
// database with SQL shaped for the view they serve and never load aggregates.
package queries
