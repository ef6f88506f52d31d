// Package queries contains read-only operations over the order store and
// the menu catalog. Queries never mutate state and always return snapshots.
package queries
