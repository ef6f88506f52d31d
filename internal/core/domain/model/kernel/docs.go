// Package kernel contains shared value objects used across the domain model.
//
// The package currently provides OrderID, the process-unique order
// identifier. Value objects in this package are immutable, validate
// themselves on construction, and expose a Validate method that rejects
// zero values created outside their constructors.
package kernel
