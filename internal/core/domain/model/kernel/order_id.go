package kernel

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"quickbite/internal/pkg/errs"
)

// ErrOrderIDIsNotConstructed indicates that an OrderID was not initialized
// through one of the constructor functions. This error is returned when
// validating a zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID or OrderIDFromString",
)

// orderIDPrefix is the fixed prefix of every order identifier.
const orderIDPrefix = "ORD-"

// orderIDDigits is the minimum zero-padded width of the numeric part.
// Sequences beyond 999999 widen the token instead of truncating it.
const orderIDDigits = 6

var orderIDPattern = regexp.MustCompile(`^ORD-\d{6,}$`)

// OrderID is a value object that identifies an order. Identifiers are
// assigned from a monotonically increasing process-wide sequence and
// rendered as a fixed-width token such as "ORD-000042". They are unique for
// the lifetime of the process and never reused.
//
// The zero value of OrderID is invalid and must be constructed using
// NewOrderID (from a sequence number) or OrderIDFromString (when parsing
// external input such as a URL parameter).
//
// OrderID is immutable and safe for concurrent use.
type OrderID struct {
	value string
}

// NewOrderID builds an OrderID from a sequence number. The sequence is
// expected to start at 1; zero is rejected because the sequence counter's
// zero value would otherwise produce a valid-looking identifier.
//
// Example:
//
//	id, _ := kernel.NewOrderID(1)
//	fmt.Println(id.String()) // "ORD-000001"
func NewOrderID(sequence uint64) (OrderID, error) {
	if sequence == 0 {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("sequence",
			fmt.Errorf("order sequence numbers start at 1"))
	}
	return OrderID{value: orderIDPrefix + fmt.Sprintf("%0*d", orderIDDigits, sequence)}, nil
}

// OrderIDFromString parses an OrderID from its string representation.
// The input must match the "ORD-" prefix followed by at least six digits.
// This function is typically used when resolving identifiers supplied by
// clients.
//
// Example:
//
//	id, err := kernel.OrderIDFromString("ORD-000042")
//	if err != nil {
//	    return fmt.Errorf("invalid order ID: %w", err)
//	}
func OrderIDFromString(s string) (OrderID, error) {
	if !orderIDPattern.MatchString(s) {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderID",
			fmt.Errorf("%q does not match ORD-NNNNNN", s))
	}
	return OrderID{value: s}, nil
}

// Validate checks that the OrderID was created through a constructor.
// Returns ErrOrderIDIsNotConstructed for the zero value.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}

// IsEqual compares two order identifiers by value.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Sequence returns the numeric part of the identifier. Returns 0 for the
// zero value.
func (id OrderID) Sequence() uint64 {
	digits := strings.TrimPrefix(id.value, orderIDPrefix)
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// String returns the wire representation, e.g. "ORD-000042".
// It implements the fmt.Stringer interface.
func (id OrderID) String() string {
	return id.value
}
