package order

import (
	"fmt"
	"regexp"
	"strings"

	"quickbite/internal/pkg/errs"
	"quickbite/internal/pkg/guard"
)

// ErrDeliveryDetailsAreNotConstructed is returned when a DeliveryDetails
// instance was not created through NewDeliveryDetails.
var ErrDeliveryDetailsAreNotConstructed = errs.NewValueIsRequiredError(
	"DeliveryDetails must be created via NewDeliveryDetails",
)

const (
	minRecipientNameLength = 2
	minAddressLength       = 5
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// DeliveryDetails is a value object holding the recipient information of an
// order. It is validated on construction and immutable afterwards: once
// attached to an order it never changes.
//
// Validation rules:
//   - every field is required (checked after trimming whitespace)
//   - recipient name must be at least 2 characters
//   - address must be at least 5 characters
//   - phone must be exactly 10 digits
type DeliveryDetails struct {
	name    string
	address string
	phone   string

	guard guard.ConstructorGuard
}

// NewDeliveryDetails creates validated delivery details. Inputs are trimmed
// before validation. A missing field yields a ValueIsRequiredError; a field
// that is present but malformed yields a ValueIsInvalidError. The two are
// reported differently to callers, so they are deliberately distinct here.
func NewDeliveryDetails(name, address, phone string) (DeliveryDetails, error) {
	name = strings.TrimSpace(name)
	address = strings.TrimSpace(address)
	phone = strings.TrimSpace(phone)

	if name == "" {
		return DeliveryDetails{}, errs.NewValueIsRequiredError("name")
	}
	if address == "" {
		return DeliveryDetails{}, errs.NewValueIsRequiredError("address")
	}
	if phone == "" {
		return DeliveryDetails{}, errs.NewValueIsRequiredError("phone")
	}

	if len(name) < minRecipientNameLength {
		return DeliveryDetails{}, errs.NewValueIsInvalidErrorWithCause("name",
			fmt.Errorf("must be at least %d characters", minRecipientNameLength))
	}
	if len(address) < minAddressLength {
		return DeliveryDetails{}, errs.NewValueIsInvalidErrorWithCause("address",
			fmt.Errorf("must be at least %d characters", minAddressLength))
	}
	if !phonePattern.MatchString(phone) {
		return DeliveryDetails{}, errs.NewValueIsInvalidErrorWithCause("phone",
			fmt.Errorf("must be exactly 10 digits"))
	}

	return DeliveryDetails{
		name:    name,
		address: address,
		phone:   phone,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the details were created through NewDeliveryDetails.
func (d DeliveryDetails) Validate() error {
	return d.guard.Validate(ErrDeliveryDetailsAreNotConstructed)
}

// Name returns the recipient name.
func (d DeliveryDetails) Name() string {
	return d.name
}

// Address returns the delivery address.
func (d DeliveryDetails) Address() string {
	return d.address
}

// Phone returns the recipient phone number (10 digits, no separators).
func (d DeliveryDetails) Phone() string {
	return d.phone
}
