package fields

import (
	"time"

	"customer-lookup/internal/domain"
)

// Placeholder is shown when a display value is missing.
const Placeholder = "—"

// DisplayKind selects the derivation used to render a display field.
type DisplayKind int

const (
	DisplayName DisplayKind = iota + 1
	DisplayDateOfBirth
	DisplayPrimaryPhone
	DisplayPrimaryEmail
	DisplayMaritalStatus
	DisplayLocation
)

var displayKindNames = map[DisplayKind]string{
	DisplayName:          "name",
	DisplayDateOfBirth:   "dateOfBirth",
	DisplayPrimaryPhone:  "primaryPhone",
	DisplayPrimaryEmail:  "primaryEmail",
	DisplayMaritalStatus: "maritalStatus",
	DisplayLocation:      "location",
}

func (k DisplayKind) String() string {
	if name, ok := displayKindNames[k]; ok {
		return name
	}
	return "unknown"
}

var derivations = map[DisplayKind]func(domain.Customer) string{
	DisplayName:          func(c domain.Customer) string { return c.FullName() },
	DisplayDateOfBirth:   func(c domain.Customer) string { return FormatDate(c.DateOfBirth) },
	DisplayPrimaryPhone:  primaryPhone,
	DisplayPrimaryEmail:  primaryEmail,
	DisplayMaritalStatus: func(c domain.Customer) string { return string(c.MaritalStatus) },
	DisplayLocation:      location,
}

// Render derives the display string for kind. Unknown kinds and empty values render as Placeholder.
func Render(kind DisplayKind, c domain.Customer) string {
	fn, ok := derivations[kind]
	if !ok {
		return Placeholder
	}
	if v := fn(c); v != "" {
		return v
	}
	return Placeholder
}

// FormatDate renders an ISO date as "Jan 2, 2006". Unparsable input is returned as-is.
func FormatDate(iso string) string {
	t, err := time.Parse(time.DateOnly, iso)
	if err != nil {
		return iso
	}
	return t.Format("Jan 2, 2006")
}

func primaryPhone(c domain.Customer) string {
	if p, ok := c.PrimaryPhone(); ok {
		return p.Number
	}
	return ""
}

func primaryEmail(c domain.Customer) string {
	if e, ok := c.PrimaryEmail(); ok {
		return e.Address
	}
	return ""
}

func location(c domain.Customer) string {
	if len(c.Addresses) == 0 {
		return ""
	}
	a := c.Addresses[0]
	switch {
	case a.City == "":
		return a.State
	case a.State == "":
		return a.City
	}
	return a.City + ", " + a.State
}
