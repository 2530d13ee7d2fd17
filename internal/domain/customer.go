package domain

// MaritalStatus is the customer's recorded marital status.
type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "Single"
	MaritalMarried  MaritalStatus = "Married"
	MaritalDivorced MaritalStatus = "Divorced"
	MaritalWidowed  MaritalStatus = "Widowed"
)

// MaritalStatuses lists every known status in display order.
var MaritalStatuses = []MaritalStatus{MaritalSingle, MaritalMarried, MaritalDivorced, MaritalWidowed}

func (s MaritalStatus) Valid() bool {
	switch s {
	case MaritalSingle, MaritalMarried, MaritalDivorced, MaritalWidowed:
		return true
	}
	return false
}

type AddressType string

const (
	AddressHome     AddressType = "Home"
	AddressBusiness AddressType = "Business"
	AddressMailing  AddressType = "Mailing"
)

func (t AddressType) Valid() bool {
	switch t {
	case AddressHome, AddressBusiness, AddressMailing:
		return true
	}
	return false
}

type PhoneType string

const (
	PhoneMobile PhoneType = "Mobile"
	PhoneHome   PhoneType = "Home"
	PhoneWork   PhoneType = "Work"
)

func (t PhoneType) Valid() bool {
	switch t {
	case PhoneMobile, PhoneHome, PhoneWork:
		return true
	}
	return false
}

type EmailType string

const (
	EmailPersonal EmailType = "Personal"
	EmailWork     EmailType = "Work"
)

func (t EmailType) Valid() bool {
	switch t {
	case EmailPersonal, EmailWork:
		return true
	}
	return false
}

// Address is a postal address attached to a customer.
type Address struct {
	ID      string      `json:"id"`
	Type    AddressType `json:"type"`
	Street  string      `json:"street"`
	City    string      `json:"city"`
	State   string      `json:"state"`
	ZipCode string      `json:"zipCode"`
}

// Phone is a customer phone number. Numbers are not validated.
type Phone struct {
	ID        string    `json:"id"`
	Type      PhoneType `json:"type"`
	Number    string    `json:"number"`
	IsPrimary bool      `json:"isPrimary"`
}

// Email is a customer email address. Addresses are not validated.
type Email struct {
	ID        string    `json:"id"`
	Type      EmailType `json:"type"`
	Address   string    `json:"address"`
	IsPrimary bool      `json:"isPrimary"`
}

// Customer is one directory record. The directory owns it; lookups treat it as a value.
type Customer struct {
	ID            string        `json:"id"`
	FirstName     string        `json:"firstName"`
	LastName      string        `json:"lastName"`
	DateOfBirth   string        `json:"dateOfBirth"`
	MaritalStatus MaritalStatus `json:"maritalStatus"`
	SecureID      string        `json:"secureId"`
	Addresses     []Address     `json:"addresses"`
	Phones        []Phone       `json:"phones"`
	Emails        []Email       `json:"emails"`
}

// PrimaryPhone returns the first phone flagged as primary.
func (c Customer) PrimaryPhone() (Phone, bool) {
	for _, p := range c.Phones {
		if p.IsPrimary {
			return p, true
		}
	}
	return Phone{}, false
}

// PrimaryEmail returns the first email flagged as primary.
func (c Customer) PrimaryEmail() (Email, bool) {
	for _, e := range c.Emails {
		if e.IsPrimary {
			return e, true
		}
	}
	return Email{}, false
}

// FullName joins first and last name with a single space.
func (c Customer) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
