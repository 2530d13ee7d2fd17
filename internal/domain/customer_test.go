package domain

import "testing"

func TestCustomerPrimaryContacts(t *testing.T) {
	c := Customer{
		Phones: []Phone{
			{ID: "p1", Number: "555-0100"},
			{ID: "p2", Number: "555-0101", IsPrimary: true},
		},
		Emails: []Email{{ID: "e1", Address: "a@example.com"}},
	}

	phone, ok := c.PrimaryPhone()
	if !ok || phone.ID != "p2" {
		t.Fatalf("expected primary phone p2, got %+v ok=%v", phone, ok)
	}
	if _, ok := c.PrimaryEmail(); ok {
		t.Fatalf("expected no primary email")
	}
}

func TestCustomerFullName(t *testing.T) {
	cases := []struct {
		first, last, want string
	}{
		{"John", "Smith", "John Smith"},
		{"John", "", "John"},
		{"", "Smith", "Smith"},
	}
	for _, tc := range cases {
		got := Customer{FirstName: tc.first, LastName: tc.last}.FullName()
		if got != tc.want {
			t.Fatalf("FullName(%q, %q) = %q, want %q", tc.first, tc.last, got, tc.want)
		}
	}
}

func TestMaritalStatusValid(t *testing.T) {
	for _, s := range MaritalStatuses {
		if !s.Valid() {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	if MaritalStatus("Engaged").Valid() {
		t.Fatalf("expected unknown status to be invalid")
	}
}
