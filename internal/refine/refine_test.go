package refine

import (
	"testing"

	"customer-lookup/internal/domain"
	"customer-lookup/internal/fields"
	"customer-lookup/internal/query"
)

func sample() []domain.Customer {
	return []domain.Customer{
		{ID: "1", FirstName: "John", LastName: "Smith", DateOfBirth: "1985-03-15", MaritalStatus: domain.MaritalMarried},
		{ID: "2", FirstName: "Joan", LastName: "Jett", DateOfBirth: "1958-09-22", MaritalStatus: domain.MaritalSingle},
		{ID: "3", FirstName: "Amy", LastName: "Johnson", DateOfBirth: "1985-03-15", MaritalStatus: domain.MaritalSingle},
	}
}

func ids(cs []domain.Customer) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ID)
	}
	return out
}

func assertIDs(t *testing.T, got []domain.Customer, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("expected %v, got %v", want, gotIDs)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, gotIDs)
		}
	}
}

func TestRefine_FirstNameSubstring(t *testing.T) {
	got := Refine(query.NewCriteria(fields.FirstName, "jo", fields.LastName, ""), sample())
	assertIDs(t, got, "1", "2")
}

func TestRefine_LastNameCaseInsensitiveTrimmed(t *testing.T) {
	got := Refine(query.NewCriteria(fields.LastName, "  JOHN "), sample())
	assertIDs(t, got, "3")
}

func TestRefine_DateOfBirthExact(t *testing.T) {
	got := Refine(query.NewCriteria(fields.DateOfBirth, "1985-03-15"), sample())
	assertIDs(t, got, "1", "3")

	got = Refine(query.NewCriteria(fields.DateOfBirth, "1985-3-15"), sample())
	assertIDs(t, got)

	got = Refine(query.NewCriteria(fields.DateOfBirth, "1985-03-15 "), sample())
	assertIDs(t, got)
}

func TestRefine_AllCriteriaCombined(t *testing.T) {
	c := query.NewCriteria(fields.FirstName, "j", fields.LastName, "smi", fields.DateOfBirth, "1985-03-15")
	assertIDs(t, Refine(c, sample()), "1")
}

func TestRefine_BlankCriteriaIsNoop(t *testing.T) {
	in := sample()
	got := Refine(query.NewCriteria(fields.FirstName, "  "), in)
	assertIDs(t, got, "1", "2", "3")
}

func TestRefine_MaritalStatusNotApplied(t *testing.T) {
	got := Refine(query.NewCriteria(fields.MaritalStatus, "Widowed"), sample())
	assertIDs(t, got, "1", "2", "3")
}

func TestRefine_DoesNotMutateInput(t *testing.T) {
	in := sample()
	_ = Refine(query.NewCriteria(fields.FirstName, "amy"), in)
	assertIDs(t, in, "1", "2", "3")
}
