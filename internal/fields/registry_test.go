package fields

import (
	"testing"

	"customer-lookup/internal/domain"
)

func TestSearchFields_SortedByRenderOrderStable(t *testing.T) {
	reg := NewRegistry([]SearchField{
		{Key: "c", RenderOrder: 2},
		{Key: "a", RenderOrder: 1},
		{Key: "d", RenderOrder: 2},
		{Key: "b", RenderOrder: 1},
	}, nil)

	got := reg.SearchFields()
	want := []string{"a", "b", "c", "d"}
	for i, f := range got {
		if f.Key != want[i] {
			t.Fatalf("position %d: expected %s, got %s (%+v)", i, want[i], f.Key, got)
		}
	}
}

func TestDisplayFields_SortedByRenderOrder(t *testing.T) {
	reg := NewRegistry(nil, []DisplayField{
		{Key: "status", RenderOrder: 5, Kind: DisplayMaritalStatus},
		{Key: "name", RenderOrder: 1, Kind: DisplayName},
	})
	got := reg.DisplayFields()
	if got[0].Key != "name" || got[1].Key != "status" {
		t.Fatalf("unexpected order %+v", got)
	}
}

func TestSearchField_Lookup(t *testing.T) {
	reg := Default()
	f, ok := reg.SearchField(DateOfBirth)
	if !ok || f.QueryParam != "dateOfBirth" {
		t.Fatalf("expected dateOfBirth field, got %+v ok=%v", f, ok)
	}
	if _, ok := f.Widget.(DateInput); !ok {
		t.Fatalf("expected date widget, got %T", f.Widget)
	}
	if _, ok := reg.SearchField("nickname"); ok {
		t.Fatalf("expected unknown key to be absent")
	}
}

func TestDefault_MaritalStatusSelectOptions(t *testing.T) {
	f, ok := Default().SearchField(MaritalStatus)
	if !ok {
		t.Fatalf("expected marital status field")
	}
	sel, ok := f.Widget.(SelectInput)
	if !ok {
		t.Fatalf("expected select widget, got %T", f.Widget)
	}
	if len(sel.Options) != 4 || sel.Options[0] != "Single" || sel.Options[3] != "Widowed" {
		t.Fatalf("unexpected options %v", sel.Options)
	}
}

func TestWithSearchFields(t *testing.T) {
	reg := Default().WithSearchFields(FirstName, LastName, "bogus")
	if _, ok := reg.SearchField(MaritalStatus); ok {
		t.Fatalf("expected marital status to be excluded")
	}
	if len(reg.SearchFields()) != 2 {
		t.Fatalf("expected 2 search fields, got %d", len(reg.SearchFields()))
	}
	if len(reg.DisplayFields()) != len(Default().DisplayFields()) {
		t.Fatalf("display fields should be unchanged")
	}
	if Default().WithSearchFields() == nil {
		t.Fatalf("expected registry for empty key list")
	}
}

func TestRender(t *testing.T) {
	c := domain.Customer{
		FirstName:     "John",
		LastName:      "Smith",
		DateOfBirth:   "1985-03-15",
		MaritalStatus: domain.MaritalMarried,
		Addresses:     []domain.Address{{City: "Austin", State: "TX"}},
		Phones:        []domain.Phone{{Number: "555-0100"}, {Number: "555-0199", IsPrimary: true}},
	}

	cases := map[DisplayKind]string{
		DisplayName:          "John Smith",
		DisplayDateOfBirth:   "Mar 15, 1985",
		DisplayPrimaryPhone:  "555-0199",
		DisplayPrimaryEmail:  Placeholder,
		DisplayMaritalStatus: "Married",
		DisplayLocation:      "Austin, TX",
		DisplayKind(99):      Placeholder,
	}
	for kind, want := range cases {
		if got := Render(kind, c); got != want {
			t.Fatalf("Render(%s) = %q, want %q", kind, got, want)
		}
	}
}

func TestFormatDate_Unparsable(t *testing.T) {
	if got := FormatDate("15/03/1985"); got != "15/03/1985" {
		t.Fatalf("expected raw value, got %q", got)
	}
}
