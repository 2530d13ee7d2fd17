package fields

import (
	"sort"

	"customer-lookup/internal/domain"
)

// Stable keys of the default search fields.
const (
	FirstName     = "firstName"
	LastName      = "lastName"
	DateOfBirth   = "dateOfBirth"
	MaritalStatus = "maritalStatus"
)

// Widget is the UI control used to collect a search criterion.
// It is closed: TextInput, DateInput and SelectInput are the only variants.
type Widget interface {
	Kind() string
	widget()
}

// TextInput is a free-text field.
type TextInput struct {
	Placeholder string
}

// DateInput is a calendar date field producing ISO dates.
type DateInput struct{}

// SelectInput is a single-choice field. An empty value means "any".
type SelectInput struct {
	Options []string
}

func (TextInput) Kind() string   { return "input" }
func (DateInput) Kind() string   { return "date" }
func (SelectInput) Kind() string { return "select" }

func (TextInput) widget()   {}
func (DateInput) widget()   {}
func (SelectInput) widget() {}

// SearchField describes one searchable attribute.
type SearchField struct {
	Key         string
	Label       string
	RenderOrder int
	QueryParam  string
	Widget      Widget
}

// DisplayField describes one attribute shown on a result card.
type DisplayField struct {
	Key         string
	Label       string
	RenderOrder int
	Kind        DisplayKind
}

// Registry is the read-only table of search and display fields.
type Registry struct {
	search  []SearchField
	display []DisplayField
	byKey   map[string]int
}

// NewRegistry keeps fields in registration order; ordering by RenderOrder happens on enumeration.
func NewRegistry(search []SearchField, display []DisplayField) *Registry {
	r := &Registry{
		search:  append([]SearchField(nil), search...),
		display: append([]DisplayField(nil), display...),
		byKey:   make(map[string]int, len(search)),
	}
	for i, f := range r.search {
		if _, dup := r.byKey[f.Key]; !dup {
			r.byKey[f.Key] = i
		}
	}
	return r
}

// SearchFields returns the search fields by ascending RenderOrder.
func (r *Registry) SearchFields() []SearchField {
	out := append([]SearchField(nil), r.search...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].RenderOrder < out[j].RenderOrder })
	return out
}

// DisplayFields returns the display fields by ascending RenderOrder.
func (r *Registry) DisplayFields() []DisplayField {
	out := append([]DisplayField(nil), r.display...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].RenderOrder < out[j].RenderOrder })
	return out
}

// SearchField looks up a search field by key.
func (r *Registry) SearchField(key string) (SearchField, bool) {
	i, ok := r.byKey[key]
	if !ok {
		return SearchField{}, false
	}
	return r.search[i], true
}

// WithSearchFields returns a registry that only knows the named search fields.
// Unknown keys are ignored; with no keys the registry is returned unchanged.
func (r *Registry) WithSearchFields(keys ...string) *Registry {
	if len(keys) == 0 {
		return r
	}
	keep := make(map[string]bool, len(keys))
	for _, k := range keys {
		keep[k] = true
	}
	var search []SearchField
	for _, f := range r.search {
		if keep[f.Key] {
			search = append(search, f)
		}
	}
	return NewRegistry(search, r.display)
}

// Default returns the stock customer lookup registry.
func Default() *Registry {
	statuses := make([]string, 0, len(domain.MaritalStatuses))
	for _, s := range domain.MaritalStatuses {
		statuses = append(statuses, string(s))
	}
	return NewRegistry(
		[]SearchField{
			{Key: FirstName, Label: "First Name", RenderOrder: 1, QueryParam: "firstName", Widget: TextInput{Placeholder: "John"}},
			{Key: LastName, Label: "Last Name", RenderOrder: 2, QueryParam: "lastName", Widget: TextInput{Placeholder: "Smith"}},
			{Key: DateOfBirth, Label: "Date of Birth", RenderOrder: 3, QueryParam: "dateOfBirth", Widget: DateInput{}},
			{Key: MaritalStatus, Label: "Marital Status", RenderOrder: 4, QueryParam: "maritalStatus", Widget: SelectInput{Options: statuses}},
		},
		[]DisplayField{
			{Key: "name", Label: "Name", RenderOrder: 1, Kind: DisplayName},
			{Key: "dateOfBirth", Label: "Date of Birth", RenderOrder: 2, Kind: DisplayDateOfBirth},
			{Key: "primaryPhone", Label: "Phone", RenderOrder: 3, Kind: DisplayPrimaryPhone},
			{Key: "primaryEmail", Label: "Email", RenderOrder: 4, Kind: DisplayPrimaryEmail},
			{Key: "maritalStatus", Label: "Status", RenderOrder: 5, Kind: DisplayMaritalStatus},
			{Key: "location", Label: "Location", RenderOrder: 6, Kind: DisplayLocation},
		},
	)
}
