package httpserver

import (
	"customer-lookup/internal/domain"
	"customer-lookup/internal/fields"
	"customer-lookup/internal/lookup"
)

type formField struct {
	Key         string
	Label       string
	UIType      string
	Placeholder string
	Options     []string
	Value       string
}

type labeledValue struct {
	Label string
	Value string
}

type card struct {
	ID       string
	Title    string
	Subtitle string
	Badge    string
	Values   []labeledValue
}

type contactLine struct {
	Type    string
	Value   string
	Primary bool
}

type detail struct {
	ID          string
	Name        string
	DateOfBirth string
	Status      string
	SecureID    string
	Addresses   []contactLine
	Phones      []contactLine
	Emails      []contactLine
}

type page struct {
	Fields      []formField
	Phase       string
	Searching   bool
	Searched    bool
	Error       string
	Notice      string
	ResultCount int
	Cards       []card
	Selected    *detail
}

func buildPage(reg *fields.Registry, v lookup.View, notice string) page {
	p := page{
		Phase:     v.Phase.String(),
		Searching: v.Phase == lookup.Searching,
		Searched:  v.Searched(),
		Error:     v.Error,
		Notice:    notice,
	}

	for _, f := range reg.SearchFields() {
		ff := formField{
			Key:    f.Key,
			Label:  f.Label,
			UIType: f.Widget.Kind(),
			Value:  v.Criteria.Get(f.Key),
		}
		switch w := f.Widget.(type) {
		case fields.TextInput:
			ff.Placeholder = w.Placeholder
		case fields.SelectInput:
			ff.Options = w.Options
		}
		p.Fields = append(p.Fields, ff)
	}

	display := reg.DisplayFields()
	for _, c := range v.Customers {
		p.Cards = append(p.Cards, buildCard(display, c))
	}
	p.ResultCount = len(p.Cards)

	if v.Selected != nil {
		d := buildDetail(*v.Selected)
		p.Selected = &d
	}
	return p
}

// buildCard puts name, location and status in the card header and every other display field in the body.
func buildCard(display []fields.DisplayField, c domain.Customer) card {
	out := card{ID: c.ID}
	for _, f := range display {
		value := fields.Render(f.Kind, c)
		switch f.Kind {
		case fields.DisplayName:
			out.Title = value
		case fields.DisplayLocation:
			out.Subtitle = value
		case fields.DisplayMaritalStatus:
			out.Badge = value
		default:
			out.Values = append(out.Values, labeledValue{Label: f.Label, Value: value})
		}
	}
	return out
}

func buildDetail(c domain.Customer) detail {
	d := detail{
		ID:          c.ID,
		Name:        fields.Render(fields.DisplayName, c),
		DateOfBirth: fields.Render(fields.DisplayDateOfBirth, c),
		Status:      fields.Render(fields.DisplayMaritalStatus, c),
		SecureID:    maskSecureID(c.SecureID),
	}
	for _, a := range c.Addresses {
		d.Addresses = append(d.Addresses, contactLine{
			Type:  string(a.Type),
			Value: a.Street + ", " + a.City + ", " + a.State + " " + a.ZipCode,
		})
	}
	for _, ph := range c.Phones {
		d.Phones = append(d.Phones, contactLine{Type: string(ph.Type), Value: ph.Number, Primary: ph.IsPrimary})
	}
	for _, e := range c.Emails {
		d.Emails = append(d.Emails, contactLine{Type: string(e.Type), Value: e.Address, Primary: e.IsPrimary})
	}
	return d
}

// maskSecureID keeps only the last four characters of the secure identifier visible.
func maskSecureID(id string) string {
	if id == "" {
		return fields.Placeholder
	}
	if len(id) <= 4 {
		return "****"
	}
	return "****" + id[len(id)-4:]
}
