package schema_test

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Gobd/reqgate/schema"
)

type guestProfile struct {
	Handle       string `json:"handle"`
	Contact      string `json:"contact"`
	LoyaltyYears int    `json:"loyalty_years"`
}

func (g *guestProfile) Rules() []*schema.FieldRules {
	return []*schema.FieldRules{
		schema.Field(&g.Handle, schema.Required, schema.Length(3, 30)),
		schema.Field(&g.Contact, schema.Required),
		schema.Field(&g.LoyaltyYears, schema.Min(0), schema.Max(80)),
	}
}

func ExampleValidate() {
	g := &guestProfile{Handle: "rivero", Contact: "r@inn.test", LoyaltyYears: 4}
	if err := schema.Validate(g); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("valid")
	// Output: valid
}

func ExampleValidate_error() {
	g := &guestProfile{LoyaltyYears: -2}
	err := schema.Validate(g)
	fmt.Println(err)
	// Output: contact: cannot be blank; handle: cannot be blank; loyalty_years: must be no less than 0.
}

func ExampleUnmarshalAndValidate() {
	body := []byte(`{"handle":"rivero","contact":"r@inn.test","loyalty_years":4}`)
	var g guestProfile
	if err := schema.UnmarshalAndValidate(body, &g); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.Handle)
	// Output: rivero
}

type stayRequest struct {
	CheckIn string `json:"check_in"`
}

func (s *stayRequest) Rules() []*schema.FieldRules {
	return []*schema.FieldRules{
		schema.Field(&s.CheckIn, schema.Required, schema.Date("2006-01-02").
			Min(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)).
			Max(time.Date(2030, 12, 31, 0, 0, 0, 0, time.UTC))),
	}
}

func ExampleDate() {
	s := &stayRequest{CheckIn: "2026-02-11"}
	if err := schema.Validate(s); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("valid")
	// Output: valid
}

type invoiceDraft struct {
	Total     float64 `json:"total"`
	Currency  string  `json:"currency"`
	Finalized bool    `json:"-"`
}

func (i *invoiceDraft) Rules() []*schema.FieldRules {
	return []*schema.FieldRules{
		schema.Field(&i.Total, schema.When(i.Finalized, "finalized", schema.Required, schema.Min(0.01)).
			Else(schema.Min(0.0))),
		schema.Field(&i.Currency, schema.Required, schema.In("USD", "EUR", "GBP")),
	}
}

func ExampleWhen() {
	i := &invoiceDraft{Total: 49.50, Currency: "EUR", Finalized: true}
	if err := schema.Validate(i); err != nil {
		fmt.Println(err)
		return
	}

	b, _ := json.Marshal(i)
	fmt.Println(string(b))
	// Output: {"total":49.5,"currency":"EUR"}
}

func ExampleFor() {
	type addNote struct {
		Title string `json:"title"`
	}
	out, viols := schema.For[addNote]().SafeParse(map[string]any{"title": "standup"})
	if len(viols) > 0 {
		fmt.Println(viols)
		return
	}
	fmt.Println(out.(addNote).Title)
	// Output: standup
}
