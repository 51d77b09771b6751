package model

import (
	"fmt"
	"strings"
)

// Document field names shared by every collection backend.
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldAge       = "age"
)

// Person is a single person record as entered on the form.
type Person struct {
	FirstName string `json:"firstName" bson:"firstName" firestore:"firstName" validate:"required"`
	LastName  string `json:"lastName" bson:"lastName" firestore:"lastName" validate:"required"`
	Age       int    `json:"age" bson:"age" firestore:"age" validate:"gte=0"`
}

// String renders the person as a single report line.
func (p Person) String() string {
	return fmt.Sprintf("%s %s %d", p.FirstName, p.LastName, p.Age)
}

// Map returns the person as a full document field map.
func (p Person) Map() map[string]any {
	return map[string]any{
		FieldFirstName: p.FirstName,
		FieldLastName:  p.LastName,
		FieldAge:       p.Age,
	}
}

// Fields is a partial set of person fields used for merge updates.
// A nil pointer means the field is left untouched.
type Fields struct {
	FirstName *string `json:"firstName,omitempty" validate:"omitnil,min=1"`
	LastName  *string `json:"lastName,omitempty" validate:"omitnil,min=1"`
	Age       *int    `json:"age,omitempty" validate:"omitnil,gte=0"`
}

// IsEmpty reports whether no field is set.
func (f Fields) IsEmpty() bool {
	return f.FirstName == nil && f.LastName == nil && f.Age == nil
}

// Map returns only the fields that are set.
func (f Fields) Map() map[string]any {
	out := make(map[string]any, 3)
	if f.FirstName != nil {
		out[FieldFirstName] = *f.FirstName
	}
	if f.LastName != nil {
		out[FieldLastName] = *f.LastName
	}
	if f.Age != nil {
		out[FieldAge] = *f.Age
	}
	return out
}

// Apply merges the set fields into p and returns the result.
func (f Fields) Apply(p Person) Person {
	if f.FirstName != nil {
		p.FirstName = *f.FirstName
	}
	if f.LastName != nil {
		p.LastName = *f.LastName
	}
	if f.Age != nil {
		p.Age = *f.Age
	}
	return p
}

// Report is the concatenated listing of persons shown on the form.
type Report struct {
	People []Person
}

// String renders one line per person, each newline terminated.
func (r Report) String() string {
	var sb strings.Builder
	for _, p := range r.People {
		sb.WriteString(p.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Len returns the number of persons in the report.
func (r Report) Len() int {
	return len(r.People)
}
