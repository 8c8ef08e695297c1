package model

import "fmt"

type SpecOperator string

const (
	SpecOpEq      SpecOperator = "eq"
	SpecOpNotEq   SpecOperator = "neq"
	SpecOpIn      SpecOperator = "in"
	SpecOpMust    SpecOperator = "must"
	SpecOpShould  SpecOperator = "should"
	SpecOpMustNot SpecOperator = "must_not"
)

// Filterable device fields.
const (
	FieldName  = "name"
	FieldBrand = "brand"
	FieldState = "state"
)

// Specification is a predicate over devices. Stores either evaluate it in
// memory through IsSatisfiedBy or translate the tree into their own query
// language.
type Specification interface {
	IsSatisfiedBy(device *Device) bool
	IsComposite() bool
	Children() []Specification
	Operator() SpecOperator
	Field() string
	Value() any
}

func ByBrand(brand string) Specification {
	return Eq(FieldBrand, brand)
}

func ByState(state State) Specification {
	return Eq(FieldState, state.String())
}

func fieldValue(device *Device, field string) (string, bool) {
	switch field {
	case FieldName:
		return device.Name, true
	case FieldBrand:
		return device.Brand, true
	case FieldState:
		return device.State.String(), true
	default:
		return "", false
	}
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
