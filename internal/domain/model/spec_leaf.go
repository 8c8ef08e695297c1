package model

type leafSpec struct{}

func (leafSpec) IsComposite() bool         { return false }
func (leafSpec) Children() []Specification { return nil }

type eqSpec struct {
	leafSpec
	field string
	value any
}

func Eq(field string, value any) Specification {
	return &eqSpec{field: field, value: value}
}

func (s *eqSpec) Operator() SpecOperator { return SpecOpEq }
func (s *eqSpec) Field() string          { return s.field }
func (s *eqSpec) Value() any             { return s.value }

func (s *eqSpec) IsSatisfiedBy(device *Device) bool {
	actual, ok := fieldValue(device, s.field)

	return ok && actual == stringify(s.value)
}

type notEqSpec struct {
	leafSpec
	field string
	value any
}

func NotEq(field string, value any) Specification {
	return &notEqSpec{field: field, value: value}
}

func (s *notEqSpec) Operator() SpecOperator { return SpecOpNotEq }
func (s *notEqSpec) Field() string          { return s.field }
func (s *notEqSpec) Value() any             { return s.value }

func (s *notEqSpec) IsSatisfiedBy(device *Device) bool {
	actual, ok := fieldValue(device, s.field)

	return ok && actual != stringify(s.value)
}

type inSpec struct {
	leafSpec
	field  string
	values []any
}

func In(field string, values ...any) Specification {
	return &inSpec{field: field, values: values}
}

func (s *inSpec) Operator() SpecOperator { return SpecOpIn }
func (s *inSpec) Field() string          { return s.field }
func (s *inSpec) Value() any             { return s.values }

func (s *inSpec) IsSatisfiedBy(device *Device) bool {
	actual, ok := fieldValue(device, s.field)
	if !ok {
		return false
	}

	for _, v := range s.values {
		if actual == stringify(v) {
			return true
		}
	}

	return false
}
