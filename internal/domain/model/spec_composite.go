package model

type compositeSpec struct{}

func (compositeSpec) IsComposite() bool { return true }
func (compositeSpec) Field() string     { return "" }
func (compositeSpec) Value() any        { return nil }

// mustSpec is satisfied when every child is. An empty conjunction matches everything.
type mustSpec struct {
	compositeSpec
	specs []Specification
}

func Must(specs ...Specification) Specification {
	return &mustSpec{specs: specs}
}

func (s *mustSpec) Children() []Specification { return s.specs }
func (s *mustSpec) Operator() SpecOperator    { return SpecOpMust }

func (s *mustSpec) IsSatisfiedBy(device *Device) bool {
	for _, spec := range s.specs {
		if !spec.IsSatisfiedBy(device) {
			return false
		}
	}

	return true
}

// shouldSpec is satisfied when any child is.
type shouldSpec struct {
	compositeSpec
	specs []Specification
}

func Should(specs ...Specification) Specification {
	return &shouldSpec{specs: specs}
}

func (s *shouldSpec) Children() []Specification { return s.specs }
func (s *shouldSpec) Operator() SpecOperator    { return SpecOpShould }

func (s *shouldSpec) IsSatisfiedBy(device *Device) bool {
	for _, spec := range s.specs {
		if spec.IsSatisfiedBy(device) {
			return true
		}
	}

	return false
}

type mustNotSpec struct {
	compositeSpec
	spec Specification
}

func MustNot(spec Specification) Specification {
	return &mustNotSpec{spec: spec}
}

func (s *mustNotSpec) Children() []Specification { return []Specification{s.spec} }
func (s *mustNotSpec) Operator() SpecOperator    { return SpecOpMustNot }

func (s *mustNotSpec) IsSatisfiedBy(device *Device) bool {
	return !s.spec.IsSatisfiedBy(device)
}
