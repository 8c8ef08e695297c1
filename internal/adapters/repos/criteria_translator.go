package repos

import (
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/architeacher/device-registry/internal/domain/model"
)

var ErrUnsupportedSpec = errors.New("unsupported specification")

var columnMapping = map[string]string{
	model.FieldName:  "name",
	model.FieldBrand: "brand",
	model.FieldState: "state",
}

// SpecTranslator turns a model.Specification tree into a squirrel condition.
type SpecTranslator struct{}

func NewSpecTranslator() *SpecTranslator {
	return &SpecTranslator{}
}

func (t *SpecTranslator) Translate(spec model.Specification) (sq.Sqlizer, error) {
	switch spec.Operator() {
	case model.SpecOpEq:
		col, err := t.col(spec.Field())
		if err != nil {
			return nil, err
		}

		return sq.Eq{col: scalar(spec.Value())}, nil

	case model.SpecOpNotEq:
		col, err := t.col(spec.Field())
		if err != nil {
			return nil, err
		}

		return sq.NotEq{col: scalar(spec.Value())}, nil

	case model.SpecOpIn:
		col, err := t.col(spec.Field())
		if err != nil {
			return nil, err
		}

		values, _ := spec.Value().([]any)
		params := make([]any, len(values))

		for index, v := range values {
			params[index] = scalar(v)
		}

		return sq.Eq{col: params}, nil

	case model.SpecOpMust:
		conditions, err := t.translateChildren(spec)
		if err != nil {
			return nil, err
		}

		if len(conditions) == 0 {
			return sq.Expr("TRUE"), nil
		}

		return sq.And(conditions), nil

	case model.SpecOpShould:
		conditions, err := t.translateChildren(spec)
		if err != nil {
			return nil, err
		}

		if len(conditions) == 0 {
			return sq.Expr("FALSE"), nil
		}

		return sq.Or(conditions), nil

	case model.SpecOpMustNot:
		children := spec.Children()
		if len(children) != 1 {
			return nil, fmt.Errorf("%w: must_not expects one child", ErrUnsupportedSpec)
		}

		inner, err := t.Translate(children[0])
		if err != nil {
			return nil, err
		}

		innerSQL, args, err := inner.ToSql()
		if err != nil {
			return nil, fmt.Errorf("failed to build negated condition: %w", err)
		}

		return sq.Expr("NOT ("+innerSQL+")", args...), nil
	}

	return nil, fmt.Errorf("%w: operator %q", ErrUnsupportedSpec, spec.Operator())
}

func (t *SpecTranslator) translateChildren(spec model.Specification) ([]sq.Sqlizer, error) {
	conditions := make([]sq.Sqlizer, 0, len(spec.Children()))

	for _, child := range spec.Children() {
		condition, err := t.Translate(child)
		if err != nil {
			return nil, err
		}

		conditions = append(conditions, condition)
	}

	return conditions, nil
}

func (t *SpecTranslator) col(field string) (string, error) {
	col, ok := columnMapping[field]
	if !ok {
		return "", fmt.Errorf("%w: unknown field %q", ErrUnsupportedSpec, field)
	}

	return col, nil
}

// scalar sends typed values such as model.State as their wire string.
func scalar(value any) any {
	if s, ok := value.(fmt.Stringer); ok {
		return s.String()
	}

	return value
}
