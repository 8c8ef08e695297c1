package model_test

import (
	"testing"

	"github.com/architeacher/device-registry/internal/domain/model"
	"github.com/stretchr/testify/require"
)

func TestLeafSpecs(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name          string
		spec          model.Specification
		expectedOp    model.SpecOperator
		expectedField string
		expectedValue any
	}{
		{
			name:          "eq",
			spec:          model.Eq(model.FieldBrand, "Apple"),
			expectedOp:    model.SpecOpEq,
			expectedField: model.FieldBrand,
			expectedValue: "Apple",
		},
		{
			name:          "not eq",
			spec:          model.NotEq(model.FieldState, "inactive"),
			expectedOp:    model.SpecOpNotEq,
			expectedField: model.FieldState,
			expectedValue: "inactive",
		},
		{
			name:          "in",
			spec:          model.In(model.FieldBrand, "Apple", "Google"),
			expectedOp:    model.SpecOpIn,
			expectedField: model.FieldBrand,
			expectedValue: []any{"Apple", "Google"},
		},
		{
			name:          "by state uses the wire value",
			spec:          model.ByState(model.StateInUse),
			expectedOp:    model.SpecOpEq,
			expectedField: model.FieldState,
			expectedValue: "in-use",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.expectedOp, tc.spec.Operator())
			require.Equal(t, tc.expectedField, tc.spec.Field())
			require.Equal(t, tc.expectedValue, tc.spec.Value())
			require.False(t, tc.spec.IsComposite())
			require.Nil(t, tc.spec.Children())
		})
	}
}

func TestCompositeSpecs(t *testing.T) {
	t.Parallel()

	brand := model.ByBrand("Apple")
	state := model.ByState(model.StateAvailable)

	cases := []struct {
		name             string
		spec             model.Specification
		expectedOp       model.SpecOperator
		expectedChildren int
	}{
		{name: "must", spec: model.Must(brand, state), expectedOp: model.SpecOpMust, expectedChildren: 2},
		{name: "should", spec: model.Should(brand, state), expectedOp: model.SpecOpShould, expectedChildren: 2},
		{name: "must not", spec: model.MustNot(brand), expectedOp: model.SpecOpMustNot, expectedChildren: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.True(t, tc.spec.IsComposite())
			require.Equal(t, tc.expectedOp, tc.spec.Operator())
			require.Len(t, tc.spec.Children(), tc.expectedChildren)
			require.Empty(t, tc.spec.Field())
			require.Nil(t, tc.spec.Value())
		})
	}
}

func TestSpecification_IsSatisfiedBy(t *testing.T) {
	t.Parallel()

	device := &model.Device{
		ID:    model.NewDeviceID(),
		Name:  "iPhone 15 Pro",
		Brand: "Apple",
		State: model.StateInUse,
	}

	cases := []struct {
		name     string
		spec     model.Specification
		expected bool
	}{
		{name: "brand matches", spec: model.ByBrand("Apple"), expected: true},
		{name: "brand is case sensitive", spec: model.ByBrand("apple"), expected: false},
		{name: "state matches", spec: model.ByState(model.StateInUse), expected: true},
		{name: "state given as typed value", spec: model.Eq(model.FieldState, model.StateInUse), expected: true},
		{name: "state differs", spec: model.ByState(model.StateAvailable), expected: false},
		{name: "unknown field never matches", spec: model.Eq("serial", "x"), expected: false},
		{name: "not eq", spec: model.NotEq(model.FieldName, "Pixel"), expected: true},
		{name: "in hit", spec: model.In(model.FieldBrand, "Google", "Apple"), expected: true},
		{name: "in miss", spec: model.In(model.FieldBrand, "Google"), expected: false},
		{name: "must all", spec: model.Must(model.ByBrand("Apple"), model.ByState(model.StateInUse)), expected: true},
		{name: "must one fails", spec: model.Must(model.ByBrand("Apple"), model.ByState(model.StateInactive)), expected: false},
		{name: "empty must matches", spec: model.Must(), expected: true},
		{name: "should any", spec: model.Should(model.ByBrand("Google"), model.ByState(model.StateInUse)), expected: true},
		{name: "empty should matches nothing", spec: model.Should(), expected: false},
		{name: "must not", spec: model.MustNot(model.ByBrand("Apple")), expected: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.expected, tc.spec.IsSatisfiedBy(device))
		})
	}
}
