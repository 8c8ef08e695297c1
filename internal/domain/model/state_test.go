package model_test

import (
	"testing"

	"github.com/architeacher/device-registry/internal/domain/model"
	"github.com/stretchr/testify/require"
)

func TestState_IsValid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		state    model.State
		expected bool
	}{
		{name: "available is valid", state: model.StateAvailable, expected: true},
		{name: "in-use is valid", state: model.StateInUse, expected: true},
		{name: "inactive is valid", state: model.StateInactive, expected: true},
		{name: "empty is invalid", state: "", expected: false},
		{name: "underscore spelling is invalid", state: "in_use", expected: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.expected, tc.state.IsValid())
		})
	}
}

func TestParseState(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		input       string
		expected    model.State
		expectError bool
	}{
		{name: "available", input: "available", expected: model.StateAvailable},
		{name: "in-use", input: "in-use", expected: model.StateInUse},
		{name: "upper case with spaces", input: "  INACTIVE ", expected: model.StateInactive},
		{name: "unknown", input: "broken", expectError: true},
		{name: "empty", input: "", expectError: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			state, err := model.ParseState(tc.input)

			if tc.expectError {
				require.ErrorIs(t, err, model.ErrInvalidState)
				require.Empty(t, state)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.expected, state)
		})
	}
}

func TestAllStates(t *testing.T) {
	t.Parallel()

	require.Equal(t, []model.State{model.StateAvailable, model.StateInUse, model.StateInactive}, model.AllStates())
}

func TestAllStates_ReturnsCopy(t *testing.T) {
	t.Parallel()

	states := model.AllStates()
	states[0] = "retired"

	require.Equal(t, model.StateAvailable, model.AllStates()[0])
}

func TestState_Locked(t *testing.T) {
	t.Parallel()

	require.True(t, model.StateInUse.Locked())
	require.False(t, model.StateAvailable.Locked())
	require.False(t, model.StateInactive.Locked())
}
