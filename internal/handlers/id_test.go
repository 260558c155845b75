package handlers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDUnmarshal(t *testing.T) {
	cases := map[string]uint{
		`5`:     5,
		`"5"`:   5,
		`" 42"`: 42,
	}
	for in, want := range cases {
		var id ID
		require.NoError(t, json.Unmarshal([]byte(in), &id), in)
		assert.Equal(t, want, uint(id), in)
	}

	for _, in := range []string{`"abc"`, `-1`, `1.5`, `""`, `true`} {
		var id ID
		assert.Error(t, json.Unmarshal([]byte(in), &id), in)
	}
}

func TestIDAbsentIsNil(t *testing.T) {
	var req ConfirmAppointmentRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))
	assert.Nil(t, req.AppointmentID.Ptr())

	require.NoError(t, json.Unmarshal([]byte(`{"turno_id":null}`), &req))
	assert.Nil(t, req.AppointmentID.Ptr())

	require.NoError(t, json.Unmarshal([]byte(`{"turno_id":"7"}`), &req))
	require.NotNil(t, req.AppointmentID.Ptr())
	assert.Equal(t, uint(7), *req.AppointmentID.Ptr())
}
