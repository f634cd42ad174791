package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	DeviceID string `json:"deviceId" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Ignored  string `json:"-"`
}

func TestStruct(t *testing.T) {
	v, err := New("en")
	require.NoError(t, err)

	assert.NoError(t, v.Struct(sample{DeviceID: "d", Name: "n"}))

	err = v.Struct(sample{})
	require.Error(t, err)
	assert.Equal(t, "deviceId is a required field; name is a required field", err.Error())
}

func TestVar(t *testing.T) {
	v, err := New("en")
	require.NoError(t, err)

	assert.NoError(t, v.Var("deviceName", "Kiosk", "required"))

	err = v.Var("deviceName", "", "required")
	require.Error(t, err)
	assert.Equal(t, "deviceName is a required field", err.Error())
}

func TestNew_UnknownLocale(t *testing.T) {
	_, err := New("fr")
	assert.Error(t, err)
}
