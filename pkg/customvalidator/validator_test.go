package customvalidator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type probni struct {
	JMBG   string `validate:"jmbg"`
	Period string `validate:"omitempty,period_format"`
	Boja   string `validate:"hex_color"`
}

func noviValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, RegisterCustomValidations(v))
	return v
}

func TestJMBG(t *testing.T) {
	v := noviValidator(t)

	assert.NoError(t, v.Struct(probni{JMBG: "0101995710023"}))
	assert.NoError(t, v.Struct(probni{JMBG: ""})) // prazno je dozvoljeno
	assert.Error(t, v.Struct(probni{JMBG: "12345"}))
	assert.Error(t, v.Struct(probni{JMBG: "01019957100ab"}))
	assert.Error(t, v.Struct(probni{JMBG: "01019957100234"}))
}

func TestPeriodFormat(t *testing.T) {
	v := noviValidator(t)

	assert.NoError(t, v.Struct(probni{Period: "2025-01"}))
	assert.NoError(t, v.Struct(probni{Period: "2025-12"}))
	assert.Error(t, v.Struct(probni{Period: "2025-13"}))
	assert.Error(t, v.Struct(probni{Period: "2025-1"}))
	assert.Error(t, v.Struct(probni{Period: "01-2025"}))
}

func TestHexColor(t *testing.T) {
	v := noviValidator(t)

	assert.NoError(t, v.Struct(probni{Boja: "#2980b9"}))
	assert.NoError(t, v.Struct(probni{Boja: "#ABCDEF"}))
	assert.NoError(t, v.Struct(probni{Boja: ""}))
	assert.Error(t, v.Struct(probni{Boja: "2980b9"}))
	assert.Error(t, v.Struct(probni{Boja: "#29b"}))
	assert.Error(t, v.Struct(probni{Boja: "#2980bg"}))
}
