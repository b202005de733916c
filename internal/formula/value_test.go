package formula

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_Equal(t *testing.T) {
	assert.True(t, Number(1).Equal(Number(1)))
	assert.False(t, Number(1).Equal(Number(2)))
	assert.False(t, Number(0).Equal(Cycle()))
	assert.False(t, Cycle().Equal(Number(0)))
	assert.True(t, Cycle().Equal(Cycle()))
	assert.False(t, Cycle().Equal(Fail(ReasonUndefined, "division by zero")))
	assert.False(t, Fail(ReasonParse, "a").Equal(Fail(ReasonParse, "b")))
}

func TestError_Is(t *testing.T) {
	err := Fail(ReasonUndefined, "division by zero").Err
	assert.True(t, errors.Is(err, ErrUndefinedOperation))
	assert.False(t, errors.Is(err, ErrCycle))
	assert.Equal(t, "undefined operation: division by zero", err.Error())
}

func TestReason_Marker(t *testing.T) {
	assert.Equal(t, "#PARSE!", ReasonParse.Marker())
	assert.Equal(t, "#DIV/0!", ReasonUndefined.Marker())
	assert.Equal(t, "#CYCLE!", ReasonCycle.Marker())
	assert.Equal(t, "#NUM!", ReasonRange.Marker())

	assert.True(t, IsMarker("#DIV/0!"))
	assert.True(t, IsMarker("#NUM!"))
	assert.False(t, IsMarker("#ERROR!"))
	assert.False(t, IsMarker("4"))
	assert.Equal(t, "cycle", ReasonCycle.String())
}

func TestDisplay(t *testing.T) {
	testCases := []struct {
		name     string
		source   string
		value    Value
		expected string
	}{
		{name: "literal number is shown verbatim", source: "4.50", value: Number(4.5), expected: "4.50"},
		{name: "literal text", source: "hello", value: Number(0), expected: "hello"},
		{name: "blank", source: "", value: Number(0), expected: ""},
		{name: "integer result", source: "=A0+B0", value: Number(13), expected: "13"},
		{name: "fractional result", source: "=1/4", value: Number(0.25), expected: "0.25"},
		{name: "negative zero", source: "=-0", value: Number(0), expected: "0"},
		{name: "large result", source: "=1e21", value: Number(1e21), expected: "1000000000000000000000"},
		{name: "error marker", source: "=1/0", value: Fail(ReasonUndefined, "division by zero"), expected: "#DIV/0!"},
		{name: "overflow marker", source: "=1e308*10", value: Evaluate("=1e308*10", nil), expected: "#NUM!"},
		{name: "cycle marker", source: "=A0", value: Cycle(), expected: "#CYCLE!"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Display(tc.source, tc.value))
		})
	}
}
