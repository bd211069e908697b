package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestField_Bounds(t *testing.T) {
	tests := []struct {
		field    Field
		name     string
		min, max int
	}{
		{Second, "second", 0, 59},
		{Minute, "minute", 0, 59},
		{Hour, "hour", 0, 23},
		{Day, "day", 1, 31},
		{Month, "month", 1, 12},
		{Weekday, "weekday", 0, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max := tt.field.Bounds()
			assert.Equal(t, tt.min, min)
			assert.Equal(t, tt.max, max)
			assert.Equal(t, tt.name, tt.field.String())
			assert.True(t, tt.field.Contains(min))
			assert.True(t, tt.field.Contains(max))
			assert.False(t, tt.field.Contains(max+1))
		})
	}
}

func TestField_Unknown(t *testing.T) {
	assert.False(t, Field(42).Valid())
	assert.Equal(t, "unknown", Field(42).String())
}

func TestFieldsFor(t *testing.T) {
	assert.Equal(t, []Field{Minute, Hour, Day, Month, Weekday}, FieldsFor(5))
	assert.Equal(t, []Field{Second, Minute, Hour, Day, Month, Weekday}, FieldsFor(6))
	assert.Nil(t, FieldsFor(4))
	assert.Nil(t, FieldsFor(7))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "wildcard", Wildcard.String())
	assert.Equal(t, "specific", Specific.String())
	assert.Equal(t, "range", Range.String())
	assert.Equal(t, "step", Step.String())
	assert.Equal(t, "list", List.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestDescriptor_Has(t *testing.T) {
	d := Descriptor{Raw: "1,3,5", Kind: List, Values: []int{1, 3, 5}}
	assert.True(t, d.Has(3))
	assert.False(t, d.Has(4))
	assert.False(t, d.Has(9))
	assert.False(t, d.Single())
}

func TestExpression_Field(t *testing.T) {
	expr := &Expression{FieldCount: 5}
	expr.Set(Minute, Descriptor{Raw: "0", Kind: Specific, Values: []int{0}})

	_, ok := expr.Field(Second)
	assert.False(t, ok)
	assert.False(t, expr.HasSeconds())

	d, ok := expr.Field(Minute)
	assert.True(t, ok)
	assert.Equal(t, []int{0}, d.Values)

	expr.Set(Second, Descriptor{Raw: "30", Kind: Specific, Values: []int{30}})
	assert.True(t, expr.HasSeconds())
	d, ok = expr.Field(Second)
	assert.True(t, ok)
	assert.Equal(t, "30", d.Raw)
}
