package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdziat/cronhuman/pkg/core"
)

func TestParseField_Forms(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		field  core.Field
		kind   core.Kind
		values []int
	}{
		{"wildcard month", "*", core.Month, core.Wildcard, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}},
		{"specific", "9", core.Hour, core.Specific, []int{9}},
		{"leading zero", "05", core.Minute, core.Specific, []int{5}},
		{"range", "9-17", core.Hour, core.Range, []int{9, 10, 11, 12, 13, 14, 15, 16, 17}},
		{"single value range", "4-4", core.Hour, core.Range, []int{4}},
		{"step wildcard", "*/15", core.Minute, core.Step, []int{0, 15, 30, 45}},
		{"step over range", "10-20/5", core.Minute, core.Step, []int{10, 15, 20}},
		{"step is positional", "5-20/10", core.Minute, core.Step, []int{5, 15}},
		{"step from day minimum", "*/10", core.Day, core.Step, []int{1, 11, 21, 31}},
		{"step larger than base", "*/100", core.Minute, core.Step, []int{0}},
		{"list dedup and sort", "5,1,5,3", core.Minute, core.List, []int{1, 3, 5}},
		{"list of ranges", "1-3,2-5", core.Minute, core.List, []int{1, 2, 3, 4, 5}},
		{"list mixed", "30,1-2", core.Day, core.List, []int{1, 2, 30}},
		{"weekday seven", "7", core.Weekday, core.Specific, []int{7}},
		{"weekday zero and seven", "0,7", core.Weekday, core.List, []int{0, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseField(tt.raw, tt.field)
			require.NoError(t, err)
			assert.Equal(t, tt.raw, d.Raw)
			assert.Equal(t, tt.kind, d.Kind)
			assert.Equal(t, tt.values, d.Values)
		})
	}
}

func TestParseField_Wildcard_FullRange(t *testing.T) {
	d, err := ParseField("*", core.Minute)
	require.NoError(t, err)
	assert.Len(t, d.Values, 60)
	assert.Equal(t, 0, d.Values[0])
	assert.Equal(t, 59, d.Values[59])
}

func TestParseField_Errors(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		field   core.Field
		form    core.Form
		target  error
		message string
	}{
		{"value too large", "60", core.Minute, core.FormValue, core.ErrOutOfRange, `invalid value "60" for field minute`},
		{"day zero", "0", core.Day, core.FormValue, core.ErrOutOfRange, `invalid value "0" for field day`},
		{"month thirteen", "13", core.Month, core.FormValue, core.ErrOutOfRange, "must be within 1-12"},
		{"weekday eight", "8", core.Weekday, core.FormValue, core.ErrOutOfRange, "must be within 0-7"},
		{"non numeric", "abc", core.Minute, core.FormValue, core.ErrSyntax, "not a number"},
		{"signed", "+5", core.Minute, core.FormValue, core.ErrSyntax, `invalid value "+5"`},
		{"trailing garbage", "5x", core.Minute, core.FormValue, core.ErrSyntax, `invalid value "5x"`},
		{"range out of bounds", "25-30", core.Hour, core.FormRange, core.ErrOutOfRange, `invalid range "25-30" for field hour`},
		{"range inverted", "5-3", core.Minute, core.FormRange, core.ErrInvertedRange, "start 5 exceeds end 3"},
		{"range open end", "1-", core.Minute, core.FormRange, core.ErrSyntax, `end "" is not a number`},
		{"negative value", "-5", core.Minute, core.FormRange, core.ErrSyntax, `start "" is not a number`},
		{"range three parts", "1-2-3", core.Minute, core.FormRange, core.ErrSyntax, "is not a number"},
		{"list bad member", "1,x", core.Minute, core.FormValue, core.ErrSyntax, `invalid value "x"`},
		{"list out of bounds", "1,99", core.Minute, core.FormValue, core.ErrOutOfRange, `invalid value "99"`},
		{"list empty member", "1,,2", core.Minute, core.FormValue, core.ErrSyntax, `invalid value ""`},
		{"step zero", "*/0", core.Minute, core.FormStep, core.ErrInvalidStep, "positive integer"},
		{"step negative", "*/-1", core.Minute, core.FormStep, core.ErrInvalidStep, `step "-1"`},
		{"step non numeric", "*/x", core.Minute, core.FormStep, core.ErrInvalidStep, `invalid step "*/x"`},
		{"step missing", "*/", core.Minute, core.FormStep, core.ErrInvalidStep, "positive integer"},
		{"step single value base", "5/15", core.Minute, core.FormRange, core.ErrSyntax, `invalid range "5"`},
		{"step base out of bounds", "20-70/5", core.Minute, core.FormRange, core.ErrOutOfRange, `invalid range "20-70"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseField(tt.raw, tt.field)
			require.Error(t, err)

			var fieldErr *core.FieldError
			require.True(t, errors.As(err, &fieldErr))
			assert.Equal(t, tt.field, fieldErr.Field)
			assert.Equal(t, tt.form, fieldErr.Form)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestAtoi(t *testing.T) {
	n, ok := atoi("42")
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	for _, s := range []string{"", " 1", "1 ", "-1", "+1", "1.5", "0x10", "9999999999"} {
		_, ok := atoi(s)
		assert.False(t, ok, "atoi(%q)", s)
	}
}
