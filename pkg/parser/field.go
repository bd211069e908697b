package parser

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jdziat/cronhuman/pkg/core"
)

// ParseField parses one field's text against the bounds of f.
//
// The first matching form wins, checked in order: wildcard, step, list,
// range, specific value.
func ParseField(raw string, f core.Field) (core.Descriptor, error) {
	min, max := f.Bounds()

	switch {
	case raw == "*":
		return core.Descriptor{Raw: raw, Kind: core.Wildcard, Values: span(min, max)}, nil

	case strings.Contains(raw, "/"):
		values, err := parseStep(raw, f)
		if err != nil {
			return core.Descriptor{}, err
		}
		return core.Descriptor{Raw: raw, Kind: core.Step, Values: values}, nil

	case strings.Contains(raw, ","):
		values, err := parseList(raw, f)
		if err != nil {
			return core.Descriptor{}, err
		}
		return core.Descriptor{Raw: raw, Kind: core.List, Values: values}, nil

	case strings.Contains(raw, "-"):
		values, err := parseRange(raw, f)
		if err != nil {
			return core.Descriptor{}, err
		}
		return core.Descriptor{Raw: raw, Kind: core.Range, Values: values}, nil

	default:
		v, err := parseValue(raw, f)
		if err != nil {
			return core.Descriptor{}, err
		}
		return core.Descriptor{Raw: raw, Kind: core.Specific, Values: []int{v}}, nil
	}
}

// parseStep keeps every step-th element of the expanded base, counted by
// position in the base list rather than by value.
func parseStep(raw string, f core.Field) ([]int, error) {
	base, stepText, _ := strings.Cut(raw, "/")

	step, ok := atoi(stepText)
	if !ok || step <= 0 {
		return nil, &core.FieldError{
			Field:  f,
			Raw:    raw,
			Form:   core.FormStep,
			Detail: fmt.Sprintf("step %q must be a positive integer", stepText),
			Err:    core.ErrInvalidStep,
		}
	}

	var candidates []int
	if base == "*" {
		candidates = span(f.Bounds())
	} else {
		var err error
		if candidates, err = parseRange(base, f); err != nil {
			return nil, err
		}
	}

	values := make([]int, 0, len(candidates)/step+1)
	for i := 0; i < len(candidates); i += step {
		values = append(values, candidates[i])
	}
	return values, nil
}

func parseList(raw string, f core.Field) ([]int, error) {
	seen := make(map[int]struct{})
	var values []int
	for _, member := range strings.Split(raw, ",") {
		var (
			part []int
			err  error
		)
		if strings.Contains(member, "-") {
			part, err = parseRange(member, f)
		} else {
			var v int
			v, err = parseValue(member, f)
			part = []int{v}
		}
		if err != nil {
			return nil, err
		}
		for _, v := range part {
			if _, dup := seen[v]; !dup {
				seen[v] = struct{}{}
				values = append(values, v)
			}
		}
	}
	sort.Ints(values)
	return values, nil
}

func parseRange(raw string, f core.Field) ([]int, error) {
	min, max := f.Bounds()
	fail := func(detail string, err error) error {
		return &core.FieldError{Field: f, Raw: raw, Form: core.FormRange, Detail: detail, Err: err}
	}

	startText, endText, _ := strings.Cut(raw, "-")
	start, ok := atoi(startText)
	if !ok {
		return nil, fail(fmt.Sprintf("start %q is not a number", startText), core.ErrSyntax)
	}
	end, ok := atoi(endText)
	if !ok {
		return nil, fail(fmt.Sprintf("end %q is not a number", endText), core.ErrSyntax)
	}
	if start < min || end > max {
		return nil, fail(fmt.Sprintf("must be within %d-%d", min, max), core.ErrOutOfRange)
	}
	if start > end {
		return nil, fail(fmt.Sprintf("start %d exceeds end %d", start, end), core.ErrInvertedRange)
	}
	return span(start, end), nil
}

func parseValue(raw string, f core.Field) (int, error) {
	v, ok := atoi(raw)
	if !ok {
		return 0, &core.FieldError{Field: f, Raw: raw, Form: core.FormValue, Detail: "not a number", Err: core.ErrSyntax}
	}
	if !f.Contains(v) {
		min, max := f.Bounds()
		return 0, &core.FieldError{
			Field:  f,
			Raw:    raw,
			Form:   core.FormValue,
			Detail: fmt.Sprintf("must be within %d-%d", min, max),
			Err:    core.ErrOutOfRange,
		}
	}
	return v, nil
}

// atoi accepts only unsigned decimal digits.
func atoi(s string) (int, bool) {
	if s == "" || len(s) > 9 {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

func span(start, end int) []int {
	values := make([]int, 0, end-start+1)
	for v := start; v <= end; v++ {
		values = append(values, v)
	}
	return values
}
