// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package parser parses command line values written as DFL expressions.
package parser

import (
	"github.com/pkg/errors"

	"github.com/spatialcurrent/go-dfl/pkg/dfl"

	lerrors "github.com/spatialcurrent/layerdoc/pkg/errors"
)

// ParseFloat64Array evaluates the expression, e.g., "[-77.1, 38.8, -76.9, 39.0]", as an array of numbers.
// An empty expression returns an empty array.
func ParseFloat64Array(expression string, name string) ([]float64, error) {
	if len(expression) == 0 {
		return make([]float64, 0), nil
	}
	_, arr, err := dfl.ParseCompileEvaluate(expression, dfl.NoVars, dfl.NoContext, dfl.DefaultFunctionMap, dfl.DefaultQuotes)
	if err != nil {
		return make([]float64, 0), errors.Wrap(err, (&lerrors.ErrInvalidParameter{Name: name, Value: expression}).Error())
	}
	values, ok := toFloat64Slice(arr)
	if !ok {
		return make([]float64, 0), &lerrors.ErrInvalidParameter{Name: name, Value: expression}
	}
	return values, nil
}

func toFloat64Slice(obj interface{}) ([]float64, bool) {
	switch arr := obj.(type) {
	case []float64:
		return arr, true
	case []int:
		values := make([]float64, 0, len(arr))
		for _, v := range arr {
			values = append(values, float64(v))
		}
		return values, true
	case []interface{}:
		values := make([]float64, 0, len(arr))
		for _, x := range arr {
			switch v := x.(type) {
			case float64:
				values = append(values, v)
			case int:
				values = append(values, float64(v))
			case int64:
				values = append(values, float64(v))
			default:
				return nil, false
			}
		}
		return values, true
	}
	return nil, false
}
