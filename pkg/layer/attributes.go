// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package layer

import (
	"encoding/xml"
	"strconv"

	lerrors "github.com/spatialcurrent/layerdoc/pkg/errors"
)

// attributes gives typed access to the attributes of an element.  Unknown attributes are ignored.
type attributes struct {
	element string
	values  map[string]string
}

func newAttributes(start xml.StartElement) *attributes {
	values := make(map[string]string, len(start.Attr))
	for _, a := range start.Attr {
		values[a.Name.Local] = a.Value
	}
	return &attributes{element: start.Name.Local, values: values}
}

func (a *attributes) required(name string) (string, error) {
	value, ok := a.values[name]
	if !ok {
		return "", &lerrors.ErrMalformedDocument{Element: a.element, Attribute: name, Reason: "missing required attribute"}
	}
	return value, nil
}

func (a *attributes) string(name string, fallback string) string {
	if value, ok := a.values[name]; ok {
		return value
	}
	return fallback
}

func (a *attributes) bool(name string, fallback bool) (bool, error) {
	value, ok := a.values[name]
	if !ok {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback, &lerrors.ErrMalformedDocument{Element: a.element, Attribute: name, Reason: err.Error()}
	}
	return b, nil
}

func (a *attributes) float(name string, fallback float64) (float64, error) {
	value, ok := a.values[name]
	if !ok {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback, &lerrors.ErrMalformedDocument{Element: a.element, Attribute: name, Reason: err.Error()}
	}
	return f, nil
}

func (a *attributes) int(name string, fallback int) (int, error) {
	value, ok := a.values[name]
	if !ok {
		return fallback, nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fallback, &lerrors.ErrMalformedDocument{Element: a.element, Attribute: name, Reason: err.Error()}
	}
	return i, nil
}
