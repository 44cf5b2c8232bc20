// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package selector

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spatialcurrent/go-dfl/pkg/dfl"

	"github.com/spatialcurrent/layerdoc/pkg/feature"
)

// Dfl is a selector backed by a compiled DFL expression.
type Dfl struct {
	expression string
	node       dfl.Node
}

// Compile parses and compiles the expression.  Comments are removed first.
// An empty expression compiles to None.
func Compile(expression string) (Selector, error) {
	str := strings.TrimSpace(dfl.RemoveComments(expression))
	if len(str) == 0 {
		return None, nil
	}
	node, err := dfl.ParseCompile(str)
	if err != nil {
		return nil, errors.Wrapf(err, "error compiling selector %q", expression)
	}
	return &Dfl{expression: expression, node: node}, nil
}

func MustCompile(expression string) Selector {
	s, err := Compile(expression)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Dfl) Matches(f *feature.Feature) (bool, error) {
	_, ok, err := dfl.EvaluateBool(s.node, map[string]interface{}{}, f.Map(), dfl.DefaultFunctionMap, dfl.DefaultQuotes)
	if err != nil {
		return false, errors.Wrapf(err, "error evaluating selector %q against feature %s", s.expression, f.Id())
	}
	return ok, nil
}

func (s *Dfl) String() string {
	return s.expression
}
