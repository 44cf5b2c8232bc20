// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package serializer writes objects to a uri using go-simple-serializer formats.
package serializer

import (
	"github.com/pkg/errors"

	"github.com/spatialcurrent/go-reader-writer/pkg/grw"
	"github.com/spatialcurrent/go-simple-serializer/pkg/gss"
)

type SerializeInput struct {
	Uri               string
	Alg               string
	Append            bool
	Parents           bool
	Object            interface{}
	Format            string
	Header            []interface{}
	Limit             int
	Pretty            bool
	Sorted            bool
	Reversed          bool
	LineSeparator     string
	KeyValueSeparator string
}

// Serialize serializes the object and writes it to the uri.
// The uris "stdout" and "stderr" write to the standard streams.
func Serialize(input *SerializeInput) error {
	b, err := gss.SerializeBytes(&gss.SerializeBytesInput{
		Object:            input.Object,
		Format:            input.Format,
		Header:            input.Header,
		Limit:             input.Limit,
		Pretty:            input.Pretty,
		Sorted:            input.Sorted,
		Reversed:          input.Reversed,
		LineSeparator:     input.LineSeparator,
		KeyValueSeparator: input.KeyValueSeparator,
	})
	if err != nil {
		return errors.Wrapf(err, "error serializing object for uri %q", input.Uri)
	}

	if len(b) > 0 && b[len(b)-1] != '\n' {
		b = append(b, '\n')
	}

	err = grw.WriteAllAndClose(&grw.WriteAllAndCloseInput{
		Bytes:   b,
		Uri:     input.Uri,
		Alg:     input.Alg,
		Dict:    grw.NoDict,
		Append:  input.Append,
		Parents: input.Parents,
	})
	if err != nil {
		return errors.Wrapf(err, "error writing object to uri %q", input.Uri)
	}

	return nil
}
