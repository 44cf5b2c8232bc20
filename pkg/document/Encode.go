// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package document

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/spatialcurrent/layerdoc/pkg/layer"
	"github.com/spatialcurrent/layerdoc/pkg/progress"
)

const (
	ElementDocument = "LayerDocument"
	Version         = 1
)

// Encode writes the document as a LayerDocument element containing every layer in order.
//
// Layers are encoded concurrently into separate buffers, so the progress must be safe
// for concurrent use.  Nothing is written to w unless every layer encodes successfully.
func (d *Document) Encode(w io.Writer, asTemplate bool, p progress.Progress) error {
	p = progress.OrNone(p)

	layers := d.Layers()
	buffers := make([]*bytes.Buffer, len(layers))

	var g errgroup.Group
	for i, l := range layers {
		i, l := i, l
		g.Go(func() error {
			buf := new(bytes.Buffer)
			enc := xml.NewEncoder(buf)
			if err := layer.Encode(enc, l, asTemplate, p); err != nil {
				return errors.Wrapf(err, "error encoding layer %q", l.Name())
			}
			if err := enc.Flush(); err != nil {
				return errors.Wrapf(err, "error flushing layer %q", l.Name())
			}
			buffers[i] = buf
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	start := xml.StartElement{
		Name: xml.Name{Local: ElementDocument},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "version"}, Value: strconv.Itoa(Version)},
			{Name: xml.Name{Local: "name"}, Value: d.name},
		},
	}
	if err := enc.EncodeToken(start); err != nil {
		return errors.Wrap(err, "error encoding document start")
	}
	if err := enc.Flush(); err != nil {
		return errors.Wrap(err, "error flushing document start")
	}
	for _, buf := range buffers {
		if _, err := w.Write(buf.Bytes()); err != nil {
			return errors.Wrap(err, "error writing layer")
		}
	}
	if err := enc.EncodeToken(start.End()); err != nil {
		return errors.Wrap(err, "error encoding document end")
	}
	return enc.Flush()
}
