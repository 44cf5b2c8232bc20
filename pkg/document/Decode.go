// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package document

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/spatialcurrent/layerdoc/pkg/layer"
	"github.com/spatialcurrent/layerdoc/pkg/progress"

	lerrors "github.com/spatialcurrent/layerdoc/pkg/errors"
)

// Decode reads a document written by Encode.
//
// Decoding is all-or-nothing: if any layer fails to decode, or the progress is cancelled,
// no document is returned.  Unknown elements are skipped.  Bookkeeping layers missing from
// the input are created.
func Decode(input *DecodeInput) (*Document, error) {
	if input == nil || input.Reader == nil {
		return nil, &lerrors.ErrMissingObject{Type: "io.Reader", Name: "Reader"}
	}
	p := progress.OrNone(input.Progress)

	dec := xml.NewDecoder(input.Reader)

	root, err := findRoot(dec)
	if err != nil {
		return nil, err
	}

	name := ""
	version := 0
	for _, a := range root.Attr {
		switch a.Name.Local {
		case "name":
			name = a.Value
		case "version":
			v, err := strconv.Atoi(a.Value)
			if err != nil {
				return nil, &lerrors.ErrMalformedDocument{Element: ElementDocument, Attribute: "version", Reason: err.Error()}
			}
			version = v
		}
	}
	if version == 0 {
		return nil, &lerrors.ErrMalformedDocument{Element: ElementDocument, Attribute: "version", Reason: "missing"}
	}
	if version > Version && input.Logger != nil {
		input.Logger.Info(fmt.Sprintf("document version %d is newer than %d, unknown content is skipped", version, Version))
	}

	d := newEmpty(name)

	for {
		token, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return nil, &lerrors.ErrMalformedDocument{Element: ElementDocument, Reason: "unexpected end of document"}
			}
			return nil, &lerrors.ErrMalformedDocument{Element: ElementDocument, Reason: err.Error()}
		}
		switch t := token.(type) {
		case xml.StartElement:
			if !layer.IsElement(t.Name.Local) {
				if err := dec.Skip(); err != nil {
					return nil, errors.Wrapf(err, "error skipping element %q", t.Name.Local)
				}
				continue
			}
			l, err := layer.Decode(dec, t, p)
			if err != nil {
				return nil, err
			}
			if err := d.adopt(l); err != nil {
				return nil, err
			}
			if input.Logger != nil {
				input.Logger.Debug(fmt.Sprintf("decoded %s layer %q with %d features", l.ClassType(), l.Name(), l.Size()))
			}
		case xml.EndElement:
			d.ensureBookkeeping()
			return d, nil
		}
	}
}

func findRoot(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		token, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return xml.StartElement{}, &lerrors.ErrMalformedDocument{Element: ElementDocument, Reason: "missing"}
			}
			return xml.StartElement{}, &lerrors.ErrMalformedDocument{Element: ElementDocument, Reason: err.Error()}
		}
		if start, ok := token.(xml.StartElement); ok {
			if start.Name.Local != ElementDocument {
				return xml.StartElement{}, &lerrors.ErrMalformedDocument{Element: start.Name.Local, Reason: "expected " + ElementDocument}
			}
			return start, nil
		}
	}
}

// adopt attaches a decoded layer, binding the bookkeeping singletons.
func (d *Document) adopt(l layer.Layer) error {
	if d.Layer(l.Id()) != nil {
		return &lerrors.ErrMalformedDocument{Element: layer.ElementName(l), Attribute: "id", Reason: "duplicate layer id " + l.Id()}
	}
	duplicate := false
	switch v := l.(type) {
	case *layer.DirtyLayer:
		duplicate = d.dirty != nil
		d.dirty = v
	case *layer.UploadedLayer:
		duplicate = d.uploaded != nil
		d.uploaded = v
	case *layer.DeletedLayer:
		duplicate = d.deleted != nil
		d.deleted = v
	}
	if duplicate {
		return &lerrors.ErrMalformedDocument{Element: layer.ElementName(l), Reason: "duplicate bookkeeping layer"}
	}
	d.attach(l)
	return nil
}
