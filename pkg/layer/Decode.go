// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package layer

import (
	"encoding/xml"

	"github.com/pkg/errors"

	"github.com/spatialcurrent/layerdoc/pkg/feature"
	"github.com/spatialcurrent/layerdoc/pkg/progress"

	lerrors "github.com/spatialcurrent/layerdoc/pkg/errors"
)

// Decode reads the layer element that begins with start.  The type tag selects the variant,
// then the metadata and the features are replayed in encoded order.
//
// Unknown attributes and child elements are skipped.  A missing required attribute or an
// unknown type tag returns ErrMalformedDocument.  If the progress is cancelled Decode
// returns ErrCancelled and no layer.
func Decode(dec *xml.Decoder, start xml.StartElement, p progress.Progress) (Layer, error) {
	p = progress.OrNone(p)

	a := newAttributes(start)

	id, err := a.required("id")
	if err != nil {
		return nil, err
	}
	name, err := a.required("name")
	if err != nil {
		return nil, err
	}

	var l Layer
	switch start.Name.Local {
	case ElementDrawingLayer:
		l = NewDrawingLayer(name)
	case ElementTrackLayer:
		l = NewTrackLayer(name, a.string("filename", ""))
	case ElementSpecialLayer:
		str, err := a.required("specialtype")
		if err != nil {
			return nil, err
		}
		specialType, err := ParseLayerType(str)
		if err != nil {
			return nil, &lerrors.ErrMalformedDocument{Element: start.Name.Local, Attribute: "specialtype", Reason: err.Error()}
		}
		if !IsSpecialType(specialType) {
			return nil, &lerrors.ErrMalformedDocument{Element: start.Name.Local, Attribute: "specialtype", Reason: str + " is not a special layer type"}
		}
		l = NewSpecialLayer(name, specialType, a.string("filename", ""))
	case ElementDirtyLayer:
		l = NewDirtyLayer(name)
	case ElementUploadedLayer:
		l = NewUploadedLayer(name)
	case ElementDeletedLayer:
		l = NewDeletedLayer(name)
	case ElementFilterLayer:
		expression, err := a.required("filter")
		if err != nil {
			return nil, err
		}
		fl, err := NewFilterLayer(id, name, expression)
		if err != nil {
			return nil, &lerrors.ErrMalformedDocument{Element: start.Name.Local, Attribute: "filter", Reason: err.Error()}
		}
		l = fl
	default:
		return nil, &lerrors.ErrMalformedDocument{Element: start.Name.Local, Reason: "unknown layer type"}
	}

	if err := decodeBase(l.base(), a); err != nil {
		return nil, err
	}
	l.base().id = id

	for {
		token, err := dec.Token()
		if err != nil {
			return nil, &lerrors.ErrMalformedDocument{Element: start.Name.Local, Reason: err.Error()}
		}
		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == ElementFeatures {
				if err := decodeFeatures(dec, l, p); err != nil {
					return nil, err
				}
				continue
			}
			if err := dec.Skip(); err != nil {
				return nil, &lerrors.ErrMalformedDocument{Element: t.Name.Local, Reason: err.Error()}
			}
		case xml.EndElement:
			if debugChecks {
				if err := l.CheckConsistency(); err != nil {
					panic(err)
				}
			}
			return l, nil
		}
	}
}

func decodeBase(b *Base, a *attributes) error {
	b.description = a.string("description", "")

	flags := []struct {
		name  string
		value *bool
	}{
		{"visible", &b.visible},
		{"selected", &b.selected},
		{"enabled", &b.enabled},
		{"readonly", &b.readonly},
		{"uploadable", &b.uploadable},
	}
	for _, f := range flags {
		v, err := a.bool(f.name, *f.value)
		if err != nil {
			return err
		}
		*f.value = v
	}
	switch b.self.(type) {
	case *SpecialLayer, *DeletedLayer, *FilterLayer:
		b.uploadable = false
	}

	alpha, err := a.float("alpha", 1.0)
	if err != nil {
		return err
	}
	b.SetAlpha(alpha)

	dirtyLevel, err := a.int("dirtylevel", 0)
	if err != nil {
		return err
	}
	if dirtyLevel < 0 {
		return &lerrors.ErrMalformedDocument{Element: a.element, Attribute: "dirtylevel", Reason: "negative dirty level"}
	}
	b.dirtyLevel = dirtyLevel

	return nil
}

func decodeFeatures(dec *xml.Decoder, l Layer, p progress.Progress) error {
	_, filter := l.(*FilterLayer)
	for {
		token, err := dec.Token()
		if err != nil {
			return &lerrors.ErrMalformedDocument{Element: ElementFeatures, Reason: err.Error()}
		}
		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local != feature.ElementFeature || filter {
				if err := dec.Skip(); err != nil {
					return &lerrors.ErrMalformedDocument{Element: t.Name.Local, Reason: err.Error()}
				}
				continue
			}
			if p.IsCancelled() {
				return &lerrors.ErrCancelled{Operation: "decoding layer " + l.Name()}
			}
			f := &feature.Feature{}
			if err := dec.DecodeElement(f, &t); err != nil {
				if _, ok := errors.Cause(err).(*lerrors.ErrMalformedDocument); ok {
					return err
				}
				return &lerrors.ErrMalformedDocument{Element: feature.ElementFeature, Reason: err.Error()}
			}
			if err := l.Add(f); err != nil {
				return &lerrors.ErrMalformedDocument{Element: feature.ElementFeature, Reason: err.Error()}
			}
			p.Advance(1)
		case xml.EndElement:
			return nil
		}
	}
}
