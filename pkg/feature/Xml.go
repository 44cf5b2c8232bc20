// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package feature

import (
	"encoding/xml"
	"strconv"

	"github.com/pkg/errors"

	lerrors "github.com/spatialcurrent/layerdoc/pkg/errors"
)

const (
	ElementFeature = "feature"
	ElementTag     = "tag"
)

// MarshalXML writes the feature record.  The box is omitted when empty.
func (f *Feature) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: ElementFeature}
	start.Attr = []xml.Attr{
		{Name: xml.Name{Local: "kind"}, Value: f.id.Kind.String()},
		{Name: xml.Name{Local: "id"}, Value: strconv.FormatInt(f.id.Numeric, 10)},
		{Name: xml.Name{Local: "dirty"}, Value: strconv.FormatBool(f.dirty)},
		{Name: xml.Name{Local: "deleted"}, Value: strconv.FormatBool(f.deleted)},
	}
	if !f.box.IsEmpty() {
		start.Attr = append(start.Attr,
			xml.Attr{Name: xml.Name{Local: "minlon"}, Value: formatFloat(f.box.Min.Lon)},
			xml.Attr{Name: xml.Name{Local: "minlat"}, Value: formatFloat(f.box.Min.Lat)},
			xml.Attr{Name: xml.Name{Local: "maxlon"}, Value: formatFloat(f.box.Max.Lon)},
			xml.Attr{Name: xml.Name{Local: "maxlat"}, Value: formatFloat(f.box.Max.Lat)},
		)
	}
	if err := e.EncodeToken(start); err != nil {
		return errors.Wrapf(err, "error encoding feature %s", f.id)
	}
	for _, t := range f.tags {
		tag := xml.StartElement{
			Name: xml.Name{Local: ElementTag},
			Attr: []xml.Attr{
				{Name: xml.Name{Local: "k"}, Value: t.Key},
				{Name: xml.Name{Local: "v"}, Value: t.Value},
			},
		}
		if err := e.EncodeToken(tag); err != nil {
			return errors.Wrapf(err, "error encoding tag %q of feature %s", t.Key, f.id)
		}
		if err := e.EncodeToken(tag.End()); err != nil {
			return errors.Wrapf(err, "error encoding tag %q of feature %s", t.Key, f.id)
		}
	}
	return e.EncodeToken(start.End())
}

// UnmarshalXML reads a feature record.  Unknown attributes and child elements are ignored.
func (f *Feature) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	attrs := map[string]string{}
	for _, a := range start.Attr {
		attrs[a.Name.Local] = a.Value
	}

	kindString, ok := attrs["kind"]
	if !ok {
		return &lerrors.ErrMalformedDocument{Element: ElementFeature, Attribute: "kind", Reason: "missing required attribute"}
	}
	kind, err := ParseIdKind(kindString)
	if err != nil {
		return &lerrors.ErrMalformedDocument{Element: ElementFeature, Attribute: "kind", Reason: err.Error()}
	}
	idString, ok := attrs["id"]
	if !ok {
		return &lerrors.ErrMalformedDocument{Element: ElementFeature, Attribute: "id", Reason: "missing required attribute"}
	}
	numeric, err := strconv.ParseInt(idString, 10, 64)
	if err != nil {
		return &lerrors.ErrMalformedDocument{Element: ElementFeature, Attribute: "id", Reason: err.Error()}
	}

	*f = Feature{id: FeatureId{Kind: kind, Numeric: numeric}, box: EmptyBox(), tags: make([]Tag, 0)}

	for _, name := range []string{"dirty", "deleted"} {
		if str, ok := attrs[name]; ok {
			b, err := strconv.ParseBool(str)
			if err != nil {
				return &lerrors.ErrMalformedDocument{Element: ElementFeature, Attribute: name, Reason: err.Error()}
			}
			if name == "dirty" {
				f.dirty = b
			} else {
				f.deleted = b
			}
		}
	}

	if _, ok := attrs["minlon"]; ok {
		values := make([]float64, 0, 4)
		for _, name := range []string{"minlon", "minlat", "maxlon", "maxlat"} {
			v, err := strconv.ParseFloat(attrs[name], 64)
			if err != nil {
				return &lerrors.ErrMalformedDocument{Element: ElementFeature, Attribute: name, Reason: err.Error()}
			}
			values = append(values, v)
		}
		f.box = NewCoordBox(values[0], values[1], values[2], values[3])
	}

	for {
		token, err := d.Token()
		if err != nil {
			return &lerrors.ErrMalformedDocument{Element: ElementFeature, Reason: err.Error()}
		}
		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == ElementTag {
				tag := Tag{}
				for _, a := range t.Attr {
					switch a.Name.Local {
					case "k":
						tag.Key = a.Value
					case "v":
						tag.Value = a.Value
					}
				}
				f.tags = append(f.tags, tag)
			}
			if err := d.Skip(); err != nil {
				return &lerrors.ErrMalformedDocument{Element: t.Name.Local, Reason: err.Error()}
			}
		case xml.EndElement:
			return nil
		}
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
