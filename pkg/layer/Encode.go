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

	"github.com/pkg/errors"

	"github.com/spatialcurrent/layerdoc/pkg/feature"
	"github.com/spatialcurrent/layerdoc/pkg/progress"

	lerrors "github.com/spatialcurrent/layerdoc/pkg/errors"
)

// Encode writes the layer as an xml element named by its type tag.
//
// The metadata and flags are written as attributes in a fixed order followed by
// the variant attributes.  The features are written inside a features element,
// unless asTemplate is true, in which case the element is written empty.
// Logically deleted features are only written by the deleted layer.
//
// The progress is polled before every feature.  If it is cancelled, Encode returns
// ErrCancelled and the output must be discarded.
func Encode(enc *xml.Encoder, l Layer, asTemplate bool, p progress.Progress) error {
	p = progress.OrNone(p)

	name := ElementName(l)
	if len(name) == 0 {
		return &lerrors.ErrInvalidParameter{Name: "layer", Value: l}
	}

	b := l.base()

	start := xml.StartElement{
		Name: xml.Name{Local: name},
		Attr: []xml.Attr{
			attr("id", b.id),
			attr("name", b.name),
			attr("description", b.description),
			attr("visible", strconv.FormatBool(b.visible)),
			attr("selected", strconv.FormatBool(b.selected)),
			attr("enabled", strconv.FormatBool(b.enabled)),
			attr("readonly", strconv.FormatBool(b.readonly)),
			attr("uploadable", strconv.FormatBool(b.uploadable)),
			attr("alpha", strconv.FormatFloat(b.alpha, 'g', -1, 64)),
			attr("dirtylevel", strconv.Itoa(b.dirtyLevel)),
		},
	}

	switch v := l.(type) {
	case *TrackLayer:
		start.Attr = append(start.Attr, attr("filename", v.filename))
	case *SpecialLayer:
		start.Attr = append(start.Attr, attr("filename", v.filename), attr("specialtype", v.specialType.String()))
	case *FilterLayer:
		start.Attr = append(start.Attr, attr("filter", v.expression))
	}

	if err := enc.EncodeToken(start); err != nil {
		return errors.Wrapf(err, "error encoding layer %q", b.name)
	}

	features := make([]*feature.Feature, 0)
	if !asTemplate {
		if _, ok := l.(*FilterLayer); !ok {
			_, tombstones := l.(*DeletedLayer)
			for _, f := range b.features {
				if f.IsDeleted() && !tombstones {
					continue
				}
				features = append(features, f)
			}
		}
	}

	featuresStart := xml.StartElement{Name: xml.Name{Local: ElementFeatures}}
	if !asTemplate {
		featuresStart.Attr = []xml.Attr{attr("count", strconv.Itoa(len(features)))}
	}
	if err := enc.EncodeToken(featuresStart); err != nil {
		return errors.Wrapf(err, "error encoding features of layer %q", b.name)
	}
	for _, f := range features {
		if p.IsCancelled() {
			return &lerrors.ErrCancelled{Operation: "encoding layer " + b.name}
		}
		if err := enc.Encode(f); err != nil {
			return errors.Wrapf(err, "error encoding layer %q", b.name)
		}
		p.Advance(1)
	}
	if err := enc.EncodeToken(featuresStart.End()); err != nil {
		return errors.Wrapf(err, "error encoding features of layer %q", b.name)
	}

	if err := enc.EncodeToken(start.End()); err != nil {
		return errors.Wrapf(err, "error encoding layer %q", b.name)
	}
	return nil
}

func attr(name string, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}
