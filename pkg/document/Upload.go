// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package document

import (
	"github.com/pkg/errors"

	"github.com/spatialcurrent/layerdoc/pkg/feature"
	"github.com/spatialcurrent/layerdoc/pkg/layer"

	lerrors "github.com/spatialcurrent/layerdoc/pkg/errors"
)

// MarkUploaded records that the feature was uploaded and assigned a permanent id.
// The owning layer is re-keyed, the dirty flag is cleared, and features of the dirty
// layer are moved to the uploaded layer.  The feature is left untouched when the
// permanent id is taken by another feature of its destination layer.
func (d *Document) MarkUploaded(f *feature.Feature, permanent feature.FeatureId) error {
	if permanent.Kind == feature.KindUndefined {
		return &lerrors.ErrInvalidParameter{Name: "permanent id", Value: permanent.String()}
	}
	owner, _ := f.Owner().(layer.Layer)
	destination := owner
	if owner != nil && owner == layer.Layer(d.dirty) {
		destination = d.uploaded
	}
	if destination != nil {
		if g := destination.Find(permanent); g != nil && g != f {
			return &lerrors.ErrDuplicateFeature{Layer: destination.Name(), Id: permanent.String()}
		}
	}

	old := f.SetId(permanent)
	if owner != nil {
		owner.NotifyIdUpdate(old, f)
	}
	f.SetDirty(false)
	if owner == layer.Layer(d.dirty) {
		if err := d.dirty.Remove(f); err != nil {
			return errors.Wrapf(err, "error removing feature %s from dirty layer", f.Id())
		}
		if err := d.uploaded.Add(f); err != nil {
			return errors.Wrapf(err, "error adding feature %s to uploaded layer", f.Id())
		}
	}
	return nil
}

// DeleteFeature deletes the feature from its layer.  Features that exist upstream are
// retained as tombstones in the deleted layer so the deletion can be uploaded.
func (d *Document) DeleteFeature(f *feature.Feature) error {
	if owner, ok := f.Owner().(layer.Layer); ok && owner != nil {
		if err := owner.DeleteFeature(f); err != nil {
			return errors.Wrapf(err, "error deleting feature %s from layer %q", f.Id(), owner.Name())
		}
	}
	if f.Id().IsNew() {
		return nil
	}
	return d.deleted.DeleteFeature(f)
}
