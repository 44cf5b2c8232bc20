// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package layer

// DrawingLayer is a plain editable layer.
type DrawingLayer struct {
	Base
}

func NewDrawingLayer(name string) *DrawingLayer {
	l := &DrawingLayer{}
	l.init(l, name)
	return l
}

func (l *DrawingLayer) ClassType() LayerType {
	return DrawingLayerType
}

func (l *DrawingLayer) ClassGroups() LayerGroups {
	return GroupDraw
}
