// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package feature

// Owner is the layer currently indexing a feature.
// Touch is called whenever the feature changes in a way derived views care about.
type Owner interface {
	Id() string
	Touch()
}
