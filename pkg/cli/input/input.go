// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package input reads layer documents for commands.
package input

import (
	"bytes"
	"context"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spatialcurrent/go-reader-writer/pkg/grw"
	"github.com/spatialcurrent/go-sync-logger/pkg/gsl"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/spatialcurrent/layerdoc/pkg/document"
	"github.com/spatialcurrent/layerdoc/pkg/progress"
)

const (
	FlagTimeout          = "timeout"
	FlagInputCompression = "input-compression"
	FlagFilterCacheTTL   = "filter-cache-ttl"

	DefaultFilterCacheTTL = time.Minute
)

func InitInputFlags(flag *pflag.FlagSet) {
	flag.Duration(FlagTimeout, 0, "cancel reading and writing documents after the timeout, zero for no timeout")
	flag.String(FlagInputCompression, "", "the compression algorithm of documents, one of: "+strings.Join(grw.Algorithms, ", "))
	flag.Duration(FlagFilterCacheTTL, DefaultFilterCacheTTL, "cache the members of filter layers for the duration, zero to disable")
}

func Context(v *viper.Viper) (context.Context, context.CancelFunc) {
	if timeout := v.GetDuration(FlagTimeout); timeout > 0 {
		return context.WithTimeout(context.Background(), timeout)
	}
	return context.WithCancel(context.Background())
}

// ReadDocument reads and decodes the document at the uri.
func ReadDocument(ctx context.Context, v *viper.Viper, uri string, logger *gsl.Logger) (*document.Document, error) {
	alg := v.GetString(FlagInputCompression)

	reader, _, err := grw.ReadFromResource(&grw.ReadFromResourceInput{
		Uri:        uri,
		Alg:        alg,
		Dict:       grw.NoDict,
		BufferSize: grw.DefaultBufferSize,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "error opening document %q", uri)
	}
	b, err := reader.ReadAllAndClose()
	if err != nil {
		return nil, errors.Wrapf(err, "error reading document %q", uri)
	}

	start := time.Now()
	p := progress.FromContext(ctx)
	d, err := document.Decode(&document.DecodeInput{
		Reader:   bytes.NewReader(b),
		Progress: p,
		Logger:   logger,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "error decoding document %q", uri)
	}
	d.SetFilterCache(v.GetDuration(FlagFilterCacheTTL))

	logger.Debug(map[string]interface{}{
		"msg":         "decoded document",
		"uri":         uri,
		"compression": alg,
		"features":    p.Count(),
		"elapsed":     time.Since(start).String(),
	})
	return d, nil
}

// WriteDocument encodes the document and writes it to the uri.
// Files are written to a temporary file first and renamed into place.
func WriteDocument(ctx context.Context, d *document.Document, uri string, alg string, asTemplate bool) error {
	buf := new(bytes.Buffer)
	if err := d.Encode(buf, asTemplate, progress.FromContext(ctx)); err != nil {
		return errors.Wrapf(err, "error encoding document for %q", uri)
	}

	if uri == "" || uri == "-" {
		uri = "stdout"
	}
	if uri == "stdout" || uri == "stderr" || strings.Contains(uri, "://") {
		return writeAll(buf.Bytes(), uri, alg)
	}

	tmp := uri + ".tmp"
	if err := writeAll(buf.Bytes(), tmp, alg); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, uri); err != nil {
		os.Remove(tmp)
		return errors.Wrapf(err, "error moving %q to %q", tmp, uri)
	}
	return nil
}

func writeAll(b []byte, uri string, alg string) error {
	err := grw.WriteAllAndClose(&grw.WriteAllAndCloseInput{
		Bytes:   b,
		Uri:     uri,
		Alg:     alg,
		Dict:    grw.NoDict,
		Append:  false,
		Parents: false,
	})
	if err != nil {
		return errors.Wrapf(err, "error writing document to %q", uri)
	}
	return nil
}
