// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/siderolabs/gen/xslices"
	"gopkg.in/yaml.v3"
)

type fileReport struct {
	Path       string      `yaml:"path"`
	Chunks     []chunkInfo `yaml:"chunks"`
	TotalBytes int64       `yaml:"total_bytes"`
}

type chunkInfo struct {
	Offset int64 `yaml:"offset"`
	Length int   `yaml:"length"`
}

func (c chunkInfo) String() string {
	return fmt.Sprintf("%d\t%d", c.Offset, c.Length)
}

// MeanSize returns the mean chunk length.
func (r fileReport) MeanSize() uint64 {
	if len(r.Chunks) == 0 {
		return 0
	}

	return uint64(r.TotalBytes) / uint64(len(r.Chunks))
}

type renderFunc func(io.Writer, []fileReport) error

func renderer(format string) (renderFunc, error) {
	switch format {
	case "text":
		return renderText, nil
	case "yaml":
		return renderYAML, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

func renderText(w io.Writer, reports []fileReport) error {
	for _, report := range reports {
		if _, err := fmt.Fprintf(w, "# %s: %d chunks, %s, mean %s\n%s\n",
			report.Path,
			len(report.Chunks),
			humanize.IBytes(uint64(report.TotalBytes)),
			humanize.IBytes(report.MeanSize()),
			strings.Join(xslices.Map(report.Chunks, chunkInfo.String), "\n"),
		); err != nil {
			return err
		}
	}

	return nil
}

func renderYAML(w io.Writer, reports []fileReport) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(reports); err != nil {
		return err
	}

	return enc.Close()
}
