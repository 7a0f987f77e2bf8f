// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/siderolabs/go-gearcdc"
	"github.com/siderolabs/go-gearcdc/zstd"
)

type chunkOptions struct {
	avgSize     string
	ioChunkSize string
	output      string
	jobs        int
	utf32       bool
	zstd        bool
	verbose     bool
}

func newChunkCommand() *cobra.Command {
	var opts chunkOptions

	cmd := &cobra.Command{
		Use:   "chunk [file...]",
		Short: "Split files into content-defined chunks and print the boundaries",
		Long: `Split every file into content-defined chunks and print chunk offsets and lengths.

Standard input is read when no file is given or the file is "-".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}

			return runChunk(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.avgSize, "avg-size", "64KiB", "target average chunk size")
	cmd.Flags().StringVar(&opts.ioChunkSize, "io-chunk-size", humanize.IBytes(gearcdc.DefaultIOChunkSize), "bytes requested per read")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "output format: text or yaml")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "number of files chunked concurrently")
	cmd.Flags().BoolVar(&opts.utf32, "utf32", false, "keep cut points on 4-byte boundaries")
	cmd.Flags().BoolVar(&opts.zstd, "zstd", false, "decompress zstd input before chunking")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func runChunk(cmd *cobra.Command, paths []string, opts chunkOptions) error {
	stdinPaths := 0

	for _, path := range paths {
		if path == "-" {
			stdinPaths++
		}
	}

	if stdinPaths > 1 {
		return fmt.Errorf("standard input can only be chunked once, got %q %d times", "-", stdinPaths)
	}

	render, err := renderer(opts.output)
	if err != nil {
		return err
	}

	avgSize, err := parseSize("avg-size", opts.avgSize)
	if err != nil {
		return err
	}

	ioChunkSize, err := parseSize("io-chunk-size", opts.ioChunkSize)
	if err != nil {
		return err
	}

	params, err := gearcdc.NewParameters(avgSize)
	if err != nil {
		return err
	}

	logger, err := newLogger(opts.verbose)
	if err != nil {
		return err
	}

	defer logger.Sync() //nolint:errcheck

	logger.Debug("chunking parameters", zap.Stringer("params", params))

	reports := make([]fileReport, len(paths))

	var eg errgroup.Group

	eg.SetLimit(max(opts.jobs, 1))

	for i, path := range paths {
		eg.Go(func() error {
			report, err := chunkFile(cmd.InOrStdin(), path, opts.zstd, params,
				gearcdc.WithIOChunkSize(ioChunkSize),
				gearcdc.WithUTF32(opts.utf32),
				gearcdc.WithLogger(logger.With(zap.String("path", path))),
			)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			logger.Info("chunked file",
				zap.String("path", path),
				zap.Int("num_chunks", len(report.Chunks)),
				zap.Int64("total_bytes", report.TotalBytes),
			)

			reports[i] = report

			return nil
		})
	}

	if err = eg.Wait(); err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), reports)
}

func chunkFile(stdin io.Reader, path string, compressed bool, params gearcdc.Parameters, opts ...gearcdc.OptionFunc) (fileReport, error) {
	var r io.Reader = stdin

	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fileReport{}, err
		}

		defer f.Close() //nolint:errcheck

		r = f
	}

	var src gearcdc.ByteSource

	if compressed {
		zsrc, err := zstd.NewSource(r)
		if err != nil {
			return fileReport{}, err
		}

		defer zsrc.Close() //nolint:errcheck

		src = zsrc
	} else {
		src = gearcdc.NewReaderSource(r)
	}

	s, err := gearcdc.NewStreamWithParameters(src, params, opts...)
	if err != nil {
		return fileReport{}, err
	}

	report := fileReport{
		Path: path,
	}

	for chunk, err := range s.All() {
		if err != nil {
			return fileReport{}, err
		}

		report.Chunks = append(report.Chunks, chunkInfo{
			Offset: s.Offset() - int64(len(chunk)),
			Length: len(chunk),
		})
	}

	report.TotalBytes = s.Offset()

	return report, nil
}

func parseSize(flag, value string) (int, error) {
	size, err := humanize.ParseBytes(value)
	if err != nil {
		return 0, fmt.Errorf("invalid --%s: %w", flag, err)
	}

	if size == 0 || size > 1<<31-1 {
		return 0, fmt.Errorf("invalid --%s: %s is out of range", flag, value)
	}

	return int(size), nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)

	return cfg.Build()
}
