// Package ldconv converts telemetry logs into MoTeC .ld files.
//
// The .ld format is a fixed-layout little-endian binary: a header, a static
// event, venue and vehicle chain at fixed offsets, a linked list of channel
// records and one data array per channel. The encoder lives in package ldlog;
// this package wires it to the AiM CSV reader in package csvlog.
//
// # Basic Usage
//
// Converting a CSV export, compressed or not:
//
//	import "github.com/ldconv/ldconv"
//
//	err := ldconv.ConvertFile("session.csv.zst", "session.ld", 0,
//	    ldlog.WithDriver("A. Driver"),
//	    ldlog.WithVenue("Calabogie"),
//	)
//
// Building a log from channels directly:
//
//	lg, _ := ldlog.New(ldlog.LogMetadata{Frequency: 50})
//	_ = lg.AddChannel(ldlog.Channel{Name: "RPM", Unit: "rpm", Samples: rpm, Kind: format.KindFloat})
//	_ = lg.WriteFile("session.ld")
//
// # Package Structure
//
// This package provides convenient top-level wrappers for the most common use
// cases. For fine-grained control use ldlog and csvlog directly.
package ldconv

import (
	"github.com/ldconv/ldconv/csvlog"
	"github.com/ldconv/ldconv/ldlog"
)

// FromCSV builds an .ld log from a parsed CSV export.
//
// The export's metadata and frequency override drive the frequency resolution,
// and every channel is appended in column order.
//
// Parameters:
//   - src: parsed export
//   - opts: ldlog options describing the session
//
// Returns:
//   - *ldlog.Log: log ready to be serialized
//   - error: ErrInvalidFrequency, ErrEmptyChannelSet or ErrUnsupportedDataType
func FromCSV(src *csvlog.Log, opts ...ldlog.Option) (*ldlog.Log, error) {
	lg, err := ldlog.New(src.LogMetadata(), opts...)
	if err != nil {
		return nil, err
	}

	if err := lg.AddChannels(src.Channels); err != nil {
		return nil, err
	}

	return lg, nil
}

// ConvertFile reads the export at src and writes the .ld file at dst.
//
// A non-zero frequency overrides the export's sample rate. The destination
// directory must exist.
//
// Example:
//
//	err := ldconv.ConvertFile("session.csv", "session.ld", 50)
func ConvertFile(src, dst string, frequency int, opts ...ldlog.Option) error {
	parsed, err := csvlog.ParseFile(src, csvlog.WithFrequency(frequency))
	if err != nil {
		return err
	}

	lg, err := FromCSV(parsed, opts...)
	if err != nil {
		return err
	}

	return lg.WriteFile(dst)
}
