package ldlog

import (
	"fmt"
	"math"

	"github.com/ldconv/ldconv/encoding"
	"github.com/ldconv/ldconv/errs"
	"github.com/ldconv/ldconv/format"
	"github.com/ldconv/ldconv/logging"
	"github.com/ldconv/ldconv/section"
)

// channel is a channel record with its encoded sample array attached.
type channel struct {
	rec  section.Channel
	data []byte
}

// end returns the absolute offset just past the channel's sample array.
func (c *channel) end() uint64 {
	return uint64(c.rec.DataPtr) + uint64(len(c.data))
}

// AddChannel appends ch to the channel chain.
//
// The new record is placed right after the previous record, so the data region and
// the data pointer of every channel added before moves forward by one record. The new
// channel's samples are placed right after the previous channel's samples.
//
// A failed call leaves the Log unchanged.
//
// Returns:
//   - error: ErrEmptyChannelSet if ch has no samples, ErrUnsupportedDataType if its kind
//     has no on-disk type, ErrTooManySamples, or ErrOffsetOutOfRange if the file would
//     outgrow 32-bit pointers
func (l *Log) AddChannel(ch Channel) error {
	if len(ch.Samples) == 0 {
		return fmt.Errorf("%w: channel %q has no samples", errs.ErrEmptyChannelSet, ch.Name)
	}
	if uint64(len(ch.Samples)) > math.MaxUint32 {
		return fmt.Errorf("%w: channel %q has %d samples", errs.ErrTooManySamples, ch.Name, len(ch.Samples))
	}

	dt, ok := format.DataTypeOf(ch.Kind)
	if !ok {
		return fmt.Errorf("%w: channel %q has kind %s", errs.ErrUnsupportedDataType, ch.Name, ch.Kind)
	}

	params := encoding.IdentityParams
	data, err := encoding.Encode(l.engine, dt, params, ch.Samples)
	if err != nil {
		return fmt.Errorf("encode channel %q: %w", ch.Name, err)
	}

	if end := l.dataEnd() + section.ChannelSize + uint64(len(data)); end > math.MaxUint32 {
		return fmt.Errorf("%w: channel %q would end at offset %d", errs.ErrOffsetOutOfRange, ch.Name, end)
	}

	// The new record pushes the whole data region back by one record.
	l.header.DataPtr += section.ChannelSize
	for _, c := range l.channels {
		c.rec.DataPtr += section.ChannelSize
	}

	var metaPtr, prevMetaPtr, dataPtr uint32
	if n := len(l.channels); n > 0 {
		prev := l.channels[n-1]
		if prev.rec.NextPtr == 0 {
			// reopened after serialization terminated the chain
			prev.rec.NextPtr = prev.rec.MetaPtr + section.ChannelSize
		}
		metaPtr = prev.rec.NextPtr
		prevMetaPtr = prev.rec.MetaPtr
		dataPtr = prev.rec.DataPtr + uint32(len(prev.data))
	} else {
		metaPtr = l.header.MetaPtr
		prevMetaPtr = 0
		dataPtr = l.header.DataPtr
	}

	c := &channel{
		rec: section.Channel{
			MetaPtr:    metaPtr,
			PrevPtr:    prevMetaPtr,
			NextPtr:    metaPtr + section.ChannelSize,
			DataPtr:    dataPtr,
			Count:      uint32(len(ch.Samples)),
			DataType:   dt,
			Frequency:  l.frequency,
			Shift:      params.Shift,
			Multiplier: params.Multiplier,
			Scale:      params.Scale,
			Decimals:   params.Decimals,
			Name:       ch.Name,
			ShortName:  "",
			Unit:       ch.Unit,
		},
		data: data,
	}
	l.channels = append(l.channels, c)

	if l.names.Track(ch.Name) {
		l.logger.Warn("duplicate channel name",
			logging.String("channel", l.names.Stored(ch.Name)),
			logging.Int("index", len(l.channels)-1))
	}
	l.logger.Debug("channel added",
		logging.String("channel", ch.Name),
		logging.String("type", dt.String()),
		logging.Int("samples", len(ch.Samples)),
		logging.Uint64("meta_ptr", uint64(metaPtr)),
		logging.Uint64("data_ptr", uint64(dataPtr)))

	return nil
}

// AddChannels appends every channel in order and stops at the first failure.
func (l *Log) AddChannels(chs []Channel) error {
	for i, ch := range chs {
		if err := l.AddChannel(ch); err != nil {
			return fmt.Errorf("channel %d: %w", i, err)
		}
	}

	return nil
}

// dataEnd returns the offset just past the data region as currently laid out.
func (l *Log) dataEnd() uint64 {
	if n := len(l.channels); n > 0 {
		return l.channels[n-1].end()
	}

	return uint64(l.header.DataPtr)
}

// Len returns the number of channels added.
func (l *Log) Len() int {
	return len(l.channels)
}

// Channels returns copies of the channel records in chain order.
func (l *Log) Channels() []section.Channel {
	recs := make([]section.Channel, len(l.channels))
	for i, c := range l.channels {
		recs[i] = c.rec
	}

	return recs
}

// FileSize returns the size of the serialized file: the end of the last channel's
// sample array. It is 0 when no channel has been added.
func (l *Log) FileSize() int64 {
	if len(l.channels) == 0 {
		return 0
	}

	return int64(l.dataEnd())
}
