package ldlog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ldconv/ldconv/errs"
	"github.com/ldconv/ldconv/format"
	"github.com/ldconv/ldconv/section"
)

func makeChannels(n int) []Channel {
	chs := make([]Channel, n)
	for i := range chs {
		samples := make([]float64, i%7+1)
		for j := range samples {
			samples[j] = float64(i*100 + j)
		}
		kind := format.KindFloat
		if i%2 == 1 {
			kind = format.KindInteger
		}
		chs[i] = Channel{Name: fmt.Sprintf("ch%03d", i), Unit: "V", Samples: samples, Kind: kind}
	}

	return chs
}

func TestAddChannel_ChainInvariants(t *testing.T) {
	for _, n := range []int{1, 2, 3, 10, 64} {
		t.Run(fmt.Sprintf("%d channels", n), func(t *testing.T) {
			lg, _ := newTestLog(t)
			require.NoError(t, lg.AddChannels(makeChannels(n)))

			recs := lg.Channels()
			require.Len(t, recs, n)
			require.Equal(t, n, lg.Len())

			require.Zero(t, recs[0].PrevPtr)
			require.Equal(t, uint32(section.FirstChannelOffset), recs[0].MetaPtr)
			require.Equal(t, lg.Header().DataPtr, recs[0].DataPtr)
			require.Equal(t, uint32(section.FirstChannelOffset+n*section.ChannelSize), lg.Header().DataPtr)

			for i := 1; i < n; i++ {
				require.Equal(t, recs[i-1].MetaPtr, recs[i].PrevPtr)
				require.Equal(t, recs[i].MetaPtr, recs[i-1].NextPtr)
				require.Equal(t, recs[i-1].MetaPtr+section.ChannelSize, recs[i].MetaPtr)

				width := uint32(recs[i-1].DataType.Width())
				require.Equal(t, recs[i-1].DataPtr+width*recs[i-1].Count, recs[i].DataPtr)
			}

			// provisional until serialization
			require.Equal(t, recs[n-1].MetaPtr+section.ChannelSize, recs[n-1].NextPtr)

			_, err := lg.Bytes()
			require.NoError(t, err)
			require.Zero(t, lg.Channels()[n-1].NextPtr)
		})
	}
}

func TestAddChannel_ShiftsDataPointers(t *testing.T) {
	lg, _ := newTestLog(t)

	require.NoError(t, lg.AddChannel(rpmChannel()))
	headerBefore := lg.Header().DataPtr
	first := lg.Channels()[0]
	require.Equal(t, uint32(section.FirstChannelOffset+section.ChannelSize), headerBefore)
	require.Equal(t, headerBefore, first.DataPtr)

	require.NoError(t, lg.AddChannel(speedChannel()))
	require.Equal(t, headerBefore+section.ChannelSize, lg.Header().DataPtr)
	require.Equal(t, first.DataPtr+section.ChannelSize, lg.Channels()[0].DataPtr)

	// the metadata pointers never move
	require.Equal(t, first.MetaPtr, lg.Channels()[0].MetaPtr)
}

func TestAddChannel_RecordFields(t *testing.T) {
	lg, _ := newTestLog(t)
	require.NoError(t, lg.AddChannel(rpmChannel()))
	require.NoError(t, lg.AddChannel(speedChannel()))

	recs := lg.Channels()

	require.Equal(t, "RPM", recs[0].Name)
	require.Equal(t, "rpm", recs[0].Unit)
	require.Equal(t, format.TypeInt32, recs[0].DataType)
	require.Equal(t, uint32(5), recs[0].Count)

	require.Equal(t, "Speed", recs[1].Name)
	require.Equal(t, format.TypeFloat32, recs[1].DataType)

	for _, r := range recs {
		require.Equal(t, uint16(20), r.Frequency)
		require.Zero(t, r.Shift)
		require.Equal(t, int16(1), r.Multiplier)
		require.Equal(t, int16(1), r.Scale)
		require.Zero(t, r.Decimals)
		require.Empty(t, r.ShortName)
	}
}

func TestAddChannel_EmptySamples(t *testing.T) {
	lg, _ := newTestLog(t)
	require.NoError(t, lg.AddChannel(rpmChannel()))
	before := lg.Header()

	err := lg.AddChannel(Channel{Name: "Empty", Kind: format.KindFloat})
	require.ErrorIs(t, err, errs.ErrEmptyChannelSet)

	err = lg.AddChannel(Channel{Name: "Empty", Samples: []float64{}, Kind: format.KindFloat})
	require.ErrorIs(t, err, errs.ErrEmptyChannelSet)

	require.Equal(t, 1, lg.Len())
	require.Equal(t, before.DataPtr, lg.Header().DataPtr)
}

func TestAddChannel_UnsupportedKind(t *testing.T) {
	lg, _ := newTestLog(t)

	err := lg.AddChannel(Channel{Name: "Gear", Samples: []float64{1, 2}, Kind: format.Kind(0)})
	require.ErrorIs(t, err, errs.ErrUnsupportedDataType)
	require.Contains(t, err.Error(), "Gear")

	require.Equal(t, 0, lg.Len())
	require.Equal(t, uint32(section.FirstChannelOffset), lg.Header().DataPtr)
}

func TestAddChannels_StopsAtFirstError(t *testing.T) {
	lg, _ := newTestLog(t)

	err := lg.AddChannels([]Channel{
		rpmChannel(),
		{Name: "Bad", Samples: nil, Kind: format.KindFloat},
		speedChannel(),
	})
	require.ErrorIs(t, err, errs.ErrEmptyChannelSet)
	require.Contains(t, err.Error(), "channel 1")
	require.Equal(t, 1, lg.Len())
}

func TestAddChannel_DuplicateNameWarns(t *testing.T) {
	lg, rec := newTestLog(t)

	require.NoError(t, lg.AddChannel(rpmChannel()))
	require.NoError(t, lg.AddChannel(rpmChannel()))
	require.Equal(t, 2, lg.Len())

	warnings := rec.warnings()
	require.Len(t, warnings, 1)
	require.Equal(t, "duplicate channel name", warnings[0].msg)
}

func TestAddChannel_AfterSerialize(t *testing.T) {
	lg, _ := newTestLog(t)
	require.NoError(t, lg.AddChannel(rpmChannel()))

	_, err := lg.Bytes()
	require.NoError(t, err)
	require.Zero(t, lg.Channels()[0].NextPtr)

	require.NoError(t, lg.AddChannel(speedChannel()))
	recs := lg.Channels()
	require.Equal(t, recs[1].MetaPtr, recs[0].NextPtr)
	require.Equal(t, uint32(section.FirstChannelOffset+section.ChannelSize), recs[1].MetaPtr)
}

func TestFileSize(t *testing.T) {
	lg, _ := newTestLog(t)
	require.NoError(t, lg.AddChannel(rpmChannel()))
	require.NoError(t, lg.AddChannel(speedChannel()))

	last := lg.Channels()[1]
	require.Equal(t, int64(last.DataPtr)+int64(last.DataLength()), lg.FileSize())
	require.Equal(t, int64(11624), lg.FileSize())
}
