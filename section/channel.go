package section

import "github.com/ldconv/ldconv/format"

// Channel is the fixed-size metadata record describing one channel.
//
// Records form a doubly linked chain through absolute offsets: PrevPtr of the first
// record and NextPtr of the last record are 0.
//
// Byte layout (124 bytes):
//
//	0   uint32  PrevPtr
//	4   uint32  NextPtr
//	8   uint32  DataPtr
//	12  uint32  Count
//	16  uint16  sequence counter (0x2EE1 + index)
//	18  uint16  type class code
//	20  uint16  sample byte width
//	22  uint16  Frequency
//	24  int16   Shift
//	26  int16   Multiplier
//	28  int16   Scale
//	30  int16   Decimals
//	32  [32]byte Name
//	64  [8]byte  ShortName
//	72  [12]byte Unit
//	84  40 reserved bytes
type Channel struct {
	// MetaPtr is the absolute offset of this record. It is not serialized.
	MetaPtr uint32
	PrevPtr uint32
	NextPtr uint32
	DataPtr uint32
	Count   uint32

	DataType  format.DataType
	Frequency uint16

	Shift      int16
	Multiplier int16
	Scale      int16
	Decimals   int16

	Name      string
	ShortName string
	Unit      string
}

// DataLength returns the byte length of the channel's sample array.
func (c *Channel) DataLength() int {
	return int(c.Count) * c.DataType.Width()
}

// Bytes serializes the record. index is the position of the record in the chain.
func (c *Channel) Bytes(index int) []byte {
	b := make([]byte, ChannelSize)

	engine.PutUint32(b[0:4], c.PrevPtr)
	engine.PutUint32(b[4:8], c.NextPtr)
	engine.PutUint32(b[8:12], c.DataPtr)
	engine.PutUint32(b[12:16], c.Count)
	engine.PutUint16(b[16:18], channelCounterBase+uint16(index))
	engine.PutUint16(b[18:20], c.DataType.ClassCode())
	engine.PutUint16(b[20:22], uint16(c.DataType.Width()))
	engine.PutUint16(b[22:24], c.Frequency)
	engine.PutUint16(b[24:26], uint16(c.Shift))
	engine.PutUint16(b[26:28], uint16(c.Multiplier))
	engine.PutUint16(b[28:30], uint16(c.Scale))
	engine.PutUint16(b[30:32], uint16(c.Decimals))
	putString(b[32:64], c.Name)
	putString(b[64:72], c.ShortName)
	putString(b[72:84], c.Unit)

	return b
}
