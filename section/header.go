package section

import "time"

// Header is the root record of an .ld file, always written at HeaderOffset.
//
// Byte layout (1762 bytes):
//
//	0    uint32  marker (0x40)
//	8    uint32  MetaPtr
//	12   uint32  DataPtr
//	36   uint32  EventPtr
//	64   uint16  x3 unknown constants
//	70   uint32  device serial
//	74   [8]byte device type
//	82   uint16  device version
//	84   uint16  unknown constant
//	86   uint32  channel count
//	94   [16]byte date (dd/mm/yyyy)
//	126  [16]byte time (hh:mm:ss)
//	158  [64]byte Driver
//	222  [64]byte VehicleID
//	350  [64]byte Venue
//	1502 uint32  pro logging flag
//	1572 [64]byte ShortComment
//
// All other bytes are zero.
type Header struct {
	// MetaPtr is the absolute offset of the first channel record.
	MetaPtr uint32
	// DataPtr is the absolute offset of the data region. It moves forward by
	// ChannelSize every time a channel record is added.
	DataPtr uint32
	// EventPtr is the absolute offset of the event record, 0 if there is none.
	EventPtr uint32

	Driver       string
	VehicleID    string
	Venue        string
	Time         time.Time
	ShortComment string

	// Event is the first link of the static chain.
	Event *Event
}

// NewHeader creates a header anchored at the fixed offsets, with the data region
// starting right at the first channel record position.
func NewHeader(event *Event) *Header {
	h := &Header{
		MetaPtr: FirstChannelOffset,
		DataPtr: FirstChannelOffset,
		Event:   event,
	}
	if event != nil {
		h.EventPtr = EventOffset
	}

	return h
}

// Bytes serializes the header with the given channel count.
func (h *Header) Bytes(channelCount uint32) []byte {
	b := make([]byte, HeaderSize)

	engine.PutUint32(b[0:4], headerMarker)
	engine.PutUint32(b[8:12], h.MetaPtr)
	engine.PutUint32(b[12:16], h.DataPtr)
	engine.PutUint32(b[36:40], h.EventPtr)

	engine.PutUint16(b[64:66], headerUnknown1)
	engine.PutUint16(b[66:68], headerUnknown2)
	engine.PutUint16(b[68:70], headerUnknown3)
	engine.PutUint32(b[70:74], deviceSerial)
	putString(b[74:82], deviceType)
	engine.PutUint16(b[82:84], deviceVersion)
	engine.PutUint16(b[84:86], headerUnknown4)
	engine.PutUint32(b[86:90], channelCount)

	putString(b[94:110], h.Time.Format(DateLayout))
	putString(b[126:142], h.Time.Format(TimeLayout))
	putString(b[158:222], h.Driver)
	putString(b[222:286], h.VehicleID)
	putString(b[350:414], h.Venue)

	engine.PutUint32(b[1502:1506], proLoggingMagic)
	putString(b[1572:1636], h.ShortComment)

	return b
}
