package section

// Absolute offsets of the fixed records.
const (
	HeaderOffset       = 0     // header record
	VehicleOffset      = 1762  // vehicle record
	VenueOffset        = 5078  // venue record
	EventOffset        = 8180  // event record
	FirstChannelOffset = 11336 // first channel record; the chain continues contiguously
)

// Serialized record sizes in bytes.
const (
	HeaderSize  = 1762
	VehicleSize = 260
	VenueSize   = 1100
	EventSize   = 1154
	ChannelSize = 124
)

// Header protocol constants. Their meaning is unknown; readers expect these exact values.
const (
	headerMarker       uint32 = 0x40
	headerUnknown1     uint16 = 1
	headerUnknown2     uint16 = 0x4240
	headerUnknown3     uint16 = 0xF
	deviceSerial       uint32 = 0x1F44
	deviceType                = "ADL"
	deviceVersion      uint16 = 420
	headerUnknown4     uint16 = 0xADB0
	proLoggingMagic    uint32 = 0xC81A4
	channelCounterBase uint16 = 0x2EE1
)

// Date and time layouts of the header.
const (
	DateLayout = "02/01/2006"
	TimeLayout = "15:04:05"
)
