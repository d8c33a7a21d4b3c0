package section

// Event describes the session the log was recorded in. It is written at EventOffset.
//
// Byte layout (1154 bytes): name [64]byte, session [64]byte, comment [1024]byte,
// venue pointer uint16.
type Event struct {
	Name     string
	Session  string
	Comment  string
	VenuePtr uint16
	Venue    *Venue
}

// NewEvent creates an event linked to venue. A nil venue leaves the pointer at 0.
func NewEvent(name, session, comment string, venue *Venue) *Event {
	e := &Event{Name: name, Session: session, Comment: comment, Venue: venue}
	if venue != nil {
		e.VenuePtr = VenueOffset
	}

	return e
}

// Bytes serializes the event record.
func (e *Event) Bytes() []byte {
	b := make([]byte, EventSize)
	putString(b[0:64], e.Name)
	putString(b[64:128], e.Session)
	putString(b[128:1152], e.Comment)
	engine.PutUint16(b[1152:1154], e.VenuePtr)

	return b
}

// Venue describes the track. It is written at VenueOffset.
//
// Byte layout (1100 bytes): name [64]byte, 1034 reserved bytes, vehicle pointer uint16.
type Venue struct {
	Name       string
	VehiclePtr uint16
	Vehicle    *Vehicle
}

// NewVenue creates a venue linked to vehicle. A nil vehicle leaves the pointer at 0.
func NewVenue(name string, vehicle *Vehicle) *Venue {
	v := &Venue{Name: name, Vehicle: vehicle}
	if vehicle != nil {
		v.VehiclePtr = VehicleOffset
	}

	return v
}

// Bytes serializes the venue record.
func (v *Venue) Bytes() []byte {
	b := make([]byte, VenueSize)
	putString(b[0:64], v.Name)
	engine.PutUint16(b[1098:1100], v.VehiclePtr)

	return b
}

// Vehicle describes the car. It is the last link of the static chain and is written
// at VehicleOffset.
//
// Byte layout (260 bytes): id [64]byte, 128 reserved bytes, weight uint32,
// type [32]byte, comment [32]byte.
type Vehicle struct {
	ID      string
	Weight  uint32
	Type    string
	Comment string
}

// Bytes serializes the vehicle record.
func (v *Vehicle) Bytes() []byte {
	b := make([]byte, VehicleSize)
	putString(b[0:64], v.ID)
	engine.PutUint32(b[192:196], v.Weight)
	putString(b[196:228], v.Type)
	putString(b[228:260], v.Comment)

	return b
}
