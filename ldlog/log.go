package ldlog

import "github.com/ldconv/ldconv/format"

// SampleRateKey is the metadata key holding the logger sample rate in Hz.
const SampleRateKey = "Sample Rate"

// DefaultFrequency is used when neither an override nor a sample rate is available.
const DefaultFrequency = 20

// Channel is one named series of samples. The encoder never modifies it.
type Channel struct {
	Name    string
	Unit    string
	Samples []float64
	Kind    format.Kind
}

// LogMetadata is the scalar metadata of a source log.
type LogMetadata struct {
	// Values holds the free-form key/value pairs of the source log.
	Values map[string]string
	// Frequency overrides the sample rate in Hz when non-zero.
	Frequency int
}
