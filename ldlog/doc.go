// Package ldlog builds MoTeC .ld files from in-memory channel data.
//
// # Workflow
//
// A Log is created once per conversion, fed one channel at a time, and serialized once:
//
//	lg, err := ldlog.New(ldlog.LogMetadata{Values: meta}, ldlog.WithDriver("A. Driver"))
//	if err != nil {
//	    return err
//	}
//	for _, ch := range channels {
//	    if err := lg.AddChannel(ch); err != nil {
//	        return err
//	    }
//	}
//	err = lg.WriteFile("session.ld")
//
// # Layout
//
// New lays out the header and the static event, venue and vehicle records at
// their fixed offsets (see package section). Every AddChannel inserts one channel
// record at the end of the record chain, which starts at section.FirstChannelOffset.
// Because the records precede all sample data, each insertion pushes the data
// region, and every channel's data pointer, forward by section.ChannelSize. Pointers
// are therefore final as soon as AddChannel returns and the serializer never has to
// compute an offset.
//
// # Concurrency
//
// A Log is not safe for concurrent use. All AddChannel calls must complete before
// Serialize, WriteFile or Bytes is called.
package ldlog
