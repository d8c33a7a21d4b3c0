package ldlog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/gofrs/flock"

	"github.com/ldconv/ldconv/errs"
	"github.com/ldconv/ldconv/internal/pool"
	"github.com/ldconv/ldconv/logging"
)

// Serialize writes the complete file to w.
//
// The chain is terminated first: the last record's successor pointer becomes 0.
// Then the header is written at offset 0, followed by the event, venue and vehicle
// records at their absolute offsets, all channel records back to back from the first
// record's offset, and finally every sample array in chain order. The sample arrays
// land at their data pointers because the records end exactly where the data region
// begins.
//
// Returns:
//   - error: ErrEmptyChannelSet if no channel was added (nothing is written), or ErrIO
//     wrapping the failure of w
func (l *Log) Serialize(w io.WriteSeeker) error {
	if len(l.channels) == 0 {
		return errs.ErrEmptyChannelSet
	}

	l.channels[len(l.channels)-1].rec.NextPtr = 0

	if err := writeAt(w, 0, l.header.Bytes(uint32(len(l.channels))), "header"); err != nil {
		return err
	}

	if l.header.EventPtr > 0 {
		event := l.header.Event
		if err := writeAt(w, int64(l.header.EventPtr), event.Bytes(), "event"); err != nil {
			return err
		}

		if event.VenuePtr > 0 {
			venue := event.Venue
			if err := writeAt(w, int64(event.VenuePtr), venue.Bytes(), "venue"); err != nil {
				return err
			}

			if venue.VehiclePtr > 0 {
				if err := writeAt(w, int64(venue.VehiclePtr), venue.Vehicle.Bytes(), "vehicle"); err != nil {
					return err
				}
			}
		}
	}

	if _, err := w.Seek(int64(l.channels[0].rec.MetaPtr), io.SeekStart); err != nil {
		return fmt.Errorf("%w: seek channel records: %w", errs.ErrIO, err)
	}
	for i, c := range l.channels {
		if _, err := w.Write(c.rec.Bytes(i)); err != nil {
			return fmt.Errorf("%w: write channel record %d: %w", errs.ErrIO, i, err)
		}
	}

	for i, c := range l.channels {
		if _, err := w.Write(c.data); err != nil {
			return fmt.Errorf("%w: write channel data %d: %w", errs.ErrIO, i, err)
		}
	}

	return nil
}

func writeAt(w io.WriteSeeker, offset int64, b []byte, what string) error {
	if _, err := w.Seek(offset, io.SeekStart); err != nil {
		return fmt.Errorf("%w: seek %s: %w", errs.ErrIO, what, err)
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("%w: write %s: %w", errs.ErrIO, what, err)
	}

	return nil
}

// Bytes serializes the log into memory.
func (l *Log) Bytes() ([]byte, error) {
	if len(l.channels) == 0 {
		return nil, errs.ErrEmptyChannelSet
	}

	buf := pool.GetFileBuffer()
	defer pool.PutFileBuffer(buf)

	sb := pool.NewSeekBuffer(buf)
	if err := l.Serialize(sb); err != nil {
		return nil, err
	}

	return slices.Clone(sb.Bytes()), nil
}

// WriteFile serializes the log to path.
//
// The file is written to a temporary file in the same directory and renamed over
// path once complete, so path never holds a partial file. While writing, an
// exclusive lock on path+".lock" keeps concurrent writers off the same destination;
// the lock file is removed afterwards.
//
// Returns:
//   - error: ErrEmptyChannelSet before touching the file system, ErrOutputLocked,
//     or ErrIO for any file system failure
func (l *Log) WriteFile(path string) (err error) {
	if len(l.channels) == 0 {
		return errs.ErrEmptyChannelSet
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("%w: lock %s: %w", errs.ErrIO, path, err)
	}
	if !locked {
		return fmt.Errorf("%w: %s", errs.ErrOutputLocked, path)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
	}()

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", errs.ErrIO, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = l.Serialize(tmp); err != nil {
		return err
	}
	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("%w: chmod: %w", errs.ErrIO, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%w: sync: %w", errs.ErrIO, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: close: %w", errs.ErrIO, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: rename: %w", errs.ErrIO, err)
	}

	l.logger.Info("ld file written",
		logging.String("path", path),
		logging.Int("channels", len(l.channels)),
		logging.Any("bytes", l.FileSize()))

	return nil
}
