package encoding

import (
	"fmt"
	"math"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/ldconv/ldconv/endian"
	"github.com/ldconv/ldconv/errs"
	"github.com/ldconv/ldconv/format"
	"github.com/ldconv/ldconv/internal/pool"
)

// Number is any sample type the encoder accepts.
type Number interface {
	constraints.Integer | constraints.Float
}

// NumericEncoder encodes samples into a fixed-width sample array.
//
// Each sample occupies exactly DataType.Width() bytes in the output. The encoder
// borrows its buffer from a pool; call Finish to return it.
type NumericEncoder struct {
	buf      *pool.ByteBuffer
	engine   endian.EndianEngine
	dataType format.DataType
	params   Params
	count    int
}

// NewNumericEncoder creates an encoder for the given on-disk type.
//
// Returns:
//   - *NumericEncoder: encoder ready for Write and WriteSlice
//   - error: ErrUnsupportedDataType if dt has no encoder, or an invalid params error
func NewNumericEncoder(engine endian.EndianEngine, dt format.DataType, params Params) (*NumericEncoder, error) {
	switch dt { //nolint: exhaustive
	case format.TypeFloat32, format.TypeInt32, format.TypeInt16:
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedDataType, dt)
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	return &NumericEncoder{
		buf:      pool.GetDataBuffer(),
		engine:   engine,
		dataType: dt,
		params:   params,
	}, nil
}

// Write encodes a single sample.
//
// Panics if Finish has been called.
func (e *NumericEncoder) Write(v float64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.buf.Grow(e.dataType.Width())
	e.put(e.params.Transform(v))
	e.count++
}

// WriteSlice encodes a slice of samples with a single buffer growth.
//
// Panics if Finish has been called.
func (e *NumericEncoder) WriteSlice(values []float64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.buf.Grow(len(values) * e.dataType.Width())
	for _, v := range values {
		e.put(e.params.Transform(v))
	}
	e.count += len(values)
}

// Bytes returns the encoded samples. The slice is valid until the next write or Finish.
func (e *NumericEncoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	return e.buf.Bytes()
}

// Len returns the number of encoded samples.
func (e *NumericEncoder) Len() int {
	return e.count
}

// Size returns the number of encoded bytes.
func (e *NumericEncoder) Size() int {
	return e.count * e.dataType.Width()
}

// Finish returns the buffer to the pool. The encoder is unusable afterwards.
func (e *NumericEncoder) Finish() {
	if e.buf != nil {
		pool.PutDataBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// put appends one transformed value. The caller grows the buffer beforehand.
func (e *NumericEncoder) put(v float64) {
	b := e.buf.B
	switch e.dataType { //nolint: exhaustive
	case format.TypeFloat32:
		b = e.engine.AppendUint32(b, math.Float32bits(float32(v)))
	case format.TypeInt32:
		b = e.engine.AppendUint32(b, uint32(int32(v)))
	case format.TypeInt16:
		b = e.engine.AppendUint16(b, uint16(int16(v)))
	}
	e.buf.B = b
}

// Encode encodes samples into a newly allocated sample array owned by the caller.
func Encode[T Number](engine endian.EndianEngine, dt format.DataType, params Params, samples []T) ([]byte, error) {
	enc, err := NewNumericEncoder(engine, dt, params)
	if err != nil {
		return nil, err
	}
	defer enc.Finish()

	enc.buf.Grow(len(samples) * dt.Width())
	for _, s := range samples {
		enc.put(params.Transform(float64(s)))
	}
	enc.count = len(samples)

	return slices.Clone(enc.Bytes()), nil
}
