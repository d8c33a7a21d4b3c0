// Package encoding converts channel samples into the raw sample arrays of an .ld file.
//
// A reader recovers a physical value from a stored sample with
//
//	value = (stored * 10^(-decimals) / scale + shift) * multiplier
//
// so the encoder applies the inverse:
//
//	stored = ((value / multiplier) - shift) * scale / 10^(-decimals)
//
// and then converts the result to the channel's on-disk data type. Float conversion
// rounds to nearest; integer conversion truncates toward zero. Values outside the
// range of the target type are not checked.
//
// The writer only ever uses IdentityParams (shift 0, multiplier 1, scale 1,
// decimals 0), under which stored == value. Readers in the wild do not agree on the
// sign of the decimals exponent, so non-zero decimals are avoided.
package encoding
