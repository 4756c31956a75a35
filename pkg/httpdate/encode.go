package httpdate

import (
	"io"
)

// Encoder writes HTTP-dates to an output stream, one IMF-fixdate per line.
type Encoder struct {
	w   io.Writer
	buf []byte
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w, buf: make([]byte, 0, FormatLen+1)}
}

// Encode writes v followed by a newline. v may be any value Marshal
// accepts.
func (enc *Encoder) Encode(v interface{}) error {
	d, err := toDate(v)
	if err != nil {
		return err
	}
	enc.buf = d.AppendFormat(enc.buf[:0])
	enc.buf = append(enc.buf, '\n')
	_, err = enc.w.Write(enc.buf)
	return err
}
