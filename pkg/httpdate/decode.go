package httpdate

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/shapestone/shape-httpdate/internal/fastparser"
)

var errLineTooLong = errors.New("line too long")

// Decoder reads HTTP-dates from an input stream, one per line. Blank lines
// are skipped. A single Decoder is not safe for concurrent use; create one
// per goroutine or serialize access externally.
type Decoder struct {
	r        *bufio.Reader
	line      int
	lenient   bool
	keepSpace bool
	warnings  []string
}

// NewDecoder returns a new decoder that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// UseLenient makes the decoder accept any line the lenient parser can
// recover a date from. Warnings for the last decoded line are available
// from Warnings.
func (dec *Decoder) UseLenient() {
	dec.lenient = true
}

// KeepSpace makes the decoder reject lines with leading or trailing
// whitespace instead of trimming it. The "\n" or "\r\n" line ending is
// still removed, and blank lines are still skipped.
func (dec *Decoder) KeepSpace() {
	dec.keepSpace = true
}

// Line returns the 1-indexed number of the last line read.
func (dec *Decoder) Line() int {
	return dec.line
}

// Warnings returns the lenient parser's warnings for the last decoded line.
func (dec *Decoder) Warnings() []string {
	return dec.warnings
}

// Decode reads the next date. It returns io.EOF when the stream holds no
// more dates. A line that is not a date yields an error wrapping
// ErrInvalidDate; decoding may continue with the next line.
func (dec *Decoder) Decode() (HttpDate, error) {
	for {
		line, err := dec.readLine()
		if err == errLineTooLong {
			return HttpDate{}, fmt.Errorf("httpdate: decode line %d: %w", dec.line, ErrInvalidDate)
		}
		if err != nil {
			return HttpDate{}, err
		}
		trimmed := fastparser.TrimSpace(line)
		if len(trimmed) == 0 {
			continue
		}
		if dec.keepSpace && len(trimmed) != len(chomp(line)) {
			dec.warnings = nil
			return HttpDate{}, fmt.Errorf("httpdate: decode line %d: %w", dec.line, ErrInvalidDate)
		}
		return dec.decodeLine(trimmed)
	}
}

func (dec *Decoder) decodeLine(line []byte) (HttpDate, error) {
	dec.warnings = nil
	if dec.lenient {
		result := UnmarshalLenient(line)
		dec.warnings = result.Warnings
		if !result.OK {
			return HttpDate{}, fmt.Errorf("httpdate: decode line %d: %w", dec.line, ErrInvalidDate)
		}
		return result.Date, nil
	}

	d, err := ParseDate(line)
	if err != nil {
		return HttpDate{}, fmt.Errorf("httpdate: decode line %d: %w", dec.line, err)
	}
	return d, nil
}

// chomp removes a trailing "\n" or "\r\n".
func chomp(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
	}
	return line
}

// readLine reads a line from the buffered reader. The returned slice is only
// valid until the next read.
func (dec *Decoder) readLine() ([]byte, error) {
	line, err := dec.r.ReadSlice('\n')
	if err == bufio.ErrBufferFull {
		// No date is that long; drop the rest of the line.
		for err == bufio.ErrBufferFull {
			_, err = dec.r.ReadSlice('\n')
		}
		if err != nil && err != io.EOF {
			return nil, err
		}
		dec.line++
		return nil, errLineTooLong
	}
	if err != nil && len(line) == 0 {
		return nil, err
	}
	dec.line++
	return line, nil
}
