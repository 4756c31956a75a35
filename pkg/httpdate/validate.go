package httpdate

import (
	"bytes"
	"io"
)

// Validate reports whether input is a valid HTTP-date. It returns nil or
// ErrInvalidDate.
func Validate(input string) error {
	_, err := ParseString(input)
	return err
}

// ValidateReader reads all data from r and validates it as a single
// HTTP-date.
func ValidateReader(r io.Reader) error {
	data, err := readAll(r)
	if err != nil {
		return err
	}
	_, err = ParseDate(data)
	return err
}

func readAll(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	_, err := buf.ReadFrom(r)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
