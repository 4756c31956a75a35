package httpdate

import (
	"fmt"
	"time"

	"github.com/shapestone/shape-httpdate/internal/fastparser"
)

// Marshal returns the IMF-fixdate encoding of v.
//
// v may be an HttpDate, *HttpDate, time.Time, *time.Time, int64 (Unix
// seconds) or a Marshaler. Instants outside the representable range return
// ErrOutOfRange, and an HttpDate that does not hold a valid date (such as
// the zero value) returns ErrInvalidDate.
func Marshal(v interface{}) ([]byte, error) {
	if v == nil {
		return nil, fmt.Errorf("httpdate: Marshal(nil)")
	}

	d, err := toDate(v)
	if err != nil {
		return nil, err
	}
	return d.AppendFormat(make([]byte, 0, FormatLen)), nil
}

func toDate(v interface{}) (HttpDate, error) {
	d, err := anyToDate(v)
	if err != nil {
		return HttpDate{}, err
	}
	if !d.valid() {
		return HttpDate{}, ErrInvalidDate
	}
	return d, nil
}

func anyToDate(v interface{}) (HttpDate, error) {
	if m, ok := v.(Marshaler); ok {
		return m.MarshalHTTPDate()
	}

	switch x := v.(type) {
	case HttpDate:
		return x, nil
	case *HttpDate:
		if x == nil {
			return HttpDate{}, fmt.Errorf("httpdate: Marshal(nil *HttpDate)")
		}
		return *x, nil
	case time.Time:
		return TryFromTime(x)
	case *time.Time:
		if x == nil {
			return HttpDate{}, fmt.Errorf("httpdate: Marshal(nil *time.Time)")
		}
		return TryFromTime(*x)
	case int64:
		return TryFromUnix(x)
	default:
		return HttpDate{}, fmt.Errorf("httpdate: Marshal unsupported type %T", v)
	}
}

// Unmarshal parses the HTTP-date in data and stores the result in v, which
// must be a *HttpDate, *time.Time or *int64 (Unix seconds).
func Unmarshal(data []byte, v interface{}) error {
	if v == nil {
		return fmt.Errorf("httpdate: Unmarshal(nil)")
	}

	d, err := ParseDate(data)
	if err != nil {
		return err
	}

	switch target := v.(type) {
	case *HttpDate:
		*target = d
	case *time.Time:
		*target = d.Time()
	case *int64:
		*target = d.Unix()
	default:
		return fmt.Errorf("httpdate: Unmarshal unsupported type %T", v)
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler. The zero HttpDate returns
// ErrInvalidDate.
func (d HttpDate) MarshalText() ([]byte, error) {
	if !d.valid() {
		return nil, ErrInvalidDate
	}
	return d.AppendFormat(make([]byte, 0, FormatLen)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *HttpDate) UnmarshalText(data []byte) error {
	parsed, err := ParseDate(data)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d HttpDate) valid() bool {
	return fastparser.Valid(d.internal())
}
