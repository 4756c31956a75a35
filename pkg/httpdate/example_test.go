package httpdate_test

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shapestone/shape-httpdate/pkg/httpdate"
)

func ExampleParse() {
	t, err := httpdate.Parse("Sunday, 06-Nov-94 08:49:37 GMT")
	if err != nil {
		panic(err)
	}
	fmt.Println(t.Format(time.RFC3339))
	// Output: 1994-11-06T08:49:37Z
}

func ExampleFormat() {
	t := time.Date(2016, time.October, 2, 14, 44, 11, 0, time.UTC)
	fmt.Println(httpdate.Format(t))
	// Output: Sun, 02 Oct 2016 14:44:11 GMT
}

func ExampleHttpDate_Before() {
	a, _ := httpdate.ParseString("Mon, 28 Feb 2000 23:59:59 GMT")
	b, _ := httpdate.ParseString("Tue Feb 29 00:00:00 2000")
	fmt.Println(a.Before(b), b.Unix()-a.Unix())
	// Output: true 1
}

func ExampleParseLenient() {
	r := httpdate.ParseLenient("sun, 7 nov 1994 08:48:37 utc")
	fmt.Println(r.OK, r.Date)
	for _, w := range r.Warnings {
		fmt.Println(w)
	}
	// Output:
	// true Mon, 07 Nov 1994 08:48:37 GMT
	// time zone "utc" treated as GMT
	// weekday Sunday does not match date, using Monday
}

func ExampleNewDecoder() {
	dec := httpdate.NewDecoder(strings.NewReader("Sun Nov  6 08:49:37 1994\nThu, 01 Jan 1970 00:00:00 GMT\n"))
	enc := httpdate.NewEncoder(os.Stdout)
	for {
		d, err := dec.Decode()
		if err != nil {
			break
		}
		_ = enc.Encode(d)
	}
	// Output:
	// Sun, 06 Nov 1994 08:49:37 GMT
	// Thu, 01 Jan 1970 00:00:00 GMT
}
