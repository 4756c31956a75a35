package fastparser

import (
	"fmt"
	"strconv"

	coretok "github.com/shapestone/shape-core/pkg/tokenizer"
	"github.com/shapestone/shape-httpdate/internal/calendar"
	"github.com/shapestone/shape-httpdate/internal/tokenizer"
)

// LenientResult holds the result of lenient parsing.
type LenientResult struct {
	Date     Date
	Warnings []string
	OK       bool // Date is valid and may be used
}

// LenientParser provides best-effort HTTP-date parsing that never fails on
// malformed input. It tokenizes the text instead of relying on fixed
// offsets, so it accepts dates with odd spacing, lower-case names, a UTC
// zone or a wrong weekday, and reports every deviation as a warning.
type LenientParser struct {
	data     []byte
	warnings []string

	wday, mon, day int
	year           int
	hour, min, sec int
	haveTime       bool
}

// NewLenientParser creates a new lenient parser for the given data.
func NewLenientParser(data []byte) *LenientParser {
	return &LenientParser{data: data}
}

// Parse extracts a date with best effort. Well-formed input takes the strict
// path and produces no warnings.
func (p *LenientParser) Parse() *LenientResult {
	result := &LenientResult{}

	trimmed := TrimSpace(p.data)
	if len(trimmed) == 0 {
		p.addWarning("empty input")
		result.Warnings = p.warnings
		return result
	}
	if IsASCII(trimmed) {
		if d, err := Parse(trimmed); err == nil && Valid(d) {
			result.Date = d
			result.OK = true
			return result
		}
	}

	tok := tokenizer.NewTokenizer()
	tok.Initialize(string(trimmed))
	all, _ := tok.Tokenize()

	tokens := make([]coretok.Token, 0, len(all))
	for _, t := range all {
		if t.Kind() != tokenizer.TokenSP {
			tokens = append(tokens, t)
		}
	}

	p.scan(tokens)
	result.Date, result.OK = p.assemble()
	result.Warnings = p.warnings
	return result
}

// scan assigns every token to a date field.
func (p *LenientParser) scan(tokens []coretok.Token) {
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		v := t.ValueString()

		switch t.Kind() {
		case tokenizer.TokenWord:
			p.word(v)

		case tokenizer.TokenNumber:
			if !p.haveTime && i+1 < len(tokens) && tokens[i+1].Kind() == tokenizer.TokenColon {
				i = p.timeOfDay(tokens, i)
				continue
			}
			p.number(v)

		case tokenizer.TokenComma, tokenizer.TokenDash:
			// separators carry no information once tokenized

		case tokenizer.TokenColon:
			p.addWarning("ignored stray colon")

		default:
			p.addWarning("ignored unexpected character %q", v)
		}
	}
}

func (p *LenientParser) word(v string) {
	if w := matchWeekday(v); w != 0 && p.wday == 0 {
		p.wday = w
		return
	}
	if m := matchMonth(v); m != 0 && p.mon == 0 {
		p.mon = m
		return
	}
	switch {
	case v == "GMT":
	case eqFold(v, "GMT"), eqFold(v, "UTC"), eqFold(v, "UT"), eqFold(v, "Z"):
		p.addWarning("time zone %q treated as GMT", v)
	default:
		p.addWarning("ignored unknown word %q", v)
	}
}

func (p *LenientParser) number(v string) {
	n, err := strconv.Atoi(v)
	if err != nil || len(v) > 4 {
		p.addWarning("ignored number %q", v)
		return
	}
	switch {
	case len(v) == 4 && p.year == 0:
		p.year = n
	case len(v) <= 2 && p.day == 0:
		p.day = n
	case len(v) <= 2 && p.year == 0:
		p.year = int(expandYear(uint8(n)))
		p.addWarning("two-digit year %q read as %d", v, p.year)
	default:
		p.addWarning("ignored number %q", v)
	}
}

// timeOfDay reads "h:m[:s]" starting at the number tokens[i] and returns
// the index of the last number it consumed.
func (p *LenientParser) timeOfDay(tokens []coretok.Token, i int) int {
	var parts [3]int
	n := 0
	for {
		v := tokens[i].ValueString()
		if len(v) > 2 {
			p.addWarning("time component %q is too long", v)
		}
		parts[n], _ = strconv.Atoi(v)
		n++
		if n == 3 || i+2 >= len(tokens) ||
			tokens[i+1].Kind() != tokenizer.TokenColon ||
			tokens[i+2].Kind() != tokenizer.TokenNumber {
			break
		}
		i += 2
	}
	if n == 2 {
		p.addWarning("missing seconds, assuming :00")
	}
	p.hour, p.min, p.sec = parts[0], parts[1], parts[2]
	p.haveTime = true
	return i
}

// assemble range-checks the collected fields and fixes up the weekday.
func (p *LenientParser) assemble() (Date, bool) {
	ok := true
	if p.day == 0 {
		p.addWarning("missing day of month")
		ok = false
	}
	if p.mon == 0 {
		p.addWarning("missing month")
		ok = false
	}
	if p.year == 0 {
		p.addWarning("missing year")
		ok = false
	}
	if !ok {
		return Date{}, false
	}

	if p.year < 1970 || p.year > 9999 {
		p.addWarning("year %d out of range", p.year)
		return Date{}, false
	}
	if p.day > calendar.DaysInMonth(p.year, p.mon) {
		p.addWarning("day %d does not exist in %s %d", p.day, MonthName(uint8(p.mon)), p.year)
		return Date{}, false
	}
	if !p.haveTime {
		p.addWarning("missing time of day, assuming 00:00:00")
	}
	if p.hour > 23 || p.min > 59 || p.sec > 59 {
		p.addWarning("time of day %02d:%02d:%02d out of range", p.hour, p.min, p.sec)
		return Date{}, false
	}

	wday := calendar.Weekday(p.year, p.mon, p.day)
	switch {
	case p.wday == 0:
		p.addWarning("missing weekday")
	case p.wday != wday:
		p.addWarning("weekday %s does not match date, using %s",
			LongDayName(uint8(p.wday)), LongDayName(uint8(wday)))
	}

	return Date{
		Sec:  uint8(p.sec),
		Min:  uint8(p.min),
		Hour: uint8(p.hour),
		Day:  uint8(p.day),
		Mon:  uint8(p.mon),
		Year: uint16(p.year),
		Wday: uint8(wday),
	}, true
}

func (p *LenientParser) addWarning(format string, args ...interface{}) {
	p.warnings = append(p.warnings, fmt.Sprintf(format, args...))
}

// matchWeekday matches a three-letter or full weekday name, ignoring case.
func matchWeekday(v string) int {
	for i, name := range longDayNames {
		if eqFold(v, name) || eqFold(v, name[:3]) {
			return i + 1
		}
	}
	return 0
}

// matchMonth matches a three-letter or full month name, ignoring case.
func matchMonth(v string) int {
	if len(v) < 3 {
		return 0
	}
	for m := 1; m <= 12; m++ {
		if eqFold(v[:3], monthNames[3*(m-1):3*m]) && (len(v) == 3 || isMonthName(v, m)) {
			return m
		}
	}
	return 0
}

var fullMonthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func isMonthName(v string, m int) bool {
	return eqFold(v, fullMonthNames[m-1])
}

// eqFold is a fast ASCII case-insensitive string comparison.
func eqFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
