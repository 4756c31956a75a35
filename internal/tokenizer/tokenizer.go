package tokenizer

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// NewTokenizer creates a tokenizer for HTTP-date text.
// Matchers are tried in order:
// 1. SP (whitespace runs)
// 2. Separators (comma, colon, dash)
// 3. Number (ASCII digit runs)
// 4. Word (ASCII letter runs)
// 5. Other (any single character, so tokenization never stalls)
//
// Whitespace is a token rather than skipped: the lenient parser uses it to
// tell "Nov  6" from "Nov-6".
func NewTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		SPMatcher(),

		tokenizer.StringMatcherFunc(TokenComma, ","),
		tokenizer.StringMatcherFunc(TokenColon, ":"),
		tokenizer.StringMatcherFunc(TokenDash, "-"),

		NumberMatcher(),
		WordMatcher(),

		OtherMatcher(),
	)
}

// NewTokenizerWithStream creates a tokenizer for HTTP-date text using a pre-configured stream.
func NewTokenizerWithStream(stream tokenizer.Stream) tokenizer.Tokenizer {
	tok := NewTokenizer()
	tok.InitializeFromStream(stream)
	return tok
}

// SPMatcher matches a run of spaces, tabs, CR and LF.
func SPMatcher() tokenizer.Matcher {
	return runMatcher(TokenSP, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\r' || r == '\n'
	})
}

// NumberMatcher matches a run of ASCII digits.
func NumberMatcher() tokenizer.Matcher {
	return runMatcher(TokenNumber, func(r rune) bool {
		return r >= '0' && r <= '9'
	})
}

// WordMatcher matches a run of ASCII letters.
func WordMatcher() tokenizer.Matcher {
	return runMatcher(TokenWord, func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	})
}

// OtherMatcher consumes exactly one character of any kind.
func OtherMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok {
			return nil
		}
		stream.NextChar()
		return tokenizer.NewToken(TokenOther, []rune{r})
	}
}

// runMatcher matches the longest non-empty run of characters accepted by in.
func runMatcher(kind string, in func(rune) bool) tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		for {
			r, ok := stream.PeekChar()
			if !ok || !in(r) {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}

		return tokenizer.NewToken(kind, value)
	}
}
