// Package tokenizer provides HTTP-date tokenization using Shape's tokenizer framework.
package tokenizer

// Token type constants for HTTP-date text.
// Every layout is built from the same small set of lexical pieces, so the
// tokens do not encode which layout they came from.
const (
	TokenWord   = "Word"   // Sun, Sunday, Nov, GMT
	TokenNumber = "Number" // 06, 1994, 8
	TokenComma  = "Comma"  // ,
	TokenColon  = "Colon"  // :
	TokenDash   = "Dash"   // -
	TokenSP     = "SP"     // run of whitespace
	TokenOther  = "Other"  // any other single character

	// Special
	TokenEOF = "EOF" // End of input
)
