package token

type TokenType int

const (
	TEOF TokenType = iota
	TString
	TInteger
	TFloat
	TIdent
	TColon
	TComma
	TLCurl
	TRCurl
	TLSquare
	TRSquare
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TEOF:     "TEOF",
		TString:  "TString",
		TInteger: "TInteger",
		TFloat:   "TFloat",
		TIdent:   "TIdent",
		TColon:   "TColon",
		TComma:   "TComma",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
	}[t]
}

// Token is one lexical element. Bytes holds the raw source text; for
// TString, Value holds the decoded string.
type Token struct {
	Type  TokenType
	Off   int
	Bytes []byte
	Value string
}

func (t *Token) String() string {
	if t.Type == TString {
		return t.Value
	}
	return string(t.Bytes)
}

// End is the offset just past the token.
func (t *Token) End() int {
	return t.Off + len(t.Bytes)
}
