package jsn

// Kind identifies the lexical class of a Token.
//
// Declaration order is load-bearing: the lexer tries rules in this exact
// order at each offset and the first rule that matches wins, so an ambiguous
// prefix resolves to whichever kind is declared first. kindBlank is
// recognized and discarded; it never reaches the parser.
type Kind uint8

const (
	KindNull Kind = iota
	KindTrue
	KindFalse
	KindFloat
	KindInteger
	KindString
	KindLeftBrace
	KindRightBrace
	KindLeftBracket
	KindRightBracket
	KindColon
	KindComma
	kindBlank
)

var kindNames = [...]string{
	KindNull:         "Null",
	KindTrue:         "True",
	KindFalse:        "False",
	KindFloat:        "Float",
	KindInteger:      "Integer",
	KindString:       "String",
	KindLeftBrace:    "LeftBrace",
	KindRightBrace:   "RightBrace",
	KindLeftBracket:  "LeftBracket",
	KindRightBracket: "RightBracket",
	KindColon:        "Colon",
	KindComma:        "Comma",
	kindBlank:        "Blank",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Token is one lexical unit of a JSON text. Text holds the matched lexeme;
// for String tokens it is the content between the quotes. Offset is the
// byte position of the token in the input.
type Token struct {
	Kind   Kind
	Text   string
	Offset int
}

func (t Token) is(kind Kind) bool {
	return t.Kind == kind
}

// expect returns the token text if the token has the given kind,
// otherwise a ParseError naming the expected kind.
func (t Token) expect(kind Kind) (string, error) {
	if t.Kind != kind {
		return "", t.errorExpected(kind)
	}
	return t.Text, nil
}

// errorExpected builds a ParseError naming the set of kinds that would have
// been acceptable at this token's offset.
func (t Token) errorExpected(expected ...Kind) error {
	return &ParseError{Expected: expected, Got: t.Kind, Offset: t.Offset}
}
