package token

import "strconv"

type Kind int

const (
	KindString Kind = iota
	KindLong
	KindDouble
	KindBool
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindLong:
		return "long"
	case KindDouble:
		return "double"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	default:
		return "string"
	}
}

// Literal is the reading of a bare value token.
type Literal struct {
	Kind   Kind
	Long   int64
	Double float64
	Bool   bool
}

// Classify reads a bare value token. Tokens made of digits and signs
// parse as longs, those also containing '.', 'e' or 'E' as doubles. A
// failed or out of range parse leaves the token a string.
func Classify(s string) Literal {
	switch s {
	case True:
		return Literal{Kind: KindBool, Bool: true}
	case False:
		return Literal{Kind: KindBool}
	case Null:
		return Literal{Kind: KindNull}
	}
	if s == "" {
		return Literal{}
	}
	couldBeLong, couldBeDouble := true, false
scan:
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '+', '-':
		case '.', 'e', 'E':
			couldBeLong, couldBeDouble = false, true
		default:
			couldBeLong, couldBeDouble = false, false
			break scan
		}
	}
	switch {
	case couldBeDouble:
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return Literal{Kind: KindDouble, Double: f}
		}
	case couldBeLong:
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Literal{Kind: KindLong, Long: v}
		}
	}
	return Literal{}
}
