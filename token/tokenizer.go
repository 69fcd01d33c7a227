package token

// Sink receives the events of a Tokenizer in document order. Name
// precedes the value of each object member.
type Sink interface {
	Name(name string)
	String(s string)
	Long(v int64, raw string)
	Double(f float64, raw string)
	Bool(v bool)
	Null()
	StartObject()
	StartArray()
	Pop()
}

type state int

const (
	stTop       state = iota // before the top-level value
	stObject                 // a member name or '}'
	stAfterName              // ':'
	stMember                 // the value of a member
	stArray                  // an element or ']'
	stAfterItem              // ',', a close or the next item
	stDone                   // after the top-level value
)

// Tokenizer is a non-recursive state machine over a lenient JSON
// dialect. A Tokenizer may be reused after Reset.
type Tokenizer struct {
	// MaxDepth limits container nesting when positive.
	MaxDepth int

	sink    Sink
	d       []byte
	stack   []byte
	stopped bool
	span    Span
}

// Span is a byte range [Start, End) of the input.
type Span struct {
	Start, End int
}

func NewTokenizer(sink Sink) *Tokenizer {
	return &Tokenizer{sink: sink, stack: make([]byte, 0, 16)}
}

// Stop ends tokenizing after the current event. It may be called from
// the sink.
func (t *Tokenizer) Stop()         { t.stopped = true }
func (t *Tokenizer) Stopped() bool { return t.stopped }

// Span returns the input range of the event being delivered to the sink.
// For StartObject and StartArray End is the offset after the open;
// for Pop Start is the offset of the close.
func (t *Tokenizer) Span() Span { return t.span }

// Depth returns the number of open containers.
func (t *Tokenizer) Depth() int { return len(t.stack) }

func (t *Tokenizer) Reset() {
	t.d = nil
	t.stack = t.stack[:0]
	t.stopped = false
	t.span = Span{}
}

// Tokenize feeds the events of d to the sink. It returns nil without
// error checks at the end of input once Stop has been called.
func (t *Tokenizer) Tokenize(d []byte) error {
	t.Reset()
	t.d = d
	defer func() { t.d = nil }()
	var (
		st  = stTop
		i   = 0
		err error
	)
	for !t.stopped {
		i, err = skipSpace(d, i)
		if err != nil {
			return err
		}
		if i == len(d) {
			break
		}
		c := d[i]
		switch st {
		case stTop, stMember:
			i, st, err = t.value(i)
		case stArray:
			if c == ']' || c == '}' {
				i, st, err = t.close(i)
				break
			}
			i, st, err = t.value(i)
		case stObject:
			if c == '}' || c == ']' {
				i, st, err = t.close(i)
				break
			}
			i, err = t.name(i)
			st = stAfterName
		case stAfterName:
			if c != ':' {
				return t.unexpected(i, "expected ':'")
			}
			i++
			st = stMember
		case stAfterItem:
			switch c {
			case ',':
				i++
				st = t.itemState()
			case '}', ']':
				i, st, err = t.close(i)
			default:
				st = t.itemState()
			}
		case stDone:
			return t.unexpected(i, "content after the document")
		}
		if err != nil {
			return err
		}
	}
	if t.stopped || len(t.stack) == 0 {
		return nil
	}
	if t.stack[len(t.stack)-1] == '{' {
		return NewParseErr(d, len(d), ErrUnmatchedBrace)
	}
	return NewParseErr(d, len(d), ErrUnmatchedBracket)
}

func (t *Tokenizer) itemState() state {
	if t.stack[len(t.stack)-1] == '{' {
		return stObject
	}
	return stArray
}

func (t *Tokenizer) afterValue() state {
	if len(t.stack) == 0 {
		return stDone
	}
	return stAfterItem
}

func (t *Tokenizer) unexpected(i int, msg string) error {
	return errAt(t.d, i, ErrMalformedInput, "unexpected %q: %s", t.d[i], msg)
}

func (t *Tokenizer) push(i int, c byte) error {
	if t.MaxDepth > 0 && len(t.stack) >= t.MaxDepth {
		return errAt(t.d, i, ErrTooDeep, "limit %d", t.MaxDepth)
	}
	t.stack = append(t.stack, c)
	return nil
}

func (t *Tokenizer) close(i int) (int, state, error) {
	c := t.d[i]
	open := t.stack[len(t.stack)-1]
	if (c == '}') != (open == '{') {
		return i, stDone, errAt(t.d, i, ErrMismatchedClose, "%q closes %q", c, open)
	}
	t.stack = t.stack[:len(t.stack)-1]
	t.span = Span{i, i + 1}
	t.sink.Pop()
	return i + 1, t.afterValue(), nil
}

func (t *Tokenizer) value(i int) (int, state, error) {
	switch c := t.d[i]; c {
	case '{':
		if err := t.push(i, c); err != nil {
			return i, stDone, err
		}
		t.span = Span{i, i + 1}
		t.sink.StartObject()
		return i + 1, stObject, nil
	case '[':
		if err := t.push(i, c); err != nil {
			return i, stDone, err
		}
		t.span = Span{i, i + 1}
		t.sink.StartArray()
		return i + 1, stArray, nil
	case '"':
		s, j, err := t.quoted(i)
		if err != nil {
			return i, stDone, err
		}
		t.span = Span{i, j}
		t.sink.String(s)
		return j, t.afterValue(), nil
	case '}', ']', ',', ':', '/':
		return i, stDone, t.unexpected(i, "expected a value")
	}
	j := t.bare(i, false)
	raw := string(t.d[i:j])
	s, err := Unescape(raw)
	if err != nil {
		return i, stDone, errAt(t.d, i, ErrMalformedInput, "%v", err)
	}
	lit := Classify(s)
	t.span = Span{i, j}
	switch lit.Kind {
	case KindBool:
		t.sink.Bool(lit.Bool)
	case KindNull:
		t.sink.Null()
	case KindLong:
		t.sink.Long(lit.Long, raw)
	case KindDouble:
		t.sink.Double(lit.Double, raw)
	default:
		t.sink.String(s)
	}
	return j, t.afterValue(), nil
}

func (t *Tokenizer) name(i int) (int, error) {
	switch t.d[i] {
	case '"':
		s, j, err := t.quoted(i)
		if err != nil {
			return i, err
		}
		t.span = Span{i, j}
		t.sink.Name(s)
		return j, nil
	case '{', '[', ',', ':', '/':
		return i, t.unexpected(i, "expected a name")
	}
	j := t.bare(i, true)
	s, err := Unescape(string(t.d[i:j]))
	if err != nil {
		return i, errAt(t.d, i, ErrMalformedInput, "%v", err)
	}
	t.span = Span{i, j}
	t.sink.Name(s)
	return j, nil
}

// quoted scans the string starting at the quote at i and returns its
// contents and the offset after the closing quote.
func (t *Tokenizer) quoted(i int) (string, int, error) {
	d := t.d
	esc := false
	for j := i + 1; j < len(d); j++ {
		switch d[j] {
		case '\\':
			esc = true
			j++
		case '"':
			s := string(d[i+1 : j])
			if !esc {
				return s, j + 1, nil
			}
			s, err := Unescape(s)
			if err != nil {
				return "", i, errAt(d, i, ErrMalformedInput, "%v", err)
			}
			return s, j + 1, nil
		}
	}
	return "", i, errAt(d, i, ErrMalformedInput, "unterminated string")
}

// bare returns the end of the unquoted token starting at i with trailing
// blanks trimmed.
func (t *Tokenizer) bare(i int, isName bool) int {
	d := t.d
	j := i
scan:
	for ; j < len(d); j++ {
		switch d[j] {
		case '\r', '\n':
			break scan
		case ':':
			if isName {
				break scan
			}
		case ',', '}', ']':
			if !isName {
				break scan
			}
		case '/':
			if isCommentStart(d, j) {
				break scan
			}
		}
	}
	for j > i && (d[j-1] == ' ' || d[j-1] == '\t') {
		j--
	}
	return j
}
