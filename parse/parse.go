package parse

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/y-lohse/ink/debug"
	"github.com/y-lohse/ink/encode"
	"github.com/y-lohse/ink/ir"
)

// Parse decodes one inkc document. On error no tree is returned.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth, version: ir.CurrentVersion}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{d: d, doc: newPosDoc(d), opts: pOpts}
	res, err := p.parseDoc()
	if err != nil {
		if debug.Parse() {
			debug.Logf("parse failed: %v\n", err)
		}
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parsed %d bytes\n", len(d))
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

type parser struct {
	d     []byte
	i     int
	doc   *PosDoc
	opts  *parseOpts
	depth int
}

func (p *parser) parseDoc() (*ir.Node, error) {
	if err := p.header(); err != nil {
		return nil, err
	}
	if p.i >= len(p.d) {
		return nil, p.errAt(p.i, fmt.Errorf("%w: wanted root container", ErrUnexpectedEOF))
	}
	if p.d[p.i] != '{' {
		return nil, p.errAt(p.i, fmt.Errorf("%w root container, got %q", ErrExpected, p.d[p.i]))
	}
	root, err := p.node()
	if err != nil {
		return nil, err
	}
	if p.i != len(p.d) {
		return nil, p.errAt(p.i, fmt.Errorf("%w: %d bytes after root", ErrTrailing, len(p.d)-p.i))
	}
	return root, nil
}

func (p *parser) header() error {
	if !bytes.HasPrefix(p.d, []byte(encode.Header)) {
		return p.errAt(0, fmt.Errorf("%w: missing %q", ErrHeader, encode.Header))
	}
	p.i = len(encode.Header)
	vs, err := p.until('\n')
	if err != nil {
		return p.errAt(len(encode.Header), fmt.Errorf("%w: unterminated header", ErrHeader))
	}
	v, err := strconv.Atoi(vs)
	if err != nil || strconv.Itoa(v) != vs {
		return p.errAt(len(encode.Header), fmt.Errorf("%w: version %q", ErrHeader, vs))
	}
	if v != p.opts.version {
		return p.errAt(len(encode.Header), &VersionError{Got: v, Want: p.opts.version})
	}
	return nil
}

func (p *parser) node() (*ir.Node, error) {
	start := p.i
	n, err := p.dispatch()
	if err != nil {
		return nil, err
	}
	if err := n.Check(); err != nil {
		return nil, p.errAt(start, fmt.Errorf("%w: %w", ErrInvalid, err))
	}
	p.track(n, start)
	return n, nil
}

func (p *parser) dispatch() (*ir.Node, error) {
	start := p.i
	r, size := p.peek()
	switch r {
	case -1:
		return nil, p.errAt(start, fmt.Errorf("%w: wanted content", ErrUnexpectedEOF))
	case '{':
		return p.container()
	case '"':
		p.i++
		s, err := p.until('"')
		if err != nil {
			return nil, p.errAt(start, fmt.Errorf("%w: unterminated string", ErrUnexpectedEOF))
		}
		return ir.FromString(s), nil
	case '\n':
		p.i++
		return ir.Newline(), nil
	case 'G':
		p.i++
		return p.glue()
	case '(':
		p.i += size
		return ir.FromCommand(ir.EvalStart), nil
	case ')':
		p.i += size
		return ir.FromCommand(ir.EvalEnd), nil
	case '«':
		p.i += size
		return ir.FromCommand(ir.BeginString), nil
	case '»':
		p.i += size
		return ir.FromCommand(ir.EndString), nil
	case '#':
		p.i++
		return p.command()
	case '.':
		p.i++
		op, err := p.token()
		if err != nil {
			return nil, err
		}
		return ir.FromNativeCall(op), nil
	case '>':
		return p.divert()
	case '=':
		p.i++
		return p.assign()
	case '?':
		p.i++
		if p.accept('&') {
			path, err := p.token()
			if err != nil {
				return nil, err
			}
			return ir.ReadCount(path), nil
		}
		name, err := p.token()
		if err != nil {
			return nil, err
		}
		return ir.VarRef(name), nil
	case '*':
		p.i++
		return p.choice()
	case 'B':
		p.i++
		return p.branch()
	}
	if r == '-' || ('0' <= r && r <= '9') {
		return p.number()
	}
	return nil, p.errAt(start, fmt.Errorf("%w %q", ErrUnexpected, r))
}

func (p *parser) container() (*ir.Node, error) {
	start := p.i
	if err := p.expect('{'); err != nil {
		return nil, err
	}
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.opts.maxDepth {
		return nil, p.errAt(start, fmt.Errorf("%w: limit %d", ErrTooDeep, p.opts.maxDepth))
	}
	name := ""
	if p.accept('\'') {
		var err error
		name, err = p.until('\'')
		if err != nil {
			return nil, p.errAt(start, fmt.Errorf("%w: unterminated container name", ErrUnexpectedEOF))
		}
		if name == "" {
			return nil, p.errAt(start+1, fmt.Errorf("%w empty container name", ErrUnexpected))
		}
	}
	c := ir.NewContainer(name)

	const (
		inContent = iota
		afterNamed
		afterFlags
	)
	state := inContent
	for {
		if p.i >= len(p.d) {
			return nil, p.errAt(p.i, fmt.Errorf("%w: container opened at offset %d not closed", ErrUnexpectedEOF, start))
		}
		switch p.d[p.i] {
		case '}':
			p.i++
			return c, nil
		case '[':
			if state != inContent {
				return nil, p.errAt(p.i, fmt.Errorf("%w '[' after named content or count flags", ErrUnexpected))
			}
			if err := p.namedContent(c); err != nil {
				return nil, err
			}
			state = afterNamed
		case 'f':
			if state == afterFlags {
				return nil, p.errAt(p.i, fmt.Errorf("%w repeated count flags", ErrUnexpected))
			}
			p.i++
			flags, err := p.flags(false)
			if err != nil {
				return nil, err
			}
			c.SetCountFlags(flags)
			state = afterFlags
		default:
			if state != inContent {
				return nil, p.errAt(p.i, fmt.Errorf("%w '}', got %q", ErrExpected, p.d[p.i]))
			}
			n, err := p.node()
			if err != nil {
				return nil, err
			}
			c.AddContent(n)
		}
	}
}

func (p *parser) namedContent(c *ir.Node) error {
	start := p.i
	p.i++
	for {
		if p.i >= len(p.d) {
			return p.errAt(start, fmt.Errorf("%w: named content not closed", ErrUnexpectedEOF))
		}
		if p.d[p.i] == ']' {
			if len(c.Named) == 0 {
				return p.errAt(start, fmt.Errorf("%w: empty block", ErrNamedContent))
			}
			p.i++
			return nil
		}
		at := p.i
		if p.d[p.i] != '{' {
			return p.errAt(at, fmt.Errorf("%w: entries must be containers, got %q", ErrNamedContent, p.d[p.i]))
		}
		n, err := p.node()
		if err != nil {
			return err
		}
		if err := c.AddNamedContent(n); err != nil {
			return p.errAt(at, fmt.Errorf("%w: %w", ErrNamedContent, err))
		}
	}
}

func (p *parser) glue() (*ir.Node, error) {
	if p.i >= len(p.d) {
		return nil, p.errAt(p.i, fmt.Errorf("%w: wanted glue type", ErrUnexpectedEOF))
	}
	var g ir.GlueType
	switch p.d[p.i] {
	case 'b':
		g = ir.GlueBidirectional
	case '<':
		g = ir.GlueLeft
	case '>':
		g = ir.GlueRight
	default:
		return nil, p.errAt(p.i, fmt.Errorf("%w %q", ErrUnknownGlue, p.d[p.i]))
	}
	p.i++
	return ir.FromGlue(g), nil
}

func (p *parser) command() (*ir.Node, error) {
	start := p.i
	if len(p.d)-p.i < ir.CommandNameLength {
		return nil, p.errAt(start, fmt.Errorf("%w: wanted command name", ErrUnexpectedEOF))
	}
	name := string(p.d[p.i : p.i+ir.CommandNameLength])
	c, ok := ir.CommandByName(name)
	if !ok {
		return nil, p.errAt(start, fmt.Errorf("%w %q", ErrUnknownCommand, name))
	}
	p.i += ir.CommandNameLength
	return ir.FromCommand(c), nil
}

func (p *parser) number() (*ir.Node, error) {
	start := p.i
	tok, err := p.token()
	if err != nil {
		return nil, err
	}
	i, err := strconv.ParseInt(tok, 10, 64)
	if err == nil {
		return ir.FromInt(i), nil
	}
	if errors.Is(err, strconv.ErrRange) || strings.Trim(tok, "0123456789.eE+-") != "" {
		return nil, p.errAt(start, fmt.Errorf("%w %q", ErrNumber, tok))
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsInf(f, 0) {
		return nil, p.errAt(start, fmt.Errorf("%w %q", ErrNumber, tok))
	}
	return ir.FromFloat(f), nil
}

// divert reads a divert starting at its opening '>'.
func (p *parser) divert() (*ir.Node, error) {
	if err := p.expect('>'); err != nil {
		return nil, err
	}
	var d *ir.Node
	if p.accept('?') {
		name, err := p.token()
		if err != nil {
			return nil, err
		}
		d = ir.DivertToVariable(name)
	} else {
		target, err := p.token()
		if err != nil {
			return nil, err
		}
		d = ir.DivertTo(target)
	}
	if p.accept('x') {
		nargs, err := p.flags(true)
		if err != nil {
			return nil, err
		}
		d.WithExternal(nargs)
	}
	switch {
	case p.accept('f'):
		d.WithPush(ir.PushFunction)
	case p.accept('t'):
		d.WithPush(ir.PushTunnel)
	}
	if err := p.expect('>'); err != nil {
		return nil, err
	}
	return d, nil
}

func (p *parser) assign() (*ir.Node, error) {
	global := !p.accept('t')
	newDecl := !p.accept('r')
	if err := p.expect(' '); err != nil {
		return nil, err
	}
	name, err := p.token()
	if err != nil {
		return nil, err
	}
	return ir.Assign(name, global, newDecl), nil
}

func (p *parser) choice() (*ir.Node, error) {
	start := p.i
	tok, err := p.token()
	if err != nil {
		return nil, err
	}
	flags := 0
	if tok != "" {
		flags, err = strconv.Atoi(tok)
		if err != nil || flags <= 0 || tok[0] == '+' {
			return nil, p.errAt(start, fmt.Errorf("%w: choice flags %q", ErrNumber, tok))
		}
	}
	target, err := p.token()
	if err != nil {
		return nil, err
	}
	return ir.Choice(target, flags), nil
}

func (p *parser) branch() (*ir.Node, error) {
	var t, f *ir.Node
	var err error
	if p.accept('t') {
		if t, err = p.arm(); err != nil {
			return nil, err
		}
	}
	if p.accept('f') {
		if f, err = p.arm(); err != nil {
			return nil, err
		}
	}
	if err := p.expect(' '); err != nil {
		return nil, err
	}
	return ir.FromBranch(t, f), nil
}

func (p *parser) arm() (*ir.Node, error) {
	start := p.i
	d, err := p.divert()
	if err != nil {
		return nil, err
	}
	if err := d.Check(); err != nil {
		return nil, p.errAt(start, fmt.Errorf("%w: %w", ErrInvalid, err))
	}
	p.track(d, start)
	return d, nil
}

// flags reads a space-terminated count. Zero is only allowed when zeroOK
// is set since the zero flag set is encoded by omission.
func (p *parser) flags(zeroOK bool) (int, error) {
	start := p.i
	tok, err := p.token()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil || v < 0 || (v == 0 && !zeroOK) || tok[0] == '+' {
		return 0, p.errAt(start, fmt.Errorf("%w %q", ErrNumber, tok))
	}
	return v, nil
}

// token reads up to the next space and consumes it.
func (p *parser) token() (string, error) {
	start := p.i
	s, err := p.until(' ')
	if err != nil {
		return "", p.errAt(start, fmt.Errorf("%w: unterminated token", ErrUnexpectedEOF))
	}
	return s, nil
}

// until returns the bytes before the next c and moves past c.
func (p *parser) until(c byte) (string, error) {
	for j := p.i; j < len(p.d); j++ {
		if p.d[j] == c {
			s := string(p.d[p.i:j])
			p.i = j + 1
			return s, nil
		}
	}
	return "", errInternal
}

func (p *parser) peek() (rune, int) {
	if p.i >= len(p.d) {
		return -1, 0
	}
	return utf8.DecodeRune(p.d[p.i:])
}

func (p *parser) accept(c byte) bool {
	if p.i < len(p.d) && p.d[p.i] == c {
		p.i++
		return true
	}
	return false
}

func (p *parser) expect(c byte) error {
	if p.i >= len(p.d) {
		return p.errAt(p.i, fmt.Errorf("%w: wanted %q", ErrUnexpectedEOF, c))
	}
	if p.d[p.i] != c {
		return p.errAt(p.i, fmt.Errorf("%w %q, got %q", ErrExpected, c, p.d[p.i]))
	}
	p.i++
	return nil
}

func (p *parser) errAt(i int, err error) error {
	return &Error{Pos: p.doc.Pos(i), Err: err}
}

func (p *parser) track(n *ir.Node, i int) {
	if p.opts.positions != nil {
		p.opts.positions[n] = p.doc.Pos(i)
	}
}
