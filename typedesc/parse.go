package typedesc

import (
	"fmt"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/cottand/fwd/fwderr"
	"github.com/hashicorp/go-set/v3"
)

var qualifierNames = set.From([]string{"const", "volatile"})

// Parse reads a description from the same C-like notation String produces.
//
// Suffixes bind left to right, each wrapping the type read so far:
// "int*[5]" is an array of five pointers, "int[5]*" a pointer to an array.
// A member-pointer suffix names its host class first, as in "int A::*".
// Qualifiers before the base name qualify the base; qualifiers after a
// suffix qualify that suffix. A reference suffix ("&" or "&&") must come
// last.
func Parse(input string) (Desc, error) {
	p := &parser{}
	p.sc.Init(strings.NewReader(input))
	p.sc.Mode = scanner.ScanIdents | scanner.ScanInts
	p.sc.Error = func(_ *scanner.Scanner, _ string) {}
	p.next()

	d, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if p.tok != scanner.EOF {
		return nil, p.errorf("unexpected %q after a complete type", p.sc.TokenText())
	}
	return d, nil
}

type parser struct {
	sc  scanner.Scanner
	tok rune
}

func (p *parser) next() {
	p.tok = p.sc.Scan()
}

func (p *parser) errorf(format string, args ...any) error {
	return fwderr.New(fwderr.NewParse{
		Pos:     p.sc.Pos(),
		Message: fmt.Sprintf(format, args...),
	})
}

func (p *parser) parseType() (Desc, error) {
	quals := p.parseQualifiers()
	if p.tok != scanner.Ident {
		return nil, p.errorf("expected a type name, got %q", p.sc.TokenText())
	}
	name := p.sc.TokenText()
	p.next()
	for p.tok == '.' {
		p.next()
		if p.tok != scanner.Ident {
			return nil, p.errorf("expected an identifier after '.'")
		}
		name += "." + p.sc.TokenText()
		p.next()
	}

	var d Desc = &Named{Name: name, Qual: quals}
	for {
		suffixed, err := p.parseSuffix(d)
		if err != nil {
			return nil, err
		}
		if suffixed == nil {
			return d, nil
		}
		d = suffixed
		if _, isRef := d.(*Ref); isRef {
			if p.tok != scanner.EOF {
				return nil, fwderr.New(fwderr.NewParse{
					Pos:     p.sc.Pos(),
					Message: "a reference must be the outermost level of a type",
					Hint:    "write the '&' or '&&' suffix last",
				})
			}
			return d, nil
		}
	}
}

// parseSuffix reads one suffix wrapping elem, or nil when the next token
// does not start one.
func (p *parser) parseSuffix(elem Desc) (Desc, error) {
	switch p.tok {
	case '*':
		p.next()
		return &Pointer{Elem: elem, Qual: p.parseQualifiers()}, nil
	case '[':
		p.next()
		if p.tok == ']' {
			p.next()
			return &Slice{Elem: elem, Qual: p.parseQualifiers()}, nil
		}
		if p.tok != scanner.Int {
			return nil, p.errorf("expected an array length or ']', got %q", p.sc.TokenText())
		}
		n, err := strconv.Atoi(p.sc.TokenText())
		if err != nil || n < 0 {
			return nil, p.errorf("bad array length %q", p.sc.TokenText())
		}
		p.next()
		if p.tok != ']' {
			return nil, p.errorf("expected ']', got %q", p.sc.TokenText())
		}
		p.next()
		return &Array{Len: n, Elem: elem, Qual: p.parseQualifiers()}, nil
	case '&':
		p.next()
		if p.tok == '&' {
			p.next()
			return &Ref{Elem: elem, Transfer: true}, nil
		}
		return &Ref{Elem: elem}, nil
	case scanner.Ident:
		class := p.sc.TokenText()
		p.next()
		for _, want := range []rune{':', ':', '*'} {
			if p.tok != want {
				return nil, p.errorf("expected %q in a member pointer suffix, got %q", string(want), p.sc.TokenText())
			}
			p.next()
		}
		return &Member{Class: class, Elem: elem, Qual: p.parseQualifiers()}, nil
	}
	return nil, nil
}

func (p *parser) parseQualifiers() Qual {
	var q Qual
	for p.tok == scanner.Ident && qualifierNames.Contains(p.sc.TokenText()) {
		switch p.sc.TokenText() {
		case "const":
			q |= QualConst
		case "volatile":
			q |= QualVolatile
		}
		p.next()
	}
	return q
}
