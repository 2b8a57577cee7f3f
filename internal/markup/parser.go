package markup

import (
	"fmt"
	"strings"
)

// Parse builds a node tree from template markup. The parser is tolerant
// rather than validating: stray close tags are ignored, elements left open
// at end of input are closed implicitly, and a '<' that does not start a
// tag is kept as text.
func Parse(src string) ([]*Node, error) {
	p := &parser{src: src}
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.roots, nil
}

type parser struct {
	src   string
	pos   int
	roots []*Node
	stack []*Node
}

func (p *parser) run() error {
	textStart := p.pos
	for p.pos < len(p.src) {
		if p.src[p.pos] != '<' {
			p.pos++
			continue
		}

		rest := p.src[p.pos:]
		switch {
		case strings.HasPrefix(rest, "<!--"):
			p.flushText(textStart)
			if err := p.parseComment(); err != nil {
				return err
			}
			textStart = p.pos
		case strings.HasPrefix(rest, "</"):
			p.flushText(textStart)
			p.parseCloseTag()
			textStart = p.pos
		case len(rest) > 1 && isNameStart(rest[1]):
			p.flushText(textStart)
			if err := p.parseOpenTag(); err != nil {
				return err
			}
			textStart = p.pos
		default:
			// Literal '<' in text.
			p.pos++
		}
	}
	p.flushText(textStart)
	return nil
}

// flushText emits the text accumulated since start as a Text node.
func (p *parser) flushText(start int) {
	if start >= p.pos {
		return
	}
	p.append(&Node{Type: TextNode, Content: p.src[start:p.pos]})
}

func (p *parser) parseComment() error {
	end := strings.Index(p.src[p.pos+4:], "-->")
	if end < 0 {
		return fmt.Errorf("unterminated comment at offset %d", p.pos)
	}
	p.append(&Node{Type: CommentNode, Content: p.src[p.pos+4 : p.pos+4+end]})
	p.pos += 4 + end + 3
	return nil
}

func (p *parser) parseCloseTag() {
	start := p.pos + 2
	end := strings.IndexByte(p.src[start:], '>')
	if end < 0 {
		p.pos = len(p.src)
		return
	}
	name := strings.TrimSpace(p.src[start : start+end])
	p.pos = start + end + 1

	// Pop to the matching open element; ignore a close with no match.
	for i := len(p.stack) - 1; i >= 0; i-- {
		if p.stack[i].Name == name {
			p.stack = p.stack[:i]
			return
		}
	}
}

func (p *parser) parseOpenTag() error {
	p.pos++ // consume '<'
	nameStart := p.pos
	for p.pos < len(p.src) && isNameChar(p.src[p.pos]) {
		p.pos++
	}
	node := &Node{Type: ElementNode, Name: p.src[nameStart:p.pos]}

	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return fmt.Errorf("unterminated tag <%s at offset %d", node.Name, nameStart)
		}
		if strings.HasPrefix(p.src[p.pos:], "/>") {
			node.SelfClosing = true
			p.pos += 2
			break
		}
		if p.src[p.pos] == '>' {
			p.pos++
			break
		}
		if p.src[p.pos] == '/' {
			// Stray slash inside a tag; skip it.
			p.pos++
			continue
		}
		attr, err := p.parseAttribute()
		if err != nil {
			return err
		}
		node.Attrs = append(node.Attrs, attr)
	}

	p.append(node)
	if !node.SelfClosing && !IsVoid(node.Name) {
		p.stack = append(p.stack, node)
	}
	return nil
}

func (p *parser) parseAttribute() (Attribute, error) {
	nameStart := p.pos
	for p.pos < len(p.src) && !isAttrNameEnd(p.src[p.pos]) {
		p.pos++
	}
	attr := Attribute{Name: p.src[nameStart:p.pos]}

	p.skipSpace()
	if p.pos >= len(p.src) || p.src[p.pos] != '=' {
		return attr, nil
	}
	p.pos++ // consume '='
	p.skipSpace()

	if p.pos < len(p.src) && (p.src[p.pos] == '"' || p.src[p.pos] == '\'') {
		quote := p.src[p.pos]
		p.pos++
		end := strings.IndexByte(p.src[p.pos:], quote)
		if end < 0 {
			return attr, fmt.Errorf("unterminated attribute value for %q at offset %d", attr.Name, nameStart)
		}
		attr.Value = p.src[p.pos : p.pos+end]
		attr.HasValue = true
		attr.Quote = quote
		p.pos += end + 1
		return attr, nil
	}

	// Unquoted value.
	valStart := p.pos
	for p.pos < len(p.src) && !isAttrNameEnd(p.src[p.pos]) {
		p.pos++
	}
	attr.Value = p.src[valStart:p.pos]
	attr.HasValue = true
	attr.Quote = '"'
	return attr, nil
}

// append attaches a node to the innermost open element, or to the roots.
func (p *parser) append(n *Node) {
	if len(p.stack) > 0 {
		parent := p.stack[len(p.stack)-1]
		parent.Children = append(parent.Children, n)
		return
	}
	p.roots = append(p.roots, n)
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isNameStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isNameChar(c byte) bool {
	return isNameStart(c) || c >= '0' && c <= '9' || c == '-' || c == '_' || c == ':'
}

func isAttrNameEnd(c byte) bool {
	return isSpace(c) || c == '=' || c == '>' || c == '/'
}
