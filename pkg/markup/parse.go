package markup

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// SyntaxError reports unbalanced tag markup.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("markup: line %d: %s", e.Line, e.Msg)
}

// Parse tokenises src and returns the top-level nodes.
func Parse(src string) ([]*Node, error) {
	z := html.NewTokenizer(strings.NewReader(src))

	root := &Node{Kind: TagNode}
	stack := []*Node{root}
	line := 1

	appendText := func(parent *Node, raw string, at int) {
		if raw == "" {
			return
		}
		if count := len(parent.Children); count > 0 && parent.Children[count-1].Kind == TextNode {
			parent.Children[count-1].Text += raw
			return
		}
		parent.Children = append(parent.Children, &Node{Kind: TextNode, Text: raw, Line: at})
	}

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if errors.Is(z.Err(), io.EOF) {
				break
			}
			return nil, fmt.Errorf("markup: tokenize: %w", z.Err())
		}

		// Raw must be copied before TagName lowercases the buffer in place.
		raw := string(z.Raw())
		top := stack[len(stack)-1]
		start := line
		line += strings.Count(raw, "\n")

		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			tagName := string(name)
			if !strings.HasPrefix(tagName, TagPrefix) {
				appendText(top, raw, start)
				continue
			}

			node := &Node{
				Kind:        TagNode,
				Name:        strings.TrimPrefix(tagName, TagPrefix),
				SelfClosing: tt == html.SelfClosingTagToken,
				Line:        start,
			}
			for hasAttr {
				var key, value []byte
				key, value, hasAttr = z.TagAttr()
				node.Attrs = append(node.Attrs, Attribute{Name: string(key), Value: string(value)})
			}
			restoreAttrCase(node.Attrs, raw)
			top.Children = append(top.Children, node)
			if !node.SelfClosing {
				stack = append(stack, node)
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			tagName := string(name)
			if !strings.HasPrefix(tagName, TagPrefix) {
				appendText(top, raw, start)
				continue
			}
			tagName = strings.TrimPrefix(tagName, TagPrefix)
			if len(stack) == 1 {
				return nil, &SyntaxError{Line: start, Msg: fmt.Sprintf("unexpected closing tag %q", TagPrefix+tagName)}
			}
			if top.Name != tagName {
				return nil, &SyntaxError{
					Line: start,
					Msg:  fmt.Sprintf("closing tag %q does not match %q opened on line %d", TagPrefix+tagName, TagPrefix+top.Name, top.Line),
				}
			}
			stack = stack[:len(stack)-1]

		default:
			appendText(top, raw, start)
		}
	}

	if len(stack) > 1 {
		open := stack[len(stack)-1]
		return nil, &SyntaxError{Line: open.Line, Msg: fmt.Sprintf("tag %q is never closed", TagPrefix+open.Name)}
	}
	return root.Children, nil
}

// restoreAttrCase puts back the attribute name case the tokenizer folded.
// Names are only replaced when the raw tag yields the same attributes in the
// same order, ignoring case.
func restoreAttrCase(attrs []Attribute, raw string) {
	names := rawAttrNames(raw)
	if len(names) != len(attrs) {
		return
	}
	for i, name := range names {
		if !strings.EqualFold(name, attrs[i].Name) {
			return
		}
	}
	for i, name := range names {
		attrs[i].Name = name
	}
}

// rawAttrNames scans a raw start tag for attribute names.
func rawAttrNames(raw string) []string {
	i := 1
	for i < len(raw) && !isTagSpace(raw[i]) && raw[i] != '/' && raw[i] != '>' {
		i++
	}

	var names []string
	for i < len(raw) {
		for i < len(raw) && (isTagSpace(raw[i]) || raw[i] == '/') {
			i++
		}
		if i >= len(raw) || raw[i] == '>' {
			break
		}

		start := i
		i++
		for i < len(raw) && !isTagSpace(raw[i]) && raw[i] != '/' && raw[i] != '=' && raw[i] != '>' {
			i++
		}
		names = append(names, raw[start:i])

		for i < len(raw) && isTagSpace(raw[i]) {
			i++
		}
		if i >= len(raw) || raw[i] != '=' {
			continue
		}
		i++
		for i < len(raw) && isTagSpace(raw[i]) {
			i++
		}
		if i < len(raw) && (raw[i] == '"' || raw[i] == '\'') {
			quote := raw[i]
			i++
			for i < len(raw) && raw[i] != quote {
				i++
			}
			i++
			continue
		}
		for i < len(raw) && !isTagSpace(raw[i]) && raw[i] != '>' {
			i++
		}
	}
	return names
}

func isTagSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}
