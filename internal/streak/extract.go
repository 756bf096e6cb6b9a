package streak

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type nodeKind int

const (
	elementNode nodeKind = iota
	textNode
)

func (k nodeKind) String() string {
	if k == textNode {
		return "text"
	}
	return "element"
}

// A step addresses one child by position and asserts what kind of node
// must be there.
type step struct {
	index int
	kind  nodeKind
}

// The stats service publishes no structural contract, only rendered
// markup, so both values are addressed by fixed child positions. These
// three paths are the only thing that needs to change if the upstream
// rendering drifts; resolve turns any drift into ErrStructure instead
// of a wrong number.
var (
	// basePath locates the common ancestor of both streak values,
	// relative to the document root.
	basePath = []step{{0, elementNode}, {2, elementNode}}

	// currentPath and longestPath locate the numeric text leaves,
	// relative to the base.
	currentPath = []step{{3, elementNode}, {1, elementNode}, {0, elementNode}, {0, textNode}}
	longestPath = []step{{4, elementNode}, {1, elementNode}, {0, elementNode}, {0, textNode}}
)

// Extract locates the current and longest streak values in a raw stats
// document. Structural failures surface as ErrStructure and non-numeric
// leaves as ErrNumericFormat; they are never conflated.
func Extract(r io.Reader) (current, longest int, err error) {
	root, err := parse(r)
	if err != nil {
		return 0, 0, err
	}

	base, err := resolve(root, basePath)
	if err != nil {
		return 0, 0, err
	}

	current, err = leafValue(base, currentPath)
	if err != nil {
		return 0, 0, err
	}

	longest, err = leafValue(base, longestPath)
	if err != nil {
		return 0, 0, err
	}

	return current, longest, nil
}

// parse reads the document as a body-context fragment hung under a
// synthetic root. html.Parse would normalize everything into
// html/head/body and destroy the positional addresses the upstream
// renderer actually serves.
func parse(r io.Reader) (*html.Node, error) {
	body := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}

	nodes, err := html.ParseFragment(r, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStructure, err)
	}

	root := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return root, nil
}

func resolve(n *html.Node, path []step) (*html.Node, error) {
	for _, s := range path {
		child := childAt(n, s.index)
		if child == nil {
			return nil, fmt.Errorf("%w: no child at index %d", ErrStructure, s.index)
		}

		want := html.ElementNode
		if s.kind == textNode {
			want = html.TextNode
		}
		if child.Type != want {
			return nil, fmt.Errorf("%w: child at index %d is not %s", ErrStructure, s.index, s.kind)
		}

		n = child
	}
	return n, nil
}

func childAt(n *html.Node, index int) *html.Node {
	child := n.FirstChild
	for i := 0; child != nil && i < index; i++ {
		child = child.NextSibling
	}
	return child
}

func leafValue(base *html.Node, path []step) (int, error) {
	leaf, err := resolve(base, path)
	if err != nil {
		return 0, err
	}

	text := strings.TrimSpace(leaf.Data)
	v, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a non-negative integer", ErrNumericFormat, text)
	}

	return int(v), nil
}
