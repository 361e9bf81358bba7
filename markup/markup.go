// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package markup

import (
	"regexp"
	"slices"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
)

const (
	// containerTag is the synthetic element wrapping an entry body. Entry
	// bodies end with its closing tag.
	containerTag = "ar"

	exampleTag = "ex"
	quoteTag   = "blockquote"
)

var (
	exampleSel = cascadia.MustCompile(exampleTag)
	quoteSel   = cascadia.MustCompile(quoteTag)

	transcriptionRegex = regexp.MustCompile(`\[[^\]]*\]`)
)

// Result is a normalized entry body.
type Result struct {
	// Definition is the cleaned single-line markup of the entry.
	Definition string

	// Transcription is the first bracketed span of the entry, including the
	// brackets, or empty if there was none.
	Transcription string
}

// Normalize extracts the transcription from the entry body lines and cleans
// what remains into a definition.
func Normalize(lines []string) Result {
	transcription, rest := Transcription(lines)
	return Result{
		Definition:    Clean(rest),
		Transcription: transcription,
	}
}

// Transcription returns the first bracketed span found in lines, searching
// the lines in order. The returned lines are a copy of lines. If the span was
// found on the first line it is removed from that line. Spans found on later
// lines are left in place.
func Transcription(lines []string) (string, []string) {
	out := slices.Clone(lines)
	for i, line := range out {
		loc := transcriptionRegex.FindStringIndex(line)
		if loc == nil {
			continue
		}
		transcription := line[loc[0]:loc[1]]
		if i == 0 {
			out[i] = line[:loc[0]] + line[loc[1]:]
		}
		return transcription, out
	}
	return "", out
}

// Clean joins lines with spaces and returns the cleaned markup. Examples are
// removed, quote blocks with no text are removed and nested quote blocks are
// flattened into a single level. Line breaks in the result are replaced with
// spaces and leading and trailing whitespace is trimmed.
//
// Clean is idempotent.
func Clean(lines []string) string {
	root := parse(strings.Join(lines, " "))

	dom.RemoveNodes(cascadia.QueryAll(root, exampleSel), nil)
	dom.RemoveNodes(cascadia.QueryAll(root, quoteSel), func(n *html.Node) bool {
		return strings.TrimSpace(dom.TextContent(n)) == ""
	})
	flattenQuotes(root)

	return strings.TrimSpace(strings.ReplaceAll(dom.InnerHTML(root), "\n", " "))
}

// parse builds a node tree for text under a synthetic container element.
//
// The tree is built directly from the tokenizer output rather than with
// [html.Parse], whose tree construction rules would drop or move elements
// that are not valid HTML in their position. An end tag closes the nearest
// open element with the same name along with everything opened after it. End
// tags with no matching open element are ignored. Anything after the end tag
// of the container is discarded.
func parse(text string) *html.Node {
	root := dom.CreateElement(containerTag)
	stack := []*html.Node{root}

	z := html.NewTokenizer(strings.NewReader(text))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			// io.EOF or a tokenizer error. Keep whatever was parsed.
			return root

		case html.TextToken:
			stack[len(stack)-1].AppendChild(dom.CreateTextNode(string(z.Text())))

		case html.CommentToken:
			stack[len(stack)-1].AppendChild(&html.Node{
				Type: html.CommentNode,
				Data: string(z.Text()),
			})

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			n := &html.Node{
				Type:     html.ElementNode,
				DataAtom: tok.DataAtom,
				Data:     tok.Data,
				Attr:     tok.Attr,
			}
			stack[len(stack)-1].AppendChild(n)
			if tt == html.StartTagToken && !dom.IsVoidElement(n) {
				stack = append(stack, n)
			}

		case html.EndTagToken:
			tok := z.Token()
			i := openIndex(stack, tok.Data)
			if i < 0 {
				continue
			}
			if i == 0 {
				// The container was closed.
				return root
			}
			stack = stack[:i]

		case html.DoctypeToken:
			// Ignored.
		}
	}
}

// openIndex returns the index of the innermost open element named name, or -1.
func openIndex(stack []*html.Node, name string) int {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].Data == name {
			return i
		}
	}
	return -1
}

// flattenQuotes removes quote blocks that wrap other quote blocks. Every
// innermost quote block has all of its quote block ancestors in an unbroken
// chain replaced by their children.
func flattenQuotes(root *html.Node) {
	var innermost []*html.Node
	for _, q := range cascadia.QueryAll(root, quoteSel) {
		if !hasQuoteChild(q) {
			innermost = append(innermost, q)
		}
	}

	for _, q := range innermost {
		for isQuote(q.Parent) {
			unwrap(q.Parent)
		}
	}
}

func isQuote(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode && n.Data == quoteTag
}

func hasQuoteChild(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if isQuote(c) {
			return true
		}
	}
	return false
}

// unwrap replaces n with its children.
func unwrap(n *html.Node) {
	parent := n.Parent
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		n.RemoveChild(c)
		parent.InsertBefore(c, n)
	}
	parent.RemoveChild(n)
}
