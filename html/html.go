/*
Package html fills fixed-capacity vectors from HTML list fragments.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package html

import (
	"errors"
	"io"
	"strings"

	"github.com/npillmayer/stackvec"
	"golang.org/x/net/html"
)

// ErrIllegalArguments flags function calls with illegal arguments.
var ErrIllegalArguments = errors.New("html: illegal arguments")

// FromListItems parses an HTML fragment and collects the textual content of
// every <li> element into a vector of strings, in document order.
//
// A capacity of zero or less sizes the vector to fit the items exactly.
// With a positive capacity, items beyond the capacity are dropped.
func FromListItems(input io.Reader, capacity int) (stackvec.Vec[string], error) {
	if input == nil {
		return stackvec.Vec[string]{}, ErrIllegalArguments
	}
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return stackvec.Vec[string]{}, err
	}
	var items []string
	for _, n := range nodes {
		collectListItems(n, &items)
	}
	stackvec.T().Debugf("found %d list items in HTML fragment", len(items))
	if capacity <= 0 {
		return stackvec.From(items), nil
	}
	v := stackvec.New[string](capacity)
	v.Extend(items) // overflowing items are dropped
	return v, nil
}

func collectListItems(n *html.Node, items *[]string) {
	if n.Type == html.ElementNode && n.Data == "li" {
		*items = append(*items, strings.TrimSpace(InnerText(n)))
		return // nested lists inside an item count as its text
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectListItems(c, items)
	}
}

// InnerText returns the textual content of an HTML element and all its
// descendents. It resembles the text produced by
//
//      document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling
// suppressing the visibility of the node's descendents).
func InnerText(n *html.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	collectText(n, &sb)
	return sb.String()
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}
