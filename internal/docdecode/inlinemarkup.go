package docdecode

import (
	"strings"

	xhtml "golang.org/x/net/html"

	"github.com/inkfold/docrender/pkg/docmodel"
)

// expandInlineMarkup tokenizes a small inline markup subset — <b>, <i>,
// <br> — inside a JSON text node's string content, producing nested
// Text/inline TextChild values instead of one flat literal. A string with
// no '<' is the overwhelmingly common case and short-circuits without
// invoking the tokenizer at all.
//
// Grounded on the teacher's internal/parser/html package, which wraps
// golang.org/x/net/html the same way: tokenize, walk, rebuild a small tree.
// This walk only ever recognizes the three tags above (plus the <strong>
// and <em> spellings); any other tag is dropped and only the text inside
// it is kept.
func expandInlineMarkup(s string, parentStyles []string) []docmodel.TextChild {
	if !strings.ContainsRune(s, '<') {
		if s == "" {
			return nil
		}
		return []docmodel.TextChild{{Literal: s}}
	}

	tokenizer := xhtml.NewTokenizer(strings.NewReader(s))
	var out []docmodel.TextChild
	// stack of style-name lists opened by <b>/<i> so nested markup
	// (e.g. <b>bold <i>bold-italic</i></b>) folds correctly.
	styleStack := [][]string{{}}

	flushLiteral := func(text string) {
		if text == "" {
			return
		}
		styles := styleStack[len(styleStack)-1]
		if len(styles) == 0 {
			out = append(out, docmodel.TextChild{Literal: text})
			return
		}
		out = append(out, docmodel.TextChild{
			Node: docmodel.NewText(styles, docmodel.TextChild{Literal: text}),
		})
	}

	for {
		tt := tokenizer.Next()
		switch tt {
		case xhtml.ErrorToken:
			return out
		case xhtml.TextToken:
			flushLiteral(string(tokenizer.Text()))
		case xhtml.SelfClosingTagToken, xhtml.StartTagToken:
			name, _ := tokenizer.TagName()
			switch string(name) {
			case "br":
				out = append(out, docmodel.TextChild{Literal: "\n"})
			case "b", "strong":
				if tt == xhtml.StartTagToken {
					styleStack = append(styleStack, append(append([]string{}, styleStack[len(styleStack)-1]...), "strong"))
				}
			case "i", "em":
				if tt == xhtml.StartTagToken {
					styleStack = append(styleStack, append(append([]string{}, styleStack[len(styleStack)-1]...), "emphasis"))
				}
			default:
				// unrecognized tag: ignore the markup, keep its text content
			}
		case xhtml.EndTagToken:
			name, _ := tokenizer.TagName()
			switch string(name) {
			case "b", "strong", "i", "em":
				if len(styleStack) > 1 {
					styleStack = styleStack[:len(styleStack)-1]
				}
			}
		}
	}
}
