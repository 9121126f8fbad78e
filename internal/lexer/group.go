package lexer

import (
	"rsmin/internal/diag"
	"rsmin/internal/source"
	"rsmin/internal/token"
)

type frame struct {
	delim  token.Delimiter
	open   source.Span
	stream token.Stream
}

// Tree lexes the rest of the file and folds delimiters into groups.
//
// A closer that matches an outer frame closes every frame above it, each
// reported as unclosed. A closer matching nothing is reported and skipped.
func (lx *Lexer) Tree() token.Stream {
	stack := []frame{{}}
	for {
		l, ok := lx.next()
		if !ok {
			break
		}
		switch l.role {
		case roleLeaf:
			top := &stack[len(stack)-1]
			top.stream = append(top.stream, l.tok)

		case roleOpen:
			stack = append(stack, frame{delim: l.delim, open: l.span})

		case roleClose:
			match := -1
			for i := len(stack) - 1; i > 0; i-- {
				if stack[i].delim == l.delim {
					match = i
					break
				}
			}
			if match < 0 {
				if len(stack) == 1 {
					lx.report(diag.LexUnexpectedCloser, l.span, "unexpected closing delimiter "+quoteText(l.delim.Close()))
				} else {
					top := stack[len(stack)-1]
					lx.reportWithNote(diag.LexMismatchedDelimiter, l.span,
						"mismatched closing delimiter "+quoteText(l.delim.Close()),
						top.open, "unclosed delimiter "+quoteText(top.delim.Open()))
				}
				continue
			}
			for len(stack)-1 > match {
				stack = lx.closeUnterminated(stack)
			}
			stack = closeFrame(stack, l.span)
		}
	}
	for len(stack) > 1 {
		stack = lx.closeUnterminated(stack)
	}
	return stack[0].stream
}

func (lx *Lexer) closeUnterminated(stack []frame) []frame {
	top := stack[len(stack)-1]
	lx.report(diag.LexUnclosedDelimiter, top.open, "unclosed delimiter "+quoteText(top.delim.Open()))
	return closeFrame(stack, source.Span{})
}

func closeFrame(stack []frame, closeSpan source.Span) []frame {
	top := stack[len(stack)-1]
	stack = stack[:len(stack)-1]
	parent := &stack[len(stack)-1]
	parent.stream = append(parent.stream, token.NewGroup(top.delim, top.stream, top.open, closeSpan))
	return stack
}
