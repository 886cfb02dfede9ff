package segtree

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Dump writes the nodes of t to w, one line per tree level. Leaves are
// prefixed with their index.
func (t *Tree[S]) Dump(w io.Writer) {
	p := newPrinter(w)
	for level, start := 0, 0; start < len(t.tree); level, start = level+1, 2*start+1 {
		end := min(2*start+1, len(t.tree))
		p.level(level)
		for i := start; i < end; i++ {
			if i >= t.n-1 {
				p.leaf(i-t.n+1, t.tree[i])
			} else {
				p.node(t.tree[i])
			}
		}
		p.newline()
	}
	p.flush()
}

// Dump writes the nodes of t to w, one line per tree level. Nodes with a
// pending action are highlighted, with the action following the aggregate.
// Highlighting uses colors if w is a terminal.
func (t *Lazy[S, A]) Dump(w io.Writer) {
	p := newPrinter(w)
	for level := 0; level <= t.depth; level++ {
		p.level(level)
		for k := 1 << level; k < 2<<level; k++ {
			if k >= t.size+t.n {
				break
			}
			if a := t.lazy[k-1]; !t.cfg.Action.IsIdentityAct(a) {
				p.dirty(t.tree[k-1], a)
			} else if k >= t.size {
				p.leaf(k-t.size, t.tree[k-1])
			} else {
				p.node(t.tree[k-1])
			}
		}
		p.newline()
	}
	p.flush()
}

type printer struct {
	w     io.Writer
	buf   strings.Builder
	index *color.Color
	dirt  *color.Color
}

func newPrinter(w io.Writer) *printer {
	p := &printer{
		w:     w,
		index: color.New(color.FgBlue),
		dirt:  color.New(color.FgRed, color.Bold),
	}
	if isTerminal(w) {
		p.index.EnableColor()
		p.dirt.EnableColor()
	} else {
		p.index.DisableColor()
		p.dirt.DisableColor()
	}
	return p
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (p *printer) level(l int) {
	fmt.Fprintf(&p.buf, "%3d |", l)
}

func (p *printer) node(x any) {
	fmt.Fprintf(&p.buf, " %v", x)
}

func (p *printer) leaf(i int, x any) {
	p.buf.WriteString(" ")
	p.index.Fprintf(&p.buf, "[%d]", i)
	fmt.Fprintf(&p.buf, "%v", x)
}

func (p *printer) dirty(x, a any) {
	p.buf.WriteString(" ")
	p.dirt.Fprintf(&p.buf, "%v*(%v)", x, a)
}

func (p *printer) newline() {
	p.buf.WriteString("\n")
}

func (p *printer) flush() {
	if _, err := io.WriteString(p.w, p.buf.String()); err != nil {
		tracer().Errorf("segtree dump: %s", err.Error())
	}
}
