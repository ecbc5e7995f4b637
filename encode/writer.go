package encode

import (
	"io"

	"github.com/y-lohse/ink/ir"
)

// Writer encodes one tree once. The first call to Text or WriteTo encodes
// the tree and later calls return the same result, so the tree may not be
// changed in between. A Writer is not safe for concurrent use.
type Writer struct {
	root *ir.Node
	opts []EncodeOption

	done bool
	text string
	err  error
}

func NewWriter(root *ir.Node, opts ...EncodeOption) *Writer {
	return &Writer{root: root, opts: opts}
}

// Text returns the encoded document.
func (w *Writer) Text() (string, error) {
	if !w.done {
		w.text, w.err = newEncState(w.opts).encodeDoc(w.root)
		w.done = true
	}
	return w.text, w.err
}

func (w *Writer) WriteTo(out io.Writer) (int64, error) {
	s, err := w.Text()
	if err != nil {
		return 0, err
	}
	n, err := io.WriteString(out, s)
	return int64(n), err
}
