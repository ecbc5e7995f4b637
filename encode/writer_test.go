package encode

import (
	"bytes"
	"errors"
	"testing"

	"github.com/y-lohse/ink/ir"
)

func TestWriterEncodesOnce(t *testing.T) {
	root := ir.NewContainer("", ir.FromInt(1))
	w := NewWriter(root)
	first, err := w.Text()
	if err != nil {
		t.Fatal(err)
	}
	root.AddContent(ir.FromInt(2))
	second, err := w.Text()
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("second call re-encoded: %q != %q", first, second)
	}
	buf := &bytes.Buffer{}
	n, err := w.WriteTo(buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(len(first)) || buf.String() != first {
		t.Errorf("WriteTo wrote %d bytes %q", n, buf.String())
	}
	if got := NewWriter(root).mustText(t); got != "inkc 1\n{1 2 }" {
		t.Errorf("fresh writer got %q", got)
	}
}

func TestWriterError(t *testing.T) {
	w := NewWriter(ir.FromString("x"))
	if _, err := w.Text(); !errors.Is(err, ErrNotContainer) {
		t.Fatalf("got %v", err)
	}
	buf := &bytes.Buffer{}
	if _, err := w.WriteTo(buf); !errors.Is(err, ErrNotContainer) {
		t.Fatalf("got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %q", buf.String())
	}
}

func TestBranchArmChecked(t *testing.T) {
	bad := &ir.Node{Kind: ir.DivertKind}
	root := ir.NewContainer("", ir.FromBranch(bad, nil))
	if err := Encode(root, &bytes.Buffer{}); !errors.Is(err, ir.ErrInvalidNode) {
		t.Fatalf("got %v", err)
	}
}

func (w *Writer) mustText(t *testing.T) string {
	t.Helper()
	s, err := w.Text()
	if err != nil {
		t.Fatal(err)
	}
	return s
}
