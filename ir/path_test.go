package ir

import (
	"errors"
	"testing"
)

func TestPath(t *testing.T) {
	root := sampleStory(t)
	tests := []struct {
		path string
		kind Kind
	}{
		{"", ContainerKind},
		{"knot1", ContainerKind},
		{"knot1.0", StringKind},
		{"knot1.2", DivertKind},
		{"knot2.stitch", ContainerKind},
		{"knot2.6", ContainerKind},
		{"knot2.stitch.2", ChoiceKind},
		{"0", DivertKind},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			n, err := root.GetPath(tt.path)
			if err != nil {
				t.Fatal(err)
			}
			if n.Kind != tt.kind {
				t.Errorf("got %s, want %s", n.Kind, tt.kind)
			}
			back, err := root.GetPath(n.Path())
			if err != nil {
				t.Fatal(err)
			}
			if back != n {
				t.Errorf("Path() %q does not resolve back", n.Path())
			}
		})
	}
}

func TestPathNamedContainerInContent(t *testing.T) {
	root := sampleStory(t)
	n, err := root.GetPath("knot2.6")
	if err != nil {
		t.Fatal(err)
	}
	if got := n.Path(); got != "knot2.stitch" {
		t.Errorf("Path() = %q", got)
	}
}

func TestBranchArmPath(t *testing.T) {
	root := sampleStory(t)
	br, err := root.GetPath("knot2.stitch.3")
	if err != nil {
		t.Fatal(err)
	}
	if got := br.True.Path(); got != "knot2.stitch.3.true" {
		t.Errorf("true arm path %q", got)
	}
	if got := br.False.Path(); got != "knot2.stitch.3.false" {
		t.Errorf("false arm path %q", got)
	}
}

func TestGetPathErrors(t *testing.T) {
	root := sampleStory(t)
	for _, p := range []string{"nope", "knot1.9", "knot1.0.x", "knot1.-1"} {
		if _, err := root.GetPath(p); !errors.Is(err, ErrNoPath) {
			t.Errorf("GetPath(%q) = %v, want ErrNoPath", p, err)
		}
	}
}

func TestVisitOrder(t *testing.T) {
	root := NewContainer("",
		FromInt(1),
		FromBranch(DivertTo("b"), nil),
	)
	if err := root.AddNamedContent(NewContainer("a", FromInt(2))); err != nil {
		t.Fatal(err)
	}
	var got []Kind
	err := root.Visit(func(n *Node, isPost bool) (bool, error) {
		if !isPost {
			got = append(got, n.Kind)
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []Kind{ContainerKind, IntKind, BranchKind, DivertKind, ContainerKind, IntKind}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("visit %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestTargets(t *testing.T) {
	root := sampleStory(t)
	var got []string
	for _, n := range root.Targets() {
		got = append(got, n.Target)
	}
	want := []string{"knot1", "knot2", "knot1", "knot1", "knot1"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("target %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
