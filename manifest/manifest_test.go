package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/y-lohse/ink/format"
	"github.com/y-lohse/ink/ir"
)

func TestParse(t *testing.T) {
	m, err := Parse([]byte(`
[story]
name = "intercept"

[output]
format = "yaml"
color = "never"
dir = "build"

[check]
paths = true

[lint]
dangling = 'target != "" && !resolves(target)'
`))
	if err != nil {
		t.Fatal(err)
	}
	if m.Story.Name != "intercept" || m.Story.Version != ir.CurrentVersion {
		t.Errorf("story %+v", m.Story)
	}
	if m.Output.Format != format.YAMLFormat || m.Output.Color != ColorNever || m.Output.Dir != "build" {
		t.Errorf("output %+v", m.Output)
	}
	if !m.Check.Paths {
		t.Error("check.paths not set")
	}
	if m.Lint["dangling"] == "" {
		t.Errorf("lint %v", m.Lint)
	}
}

func TestParseDefaults(t *testing.T) {
	m, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if m.Output.Format != format.JSONFormat || m.Output.Color != ColorAuto {
		t.Errorf("output %+v", m.Output)
	}
	m, err = Parse([]byte("[output]\nformat = \"inkc\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	if m.Output.Format != format.InkcFormat {
		t.Errorf("explicit inkc format lost: %v", m.Output.Format)
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"[story\n",
		"[output]\nformat = \"xml\"\n",
		"[output]\ncolor = \"sometimes\"\n",
		"[stroy]\nname = \"typo\"\n",
	} {
		if _, err := Parse([]byte(in)); !errors.Is(err, ErrManifest) {
			t.Errorf("%q: got %v", in, err)
		}
	}
}

func TestFindAndLoad(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, FileName), []byte("[output]\ndir = \"out\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	sub := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	m, err := FindAndLoad(sub)
	if err != nil {
		t.Fatal(err)
	}
	if m == nil {
		t.Fatal("manifest not found")
	}
	want, _ := filepath.Abs(root)
	if m.Dir != want {
		t.Errorf("dir %q, want %q", m.Dir, want)
	}
	if got := m.OutputPath("story.json"); got != filepath.Join(want, "out", "story.json") {
		t.Errorf("output path %q", got)
	}
}

func TestFindAndLoadMissing(t *testing.T) {
	m, err := FindAndLoad(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if m != nil {
		t.Skipf("%s found above the temp dir in %s", FileName, m.Dir)
	}
}
