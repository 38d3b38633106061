package editor

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// fakeResolver builds a resolver over a fixed environment and a set of
// binaries considered present, so tests never touch the real PATH.
func fakeResolver(env map[string]string, present ...string) resolver {
	installed := map[string]bool{}
	for _, b := range present {
		installed[b] = true
	}
	return resolver{
		lookupEnv: func(name string) (string, bool) {
			v, ok := env[name]
			return v, ok
		},
		lookPath: func(binary string) (string, error) {
			if installed[binary] {
				return "/usr/bin/" + binary, nil
			}
			return "", exec.ErrNotFound
		},
	}
}

func TestResolveFromEditorVariable(t *testing.T) {
	r := fakeResolver(map[string]string{"EDITOR": "code --wait"})
	ed, err := r.resolve(EnvOnlyResolveOrder, nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ed.Binary != "code" || ed.Kind != KindVsCode {
		t.Errorf("got binary=%q kind=%v", ed.Binary, ed.Kind)
	}
	if diff := cmp.Diff([]string{"--wait"}, ed.Args); diff != "" {
		t.Errorf("extra args mismatch (-want +got):\n%s", diff)
	}
	if ed.Source.Kind != SourceEnvironment || ed.Source.Var != "EDITOR" {
		t.Errorf("source = %v", ed.Source)
	}
}

func TestResolveVisualBeatsEditor(t *testing.T) {
	r := fakeResolver(map[string]string{
		"VISUAL": "subl",
		"EDITOR": "vim",
	})
	ed, err := r.resolve(EnvOnlyResolveOrder, nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ed.Binary != "subl" || ed.Source.Var != "VISUAL" {
		t.Errorf("got %v, want subl via $VISUAL", ed)
	}
}

func TestResolveQuotedEnvValue(t *testing.T) {
	r := fakeResolver(map[string]string{
		"EDITOR": `"/Applications/Visual Studio Code.app/code" --wait`,
	})
	ed, err := r.resolve(EnvOnlyResolveOrder, nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ed.Binary != "/Applications/Visual Studio Code.app/code" {
		t.Errorf("quoted path split wrongly: %q", ed.Binary)
	}
	if ed.Kind != KindVsCode {
		t.Errorf("kind = %v, want VsCode from path basename", ed.Kind)
	}
}

func TestResolveBlankEnvValueSkipped(t *testing.T) {
	r := fakeResolver(map[string]string{"EDITOR": "   "}, "nvim")
	ed, err := r.resolve(EnvOnlyResolveOrder, nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ed.Source.Kind != SourcePathSearch || ed.Binary != "nvim" {
		t.Errorf("blank $EDITOR should fall through to PATH search, got %v", ed)
	}
}

func TestResolveConfigPriority(t *testing.T) {
	r := fakeResolver(map[string]string{"EDITOR": "vim"}, "vim", "nvim", "code")
	configs := []Config{
		{Editor: "hx"},   // not installed, skipped
		{Editor: "nvim"}, // first present entry wins
		{Editor: "code"},
	}
	ed, err := r.resolve(DefaultResolveOrder, configs)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ed.Binary != "nvim" {
		t.Errorf("binary = %q, want nvim", ed.Binary)
	}
	if ed.Source.Kind != SourceConfig || ed.Source.Index != 1 {
		t.Errorf("source = %v, want config[1]", ed.Source)
	}
}

func TestResolveConfigByKind(t *testing.T) {
	r := fakeResolver(nil, "hx")
	configs := []Config{{Kind: KindHelix, Args: []string{"--vsplit"}}}
	ed, err := r.resolve([]ResolveFrom{FromConfig}, configs)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ed.Binary != "hx" || ed.Kind != KindHelix {
		t.Errorf("got binary=%q kind=%v", ed.Binary, ed.Kind)
	}
	if diff := cmp.Diff([]string{"--vsplit"}, ed.Args); diff != "" {
		t.Errorf("config args mismatch (-want +got):\n%s", diff)
	}
}

// With order [Config, PathSearch] and a config naming a present binary,
// PathSearch must never be consulted.
func TestResolveShortCircuit(t *testing.T) {
	probed := false
	r := fakeResolver(nil, "nvim")
	inner := r.lookPath
	r.lookPath = func(binary string) (string, error) {
		if binary != "nvim" {
			probed = true
		}
		return inner(binary)
	}
	ed, err := r.resolve([]ResolveFrom{FromConfig, FromPathSearch}, []Config{{Editor: "nvim"}})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ed.Source.Kind != SourceConfig || ed.Source.Index != 0 {
		t.Errorf("source = %v, want config[0]", ed.Source)
	}
	if probed {
		t.Error("PATH fallback list was probed despite a config hit")
	}
}

func TestResolvePathSearchOrder(t *testing.T) {
	// vim and nano are both present; the fallback list prefers vim.
	r := fakeResolver(nil, "vim", "nano")
	ed, err := r.resolve([]ResolveFrom{FromPathSearch}, nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ed.Binary != "vim" {
		t.Errorf("binary = %q, want vim (fallback order)", ed.Binary)
	}
	if ed.Source.Kind != SourcePathSearch {
		t.Errorf("source = %v", ed.Source)
	}
}

func TestResolveEmptyOrder(t *testing.T) {
	r := fakeResolver(map[string]string{"EDITOR": "vim"}, "vim")
	if _, err := r.resolve(nil, nil); !errors.Is(err, ErrNoEditorFound) {
		t.Errorf("empty order: err = %v, want ErrNoEditorFound", err)
	}
}

func TestResolveExhausted(t *testing.T) {
	r := fakeResolver(nil)
	_, err := r.resolve(DefaultResolveOrder, []Config{{Editor: "nvim"}})
	if !errors.Is(err, ErrNoEditorFound) {
		t.Errorf("err = %v, want ErrNoEditorFound", err)
	}
	if !IsEditorNotFound(err) {
		t.Error("IsEditorNotFound must classify ErrNoEditorFound")
	}
}

func TestFindBinary(t *testing.T) {
	r := fakeResolver(nil, "nvim")
	ed, err := r.findBinary("nvim")
	if err != nil {
		t.Fatalf("findBinary: %v", err)
	}
	if ed.Kind != KindNeoVim || ed.Source.Kind != SourceExplicit {
		t.Errorf("got %v", ed)
	}

	_, err = r.findBinary("kakoune")
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Binary != "kakoune" {
		t.Errorf("err = %v, want NotFoundError{kakoune}", err)
	}
	if !IsEditorNotFound(err) {
		t.Error("IsEditorNotFound must classify NotFoundError")
	}
}

func TestFindKind(t *testing.T) {
	r := fakeResolver(nil, "subl")
	ed, err := r.findKind(KindSublime)
	if err != nil {
		t.Fatalf("findKind: %v", err)
	}
	if ed.Binary != "subl" || ed.Source.Kind != SourceExplicit {
		t.Errorf("got %v", ed)
	}

	if _, err := r.findKind(KindZed); err == nil {
		t.Error("absent default binary must yield an error")
	}
}

func TestFallbackListShape(t *testing.T) {
	if fallbackEditors[0] != "code" {
		t.Errorf("fallback list must lead with the most capable editor, got %q", fallbackEditors[0])
	}
	if fallbackEditors[len(fallbackEditors)-1] != "vi" {
		t.Errorf("vi is the last resort, got %q", fallbackEditors[len(fallbackEditors)-1])
	}
}

func TestSourceString(t *testing.T) {
	cases := []struct {
		source Source
		want   string
	}{
		{Source{Kind: SourceEnvironment, Var: "VISUAL"}, "environment ($VISUAL)"},
		{Source{Kind: SourcePathSearch}, "path search"},
		{Source{Kind: SourceExplicit}, "explicit"},
		{Source{Kind: SourceConfig, Index: 2}, "config[2]"},
	}
	for _, c := range cases {
		if got := c.source.String(); got != c.want {
			t.Errorf("Source%v.String() = %q, want %q", c.source, got, c.want)
		}
	}
}
