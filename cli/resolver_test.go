package cli

import (
	"strings"
	"testing"
	"testing/iotest"

	"github.com/alecthomas/kong"
)

func resolveFlag(t *testing.T, r kong.Resolver, name string) any {
	t.Helper()

	val, err := r.Resolve(nil, nil, &kong.Flag{Value: &kong.Value{Name: name}})
	if err != nil {
		t.Fatalf("Resolve(%q) failed: %v", name, err)
	}

	return val
}

func TestResolve_ReturnsConfigMapping(t *testing.T) {
	doc := `
config:
  log-level: debug
  log_format: text
  log-pretty: false
  lang-max-depth: 50
other:
  foo: bar
`

	r, err := resolve("config")(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	tests := []struct {
		name string
		want any
	}{
		{"log-level", "debug"},
		{"log-format", "text"},
		{"log_format", "text"},
		{"log-pretty", false},
		{"lang-max-depth", "50"},
		{"foo", nil},
		{"lang-binding", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveFlag(t, r, tt.name); got != tt.want {
				t.Errorf("Resolve(%q) = %#v, want %#v", tt.name, got, tt.want)
			}
		})
	}
}

func TestResolve_EmptyConfig(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty document", ""},
		{"missing mapping", "existing:\n  foo: bar\n"},
		{"not a mapping", "config: [1, 2]\n"},
		{"invalid yaml", "config: {\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := resolve("config")(strings.NewReader(tt.doc))
			if err != nil {
				t.Fatalf("resolve failed: %v", err)
			}

			if got := resolveFlag(t, r, "foo"); got != nil {
				t.Errorf("Resolve(foo) = %#v, want nil", got)
			}
		})
	}
}

func TestResolve_ReadError(t *testing.T) {
	r, err := resolve("config")(iotest.ErrReader(iotest.ErrTimeout))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if err := r.Validate(nil); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestMakeConfig_FormatsNumbers(t *testing.T) {
	c := makeConfig(map[string]any{
		"uint":  uint64(7),
		"int":   int64(-3),
		"float": 2.5,
		"list":  []any{"a"},
	})

	for key, want := range map[string]string{
		"uint":  "7",
		"int":   "-3",
		"float": "2.5",
	} {
		if c[key] != want {
			t.Errorf("config[%q] = %#v, want %q", key, c[key], want)
		}
	}

	if _, ok := c["list"].([]any); !ok {
		t.Errorf("config[list] = %#v, want []any", c["list"])
	}
}
