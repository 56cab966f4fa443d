package pkg

import (
	"os"
	"slices"
	"strings"
	"testing"
)

func TestName(t *testing.T) {
	if Name != "sexpr" {
		t.Errorf("expected Name to be %q, got %q", "sexpr", Name)
	}
}

func TestEnvPrefix(t *testing.T) {
	if got := EnvPrefix(); got != "SEXPR_" {
		t.Errorf("expected EnvPrefix to be %q, got %q", "SEXPR_", got)
	}
}

func TestVersion(t *testing.T) {
	buf, err := os.ReadFile("VERSION")
	if err != nil {
		t.Fatalf("failed to read VERSION file: %v", err)
	}

	if content := strings.TrimSpace(string(buf)); Version() != content {
		t.Errorf("expected Version to be %q, got %q", content, Version())
	}

	if strings.Count(Version(), ".") != 2 {
		t.Errorf("expected semantic version, got %q", Version())
	}
}

func TestAuthor(t *testing.T) {
	if len(Author) == 0 {
		t.Fatal("expected Author to have at least one entry")
	}

	if !slices.ContainsFunc(Author, func(a AuthorInfo) bool {
		return a.Name == "ardnew" && a.Email == "andrew@ardnew.com"
	}) {
		t.Errorf("expected Author to contain ardnew")
	}

	for i, author := range Author {
		if author.Name == "" && author.Email == "" {
			t.Errorf("Author[%d] must define at least Name or Email", i)
		}
	}
}
