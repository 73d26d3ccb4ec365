package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const cliCorpus = `{
  "documents": [
    "Unauthorized access to any computer system is punishable under Section 32 with imprisonment up to five years.",
    "The Digital Security Act defines data protection duties for service providers.",
    "Dowry demands are prohibited and punishable under the Dowry Prohibition Act.",
    "Court procedures for filing a complaint with the police station."
  ],
  "metadata": [
    {"name": "Digital Security Act", "section": 32},
    {"name": "Digital Security Act"},
    {"name": "Dowry Prohibition Act"},
    {"name": "Code of Criminal Procedure"}
  ]
}`

func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "web_deployment_full.json"), []byte(cliCorpus), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append(args, "--dir", dir))
	defer func() { rootDir = "" }()

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("legalqa %v: %v", args, err)
	}
	return out.String()
}

func TestAskCommand(t *testing.T) {
	out := runCLI(t, "ask", "-q", "What is the punishment for unauthorized access?", "--sources")
	if !strings.Contains(out, "Section 32") {
		t.Errorf("expected answer to cite Section 32, got:\n%s", out)
	}
	if !strings.Contains(out, "Sources Found:") {
		t.Errorf("expected sources listing, got:\n%s", out)
	}
}

func TestSuggestCommand(t *testing.T) {
	out := runCLI(t, "suggest", "dowry")
	if strings.TrimSpace(out) != "Dowry Prohibition Act" {
		t.Errorf("unexpected suggestions: %q", out)
	}
}

func TestFormatAnswerHTML(t *testing.T) {
	html, err := formatAnswer("**Section 32**", true)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, "<strong>Section 32</strong>") {
		t.Errorf("expected rendered HTML, got %q", html)
	}

	plain, _ := formatAnswer("**Section 32**", false)
	if plain != "**Section 32**" {
		t.Errorf("expected markdown passthrough, got %q", plain)
	}
}
