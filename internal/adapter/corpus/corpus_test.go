package corpus

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"legalqa/internal/domain"
)

const sampleCorpus = `{
  "documents": ["Unauthorized access is punishable under Section 32.", "Dowry is prohibited."],
  "metadata": [{"name": "DSA", "section": 32, "act": "Digital Security Act"}, {"name": null, "law": "Dowry Prohibition Act"}],
  "config": {"model_name": "BM25", "performance_metrics": {"f1@5": 0.91}}
}`

func TestDecode(t *testing.T) {
	c, err := Decode(strings.NewReader(sampleCorpus))
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Documents) != 2 {
		t.Errorf("expected 2 documents, got %d", len(c.Documents))
	}
	if c.Metadata[0].Section != "32" {
		t.Errorf("expected numeric section decoded as \"32\", got %q", c.Metadata[0].Section)
	}
	if c.Metadata[1].Name != "" || c.Metadata[1].Law != "Dowry Prohibition Act" {
		t.Errorf("unexpected metadata: %+v", c.Metadata[1])
	}
	if c.Config.PerformanceMetrics["f1@5"] != 0.91 {
		t.Errorf("expected f1@5 metric, got %v", c.Config.PerformanceMetrics)
	}
}

func TestDecode_KeepsExtraMetadata(t *testing.T) {
	input := `{
  "documents": ["Hacking is punishable under Section 34."],
  "metadata": [{"name": "DSA", "section": 34, "chapter": "VI", "year": 2018, "tags": ["cyber"]}]
}`
	c, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	m := c.Metadata[0]
	if m.Name != "DSA" || m.Section != "34" {
		t.Errorf("unexpected known fields: %+v", m)
	}
	if m.Extra["chapter"] != "VI" || m.Extra["year"] != float64(2018) {
		t.Errorf("expected extra fields kept, got %v", m.Extra)
	}
	if _, ok := m.Extra["name"]; ok {
		t.Error("known fields must not be duplicated in Extra")
	}

	out, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"chapter":"VI"`, `"year":2018`, `"tags":["cyber"]`, `"section":"34"`} {
		if !strings.Contains(string(out), want) {
			t.Errorf("expected %s in %s", want, out)
		}
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantEmpty bool
	}{
		{"empty documents", `{"documents": []}`, true},
		{"missing documents", `{"metadata": []}`, true},
		{"invalid json", `{"documents": [`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.Is(err, domain.ErrEmptyCorpus) != tt.wantEmpty {
				t.Errorf("errors.Is(ErrEmptyCorpus) = %v, want %v (err: %v)", !tt.wantEmpty, tt.wantEmpty, err)
			}
		})
	}
}

func TestHTTPSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		switch r.URL.Path {
		case "/web_deployment_full.json":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(sampleCorpus))
		case "/empty.json":
			w.Write([]byte(`{"documents": []}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	src := NewHTTPSource(server.URL+"/web_deployment_full.json", time.Second)
	c, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Documents) != 2 {
		t.Errorf("expected 2 documents, got %d", len(c.Documents))
	}
	if src.Location() != server.URL+"/web_deployment_full.json" {
		t.Errorf("unexpected location %q", src.Location())
	}

	if _, err := NewHTTPSource(server.URL+"/missing.json", time.Second).Fetch(context.Background()); err == nil {
		t.Error("expected error for 404")
	}

	_, err = NewHTTPSource(server.URL+"/empty.json", time.Second).Fetch(context.Background())
	if !errors.Is(err, domain.ErrEmptyCorpus) {
		t.Errorf("expected ErrEmptyCorpus, got %v", err)
	}
}

func TestHTTPSource_Canceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleCorpus))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewHTTPSource(server.URL, time.Second).Fetch(ctx); err == nil {
		t.Error("expected error for canceled context")
	}
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.json")
	if err := os.WriteFile(path, []byte(sampleCorpus), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := NewFileSource(path).Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Documents) != 2 {
		t.Errorf("expected 2 documents, got %d", len(c.Documents))
	}

	if _, err := NewFileSource(path + ".missing").Fetch(context.Background()); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLocate(t *testing.T) {
	root := t.TempDir()
	files := []string{
		"data/web_deployment_full.json",
		"node_modules/pkg/web_deployment_full.json",
		"notes/readme.md",
	}
	for _, f := range files {
		path := filepath.Join(root, f)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(sampleCorpus), 0644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := Locate(root, []string{"**/web_deployment_*.json"}, []string{"**/node_modules/**"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(filepath.ToSlash(got), "data/web_deployment_full.json") {
		t.Errorf("expected data asset, got %s", got)
	}

	_, err = Locate(root, []string{"**/*.yaml"}, nil)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	root := t.TempDir()
	asset := filepath.Join(root, "web_deployment_full.json")
	if err := os.WriteFile(asset, []byte(sampleCorpus), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"explicit path", Options{Path: "/srv/corpus.json", URL: "https://example.org/c.json"}, "/srv/corpus.json"},
		{"http url", Options{URL: "https://example.org/c.json"}, "https://example.org/c.json"},
		{"relative url", Options{URL: "web_deployment_full.json", Dir: root}, asset},
		{"located", Options{Dir: root, Includes: []string{"**/web_deployment_*.json"}}, asset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := Resolve(tt.opts)
			if err != nil {
				t.Fatal(err)
			}
			if src.Location() != tt.want {
				t.Errorf("Location() = %q, want %q", src.Location(), tt.want)
			}
		})
	}

	if _, err := Resolve(Options{Dir: root, Includes: []string{"**/*.csv"}}); err == nil {
		t.Error("expected error when nothing can be located")
	}
}
