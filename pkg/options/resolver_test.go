package options_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	backend "github.com/redis/go-redis/v9"

	"github.com/goliatone/go-dynform/pkg/options"
)

func TestStatic_UnknownSourceIsEmpty(t *testing.T) {
	r := options.Static{"api/v1/departments": {"Engineering", "HR"}}

	if diff := cmp.Diff([]string{"Engineering", "HR"}, r.Resolve("api/v1/departments")); diff != "" {
		t.Fatalf("resolve mismatch (-want +got):\n%s", diff)
	}
	got := r.Resolve("api/v1/unknown")
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}

	// Returned slices are copies.
	first := r.Resolve("api/v1/departments")
	first[0] = "mutated"
	if r.Resolve("api/v1/departments")[0] != "Engineering" {
		t.Fatalf("resolver state leaked through returned slice")
	}
}

func TestEmptyAndFunc(t *testing.T) {
	if got := options.Empty.Resolve("anything"); len(got) != 0 {
		t.Fatalf("expected no options, got %v", got)
	}
	var nilFunc options.Func
	if got := nilFunc.Resolve("x"); got == nil {
		t.Fatalf("expected non-nil slice from nil func")
	}
}

func TestChain(t *testing.T) {
	primary := options.Static{"a": {"1"}}
	fallback := options.Static{"a": {"ignored"}, "b": {"2"}}
	r := options.Chain(primary, nil, fallback)

	if got := r.Resolve("a"); len(got) != 1 || got[0] != "1" {
		t.Fatalf("expected primary values, got %v", got)
	}
	if got := r.Resolve("b"); len(got) != 1 || got[0] != "2" {
		t.Fatalf("expected fallback values, got %v", got)
	}
	if got := r.Resolve("c"); len(got) != 0 {
		t.Fatalf("expected empty, got %v", got)
	}
}

func TestLookup(t *testing.T) {
	r := options.NewLookup(map[string]options.Lister{
		"api/v1/roles": options.ListerFunc(func() []string { return []string{"Admin", "Manager"} }),
	})
	if diff := cmp.Diff([]string{"Admin", "Manager"}, r.Resolve("api/v1/roles")); diff != "" {
		t.Fatalf("lookup mismatch (-want +got):\n%s", diff)
	}
	if got := r.Resolve("api/v1/departments"); len(got) != 0 {
		t.Fatalf("expected empty for unknown table, got %v", got)
	}
}

func TestPrefetch_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/v1/departments":
			_, _ = w.Write([]byte(`["Engineering","HR"]`))
		case "/api/v1/roles":
			_, _ = w.Write([]byte(`[{"id":1,"name":"Admin"},{"id":2,"name":"Manager"}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	fetcher := options.NewHTTPFetcher(srv.URL+"/", options.WithHTTPClient(srv.Client()))
	resolved, err := options.Prefetch(context.Background(), fetcher, []string{"api/v1/departments", "api/v1/roles", "api/v1/missing"})
	if err != nil {
		t.Fatalf("prefetch: %v", err)
	}

	want := options.Static{
		"api/v1/departments": {"Engineering", "HR"},
		"api/v1/roles":       {"Admin", "Manager"},
		"api/v1/missing":     {},
	}
	if diff := cmp.Diff(want, resolved); diff != "" {
		t.Fatalf("prefetch mismatch (-want +got):\n%s", diff)
	}
}

func TestPrefetch_ErrorHandling(t *testing.T) {
	boom := errors.New("boom")
	fetcher := options.FetcherFunc(func(_ context.Context, id string) ([]string, error) {
		if id == "bad" {
			return nil, boom
		}
		return []string{id}, nil
	})

	if _, err := options.Prefetch(context.Background(), fetcher, []string{"ok", "bad"}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped fetch error, got %v", err)
	}

	resolved, err := options.Prefetch(context.Background(), fetcher, []string{"ok", "bad"}, options.WithTolerateErrors())
	if err != nil {
		t.Fatalf("tolerant prefetch: %v", err)
	}
	if got := resolved.Resolve("bad"); len(got) != 0 {
		t.Fatalf("expected failing source to degrade to empty, got %v", got)
	}
	if got := resolved.Resolve("ok"); len(got) != 1 || got[0] != "ok" {
		t.Fatalf("unexpected ok values %v", got)
	}
}

func TestPrefetch_Redis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	defer mr.Close()

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	defer func() { _ = client.Close() }()

	ctx := context.Background()
	fetcher := options.NewRedisFetcher(client, options.WithPrefix("hr:"))
	if err := fetcher.Store(ctx, "api/v1/departments", []string{"Engineering", "HR"}); err != nil {
		t.Fatalf("store: %v", err)
	}
	if !mr.Exists("hr:api/v1/departments") {
		t.Fatalf("expected prefixed key to exist")
	}

	resolved, err := options.Prefetch(ctx, fetcher, []string{"api/v1/departments", "api/v1/roles"})
	if err != nil {
		t.Fatalf("prefetch: %v", err)
	}
	if diff := cmp.Diff([]string{"Engineering", "HR"}, resolved.Resolve("api/v1/departments")); diff != "" {
		t.Fatalf("departments mismatch (-want +got):\n%s", diff)
	}
	if got := resolved.Resolve("api/v1/roles"); len(got) != 0 {
		t.Fatalf("expected missing key to resolve empty, got %v", got)
	}

	if err := fetcher.Store(ctx, "api/v1/departments", []string{"Finance"}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	values, err := fetcher.Fetch(ctx, "api/v1/departments")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if diff := cmp.Diff([]string{"Finance"}, values); diff != "" {
		t.Fatalf("replace mismatch (-want +got):\n%s", diff)
	}
}

func TestOpenAPIResolver(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("testdata", "lookups.openapi.yaml"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	r, err := options.NewOpenAPIResolver(context.Background(), raw)
	if err != nil {
		t.Fatalf("new resolver: %v", err)
	}

	want := options.Static{
		"api/v1/departments": {"Engineering", "Human Resources", "Marketing", "Finance"},
		"api/v1/roles":       {"Admin", "Manager", "Employee", "Intern"},
	}
	if diff := cmp.Diff(want, r); diff != "" {
		t.Fatalf("openapi options mismatch (-want +got):\n%s", diff)
	}
	if got := r.Resolve("api/v1/employees"); len(got) != 0 {
		t.Fatalf("expected employees path without enum to be absent, got %v", got)
	}
}
