// internal/doclinks/doclinks_test.go
package doclinks

import "testing"

func TestLookupExactAndSubstring(t *testing.T) {
	table := New(nil)

	url, ok := table.Lookup("kubernetes")
	if !ok || url != "https://kubernetes.io/docs/" {
		t.Fatalf("exact lookup failed: %q, %v", url, ok)
	}

	// Term containing a table key still resolves.
	url, ok = table.Lookup("kubernetes operator")
	if !ok || url != "https://kubernetes.io/docs/" {
		t.Fatalf("substring lookup failed: %q, %v", url, ok)
	}

	if _, ok := table.Lookup("idempotency"); ok {
		t.Fatal("expected no link for unknown term")
	}
	if _, ok := table.Lookup(""); ok {
		t.Fatal("expected no link for empty term")
	}
}

func TestOverridesExtendAndRemove(t *testing.T) {
	table := New(map[string]string{
		"Grafana":    "https://grafana.com/docs/",
		"kubernetes": "",
	})

	url, ok := table.Lookup("grafana")
	if !ok || url != "https://grafana.com/docs/" {
		t.Fatalf("override lookup failed: %q, %v", url, ok)
	}
	if _, ok := table.Lookup("kubernetes"); ok {
		t.Fatal("expected blank override to remove the built-in entry")
	}
}

func TestLookupIsDeterministic(t *testing.T) {
	table := New(nil)
	// "git" and "github" both match "github actions"; sorted key order must
	// make the result stable across runs.
	first, ok := table.Lookup("github actions")
	if !ok {
		t.Fatal("expected a match")
	}
	for i := 0; i < 20; i++ {
		url, _ := table.Lookup("github actions")
		if url != first {
			t.Fatalf("lookup not deterministic: %q vs %q", url, first)
		}
	}
}
