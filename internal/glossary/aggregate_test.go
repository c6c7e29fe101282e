// internal/glossary/aggregate_test.go
package glossary

import (
	"reflect"
	"testing"
)

func TestAggregateDeduplicatesWithProvenanceUnion(t *testing.T) {
	candidates := []CandidateTerm{
		{Term: "Kubernetes", ChunkIndex: 0},
		{Term: "kubernetes", ChunkIndex: 2},
		{Term: "Kubernetes.", ChunkIndex: 2},
		{Term: "kubernetes", ChunkIndex: 3},
	}

	entries := Aggregate(candidates, 8)
	if len(entries) != 1 {
		t.Fatalf("expected 1 merged entry, got %d", len(entries))
	}
	if entries[0].Term != "Kubernetes" {
		t.Fatalf("expected first-seen casing to be kept, got %q", entries[0].Term)
	}
	if entries[0].Canonical != "kubernetes" {
		t.Fatalf("expected canonical form kubernetes, got %q", entries[0].Canonical)
	}
	if !reflect.DeepEqual(entries[0].Chunks, []int{0, 2, 3}) {
		t.Fatalf("expected provenance {0,2,3}, got %v", entries[0].Chunks)
	}
}

func TestAggregateRanksMultiChunkTermsFirst(t *testing.T) {
	candidates := []CandidateTerm{
		{Term: "API", ChunkIndex: 0},
		{Term: "Kubernetes", ChunkIndex: 0},
		{Term: "Kubernetes", ChunkIndex: 1},
	}

	entries := Aggregate(candidates, 8)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Term != "Kubernetes" {
		t.Fatalf("expected Kubernetes ranked above API, got %q first", entries[0].Term)
	}
	if entries[1].Term != "API" {
		t.Fatalf("expected API second, got %q", entries[1].Term)
	}
}

func TestAggregateTieBreaks(t *testing.T) {
	// Same chunk count and same first chunk: lexical canonical order decides.
	candidates := []CandidateTerm{
		{Term: "zookeeper", ChunkIndex: 0},
		{Term: "etcd", ChunkIndex: 0},
	}
	entries := Aggregate(candidates, 8)
	if entries[0].Term != "etcd" || entries[1].Term != "zookeeper" {
		t.Fatalf("expected lexical tie-break etcd before zookeeper, got %q, %q", entries[0].Term, entries[1].Term)
	}

	// Same chunk count, different first chunk: earlier appearance wins.
	candidates = []CandidateTerm{
		{Term: "sidecar", ChunkIndex: 2},
		{Term: "ingress", ChunkIndex: 1},
	}
	entries = Aggregate(candidates, 8)
	if entries[0].Term != "ingress" {
		t.Fatalf("expected earlier-appearing ingress first, got %q", entries[0].Term)
	}
}

func TestAggregateCapsAfterRanking(t *testing.T) {
	candidates := []CandidateTerm{
		{Term: "alpha", ChunkIndex: 0},
		{Term: "beta", ChunkIndex: 0},
		{Term: "gamma", ChunkIndex: 0},
		{Term: "gamma", ChunkIndex: 1},
	}

	entries := Aggregate(candidates, 2)
	if len(entries) != 2 {
		t.Fatalf("expected cap of 2, got %d entries", len(entries))
	}
	// gamma spans two chunks so it must survive the cap.
	if entries[0].Term != "gamma" {
		t.Fatalf("expected gamma to rank first, got %q", entries[0].Term)
	}
	if entries[1].Term != "alpha" {
		t.Fatalf("expected alpha second, got %q", entries[1].Term)
	}
}

func TestAggregateEmptyAndBlankInput(t *testing.T) {
	if entries := Aggregate(nil, 8); len(entries) != 0 {
		t.Fatalf("expected no entries for nil input, got %d", len(entries))
	}
	entries := Aggregate([]CandidateTerm{{Term: "  ", ChunkIndex: 0}, {Term: "...", ChunkIndex: 1}}, 8)
	if len(entries) != 0 {
		t.Fatalf("expected blank candidates to be dropped, got %d entries", len(entries))
	}
}

func TestCanonicalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Kubernetes", "kubernetes"},
		{"  gRPC, ", "grpc"},
		{"\"OAuth\"", "oauth"},
		{"(JWT)", "jwt"},
		{"service mesh", "service mesh"},
		{"...", ""},
	}
	for _, tc := range cases {
		if got := Canonicalize(tc.in); got != tc.want {
			t.Fatalf("Canonicalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
