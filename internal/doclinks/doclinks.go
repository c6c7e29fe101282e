// internal/doclinks/doclinks.go

// Package doclinks maps well-known technology terms to their official
// documentation URLs. It is a pure lookup table: the only failure mode is
// "not found".
package doclinks

import (
	"sort"
	"strings"
)

// builtin covers the technologies glossaries most often surface. Config-file
// entries override or extend it.
var builtin = map[string]string{
	"kubernetes": "https://kubernetes.io/docs/",
	"docker":     "https://docs.docker.com/",
	"react":      "https://react.dev/",
	"python":     "https://docs.python.org/3/",
	"javascript": "https://developer.mozilla.org/en-US/docs/Web/JavaScript",
	"typescript": "https://www.typescriptlang.org/docs/",
	"aws":        "https://docs.aws.amazon.com/",
	"git":        "https://git-scm.com/doc",
	"postgresql": "https://www.postgresql.org/docs/",
	"mongodb":    "https://www.mongodb.com/docs/",
	"redis":      "https://redis.io/docs/",
	"graphql":    "https://graphql.org/learn/",
	"rest":       "https://restfulapi.net/",
	"oauth":      "https://oauth.net/2/",
	"jwt":        "https://jwt.io/introduction",
	"nginx":      "https://nginx.org/en/docs/",
	"terraform":  "https://developer.hashicorp.com/terraform/docs",
	"ansible":    "https://docs.ansible.com/",
	"jenkins":    "https://www.jenkins.io/doc/",
	"github":     "https://docs.github.com/",
}

// Table resolves canonical terms to documentation URLs.
type Table struct {
	entries map[string]string
	// keys is kept sorted so substring matching is deterministic when more
	// than one table key would match.
	keys []string
}

// New builds a Table from the built-in entries plus config overrides.
// Override keys are canonicalized to lower case; an empty URL removes the
// built-in entry for that key.
func New(overrides map[string]string) *Table {
	entries := make(map[string]string, len(builtin)+len(overrides))
	for k, v := range builtin {
		entries[k] = v
	}
	for k, v := range overrides {
		key := strings.ToLower(strings.TrimSpace(k))
		if key == "" {
			continue
		}
		if strings.TrimSpace(v) == "" {
			delete(entries, key)
			continue
		}
		entries[key] = v
	}
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &Table{entries: entries, keys: keys}
}

// Lookup returns the documentation URL for a canonical term. A table key
// matches when it contains the term or the term contains it, so "kubernetes
// operator" still resolves to the Kubernetes docs.
func (t *Table) Lookup(canonical string) (string, bool) {
	canonical = strings.ToLower(strings.TrimSpace(canonical))
	if canonical == "" {
		return "", false
	}
	if url, ok := t.entries[canonical]; ok {
		return url, true
	}
	for _, key := range t.keys {
		if strings.Contains(canonical, key) || strings.Contains(key, canonical) {
			return t.entries[key], true
		}
	}
	return "", false
}
