// internal/cli/root_test.go
package glossgen

import "testing"

func TestCommandTree(t *testing.T) {
	expected := map[string]bool{
		"build":    false,
		"estimate": false,
		"levels":   false,
		"formats":  false,
	}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := expected[cmd.Name()]; ok {
			expected[cmd.Name()] = true
		}
	}
	for name, found := range expected {
		if !found {
			t.Fatalf("expected %q subcommand to be registered", name)
		}
	}
}

func TestBuildCommandFlags(t *testing.T) {
	for _, name := range []string{"level", "format", "output", "estimate-cost"} {
		if buildCmd.Flags().Lookup(name) == nil {
			t.Fatalf("build command missing --%s flag", name)
		}
	}
	if rootCmd.PersistentFlags().Lookup("noProgress") == nil {
		t.Fatal("root command missing --noProgress flag")
	}
}
