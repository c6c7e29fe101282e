// internal/glossary/level.go
package glossary

import "fmt"

// Level selects the target-audience expertise profile for a run.
type Level string

const (
	LevelJunior Level = "junior"
	LevelMid    Level = "mid"
	LevelSenior Level = "senior"
)

// Profile holds the behavior parameters a Level maps to: how the audience is
// described in prompts, how many candidates to request per chunk, and how
// definitions should read.
type Profile struct {
	Level Level
	// Audience is the prose description used in extraction and definition prompts.
	Audience string
	// ChunkTermLimit bounds how many candidates the extractor requests per
	// chunk. Junior audiences get more, simpler candidates; senior fewer,
	// more specialized ones.
	ChunkTermLimit int
	// DefinitionStyle hints the register the definer should write in.
	DefinitionStyle string
}

var profiles = map[Level]Profile{
	LevelJunior: {
		Level:           LevelJunior,
		Audience:        "junior developer with 2-3 years of experience",
		ChunkTermLimit:  8,
		DefinitionStyle: "plain language, spell out acronyms, avoid assuming prior exposure",
	},
	LevelMid: {
		Level:           LevelMid,
		Audience:        "mid-level developer with 4-6 years of experience",
		ChunkTermLimit:  6,
		DefinitionStyle: "concise, assume general engineering fluency",
	},
	LevelSenior: {
		Level:           LevelSenior,
		Audience:        "senior developer with 7+ years of experience",
		ChunkTermLimit:  4,
		DefinitionStyle: "terse and specialized, only cover what is genuinely niche",
	},
}

// Levels returns all expertise levels in ascending seniority order.
func Levels() []Level {
	return []Level{LevelJunior, LevelMid, LevelSenior}
}

// ProfileFor resolves a level name to its Profile. Unknown names are an error
// so a typo on the command line fails fast instead of silently defaulting.
func ProfileFor(level Level) (Profile, error) {
	p, ok := profiles[level]
	if !ok {
		return Profile{}, fmt.Errorf("unknown expertise level %q (expected one of junior, mid, senior)", level)
	}
	return p, nil
}
