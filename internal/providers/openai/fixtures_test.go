// internal/providers/openai/fixtures_test.go
package openai

import "glossgen/internal/glossary"

func profileFixture() glossary.Profile {
	return glossary.Profile{
		Level:           glossary.LevelSenior,
		Audience:        "senior developer with 7+ years of experience",
		ChunkTermLimit:  4,
		DefinitionStyle: "terse and specialized, only cover what is genuinely niche",
	}
}
