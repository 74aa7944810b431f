package domain

// Archetype is a team's overall strategic identity.
type Archetype string

const (
	ArchetypeTeamfight Archetype = "teamfight"
	ArchetypePoke      Archetype = "poke"
	ArchetypePick      Archetype = "pick"
	ArchetypeSplitpush Archetype = "splitpush"
	ArchetypeBalanced  Archetype = "balanced"
)

// DamageProfile is the percentage split of a team's committed damage.
// The three buckets always sum to 100 when at least one pick is committed.
type DamageProfile struct {
	PhysicalPct int `json:"physicalPct"`
	MagicPct    int `json:"magicPct"`
	TruePct     int `json:"truePct"`
}

// CompositionAnalysis is the derived, ephemeral aggregate for one team.
type CompositionAnalysis struct {
	TeamName       string        `json:"teamName"`
	PickCount      int           `json:"pickCount"`
	Archetype      Archetype     `json:"archetype"`
	DamageProfile  DamageProfile `json:"damageProfile"`
	PowerSpikes    []GamePhase   `json:"powerSpikes"`
	Strengths      []string      `json:"strengths"`
	Weaknesses     []string      `json:"weaknesses"`
	EngageTools    []string      `json:"engageTools"`
	DisengageTools []string      `json:"disengageTools"`
}
