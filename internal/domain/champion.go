package domain

import "time"

type Champion struct {
	ID           string        `json:"id" gorm:"primaryKey"` // e.g., "Aatrox"
	Key          string        `json:"key" gorm:"not null"`  // e.g., "266"
	Name         string        `json:"name" gorm:"not null"` // Display name
	Title        string        `json:"title"`                // e.g., "the Darkin Blade"
	Roles        []Role        `json:"roles" gorm:"serializer:json;not null"`
	DamageType   DamageType    `json:"damageType"`
	Tags         []ChampionTag `json:"tags" gorm:"serializer:json"`
	SpikePhases  []GamePhase   `json:"spikePhases" gorm:"serializer:json"`
	LastSyncedAt time.Time     `json:"lastSyncedAt"`
}

// CanFill reports whether the champion is playable in the given role.
func (c *Champion) CanFill(role Role) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsFlex reports whether the champion is playable in more than one role.
func (c *Champion) IsFlex() bool {
	return len(c.Roles) > 1
}

func (c *Champion) HasTag(tag ChampionTag) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (c *Champion) SpikesAt(phase GamePhase) bool {
	for _, p := range c.SpikePhases {
		if p == phase {
			return true
		}
	}
	return false
}

// DamageType is a champion's primary damage profile.
type DamageType string

const (
	DamagePhysical DamageType = "physical"
	DamageMagic    DamageType = "magic"
	DamageMixed    DamageType = "mixed"
	DamageTrue     DamageType = "true"
)

// ChampionTag marks a strategic trait used by the composition analyzer.
type ChampionTag string

const (
	TagEngage     ChampionTag = "engage"
	TagDisengage  ChampionTag = "disengage"
	TagPoke       ChampionTag = "poke"
	TagPickThreat ChampionTag = "pick_threat"
	TagSplitpush  ChampionTag = "splitpush"
	TagFrontline  ChampionTag = "frontline"
)

// GamePhase is a power-spike window.
type GamePhase string

const (
	PhaseEarly GamePhase = "early"
	PhaseMid   GamePhase = "mid"
	PhaseLate  GamePhase = "late"
)
