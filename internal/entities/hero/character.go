// Package hero defines the core entities for generated characters and
// their inventories. Entities are plain data; all behavior lives in the
// engine and orchestrator layers.
package hero

// Ability identifies one of the six ability scores
type Ability string

// Ability constants, in canonical roll order
const (
	AbilityStrength     Ability = "strength"
	AbilityDexterity    Ability = "dexterity"
	AbilityConstitution Ability = "constitution"
	AbilityIntelligence Ability = "intelligence"
	AbilityWisdom       Ability = "wisdom"
	AbilityCharisma     Ability = "charisma"
)

// AbilityOrder is the fixed order in which ability scores are rolled.
// The order matters: every roll consumes from the shared seeded stream,
// so reordering would change generated characters.
var AbilityOrder = []Ability{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

// AbilityScores holds the six rolled ability scores
type AbilityScores struct {
	Strength     int32 `json:"strength"`
	Dexterity    int32 `json:"dexterity"`
	Constitution int32 `json:"constitution"`
	Intelligence int32 `json:"intelligence"`
	Wisdom       int32 `json:"wisdom"`
	Charisma     int32 `json:"charisma"`
}

// Score returns the value for the given ability
func (a AbilityScores) Score(ability Ability) int32 {
	switch ability {
	case AbilityStrength:
		return a.Strength
	case AbilityDexterity:
		return a.Dexterity
	case AbilityConstitution:
		return a.Constitution
	case AbilityIntelligence:
		return a.Intelligence
	case AbilityWisdom:
		return a.Wisdom
	case AbilityCharisma:
		return a.Charisma
	default:
		return 0
	}
}

// SetScore sets the value for the given ability
func (a *AbilityScores) SetScore(ability Ability, value int32) {
	switch ability {
	case AbilityStrength:
		a.Strength = value
	case AbilityDexterity:
		a.Dexterity = value
	case AbilityConstitution:
		a.Constitution = value
	case AbilityIntelligence:
		a.Intelligence = value
	case AbilityWisdom:
		a.Wisdom = value
	case AbilityCharisma:
		a.Charisma = value
	}
}

// Modifier returns the ability modifier for a score
func Modifier(score int32) int32 {
	return (score - 10) / 2
}

// Character is a fully generated character. It is created once per
// generation run and never mutated afterwards; in-game progression
// replaces the record wholesale.
type Character struct {
	Pubkey     string `json:"pubkey"`
	Race       string `json:"race"`
	Class      string `json:"class"`
	Background string `json:"background"`
	Alignment  string `json:"alignment"`

	Abilities AbilityScores `json:"abilities"`

	HitPoints int32 `json:"hit_points"`
	Mana      int32 `json:"mana"`
	Gold      int32 `json:"gold"`

	// Seed is the identity-derived seed the run consumed. Stored so a
	// record can be audited against a regeneration.
	Seed int64 `json:"seed"`
}
