package entities

// SpellType names a spell category a class can unlock.
type SpellType string

// Spell types
const (
	SpellTypeDefault          SpellType = "default"
	SpellTypeArcanist         SpellType = "arcanist"
	SpellTypeGamble           SpellType = "gamble"
	SpellTypeTinkererAlchemy  SpellType = "tinkerer-alchemy"
	SpellTypeTinkererInfusion SpellType = "tinkerer-infusion"
	SpellTypeTinkererMagitech SpellType = "tinkerer-magitech"
	SpellTypeMagichant        SpellType = "magichant"
	SpellTypeSymbol           SpellType = "symbol"
	SpellTypeDance            SpellType = "dance"
	SpellTypePsychicGift      SpellType = "psychic-gift"
	SpellTypeTherioform       SpellType = "therioform"
	SpellTypeVehicle          SpellType = "vehicle"
)

// Spell is a spell known by a class. Only the default type has a defined payload.
type Spell struct {
	SpellType   SpellType `json:"spellType"`
	Name        string    `json:"name"`
	MP          int       `json:"mp"`
	MaxTargets  int       `json:"maxTargets"`
	TargetDesc  string    `json:"targetDesc"`
	Duration    string    `json:"duration"`
	Description string    `json:"description"`
	IsOffensive bool      `json:"isOffensive"`
	Attr1       Attribute `json:"attr1"`
	Attr2       Attribute `json:"attr2"`
}

// NewDefaultSpell returns the template used when a default spell is added.
func NewDefaultSpell() Spell {
	return Spell{
		SpellType: SpellTypeDefault,
		Name:      "New Spell",
		Attr1:     AttributeDexterity,
		Attr2:     AttributeDexterity,
	}
}
