package entities

// DamageType is the damage type dealt by a weapon.
type DamageType string

// Damage types
const (
	DamagePhysical DamageType = "physical"
	DamageAir      DamageType = "wind"
	DamageBolt     DamageType = "bolt"
	DamageDark     DamageType = "dark"
	DamageEarth    DamageType = "earth"
	DamageFire     DamageType = "fire"
	DamageIce      DamageType = "ice"
	DamageLight    DamageType = "light"
	DamagePoison   DamageType = "poison"
)

// Equipment is everything a player carries.
type Equipment struct {
	Weapons     []Weapon    `json:"weapons"`
	Armor       []Armor     `json:"armor"`
	Shields     []Armor     `json:"shields"`
	Accessories []Accessory `json:"accessories"`
}

// Weapon is a weapon item. Its JSON form is also the export format.
type Weapon struct {
	Name     string     `json:"name"`
	Category string     `json:"category"`
	Cost     int        `json:"cost"`
	Att1     Attribute  `json:"att1"`
	Att2     Attribute  `json:"att2"`
	Prec     int        `json:"prec"`
	Damage   int        `json:"damage"`
	Type     DamageType `json:"type"`
	Hands    int        `json:"hands"`
	Melee    bool       `json:"melee"`
	Ranged   bool       `json:"ranged"`
	Martial  bool       `json:"martial"`
	Quality  string     `json:"quality"`
}

// Armor is an armor or shield item.
type Armor struct {
	Name    string `json:"name"`
	Cost    int    `json:"cost"`
	Def     int    `json:"def"`
	MDef    int    `json:"mdef"`
	Init    int    `json:"init"`
	Martial bool   `json:"martial"`
	Quality string `json:"quality"`
}

// Accessory is an accessory item.
type Accessory struct {
	Name    string `json:"name"`
	Cost    int    `json:"cost"`
	Quality string `json:"quality"`
}

// Clone returns a deep copy of the equipment.
func (e Equipment) Clone() Equipment {
	return Equipment{
		Weapons:     cloneSlice(e.Weapons),
		Armor:       cloneSlice(e.Armor),
		Shields:     cloneSlice(e.Shields),
		Accessories: cloneSlice(e.Accessories),
	}
}
