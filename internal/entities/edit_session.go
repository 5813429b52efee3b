package entities

import "time"

// SessionState is the viewing/editing state of an edit session.
type SessionState string

// Session states
const (
	SessionStateViewing SessionState = "viewing"
	SessionStateEditing SessionState = "editing"
)

// Tab is a section of the player sheet.
type Tab string

// Tabs in display order
const (
	TabSheet        Tab = "sheet"
	TabInformations Tab = "informations"
	TabStats        Tab = "stats"
	TabClasses      Tab = "classes"
	TabSpells       Tab = "spells"
	TabEquipment    Tab = "equipment"
)

// AllTabs lists tabs in display order.
var AllTabs = []Tab{TabSheet, TabInformations, TabStats, TabClasses, TabSpells, TabEquipment}

// SpellSelection is the spell editor's current class and spell type choice.
type SpellSelection struct {
	ClassName string    `json:"className,omitempty"`
	SpellType SpellType `json:"spellType,omitempty"`
}

// EditSession holds one user's scratch copy of a player while viewing or editing it.
type EditSession struct {
	ID        string         `json:"id"`
	PlayerID  string         `json:"playerId"`
	UserID    string         `json:"userId"`
	Language  string         `json:"language"`
	IsOwner   bool           `json:"isOwner"`
	Scratch   *Player        `json:"scratch"`
	Dirty     bool           `json:"dirty"`
	ActiveTab Tab            `json:"activeTab"`
	Selection SpellSelection `json:"selection"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	ExpiresAt time.Time      `json:"expiresAt"`
}

// State derives the session state from the dirty flag.
func (s *EditSession) State() SessionState {
	if s.Dirty {
		return SessionStateEditing
	}
	return SessionStateViewing
}
