package v1alpha1

import (
	"encoding/json"
	"time"
)

// Player documents travel in their stored JSON form

// Empty is returned by calls without a payload
type Empty struct{}

// CreatePlayerRequest creates a player owned by the caller
type CreatePlayerRequest struct {
	Name string `json:"name"`
}

// GetPlayerRequest names one player
type GetPlayerRequest struct {
	PlayerID string `json:"playerId"`
}

// PlayerResponse carries one player document
type PlayerResponse struct {
	Player json.RawMessage `json:"player"`
}

// ListPlayersRequest lists the caller's players
type ListPlayersRequest struct{}

// ListPlayersResponse carries the caller's player documents
type ListPlayersResponse struct {
	Players []json.RawMessage `json:"players"`
}

// DeletePlayerRequest deletes an owned player
type DeletePlayerRequest struct {
	PlayerID string `json:"playerId"`
}

// WatchPlayerRequest streams a player's document
type WatchPlayerRequest struct {
	PlayerID string `json:"playerId"`
}

// PlayerEvent is one update of a watched player. Player is null when the
// document does not exist.
type PlayerEvent struct {
	PlayerID string          `json:"playerId"`
	Player   json.RawMessage `json:"player"`
	Deleted  bool            `json:"deleted"`
}

// ListRevisionsRequest lists the save history of an owned player
type ListRevisionsRequest struct {
	PlayerID string `json:"playerId"`
	Limit    int    `json:"limit,omitempty"`
}

// GetRevisionRequest fetches one saved revision
type GetRevisionRequest struct {
	PlayerID string `json:"playerId"`
	Revision int    `json:"revision"`
}

// Revision is one saved version of a player
type Revision struct {
	PlayerID string          `json:"playerId"`
	Revision int             `json:"revision"`
	SavedBy  string          `json:"savedBy"`
	SavedAt  time.Time       `json:"savedAt"`
	Player   json.RawMessage `json:"player,omitempty"`
}

// ListRevisionsResponse lists revisions newest first
type ListRevisionsResponse struct {
	Revisions []*Revision `json:"revisions"`
}

// RevisionResponse carries one revision with its snapshot
type RevisionResponse struct {
	Revision *Revision `json:"revision"`
}

// ListClassesRequest lists catalog classes, optionally for one book
type ListClassesRequest struct {
	Book string `json:"book,omitempty"`
}

// ClassDefinition is a catalog class
type ClassDefinition struct {
	Name     string          `json:"name"`
	Book     string          `json:"book"`
	Benefits json.RawMessage `json:"benefits"`
}

// ListClassesResponse lists catalog classes and every known book
type ListClassesResponse struct {
	Classes []*ClassDefinition `json:"classes"`
	Books   []string           `json:"books"`
}

// Warning is a localized advisory roster warning
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Session is the state of an edit session
type Session struct {
	ID            string          `json:"id"`
	PlayerID      string          `json:"playerId"`
	Language      string          `json:"language"`
	IsOwner       bool            `json:"isOwner"`
	Dirty         bool            `json:"dirty"`
	State         string          `json:"state"`
	ActiveTab     string          `json:"activeTab"`
	SelectedClass string          `json:"selectedClass,omitempty"`
	Player        json.RawMessage `json:"player"`
	Warnings      []Warning       `json:"warnings"`
	Notices       []string        `json:"notices"`
	ExpiresAt     time.Time       `json:"expiresAt"`
}

// SessionResponse carries a session after an operation
type SessionResponse struct {
	Session *Session `json:"session"`
}

// OpenSessionRequest starts viewing a player. The language comes from
// the x-language metadata.
type OpenSessionRequest struct {
	PlayerID string `json:"playerId"`
}

// SessionRequest names one session
type SessionRequest struct {
	SessionID string `json:"sessionId"`
}

// CloseSessionRequest ends a session; Force drops unsaved changes
type CloseSessionRequest struct {
	SessionID string `json:"sessionId"`
	Force     bool   `json:"force,omitempty"`
}

// SelectTabRequest switches the active tab
type SelectTabRequest struct {
	SessionID string `json:"sessionId"`
	Tab       string `json:"tab"`
}

// SaveSessionResponse carries the saved session and its revision number
type SaveSessionResponse struct {
	Session  *Session `json:"session"`
	Revision int      `json:"revision"`
}

// UpdateBasicsRequest replaces name, level and the informations tab
type UpdateBasicsRequest struct {
	SessionID string          `json:"sessionId"`
	Name      string          `json:"name"`
	Lvl       int             `json:"lvl"`
	Info      json.RawMessage `json:"info,omitempty"`
}

// UpdateAttributesRequest replaces the attribute dice
type UpdateAttributesRequest struct {
	SessionID  string         `json:"sessionId"`
	Attributes map[string]int `json:"attributes"`
}

// UpdateModifiersRequest replaces the manual modifiers
type UpdateModifiersRequest struct {
	SessionID string          `json:"sessionId"`
	Modifiers json.RawMessage `json:"modifiers"`
}

// UpdateCurrentStatsRequest sets current HP, MP and IP
type UpdateCurrentStatsRequest struct {
	SessionID string `json:"sessionId"`
	HP        int    `json:"hp"`
	MP        int    `json:"mp"`
	IP        int    `json:"ip"`
}

// UpdateStatusesRequest replaces the status effects
type UpdateStatusesRequest struct {
	SessionID string          `json:"sessionId"`
	Statuses  json.RawMessage `json:"statuses"`
}

// UpdateDetailsRequest replaces traits, bonds and notes
type UpdateDetailsRequest struct {
	SessionID string          `json:"sessionId"`
	Traits    json.RawMessage `json:"traits,omitempty"`
	Bonds     json.RawMessage `json:"bonds,omitempty"`
	Notes     json.RawMessage `json:"notes,omitempty"`
}

// ClassRequest names a class of a session's player
type ClassRequest struct {
	SessionID string `json:"sessionId"`
	ClassName string `json:"className"`
}

// IndexRequest names a list entry of a session's player
type IndexRequest struct {
	SessionID string `json:"sessionId"`
	Index     int    `json:"index"`
}

// SetClassLevelRequest sets the level of the class at Index
type SetClassLevelRequest struct {
	SessionID string `json:"sessionId"`
	Index     int    `json:"index"`
	Lvl       int    `json:"lvl"`
}

// AddSkillRequest appends a skill to a class
type AddSkillRequest struct {
	SessionID   string `json:"sessionId"`
	ClassName   string `json:"className"`
	SkillName   string `json:"skillName"`
	MaxLvl      int    `json:"maxLvl"`
	Description string `json:"description,omitempty"`
}

// SelectSpellClassResponse lists the spell types the selected class unlocks
type SelectSpellClassResponse struct {
	Session    *Session `json:"session"`
	SpellTypes []string `json:"spellTypes"`
}

// AddSpellRequest adds a spell of SpellType to a class
type AddSpellRequest struct {
	SessionID string `json:"sessionId"`
	ClassName string `json:"className"`
	SpellType string `json:"spellType"`
}

// EditSpellRequest replaces the spell at Index
type EditSpellRequest struct {
	SessionID string          `json:"sessionId"`
	ClassName string          `json:"className"`
	Index     int             `json:"index"`
	Spell     json.RawMessage `json:"spell"`
}

// DeleteSpellRequest removes the spell at Index
type DeleteSpellRequest struct {
	SessionID string `json:"sessionId"`
	ClassName string `json:"className"`
	Index     int    `json:"index"`
}

// WeaponRequest appends a weapon in its exported JSON form
type WeaponRequest struct {
	SessionID string          `json:"sessionId"`
	Weapon    json.RawMessage `json:"weapon"`
}

// Export formats
const (
	ExportFormatJSON = "json"
	ExportFormatPNG  = "png"
)

// ExportWeaponRequest exports the weapon at Index
type ExportWeaponRequest struct {
	SessionID string `json:"sessionId"`
	Index     int    `json:"index"`
	Format    string `json:"format,omitempty"`
}

// FileResponse is a downloadable file
type FileResponse struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"data"`
}

// RollCheckRequest rolls the dice of two attributes plus a bonus
type RollCheckRequest struct {
	SessionID string `json:"sessionId"`
	Attr1     string `json:"attr1"`
	Attr2     string `json:"attr2"`
	Bonus     int    `json:"bonus,omitempty"`
}

// RollCheckResponse is the result of a check
type RollCheckResponse struct {
	Attr1    string `json:"attr1"`
	Attr2    string `json:"attr2"`
	Result1  int    `json:"result1"`
	Result2  int    `json:"result2"`
	Bonus    int    `json:"bonus"`
	Total    int    `json:"total"`
	HighRoll int    `json:"highRoll"`
	Critical bool   `json:"critical"`
	Fumble   bool   `json:"fumble"`
}
