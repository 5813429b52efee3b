// Package player defines the interface for player sheet operations
package player

//go:generate mockgen -destination=mock/mock_service.go -package=playermock github.com/KirkDiggler/fabula-api/internal/services/player Service

import (
	"context"

	"github.com/KirkDiggler/fabula-api/internal/catalog"
	"github.com/KirkDiggler/fabula-api/internal/engine"
	"github.com/KirkDiggler/fabula-api/internal/entities"
	"github.com/KirkDiggler/fabula-api/internal/export"
)

// Service defines the interface for player sheet operations
type Service interface {
	// Player documents
	CreatePlayer(ctx context.Context, input *CreatePlayerInput) (*CreatePlayerOutput, error)
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error)
	ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error)
	DeletePlayer(ctx context.Context, input *DeletePlayerInput) (*DeletePlayerOutput, error)
	WatchPlayer(ctx context.Context, input *WatchPlayerInput) (<-chan *PlayerEvent, error)
	ListRevisions(ctx context.Context, input *ListRevisionsInput) (*ListRevisionsOutput, error)
	GetRevision(ctx context.Context, input *GetRevisionInput) (*GetRevisionOutput, error)

	// Class catalog
	ListClasses(ctx context.Context, input *ListClassesInput) (*ListClassesOutput, error)

	// Edit session lifecycle
	OpenSession(ctx context.Context, input *OpenSessionInput) (*SessionOutput, error)
	GetSession(ctx context.Context, input *GetSessionInput) (*SessionOutput, error)
	CloseSession(ctx context.Context, input *CloseSessionInput) (*CloseSessionOutput, error)
	SelectTab(ctx context.Context, input *SelectTabInput) (*SessionOutput, error)
	SaveSession(ctx context.Context, input *SaveSessionInput) (*SaveSessionOutput, error)
	DiscardChanges(ctx context.Context, input *DiscardChangesInput) (*SessionOutput, error)
	ResetFromUpstream(ctx context.Context, input *ResetFromUpstreamInput) (*ResetFromUpstreamOutput, error)

	// Sheet sections
	UpdateBasics(ctx context.Context, input *UpdateBasicsInput) (*SessionOutput, error)
	UpdateAttributes(ctx context.Context, input *UpdateAttributesInput) (*SessionOutput, error)
	UpdateModifiers(ctx context.Context, input *UpdateModifiersInput) (*SessionOutput, error)
	UpdateCurrentStats(ctx context.Context, input *UpdateCurrentStatsInput) (*SessionOutput, error)
	UpdateStatuses(ctx context.Context, input *UpdateStatusesInput) (*SessionOutput, error)
	UpdateDetails(ctx context.Context, input *UpdateDetailsInput) (*SessionOutput, error)

	// Class roster
	AddClass(ctx context.Context, input *AddClassInput) (*SessionOutput, error)
	RemoveClass(ctx context.Context, input *RemoveClassInput) (*SessionOutput, error)
	SetClassLevel(ctx context.Context, input *SetClassLevelInput) (*SessionOutput, error)
	AddSkill(ctx context.Context, input *AddSkillInput) (*SessionOutput, error)

	// Spell roster
	SelectSpellClass(ctx context.Context, input *SelectSpellClassInput) (*SelectSpellClassOutput, error)
	AddSpell(ctx context.Context, input *AddSpellInput) (*SessionOutput, error)
	EditSpell(ctx context.Context, input *EditSpellInput) (*SessionOutput, error)
	DeleteSpell(ctx context.Context, input *DeleteSpellInput) (*SessionOutput, error)

	// Equipment
	AddWeapon(ctx context.Context, input *AddWeaponInput) (*SessionOutput, error)
	ImportWeapon(ctx context.Context, input *ImportWeaponInput) (*SessionOutput, error)
	RemoveWeapon(ctx context.Context, input *RemoveWeaponInput) (*SessionOutput, error)
	ExportWeapon(ctx context.Context, input *ExportWeaponInput) (*ExportOutput, error)
	RenderWeaponCard(ctx context.Context, input *ExportWeaponInput) (*ExportOutput, error)

	// Checks
	RollCheck(ctx context.Context, input *RollCheckInput) (*RollCheckOutput, error)
}

// Player document types

// CreatePlayerInput defines the request for creating a player
type CreatePlayerInput struct {
	UserID string
	Name   string
}

// CreatePlayerOutput defines the response for creating a player
type CreatePlayerOutput struct {
	Player *entities.Player
}

// GetPlayerInput defines the request for getting a player
type GetPlayerInput struct {
	PlayerID string
}

// GetPlayerOutput defines the response for getting a player
type GetPlayerOutput struct {
	Player *entities.Player
}

// ListPlayersInput defines the request for listing a user's players
type ListPlayersInput struct {
	UserID string
}

// ListPlayersOutput defines the response for listing players
type ListPlayersOutput struct {
	Players []*entities.Player
}

// DeletePlayerInput defines the request for deleting a player
type DeletePlayerInput struct {
	PlayerID string
	UserID   string
}

// DeletePlayerOutput defines the response for deleting a player
type DeletePlayerOutput struct{}

// WatchPlayerInput defines the request for watching a player
type WatchPlayerInput struct {
	PlayerID string
}

// PlayerEvent carries the latest document of a watched player.
// Player is nil when the document does not exist.
type PlayerEvent struct {
	PlayerID string
	Player   *entities.Player
}

// ListRevisionsInput defines the request for listing saved revisions
type ListRevisionsInput struct {
	PlayerID string
	UserID   string
	Limit    int
}

// ListRevisionsOutput defines the response for listing revisions
type ListRevisionsOutput struct {
	Revisions []*entities.Revision
}

// GetRevisionInput defines the request for getting one revision
type GetRevisionInput struct {
	PlayerID string
	UserID   string
	Revision int
}

// GetRevisionOutput defines the response for getting one revision
type GetRevisionOutput struct {
	Revision *entities.Revision
}

// ListClassesInput defines the request for listing catalog classes
type ListClassesInput struct {
	Book string // Optional filter
}

// ListClassesOutput defines the response for listing catalog classes
type ListClassesOutput struct {
	Classes []*catalog.ClassDefinition
	Books   []string
}

// Edit session types

// Warning is a localized advisory roster warning
type Warning struct {
	Code    engine.RosterWarning
	Message string
}

// SessionOutput is the state of an edit session after an operation
type SessionOutput struct {
	Session  *entities.EditSession
	State    entities.SessionState
	Warnings []Warning
	// Notices are localized messages about requests that changed nothing
	Notices []string
}

// OpenSessionInput defines the request for opening an edit session
type OpenSessionInput struct {
	PlayerID string
	UserID   string
	// Language is the caller preference, a tag or an Accept-Language list
	Language string
}

// GetSessionInput defines the request for getting an edit session
type GetSessionInput struct {
	SessionID string
	UserID    string
}

// CloseSessionInput defines the request for closing an edit session
type CloseSessionInput struct {
	SessionID string
	UserID    string
	// Force discards unsaved changes
	Force bool
}

// CloseSessionOutput defines the response for closing an edit session
type CloseSessionOutput struct{}

// SelectTabInput defines the request for switching the active tab
type SelectTabInput struct {
	SessionID string
	UserID    string
	Tab       entities.Tab
}

// SaveSessionInput defines the request for saving the scratch document
type SaveSessionInput struct {
	SessionID string
	UserID    string
}

// SaveSessionOutput defines the response for saving
type SaveSessionOutput struct {
	SessionOutput
	Revision *entities.Revision
}

// DiscardChangesInput defines the request for dropping unsaved changes
type DiscardChangesInput struct {
	SessionID string
	UserID    string
}

// ResetFromUpstreamInput carries a changed player document.
// A nil Player means the document was deleted.
type ResetFromUpstreamInput struct {
	PlayerID string
	Player   *entities.Player
}

// ResetFromUpstreamOutput reports how many sessions were touched
type ResetFromUpstreamOutput struct {
	SessionsReset  int
	SessionsClosed int
}

// Sheet section types

// UpdateBasicsInput replaces name, level and the informations tab
type UpdateBasicsInput struct {
	SessionID string
	UserID    string
	Name      string
	Lvl       int
	Info      entities.Info
}

// UpdateAttributesInput replaces the attribute dice
type UpdateAttributesInput struct {
	SessionID  string
	UserID     string
	Attributes map[entities.Attribute]int
}

// UpdateModifiersInput replaces the manual modifiers
type UpdateModifiersInput struct {
	SessionID string
	UserID    string
	Modifiers entities.Modifiers
}

// UpdateCurrentStatsInput sets current HP/MP/IP, clamped to [0, max]
type UpdateCurrentStatsInput struct {
	SessionID string
	UserID    string
	HP        int
	MP        int
	IP        int
}

// UpdateStatusesInput replaces the status effects
type UpdateStatusesInput struct {
	SessionID string
	UserID    string
	Statuses  entities.Statuses
}

// UpdateDetailsInput replaces traits, bonds and notes
type UpdateDetailsInput struct {
	SessionID string
	UserID    string
	Traits    entities.Traits
	Bonds     []entities.Bond
	Notes     []entities.Note
}

// Class roster types

// AddClassInput adds a catalog class at level 1
type AddClassInput struct {
	SessionID string
	UserID    string
	ClassName string
}

// RemoveClassInput removes the class at Index
type RemoveClassInput struct {
	SessionID string
	UserID    string
	Index     int
}

// SetClassLevelInput sets the level of the class at Index
type SetClassLevelInput struct {
	SessionID string
	UserID    string
	Index     int
	Lvl       int
}

// AddSkillInput appends a skill to a class
type AddSkillInput struct {
	SessionID   string
	UserID      string
	ClassName   string
	SkillName   string
	MaxLvl      int
	Description string
}

// Spell roster types

// SelectSpellClassInput picks the class whose spells are being edited
type SelectSpellClassInput struct {
	SessionID string
	UserID    string
	ClassName string
}

// SelectSpellClassOutput lists the spell types the class unlocks
type SelectSpellClassOutput struct {
	SessionOutput
	SpellTypes []entities.SpellType
}

// AddSpellInput adds a spell of SpellType to a class
type AddSpellInput struct {
	SessionID string
	UserID    string
	ClassName string
	SpellType entities.SpellType
}

// EditSpellInput replaces the spell at Index
type EditSpellInput struct {
	SessionID string
	UserID    string
	ClassName string
	Index     int
	Spell     entities.Spell
}

// DeleteSpellInput removes the spell at Index
type DeleteSpellInput struct {
	SessionID string
	UserID    string
	ClassName string
	Index     int
}

// Equipment types

// AddWeaponInput appends a weapon
type AddWeaponInput struct {
	SessionID string
	UserID    string
	Weapon    entities.Weapon
}

// ImportWeaponInput appends a weapon from its exported JSON form
type ImportWeaponInput struct {
	SessionID string
	UserID    string
	Data      []byte
}

// RemoveWeaponInput removes the weapon at Index
type RemoveWeaponInput struct {
	SessionID string
	UserID    string
	Index     int
}

// ExportWeaponInput selects the weapon at Index for export
type ExportWeaponInput struct {
	SessionID string
	UserID    string
	Index     int
}

// ExportOutput is a downloadable file
type ExportOutput struct {
	File *export.File
}

// Check types

// RollCheckInput rolls one die per attribute plus a flat bonus
type RollCheckInput struct {
	SessionID string
	UserID    string
	Attr1     entities.Attribute
	Attr2     entities.Attribute
	Bonus     int
}

// RollCheckOutput is the result of a check
type RollCheckOutput struct {
	Attr1  entities.Attribute
	Attr2  entities.Attribute
	Result *engine.RollCheckOutput
}
