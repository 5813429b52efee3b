package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// PlayerServiceClient is the client API for PlayerService
type PlayerServiceClient interface {
	CreatePlayer(ctx context.Context, in *CreatePlayerRequest, opts ...grpc.CallOption) (*PlayerResponse, error)
	GetPlayer(ctx context.Context, in *GetPlayerRequest, opts ...grpc.CallOption) (*PlayerResponse, error)
	ListPlayers(ctx context.Context, in *ListPlayersRequest, opts ...grpc.CallOption) (*ListPlayersResponse, error)
	DeletePlayer(ctx context.Context, in *DeletePlayerRequest, opts ...grpc.CallOption) (*Empty, error)
	ListRevisions(ctx context.Context, in *ListRevisionsRequest, opts ...grpc.CallOption) (*ListRevisionsResponse, error)
	GetRevision(ctx context.Context, in *GetRevisionRequest, opts ...grpc.CallOption) (*RevisionResponse, error)
	ListClasses(ctx context.Context, in *ListClassesRequest, opts ...grpc.CallOption) (*ListClassesResponse, error)
	OpenSession(ctx context.Context, in *OpenSessionRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	GetSession(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	CloseSession(ctx context.Context, in *CloseSessionRequest, opts ...grpc.CallOption) (*Empty, error)
	SelectTab(ctx context.Context, in *SelectTabRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	SaveSession(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*SaveSessionResponse, error)
	DiscardChanges(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	UpdateBasics(ctx context.Context, in *UpdateBasicsRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	UpdateAttributes(ctx context.Context, in *UpdateAttributesRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	UpdateModifiers(ctx context.Context, in *UpdateModifiersRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	UpdateCurrentStats(ctx context.Context, in *UpdateCurrentStatsRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	UpdateStatuses(ctx context.Context, in *UpdateStatusesRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	UpdateDetails(ctx context.Context, in *UpdateDetailsRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	AddClass(ctx context.Context, in *ClassRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	RemoveClass(ctx context.Context, in *IndexRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	SetClassLevel(ctx context.Context, in *SetClassLevelRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	AddSkill(ctx context.Context, in *AddSkillRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	SelectSpellClass(ctx context.Context, in *ClassRequest, opts ...grpc.CallOption) (*SelectSpellClassResponse, error)
	AddSpell(ctx context.Context, in *AddSpellRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	EditSpell(ctx context.Context, in *EditSpellRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	DeleteSpell(ctx context.Context, in *DeleteSpellRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	AddWeapon(ctx context.Context, in *WeaponRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	ImportWeapon(ctx context.Context, in *WeaponRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	RemoveWeapon(ctx context.Context, in *IndexRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	ExportWeapon(ctx context.Context, in *ExportWeaponRequest, opts ...grpc.CallOption) (*FileResponse, error)
	RollCheck(ctx context.Context, in *RollCheckRequest, opts ...grpc.CallOption) (*RollCheckResponse, error)
	WatchPlayer(ctx context.Context, in *WatchPlayerRequest, opts ...grpc.CallOption) (PlayerService_WatchPlayerClient, error)
}

// PlayerService_WatchPlayerClient is the client side of a WatchPlayer stream
type PlayerService_WatchPlayerClient interface {
	Recv() (*PlayerEvent, error)
	grpc.ClientStream
}

type playerServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewPlayerServiceClient returns a client that always uses the JSON codec
func NewPlayerServiceClient(cc grpc.ClientConnInterface) PlayerServiceClient {
	return &playerServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, name string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := cc.Invoke(ctx, fullMethod(name), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *playerServiceClient) CreatePlayer(ctx context.Context, in *CreatePlayerRequest, opts ...grpc.CallOption) (*PlayerResponse, error) {
	return invoke[PlayerResponse](ctx, c.cc, "CreatePlayer", in, opts)
}

func (c *playerServiceClient) GetPlayer(ctx context.Context, in *GetPlayerRequest, opts ...grpc.CallOption) (*PlayerResponse, error) {
	return invoke[PlayerResponse](ctx, c.cc, "GetPlayer", in, opts)
}

func (c *playerServiceClient) ListPlayers(ctx context.Context, in *ListPlayersRequest, opts ...grpc.CallOption) (*ListPlayersResponse, error) {
	return invoke[ListPlayersResponse](ctx, c.cc, "ListPlayers", in, opts)
}

func (c *playerServiceClient) DeletePlayer(ctx context.Context, in *DeletePlayerRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, "DeletePlayer", in, opts)
}

func (c *playerServiceClient) ListRevisions(ctx context.Context, in *ListRevisionsRequest, opts ...grpc.CallOption) (*ListRevisionsResponse, error) {
	return invoke[ListRevisionsResponse](ctx, c.cc, "ListRevisions", in, opts)
}

func (c *playerServiceClient) GetRevision(ctx context.Context, in *GetRevisionRequest, opts ...grpc.CallOption) (*RevisionResponse, error) {
	return invoke[RevisionResponse](ctx, c.cc, "GetRevision", in, opts)
}

func (c *playerServiceClient) ListClasses(ctx context.Context, in *ListClassesRequest, opts ...grpc.CallOption) (*ListClassesResponse, error) {
	return invoke[ListClassesResponse](ctx, c.cc, "ListClasses", in, opts)
}

func (c *playerServiceClient) OpenSession(ctx context.Context, in *OpenSessionRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, "OpenSession", in, opts)
}

func (c *playerServiceClient) GetSession(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, "GetSession", in, opts)
}

func (c *playerServiceClient) CloseSession(ctx context.Context, in *CloseSessionRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, "CloseSession", in, opts)
}

func (c *playerServiceClient) SelectTab(ctx context.Context, in *SelectTabRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, "SelectTab", in, opts)
}

func (c *playerServiceClient) SaveSession(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*SaveSessionResponse, error) {
	return invoke[SaveSessionResponse](ctx, c.cc, "SaveSession", in, opts)
}

func (c *playerServiceClient) DiscardChanges(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, "DiscardChanges", in, opts)
}

func (c *playerServiceClient) UpdateBasics(ctx context.Context, in *UpdateBasicsRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, "UpdateBasics", in, opts)
}

func (c *playerServiceClient) UpdateAttributes(ctx context.Context, in *UpdateAttributesRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, "UpdateAttributes", in, opts)
}

func (c *playerServiceClient) UpdateModifiers(ctx context.Context, in *UpdateModifiersRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, "UpdateModifiers", in, opts)
}

func (c *playerServiceClient) UpdateCurrentStats(ctx context.Context, in *UpdateCurrentStatsRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, "UpdateCurrentStats", in, opts)
}

func (c *playerServiceClient) UpdateStatuses(ctx context.Context, in *UpdateStatusesRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, "UpdateStatuses", in, opts)
}

func (c *playerServiceClient) UpdateDetails(ctx context.Context, in *UpdateDetailsRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, "UpdateDetails", in, opts)
}

func (c *playerServiceClient) AddClass(ctx context.Context, in *ClassRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, "AddClass", in, opts)
}

func (c *playerServiceClient) RemoveClass(ctx context.Context, in *IndexRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, "RemoveClass", in, opts)
}

func (c *playerServiceClient) SetClassLevel(ctx context.Context, in *SetClassLevelRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, "SetClassLevel", in, opts)
}

func (c *playerServiceClient) AddSkill(ctx context.Context, in *AddSkillRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, "AddSkill", in, opts)
}

func (c *playerServiceClient) SelectSpellClass(ctx context.Context, in *ClassRequest, opts ...grpc.CallOption) (*SelectSpellClassResponse, error) {
	return invoke[SelectSpellClassResponse](ctx, c.cc, "SelectSpellClass", in, opts)
}

func (c *playerServiceClient) AddSpell(ctx context.Context, in *AddSpellRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, "AddSpell", in, opts)
}

func (c *playerServiceClient) EditSpell(ctx context.Context, in *EditSpellRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, "EditSpell", in, opts)
}

func (c *playerServiceClient) DeleteSpell(ctx context.Context, in *DeleteSpellRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, "DeleteSpell", in, opts)
}

func (c *playerServiceClient) AddWeapon(ctx context.Context, in *WeaponRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, "AddWeapon", in, opts)
}

func (c *playerServiceClient) ImportWeapon(ctx context.Context, in *WeaponRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, "ImportWeapon", in, opts)
}

func (c *playerServiceClient) RemoveWeapon(ctx context.Context, in *IndexRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, "RemoveWeapon", in, opts)
}

func (c *playerServiceClient) ExportWeapon(ctx context.Context, in *ExportWeaponRequest, opts ...grpc.CallOption) (*FileResponse, error) {
	return invoke[FileResponse](ctx, c.cc, "ExportWeapon", in, opts)
}

func (c *playerServiceClient) RollCheck(ctx context.Context, in *RollCheckRequest, opts ...grpc.CallOption) (*RollCheckResponse, error) {
	return invoke[RollCheckResponse](ctx, c.cc, "RollCheck", in, opts)
}

func (c *playerServiceClient) WatchPlayer(ctx context.Context, in *WatchPlayerRequest, opts ...grpc.CallOption) (PlayerService_WatchPlayerClient, error) {
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	stream, err := c.cc.NewStream(ctx, &PlayerService_ServiceDesc.Streams[0], fullMethod("WatchPlayer"), opts...)
	if err != nil {
		return nil, err
	}
	x := &playerServiceWatchPlayerClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type playerServiceWatchPlayerClient struct {
	grpc.ClientStream
}

func (x *playerServiceWatchPlayerClient) Recv() (*PlayerEvent, error) {
	m := new(PlayerEvent)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}
