package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// PlayerServiceName is the fully qualified gRPC service name
const PlayerServiceName = "fabula.v1alpha1.PlayerService"

// PlayerServiceServer is the server API for PlayerService
type PlayerServiceServer interface {
	CreatePlayer(context.Context, *CreatePlayerRequest) (*PlayerResponse, error)
	GetPlayer(context.Context, *GetPlayerRequest) (*PlayerResponse, error)
	ListPlayers(context.Context, *ListPlayersRequest) (*ListPlayersResponse, error)
	DeletePlayer(context.Context, *DeletePlayerRequest) (*Empty, error)
	ListRevisions(context.Context, *ListRevisionsRequest) (*ListRevisionsResponse, error)
	GetRevision(context.Context, *GetRevisionRequest) (*RevisionResponse, error)
	ListClasses(context.Context, *ListClassesRequest) (*ListClassesResponse, error)
	OpenSession(context.Context, *OpenSessionRequest) (*SessionResponse, error)
	GetSession(context.Context, *SessionRequest) (*SessionResponse, error)
	CloseSession(context.Context, *CloseSessionRequest) (*Empty, error)
	SelectTab(context.Context, *SelectTabRequest) (*SessionResponse, error)
	SaveSession(context.Context, *SessionRequest) (*SaveSessionResponse, error)
	DiscardChanges(context.Context, *SessionRequest) (*SessionResponse, error)
	UpdateBasics(context.Context, *UpdateBasicsRequest) (*SessionResponse, error)
	UpdateAttributes(context.Context, *UpdateAttributesRequest) (*SessionResponse, error)
	UpdateModifiers(context.Context, *UpdateModifiersRequest) (*SessionResponse, error)
	UpdateCurrentStats(context.Context, *UpdateCurrentStatsRequest) (*SessionResponse, error)
	UpdateStatuses(context.Context, *UpdateStatusesRequest) (*SessionResponse, error)
	UpdateDetails(context.Context, *UpdateDetailsRequest) (*SessionResponse, error)
	AddClass(context.Context, *ClassRequest) (*SessionResponse, error)
	RemoveClass(context.Context, *IndexRequest) (*SessionResponse, error)
	SetClassLevel(context.Context, *SetClassLevelRequest) (*SessionResponse, error)
	AddSkill(context.Context, *AddSkillRequest) (*SessionResponse, error)
	SelectSpellClass(context.Context, *ClassRequest) (*SelectSpellClassResponse, error)
	AddSpell(context.Context, *AddSpellRequest) (*SessionResponse, error)
	EditSpell(context.Context, *EditSpellRequest) (*SessionResponse, error)
	DeleteSpell(context.Context, *DeleteSpellRequest) (*SessionResponse, error)
	AddWeapon(context.Context, *WeaponRequest) (*SessionResponse, error)
	ImportWeapon(context.Context, *WeaponRequest) (*SessionResponse, error)
	RemoveWeapon(context.Context, *IndexRequest) (*SessionResponse, error)
	ExportWeapon(context.Context, *ExportWeaponRequest) (*FileResponse, error)
	RollCheck(context.Context, *RollCheckRequest) (*RollCheckResponse, error)
	WatchPlayer(*WatchPlayerRequest, PlayerService_WatchPlayerServer) error
}

// PlayerService_WatchPlayerServer is the server side of a WatchPlayer stream
type PlayerService_WatchPlayerServer interface {
	Send(*PlayerEvent) error
	grpc.ServerStream
}

type playerServiceWatchPlayerServer struct {
	grpc.ServerStream
}

func (x *playerServiceWatchPlayerServer) Send(m *PlayerEvent) error {
	return x.ServerStream.SendMsg(m)
}

// RegisterPlayerServiceServer registers srv on s
func RegisterPlayerServiceServer(s grpc.ServiceRegistrar, srv PlayerServiceServer) {
	s.RegisterService(&PlayerService_ServiceDesc, srv)
}

func fullMethod(name string) string {
	return "/" + PlayerServiceName + "/" + name
}

func unary[Req, Resp any](name string, call func(PlayerServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(PlayerServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod(name),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(PlayerServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

func watchPlayerHandler(srv any, stream grpc.ServerStream) error {
	in := new(WatchPlayerRequest)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(PlayerServiceServer).WatchPlayer(in, &playerServiceWatchPlayerServer{stream})
}

// PlayerService_ServiceDesc is the grpc.ServiceDesc for PlayerService
var PlayerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: PlayerServiceName,
	HandlerType: (*PlayerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("CreatePlayer", PlayerServiceServer.CreatePlayer),
		unary("GetPlayer", PlayerServiceServer.GetPlayer),
		unary("ListPlayers", PlayerServiceServer.ListPlayers),
		unary("DeletePlayer", PlayerServiceServer.DeletePlayer),
		unary("ListRevisions", PlayerServiceServer.ListRevisions),
		unary("GetRevision", PlayerServiceServer.GetRevision),
		unary("ListClasses", PlayerServiceServer.ListClasses),
		unary("OpenSession", PlayerServiceServer.OpenSession),
		unary("GetSession", PlayerServiceServer.GetSession),
		unary("CloseSession", PlayerServiceServer.CloseSession),
		unary("SelectTab", PlayerServiceServer.SelectTab),
		unary("SaveSession", PlayerServiceServer.SaveSession),
		unary("DiscardChanges", PlayerServiceServer.DiscardChanges),
		unary("UpdateBasics", PlayerServiceServer.UpdateBasics),
		unary("UpdateAttributes", PlayerServiceServer.UpdateAttributes),
		unary("UpdateModifiers", PlayerServiceServer.UpdateModifiers),
		unary("UpdateCurrentStats", PlayerServiceServer.UpdateCurrentStats),
		unary("UpdateStatuses", PlayerServiceServer.UpdateStatuses),
		unary("UpdateDetails", PlayerServiceServer.UpdateDetails),
		unary("AddClass", PlayerServiceServer.AddClass),
		unary("RemoveClass", PlayerServiceServer.RemoveClass),
		unary("SetClassLevel", PlayerServiceServer.SetClassLevel),
		unary("AddSkill", PlayerServiceServer.AddSkill),
		unary("SelectSpellClass", PlayerServiceServer.SelectSpellClass),
		unary("AddSpell", PlayerServiceServer.AddSpell),
		unary("EditSpell", PlayerServiceServer.EditSpell),
		unary("DeleteSpell", PlayerServiceServer.DeleteSpell),
		unary("AddWeapon", PlayerServiceServer.AddWeapon),
		unary("ImportWeapon", PlayerServiceServer.ImportWeapon),
		unary("RemoveWeapon", PlayerServiceServer.RemoveWeapon),
		unary("ExportWeapon", PlayerServiceServer.ExportWeapon),
		unary("RollCheck", PlayerServiceServer.RollCheck),
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "WatchPlayer",
			Handler:       watchPlayerHandler,
			ServerStreams: true,
		},
	},
	Metadata: "fabula/v1alpha1/player.json",
}
