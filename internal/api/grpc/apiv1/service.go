package apiv1

import (
	"context"

	"google.golang.org/grpc"

	"github.com/dtroode/mermory-server/internal/api/grpc/codec"
)

const (
	DecksServiceName = "mermory.v1.Decks"
	StudyServiceName = "mermory.v1.Study"
)

// DecksServer is the server API for the deck store.
type DecksServer interface {
	ListDecks(context.Context, *ListDecksRequest) (*ListDecksResponse, error)
	GetDeck(context.Context, *GetDeckRequest) (*DeckResponse, error)
	CreateDeck(context.Context, *CreateDeckRequest) (*DeckResponse, error)
	UpdateDeck(context.Context, *UpdateDeckRequest) (*DeckResponse, error)
	DeleteDeck(context.Context, *DeleteDeckRequest) (*Empty, error)
	AddCard(context.Context, *AddCardRequest) (*CardResponse, error)
	UpdateCard(context.Context, *UpdateCardRequest) (*CardResponse, error)
	DeleteCard(context.Context, *DeleteCardRequest) (*Empty, error)
	UpdateLastStudied(context.Context, *UpdateLastStudiedRequest) (*Empty, error)
}

// StudyServer is the server API for study sessions.
type StudyServer interface {
	StartSession(context.Context, *StartSessionRequest) (*SessionResponse, error)
	GetSession(context.Context, *SessionRequest) (*SessionResponse, error)
	Flip(context.Context, *SessionRequest) (*SessionResponse, error)
	Next(context.Context, *SessionRequest) (*SessionResponse, error)
	Previous(context.Context, *SessionRequest) (*SessionResponse, error)
	MarkKnown(context.Context, *SessionRequest) (*SessionResponse, error)
	MarkReviewLater(context.Context, *SessionRequest) (*SessionResponse, error)
	Restart(context.Context, *SessionRequest) (*SessionResponse, error)
	EndSession(context.Context, *SessionRequest) (*Empty, error)
}

func unaryMethod[S, Req, Resp any](service, name string, call func(S, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	fullMethod := "/" + service + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(S), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(S), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// Decks_ServiceDesc is the grpc.ServiceDesc for the Decks service.
var Decks_ServiceDesc = grpc.ServiceDesc{
	ServiceName: DecksServiceName,
	HandlerType: (*DecksServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(DecksServiceName, "ListDecks", DecksServer.ListDecks),
		unaryMethod(DecksServiceName, "GetDeck", DecksServer.GetDeck),
		unaryMethod(DecksServiceName, "CreateDeck", DecksServer.CreateDeck),
		unaryMethod(DecksServiceName, "UpdateDeck", DecksServer.UpdateDeck),
		unaryMethod(DecksServiceName, "DeleteDeck", DecksServer.DeleteDeck),
		unaryMethod(DecksServiceName, "AddCard", DecksServer.AddCard),
		unaryMethod(DecksServiceName, "UpdateCard", DecksServer.UpdateCard),
		unaryMethod(DecksServiceName, "DeleteCard", DecksServer.DeleteCard),
		unaryMethod(DecksServiceName, "UpdateLastStudied", DecksServer.UpdateLastStudied),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "mermory/v1",
}

// Study_ServiceDesc is the grpc.ServiceDesc for the Study service.
var Study_ServiceDesc = grpc.ServiceDesc{
	ServiceName: StudyServiceName,
	HandlerType: (*StudyServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(StudyServiceName, "StartSession", StudyServer.StartSession),
		unaryMethod(StudyServiceName, "GetSession", StudyServer.GetSession),
		unaryMethod(StudyServiceName, "Flip", StudyServer.Flip),
		unaryMethod(StudyServiceName, "Next", StudyServer.Next),
		unaryMethod(StudyServiceName, "Previous", StudyServer.Previous),
		unaryMethod(StudyServiceName, "MarkKnown", StudyServer.MarkKnown),
		unaryMethod(StudyServiceName, "MarkReviewLater", StudyServer.MarkReviewLater),
		unaryMethod(StudyServiceName, "Restart", StudyServer.Restart),
		unaryMethod(StudyServiceName, "EndSession", StudyServer.EndSession),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "mermory/v1",
}

// RegisterDecksServer registers srv on s.
func RegisterDecksServer(s grpc.ServiceRegistrar, srv DecksServer) {
	s.RegisterService(&Decks_ServiceDesc, srv)
}

// RegisterStudyServer registers srv on s.
func RegisterStudyServer(s grpc.ServiceRegistrar, srv StudyServer) {
	s.RegisterService(&Study_ServiceDesc, srv)
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codec.Name)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
