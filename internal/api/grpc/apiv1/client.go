package apiv1

import (
	"context"

	"google.golang.org/grpc"
)

// DecksClient calls the Decks service.
type DecksClient struct {
	cc grpc.ClientConnInterface
}

// NewDecksClient creates a DecksClient over cc.
func NewDecksClient(cc grpc.ClientConnInterface) *DecksClient {
	return &DecksClient{cc: cc}
}

func decksMethod(name string) string { return "/" + DecksServiceName + "/" + name }

func (c *DecksClient) ListDecks(ctx context.Context, in *ListDecksRequest, opts ...grpc.CallOption) (*ListDecksResponse, error) {
	return invoke[ListDecksResponse](ctx, c.cc, decksMethod("ListDecks"), in, opts)
}

func (c *DecksClient) GetDeck(ctx context.Context, in *GetDeckRequest, opts ...grpc.CallOption) (*DeckResponse, error) {
	return invoke[DeckResponse](ctx, c.cc, decksMethod("GetDeck"), in, opts)
}

func (c *DecksClient) CreateDeck(ctx context.Context, in *CreateDeckRequest, opts ...grpc.CallOption) (*DeckResponse, error) {
	return invoke[DeckResponse](ctx, c.cc, decksMethod("CreateDeck"), in, opts)
}

func (c *DecksClient) UpdateDeck(ctx context.Context, in *UpdateDeckRequest, opts ...grpc.CallOption) (*DeckResponse, error) {
	return invoke[DeckResponse](ctx, c.cc, decksMethod("UpdateDeck"), in, opts)
}

func (c *DecksClient) DeleteDeck(ctx context.Context, in *DeleteDeckRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, decksMethod("DeleteDeck"), in, opts)
}

func (c *DecksClient) AddCard(ctx context.Context, in *AddCardRequest, opts ...grpc.CallOption) (*CardResponse, error) {
	return invoke[CardResponse](ctx, c.cc, decksMethod("AddCard"), in, opts)
}

func (c *DecksClient) UpdateCard(ctx context.Context, in *UpdateCardRequest, opts ...grpc.CallOption) (*CardResponse, error) {
	return invoke[CardResponse](ctx, c.cc, decksMethod("UpdateCard"), in, opts)
}

func (c *DecksClient) DeleteCard(ctx context.Context, in *DeleteCardRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, decksMethod("DeleteCard"), in, opts)
}

func (c *DecksClient) UpdateLastStudied(ctx context.Context, in *UpdateLastStudiedRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, decksMethod("UpdateLastStudied"), in, opts)
}

// StudyClient calls the Study service.
type StudyClient struct {
	cc grpc.ClientConnInterface
}

// NewStudyClient creates a StudyClient over cc.
func NewStudyClient(cc grpc.ClientConnInterface) *StudyClient {
	return &StudyClient{cc: cc}
}

func studyMethod(name string) string { return "/" + StudyServiceName + "/" + name }

func (c *StudyClient) StartSession(ctx context.Context, in *StartSessionRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, studyMethod("StartSession"), in, opts)
}

func (c *StudyClient) GetSession(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, studyMethod("GetSession"), in, opts)
}

func (c *StudyClient) Flip(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, studyMethod("Flip"), in, opts)
}

func (c *StudyClient) Next(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, studyMethod("Next"), in, opts)
}

func (c *StudyClient) Previous(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, studyMethod("Previous"), in, opts)
}

func (c *StudyClient) MarkKnown(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, studyMethod("MarkKnown"), in, opts)
}

func (c *StudyClient) MarkReviewLater(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, studyMethod("MarkReviewLater"), in, opts)
}

func (c *StudyClient) Restart(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, studyMethod("Restart"), in, opts)
}

func (c *StudyClient) EndSession(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, studyMethod("EndSession"), in, opts)
}
