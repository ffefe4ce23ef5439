package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
)

type payload struct {
	DeckID string `json:"deckId"`
	Count  int    `json:"count"`
}

func TestJSON_Registered(t *testing.T) {
	c := encoding.GetCodec(Name)
	require.NotNil(t, c)
	assert.Equal(t, "json", c.Name())
}

func TestJSON_Marshal(t *testing.T) {
	data, err := JSON{}.Marshal(&payload{DeckID: "sample-deck", Count: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"deckId":"sample-deck","count":3}`, string(data))
}

func TestJSON_Unmarshal(t *testing.T) {
	var p payload
	require.NoError(t, JSON{}.Unmarshal([]byte(`{"deckId":"d","count":1}`), &p))
	assert.Equal(t, payload{DeckID: "d", Count: 1}, p)
}

func TestJSON_UnmarshalEmpty(t *testing.T) {
	p := payload{DeckID: "keep"}
	require.NoError(t, JSON{}.Unmarshal(nil, &p))
	assert.Equal(t, "keep", p.DeckID)
}

func TestJSON_UnmarshalInvalid(t *testing.T) {
	var p payload
	assert.Error(t, JSON{}.Unmarshal([]byte(`{`), &p))
}
