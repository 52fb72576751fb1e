package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponse_Unmarshal(t *testing.T) {
	resp := &Response{
		StatusCode: 200,
		Body:       []byte(`{"name":"test","value":123}`),
	}

	var result struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
	}

	require.NoError(t, resp.Unmarshal(&result))
	assert.Equal(t, "test", result.Name)
	assert.Equal(t, 123, result.Value)
}

func TestResponse_Object(t *testing.T) {
	obj, ok := (&Response{Data: map[string]any{"a": float64(1)}}).Object()
	assert.True(t, ok)
	assert.Equal(t, float64(1), obj["a"])

	_, ok = (&Response{Data: []any{1.0}}).Object()
	assert.False(t, ok)
}

func TestSignedHeaders_Map(t *testing.T) {
	h := &SignedHeaders{Signature: "ab", PublicKey: "pub", Tonce: "1"}

	assert.Equal(t, map[string]string{
		"X-Signature":  "ab",
		"X-Public-Key": "pub",
		"X-Tonce":      "1",
	}, h.Map())
}
