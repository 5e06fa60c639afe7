package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFiltroID(t *testing.T) {
	for _, v := range []string{"", "todas", "TODOS", " null ", "undefined"} {
		id, err := parseFiltroID(v)
		require.NoError(t, err, v)
		assert.Nil(t, id, v)
	}

	id, err := parseFiltroID(" 12 ")
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, uint(12), *id)

	for _, v := range []string{"0", "-1", "abc", "1.5"} {
		_, err := parseFiltroID(v)
		assert.ErrorIs(t, err, errFiltroInvalido, v)
	}
}

func TestOptionalID_UnmarshalJSON(t *testing.T) {
	var req struct {
		A optionalID `json:"a"`
		B optionalID `json:"b"`
		C optionalID `json:"c"`
		D optionalID `json:"d"`
		E optionalID `json:"e"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 3, "b": "4", "c": "todas", "d": null, "e": ""}`), &req))

	require.NotNil(t, req.A.Value)
	assert.Equal(t, uint(3), *req.A.Value)
	require.NotNil(t, req.B.Value)
	assert.Equal(t, uint(4), *req.B.Value)
	assert.Nil(t, req.C.Value)
	assert.Nil(t, req.D.Value)
	assert.Nil(t, req.E.Value)

	assert.Error(t, json.Unmarshal([]byte(`{"a": "acme"}`), &req))
	assert.Error(t, json.Unmarshal([]byte(`{"a": true}`), &req))
}
