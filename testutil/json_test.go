package testutil

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

type payload struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

func TestMarshalJSON(t *testing.T) {
	require.JSONEq(t, `{"name":"a","weight":1.5}`, string(MarshalJSON(t, payload{Name: "a", Weight: 1.5})))
}

func TestEncodeJSON(t *testing.T) {
	var buf bytes.Buffer

	EncodeJSON(t, &buf, payload{Name: "a"})
	require.JSONEq(t, `{"name":"a","weight":0}`, buf.String())
}

func TestReader(t *testing.T) {
	data, err := io.ReadAll(Reader(t, payload{Name: "b", Weight: 2}))
	require.NoError(t, err)

	var decoded payload

	UnmarshalJSON(t, data, &decoded)
	require.Equal(t, payload{Name: "b", Weight: 2}, decoded)
}
