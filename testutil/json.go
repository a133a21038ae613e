// Package testutil provides helpers for tests which work with JSON documents.
package testutil

import (
	"bytes"
	"io"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalJSON marshals the provided interface to JSON fatally terminating the current test in the event of a failure.
func MarshalJSON(t *testing.T, data any) []byte {
	dJSON, err := json.Marshal(data)
	require.NoError(t, err)

	return dJSON
}

// EncodeJSON marshals then writes the provided interface to the given writer fatally terminating the current test in
// the event of a failure.
func EncodeJSON(t *testing.T, writer io.Writer, data any) {
	require.NoError(t, json.NewEncoder(writer).Encode(data))
}

// UnmarshalJSON unmarshals the provide JSON data into the given interface fatally terminating the current test in the
// even of a failure.
func UnmarshalJSON(t *testing.T, dJSON []byte, data any) {
	require.NoError(t, json.Unmarshal(dJSON, data))
}

// Reader returns a reader over the JSON encoding of the provided interface, fatally terminating the current test in
// the event of a failure.
func Reader(t *testing.T, data any) io.Reader {
	return bytes.NewReader(MarshalJSON(t, data))
}
