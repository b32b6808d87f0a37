package errors

import (
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToJSON(t *testing.T) {
	err := WithContext(New(CodeDecodeFailed, "unknown kind"), "element", "<x/>")

	resp := ToJSON(err)
	require.NotNil(t, resp)
	require.Equal(t, "DECODE_FAILED", resp.Code)
	require.Equal(t, "unknown kind", resp.Message)
	require.Equal(t, "PERMANENT", resp.Classification)
	require.Equal(t, "<x/>", resp.Context["element"])
}

func TestToJSON_NilError(t *testing.T) {
	require.Nil(t, ToJSON(nil))
}

func TestToJSON_StandardError(t *testing.T) {
	resp := ToJSON(stderrors.New("plain failure"))

	require.Equal(t, "UNKNOWN", resp.Code)
	require.Equal(t, "plain failure", resp.Message)
	require.Empty(t, resp.Context)
}

func TestMarshalJSON(t *testing.T) {
	data, err := MarshalJSON(New(CodeNotFound, "missing"))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "NOT_FOUND", decoded["code"])
	require.Equal(t, "missing", decoded["message"])
}
