package spruthub

import (
	"bytes"
	"encoding/json"
)

// Hub responses are inconsistently shaped: sometimes the payload itself,
// sometimes {data: payload}, sometimes a list nested under a named key
// ({data: {accessories: [...]}}). These helpers are the single normalization
// boundary; every read path applies them before projecting fields.

var nullLiteral = []byte("null")

// unwrapData returns raw.data when present, otherwise raw itself.
func unwrapData(raw json.RawMessage) json.RawMessage {
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err == nil &&
		len(env.Data) > 0 && !bytes.Equal(bytes.TrimSpace(env.Data), nullLiteral) {
		return env.Data
	}
	return raw
}

// unwrapList normalizes raw to a JSON array. After unwrapData, an array is
// returned as-is; an object is searched for the named list key; anything
// else defaults to an empty array.
func unwrapList(raw json.RawMessage, key string) json.RawMessage {
	payload := unwrapData(raw)
	if isJSONArray(payload) {
		return payload
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(payload, &obj); err == nil {
		if v, ok := obj[key]; ok && isJSONArray(v) {
			return v
		}
	}
	return json.RawMessage("[]")
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
