package upstream

import (
	"bytes"
	"encoding/json"

	"go.uber.org/zap"
)

// The collaborator is inconsistent about list payloads: sometimes a bare
// array, sometimes an object wrapping the array under a known key. unwrapList
// resolves that once, at the edge. An object without any known key yields an
// empty list rather than an error, reported via the returned flag so the
// caller can log it.
func unwrapList(raw json.RawMessage, keys ...string) (json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, false
	}
	if trimmed[0] == '[' {
		return trimmed, true
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, false
	}
	for _, k := range keys {
		if inner, ok := obj[k]; ok {
			inner = bytes.TrimSpace(inner)
			if len(inner) > 0 && inner[0] == '[' {
				return inner, true
			}
		}
	}
	return nil, false
}

// decodeList is unwrapList plus element decoding; unrecognized shapes decode
// to an empty slice and a warning.
func decodeList[T any](lg *zap.Logger, raw json.RawMessage, keys ...string) ([]T, error) {
	inner, ok := unwrapList(raw, keys...)
	if !ok {
		if lg != nil {
			lg.Warn("unrecognized list payload shape from upstream",
				zap.Strings("tried_keys", keys))
		}
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(inner, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
