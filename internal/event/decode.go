package event

import "encoding/json"

// DecodePayload turns an event payload into T.
//
// Payloads built by the New*Event constructors arrive as T itself or as *T.
// Raw JSON (replayed journal lines, bodies posted by scripted content) is
// unmarshalled directly, and anything else, usually a map[string]any, is
// re-encoded through JSON so field tags still apply.
func DecodePayload[T any](input any) (T, error) {
	var result T
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v != nil {
			return *v, nil
		}
		return result, nil
	case json.RawMessage:
		return result, json.Unmarshal(v, &result)
	case []byte:
		return result, json.Unmarshal(v, &result)
	}
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}
