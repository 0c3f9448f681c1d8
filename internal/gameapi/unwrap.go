package gameapi

// Unwrap extracts the useful payload from the envelope shapes the upstream API is
// known to produce. Side-effect-free and total over arbitrary JSON input.
//
// Policy, in order: a result object carrying a data key yields that data; a result
// object yields the result; anything else passes through unchanged.
func Unwrap(raw interface{}) interface{} {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return raw
	}

	result, ok := m["result"].(map[string]interface{})
	if !ok {
		return raw
	}

	if data, ok := result["data"]; ok {
		return data
	}

	return result
}
