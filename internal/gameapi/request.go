package gameapi

import "encoding/json"

// Request describes a single outbound call. Immutable once constructed; it has no
// identity beyond its values.
type Request struct {
	Endpoint string
	Params   map[string]interface{}
}

// Input returns the compact JSON encoding of the request parameters, the single
// query argument the upstream API expects. Nil params encode as an empty object.
func (r Request) Input() (string, error) {
	params := r.Params
	if params == nil {
		params = map[string]interface{}{}
	}

	data, err := json.Marshal(params)
	if err != nil {
		return "", err
	}

	return string(data), nil
}
