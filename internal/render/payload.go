package render

import (
	"github.com/tkarpov/warroom/internal/gameapi"
)

// Kind tags the closed set of payload shapes the formatter understands. Dispatch is
// computed once per payload at the boundary where JSON is decoded.
type Kind int

const (
	// KindNoData is a failed upstream fetch.
	KindNoData Kind = iota

	// KindList is a top-level JSON array.
	KindList

	// KindRanking is an object nesting a non-empty row list under a known key.
	KindRanking

	// KindObject is a flat object with no nested row list.
	KindObject

	// KindScalar is anything else: strings, numbers, booleans, null.
	KindScalar
)

func (k Kind) String() string {
	switch k {
	case KindNoData:
		return "no_data"
	case KindList:
		return "list"
	case KindRanking:
		return "ranking"
	case KindObject:
		return "object"
	default:
		return "scalar"
	}
}

// Classify tags a decoded payload. Total over arbitrary JSON input.
func Classify(payload interface{}, p Policy) Kind {
	return classify(payload, p).kind
}

type shape struct {
	kind Kind
	list []interface{}
	obj  map[string]interface{}
}

func classify(payload interface{}, p Policy) shape {
	if gameapi.IsNoData(payload) {
		return shape{kind: KindNoData}
	}

	switch v := payload.(type) {
	case []interface{}:
		return shape{kind: KindList, list: v}
	case map[string]interface{}:
		for _, key := range p.ListKeys {
			if nested, ok := v[key].([]interface{}); ok && len(nested) > 0 {
				return shape{kind: KindRanking, list: nested, obj: v}
			}
		}
		return shape{kind: KindObject, obj: v}
	default:
		return shape{kind: KindScalar}
	}
}
