package gameapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnwrap(t *testing.T) {
	t.Run("result with data yields data", func(t *testing.T) {
		raw := map[string]interface{}{
			"result": map[string]interface{}{
				"data": []interface{}{"a", "b"},
			},
		}
		assert.Equal(t, []interface{}{"a", "b"}, Unwrap(raw))
	})

	t.Run("result mapping without data yields result", func(t *testing.T) {
		raw := map[string]interface{}{
			"result": map[string]interface{}{"gold": 5.0},
		}
		assert.Equal(t, map[string]interface{}{"gold": 5.0}, Unwrap(raw))
	})

	t.Run("non-mapping result passes through", func(t *testing.T) {
		raw := map[string]interface{}{"result": "ok"}
		assert.Equal(t, raw, Unwrap(raw))
	})

	t.Run("total over arbitrary shapes", func(t *testing.T) {
		for _, raw := range []interface{}{
			nil,
			true,
			3.14,
			"text",
			[]interface{}{1.0},
			map[string]interface{}{"other": "x"},
		} {
			assert.Equal(t, raw, Unwrap(raw))
		}
	})

	t.Run("idempotent on already-unwrapped payloads", func(t *testing.T) {
		raw := map[string]interface{}{
			"result": map[string]interface{}{
				"data": map[string]interface{}{"gold": 1.0},
			},
		}

		once := Unwrap(raw)
		assert.Equal(t, once, Unwrap(once))
	})
}

func TestRequestInput(t *testing.T) {
	t.Run("nil params encode as empty object", func(t *testing.T) {
		input, err := Request{Endpoint: "countries"}.Input()
		assert.NoError(t, err)
		assert.Equal(t, "{}", input)
	})

	t.Run("params encode compactly", func(t *testing.T) {
		input, err := Request{
			Endpoint: "rankings",
			Params:   map[string]interface{}{"type": "damage"},
		}.Input()
		assert.NoError(t, err)
		assert.Equal(t, `{"type":"damage"}`, input)
	})

	t.Run("unserializable params fail", func(t *testing.T) {
		_, err := Request{
			Params: map[string]interface{}{"bad": func() {}},
		}.Input()
		assert.Error(t, err)
	})
}
