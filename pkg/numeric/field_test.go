package numeric

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldUnmarshal(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   float64
		wantOK bool
	}{
		{name: "number", input: `{"v": 12.5}`, want: 12.5, wantOK: true},
		{name: "numeric string", input: `{"v": "40"}`, want: 40, wantOK: true},
		{name: "padded string", input: `{"v": " 7 "}`, want: 7, wantOK: true},
		{name: "negative", input: `{"v": -3}`, want: -3, wantOK: true},
		{name: "word", input: `{"v": "abc"}`, wantOK: false},
		{name: "empty string", input: `{"v": ""}`, wantOK: false},
		{name: "boolean", input: `{"v": true}`, wantOK: false},
		{name: "nan string", input: `{"v": "NaN"}`, wantOK: false},
		{name: "object", input: `{"v": {"a": 1}}`, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload struct {
				V *Field `json:"v"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.input), &payload))
			require.NotNil(t, payload.V)

			got, ok := payload.V.Float()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestFieldAbsentAndNull(t *testing.T) {
	var payload struct {
		A *Field `json:"a"`
		B *Field `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"b": null}`), &payload))

	assert.Nil(t, payload.A)
	assert.Nil(t, payload.B)
}

func TestOf(t *testing.T) {
	v, ok := Of(1350).Float()
	assert.True(t, ok)
	assert.Equal(t, 1350.0, v)
}
