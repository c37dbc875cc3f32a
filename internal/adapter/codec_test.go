package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealJSON_Canonical(t *testing.T) {
	j := NewJSON()

	a, err := j.Canonical(map[string]interface{}{"b": 1, "a": "x"})
	require.NoError(t, err)
	b, err := j.Canonical([]byte(`{ "a" : "x", "b": 1.0 }`))
	require.NoError(t, err)

	assert.Equal(t, `{"a":"x","b":1}`, string(a))
	assert.Equal(t, string(a), string(b))
}

func TestRealJSON_CanonicalRejectsInvalidJSON(t *testing.T) {
	_, err := NewJSON().Canonical([]byte(`{not json`))
	assert.Error(t, err)
}
