package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexFloat64AcceptsNumberAndString(t *testing.T) {
	var f FlexFloat64
	require.NoError(t, json.Unmarshal([]byte(`349999.99`), &f))
	assert.Equal(t, 349999.99, f.Float64())

	require.NoError(t, json.Unmarshal([]byte(`"2.5"`), &f))
	assert.Equal(t, 2.5, f.Float64())

	assert.Error(t, json.Unmarshal([]byte(`"not a number"`), &f))
	assert.Error(t, json.Unmarshal([]byte(`true`), &f))
}

func TestFlexListAcceptsBareValueAndArray(t *testing.T) {
	var l FlexList[string]
	require.NoError(t, json.Unmarshal([]byte(`["pool","garage"]`), &l))
	assert.Equal(t, []string{"pool", "garage"}, l.Slice())

	require.NoError(t, json.Unmarshal([]byte(`"pool"`), &l))
	assert.Equal(t, []string{"pool"}, l.Slice())
}
