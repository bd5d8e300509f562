package repro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash_IndependentOfMapKeyOrder(t *testing.T) {
	a := map[string]interface{}{
		"answers":   map[string]string{"Q02": "누수", "Q03": "자주"},
		"basicInfo": map[string]interface{}{"buildingYear": 2005, "housingType": "APARTMENT"},
	}
	b := map[string]interface{}{
		"basicInfo": map[string]interface{}{"housingType": "APARTMENT", "buildingYear": 2005},
		"answers":   map[string]string{"Q03": "자주", "Q02": "누수"},
	}

	hashA, err := Hash(a)
	require.NoError(t, err)
	hashB, err := Hash(b)
	require.NoError(t, err)

	assert.Equal(t, hashA, hashB)
	assert.Len(t, hashA, 64)
}

func TestHash_DifferentValuesDiffer(t *testing.T) {
	hashA, err := Hash(map[string]string{"Q02": "누수"})
	require.NoError(t, err)
	hashB, err := Hash(map[string]string{"Q02": "균열"})
	require.NoError(t, err)

	assert.NotEqual(t, hashA, hashB)
}

func TestHash_StableAcrossCalls(t *testing.T) {
	payload := struct {
		Tags []string `json:"tags"`
		Area float64  `json:"area"`
	}{Tags: []string{"OLD_RISK_HIGH", "PET_CARE"}, Area: 24.5}

	first, err := Hash(payload)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Hash(payload)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestCanonicalize_SortsNestedKeys(t *testing.T) {
	out, err := Canonicalize(map[string]interface{}{
		"b": map[string]interface{}{"y": 2, "x": 1},
		"a": 0,
	})
	require.NoError(t, err)

	assert.Equal(t, `{"a":0,"b":{"x":1,"y":2}}`, string(out))
}

func TestCanonicalize_PreservesNumberLiterals(t *testing.T) {
	// 0.10 must not become 0.1000000000000000055511151231257827.
	out, err := Canonicalize(map[string]interface{}{"rate": 0.1, "count": 7})
	require.NoError(t, err)

	assert.Equal(t, `{"count":7,"rate":0.1}`, string(out))
}

func TestCanonicalize_ArrayOrderIsSignificant(t *testing.T) {
	a, err := Canonicalize([]string{"OLD_RISK_HIGH", "LONG_STAY"})
	require.NoError(t, err)
	b, err := Canonicalize([]string{"LONG_STAY", "OLD_RISK_HIGH"})
	require.NoError(t, err)

	assert.NotEqual(t, string(a), string(b))
}
