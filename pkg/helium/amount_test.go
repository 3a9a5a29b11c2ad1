package helium

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHNTUnmarshal(t *testing.T) {
	testCases := []struct {
		name          string
		json          string
		expectedBones int64
		wantErr       bool
	}{
		{name: "whole token", json: `100000000`, expectedBones: 100000000},
		{name: "zero", json: `0`, expectedBones: 0},
		{name: "fractional token", json: `12345678`, expectedBones: 12345678},
		{name: "negative rejected", json: `-1`, wantErr: true},
		{name: "string rejected", json: `"100"`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var amount HNT
			err := json.Unmarshal([]byte(tc.json), &amount)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedBones, amount.Bones())
		})
	}
}

func TestHNTDisplay(t *testing.T) {
	assert.Equal(t, "1.50000000 HNT", NewHNT(150000000).String())
	assert.Equal(t, "0.00000001 HNT", NewHNT(1).String())
}

func TestHSTUnmarshal(t *testing.T) {
	var amount HST
	require.NoError(t, json.Unmarshal([]byte(`250`), &amount))
	assert.Equal(t, int64(250), amount.Bones())

	require.Error(t, json.Unmarshal([]byte(`-250`), &amount))
}

func TestAmountZeroValue(t *testing.T) {
	var hnt HNT
	assert.Equal(t, int64(0), hnt.Bones())
	assert.NotNil(t, hnt.Money())

	var hst HST
	assert.Equal(t, int64(0), hst.Bones())
	assert.NotNil(t, hst.Money())
}

func TestAmountMarshalRoundTrip(t *testing.T) {
	data, err := json.Marshal(NewHNT(42))
	require.NoError(t, err)
	assert.Equal(t, "42", string(data))
}
