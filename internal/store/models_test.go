package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONB_ValueAndScan(t *testing.T) {
	in := JSONB{"creators_found": float64(3), "mode": "AUTOMATIC"}

	value, err := in.Value()
	require.NoError(t, err)

	var out JSONB
	require.NoError(t, out.Scan(value))
	assert.Equal(t, in, out)
}

func TestJSONB_ScanNil(t *testing.T) {
	var out JSONB
	require.NoError(t, out.Scan(nil))
	assert.Nil(t, out)
}

func TestJSONB_ScanNullLiteral(t *testing.T) {
	var out JSONB
	require.NoError(t, out.Scan([]byte("null")))
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestJSONB_ScanIncompatibleType(t *testing.T) {
	var out JSONB
	assert.Error(t, out.Scan(42))
}

func TestContractContent_ValueAndScan(t *testing.T) {
	in := ContractContent{
		Deliverables: "2 posts, 1 reel",
		Timeline:     "4 weeks",
		Compensation: "Negotiable within a campaign budget of $5000.00",
	}

	value, err := in.Value()
	require.NoError(t, err)

	var out ContractContent
	require.NoError(t, out.Scan(value))
	assert.Equal(t, in, out)
}

func TestContractContent_ScanNil(t *testing.T) {
	out := ContractContent{Deliverables: "stale"}
	require.NoError(t, out.Scan(nil))
	assert.Equal(t, ContractContent{}, out)
}
