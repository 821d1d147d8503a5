package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChoose_Studio(t *testing.T) {
	sel, err := Choose("", true, "")
	require.NoError(t, err)
	assert.Equal(t, SubgraphStudioURL, sel.Node)
}

func TestChoose_Products(t *testing.T) {
	sel, err := Choose(ProductHostedService, false, "")
	require.NoError(t, err)
	assert.Equal(t, HostedServiceURL, sel.Node)

	sel, err = Choose(ProductStudio, false, "")
	require.NoError(t, err)
	assert.Equal(t, SubgraphStudioURL, sel.Node)
}

func TestChoose_ProductOverridesNode(t *testing.T) {
	sel, err := Choose(ProductHostedService, false, "http://localhost:8020")
	require.NoError(t, err)
	assert.Equal(t, HostedServiceURL, sel.Node)
}

func TestChoose_ExplicitNode(t *testing.T) {
	sel, err := Choose("", false, "http://localhost:8020")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8020", sel.Node)
}

func TestChoose_NothingSelected(t *testing.T) {
	sel, err := Choose("", false, "")
	require.NoError(t, err)
	assert.Empty(t, sel.Node)
}

func TestChoose_UnknownProduct(t *testing.T) {
	_, err := Choose("mainnet", false, "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown product")
	assert.Contains(t, err.Error(), ProductStudio)
}

func TestChoose_InvalidNode(t *testing.T) {
	_, err := Choose("", false, "not-a-url")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "node URL is invalid")
}

func TestIsProduct(t *testing.T) {
	assert.True(t, IsProduct("subgraph-studio"))
	assert.True(t, IsProduct("hosted-service"))
	assert.False(t, IsProduct("studio"))
	assert.False(t, IsProduct(""))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"http://localhost:8020", "http://localhost:8020/"},
		{"http://localhost:8020/", "http://localhost:8020/"},
		{"HTTP://LocalHost:8020", "http://localhost:8020/"},
		{"https://api.studio.thegraph.com/deploy/", "https://api.studio.thegraph.com/deploy/"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Normalize(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_Invalid(t *testing.T) {
	_, err := Normalize("localhost")
	assert.Error(t, err)
}
