package resolve

import (
	"errors"
	"strings"
	"testing"

	"github.com/prevostc/graph-tooling/pkg/mocks"
	"github.com/prevostc/graph-tooling/pkg/node"
	"github.com/prevostc/graph-tooling/pkg/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ── Classify / Bind ────────────────────────────────────────────────

func TestClassify(t *testing.T) {
	assert.Equal(t, IntentNode, Classify(Input{Args: []string{"http://localhost:8020", "key"}}))
	assert.Equal(t, IntentProduct, Classify(Input{Studio: true}))
	assert.Equal(t, IntentProduct, Classify(Input{Product: node.ProductHostedService}))
}

func TestBind_ProductFlagMakesFirstArgTheCredential(t *testing.T) {
	inputs := []Input{
		{Args: []string{"abc"}, Studio: true},
		{Args: []string{"abc"}, Product: node.ProductStudio},
		{Args: []string{"abc"}, Product: node.ProductHostedService},
		{Args: []string{"abc", "ignored"}, Studio: true},
	}
	for _, in := range inputs {
		b, err := Bind(Classify(in), in)
		require.NoError(t, err)
		assert.Equal(t, "abc", b.Credential)
		assert.NotEqual(t, "abc", b.Node)
		assert.True(t, strings.HasPrefix(b.Node, "https://"), "node should come from the product, got %q", b.Node)
	}
}

func TestBind_NodeIntent(t *testing.T) {
	in := Input{Args: []string{"http://localhost:8020", "abc"}}
	b, err := Bind(Classify(in), in)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8020", b.Node)
	assert.Equal(t, "abc", b.Credential)
}

func TestBind_NoArgs(t *testing.T) {
	b, err := Bind(IntentNode, Input{})
	require.NoError(t, err)
	assert.Empty(t, b.Node)
	assert.Empty(t, b.Credential)
}

func TestBind_UnknownProduct(t *testing.T) {
	in := Input{Args: []string{"abc"}, Product: "mainnet"}
	_, err := Bind(Classify(in), in)
	assert.Error(t, err)
}

// ── ResolveDeployKey ───────────────────────────────────────────────

func TestResolveDeployKey_AllFromArgs(t *testing.T) {
	p := &mocks.MockPrompter{}
	r := &Resolver{Prompter: p, Interactive: true}

	target, err := r.ResolveDeployKey(Input{Args: []string{"http://localhost:8020", "0123456789"}})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8020", target.Node.String())
	assert.Equal(t, "0123456789", target.Credential)
	p.AssertNotCalled(t, "Ask", mock.Anything)
	p.AssertNotCalled(t, "AskSecret", mock.Anything)
}

func TestResolveDeployKey_Studio(t *testing.T) {
	r := &Resolver{}

	target, err := r.ResolveDeployKey(Input{Args: []string{"0123456789"}, Studio: true})
	require.NoError(t, err)
	assert.Equal(t, node.SubgraphStudioURL, target.Node.String())
	assert.Equal(t, "0123456789", target.Credential)
}

func TestResolveDeployKey_PromptsNodeThenKey(t *testing.T) {
	p := &mocks.MockPrompter{}
	var order []string
	p.On("Ask", NodeQuestion).Return("http://localhost:8020", nil).Once().Run(func(mock.Arguments) { order = append(order, "node") })
	p.On("AskSecret", DeployKeyQuestion).Return("secret", nil).Once().Run(func(mock.Arguments) { order = append(order, "key") })

	r := &Resolver{Prompter: p, Interactive: true}
	target, err := r.ResolveDeployKey(Input{})
	require.NoError(t, err)

	assert.Equal(t, []string{"node", "key"}, order)
	assert.Equal(t, "http://localhost:8020", target.Node.String())
	assert.Equal(t, "secret", target.Credential)
	p.AssertExpectations(t)
}

func TestResolveDeployKey_PromptAnswerNamingProduct(t *testing.T) {
	p := &mocks.MockPrompter{}
	p.On("Ask", NodeQuestion).Return(node.ProductStudio, nil).Once()
	p.On("AskSecret", DeployKeyQuestion).Return("secret", nil).Once()

	r := &Resolver{Prompter: p, Interactive: true}
	target, err := r.ResolveDeployKey(Input{})
	require.NoError(t, err)
	assert.Equal(t, node.SubgraphStudioURL, target.Node.String())
}

func TestResolveDeployKey_RepromptsOnEmptyAnswer(t *testing.T) {
	p := &mocks.MockPrompter{}
	p.On("AskSecret", DeployKeyQuestion).Return("  ", nil).Once()
	p.On("AskSecret", DeployKeyQuestion).Return("secret", nil).Once()

	r := &Resolver{Prompter: p, Interactive: true}
	target, err := r.ResolveDeployKey(Input{Args: []string{"http://localhost:8020"}})
	require.NoError(t, err)
	assert.Equal(t, "secret", target.Credential)
	p.AssertNumberOfCalls(t, "AskSecret", 2)
}

func TestResolveDeployKey_PromptFailure(t *testing.T) {
	p := &mocks.MockPrompter{}
	p.On("Ask", NodeQuestion).Return("", errors.New("interrupted")).Once()

	r := &Resolver{Prompter: p, Interactive: true}
	_, err := r.ResolveDeployKey(Input{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "interrupted")
	p.AssertNotCalled(t, "AskSecret", mock.Anything)
}

func TestResolveDeployKey_NonInteractiveRequiresValues(t *testing.T) {
	r := &Resolver{Prompter: &mocks.MockPrompter{}, Interactive: false}

	_, err := r.ResolveDeployKey(Input{Studio: true})
	var req *RequiredError
	require.True(t, errors.As(err, &req), "expected *RequiredError, got %v", err)
	assert.Equal(t, "deploy key", req.Field)

	_, err = r.ResolveDeployKey(Input{})
	require.True(t, errors.As(err, &req))
	assert.Equal(t, "node", req.Field)
}

func TestResolveDeployKey_KeyTooLong(t *testing.T) {
	r := &Resolver{}
	_, err := r.ResolveDeployKey(Input{Args: []string{strings.Repeat("k", 201)}, Studio: true})

	var verr *validate.ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
	assert.Equal(t, "deploy key too long", verr.Reason)
}

func TestResolveDeployKey_KeyAtLimit(t *testing.T) {
	r := &Resolver{}
	_, err := r.ResolveDeployKey(Input{Args: []string{strings.Repeat("k", 200)}, Studio: true})
	assert.NoError(t, err)
}

func TestResolveDeployKey_InvalidNode(t *testing.T) {
	r := &Resolver{}
	_, err := r.ResolveDeployKey(Input{Args: []string{"not-a-url", "key"}})

	var verr *validate.ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
	assert.Equal(t, "invalid node url", verr.Reason)
}

// ── ResolveAccess ──────────────────────────────────────────────────

func TestResolveAccess_UsesKeyStore(t *testing.T) {
	keys := &mocks.MockKeyStore{}
	keys.On("IdentifyAccessToken", "http://localhost:8020", "").Return("stored", nil).Once()

	r := &Resolver{Keys: keys}
	target, err := r.ResolveAccess(Input{Node: "http://localhost:8020"})
	require.NoError(t, err)
	assert.Equal(t, "stored", target.Credential)
	keys.AssertExpectations(t)
}

func TestResolveAccess_Anonymous(t *testing.T) {
	keys := &mocks.MockKeyStore{}
	keys.On("IdentifyAccessToken", "http://localhost:8020", "").Return("", nil).Once()

	r := &Resolver{Keys: keys}
	target, err := r.ResolveAccess(Input{Node: "http://localhost:8020"})
	require.NoError(t, err)
	assert.Empty(t, target.Credential)
}

func TestResolveAccess_KeyStoreFailure(t *testing.T) {
	keys := &mocks.MockKeyStore{}
	keys.On("IdentifyAccessToken", "http://localhost:8020", "").Return("", errors.New("corrupt")).Once()

	r := &Resolver{Keys: keys}
	_, err := r.ResolveAccess(Input{Node: "http://localhost:8020"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt")
}

func TestResolveAccess_InvalidNodeSkipsKeyStore(t *testing.T) {
	keys := &mocks.MockKeyStore{}

	r := &Resolver{Keys: keys}
	_, err := r.ResolveAccess(Input{Node: "::bad"})

	var verr *validate.ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
	keys.AssertNotCalled(t, "IdentifyAccessToken", mock.Anything, mock.Anything)
}

func TestResolveAccess_MissingNode(t *testing.T) {
	r := &Resolver{}
	_, err := r.ResolveAccess(Input{})

	var req *RequiredError
	require.True(t, errors.As(err, &req))
	assert.Equal(t, "node", req.Field)
}
