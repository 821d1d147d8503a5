// Package resolve turns raw command arguments and flags into a concrete node
// target and credential. Positional arguments are bound in two steps: the
// intent is classified from flags first, then positional values are bound
// according to that intent. No network calls are made here.
package resolve

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/prevostc/graph-tooling/pkg/auth"
	"github.com/prevostc/graph-tooling/pkg/node"
	"github.com/prevostc/graph-tooling/pkg/ui"
	"github.com/prevostc/graph-tooling/pkg/validate"
)

// Intent says how positional arguments are to be read.
type Intent int

const (
	// IntentNode binds args as [node, credential].
	IntentNode Intent = iota
	// IntentProduct binds args as [credential]; the node comes from the product.
	IntentProduct
)

func (i Intent) String() string {
	if i == IntentProduct {
		return "product"
	}
	return "node"
}

// Input is what a command received on its command line.
type Input struct {
	Args        []string
	Node        string
	Product     string
	Studio      bool
	AccessToken string
}

// Target is a resolved node and the credential to use with it.
// An empty Credential means the request is anonymous.
type Target struct {
	Node       *url.URL
	Credential string
}

// Binding is the result of binding positional arguments.
type Binding struct {
	Node       string
	Credential string
}

// RequiredError is returned instead of prompting when no terminal is available.
type RequiredError struct {
	Field string
}

func (e *RequiredError) Error() string {
	return fmt.Sprintf("missing required value: %s", e.Field)
}

// Prompts shown for missing values.
const (
	NodeQuestion      = "Which product to initialize?"
	DeployKeyQuestion = "What is the deploy key?"
)

// Classify decides the intent from flags alone.
func Classify(in Input) Intent {
	if in.Product != "" || in.Studio {
		return IntentProduct
	}
	return IntentNode
}

// Bind assigns positional arguments according to intent.
func Bind(intent Intent, in Input) (Binding, error) {
	var b Binding
	switch intent {
	case IntentProduct:
		sel, err := node.Choose(in.Product, in.Studio, in.Node)
		if err != nil {
			return Binding{}, err
		}
		b.Node = sel.Node
		b.Credential = arg(in.Args, 0)
	default:
		b.Node = arg(in.Args, 0)
		b.Credential = arg(in.Args, 1)
	}
	return b, nil
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

// Resolver resolves targets, prompting for missing values when Interactive is set.
type Resolver struct {
	Prompter    ui.Prompter
	Keys        auth.KeyStore
	Interactive bool
}

// ResolveDeployKey resolves the node and deploy key for the auth command.
// The node is prompted for before the key, each at most once.
func (r *Resolver) ResolveDeployKey(in Input) (Target, error) {
	intent := Classify(in)
	b, err := Bind(intent, in)
	if err != nil {
		return Target{}, err
	}
	ui.Log.Debug("bound arguments", ui.Log.Args("intent", intent.String(), "node", b.Node, "credential", b.Credential != ""))

	if b.Node == "" {
		answer, err := r.ask("node", NodeQuestion, false)
		if err != nil {
			return Target{}, err
		}
		b.Node = answer
		if node.IsProduct(answer) {
			sel, err := node.Choose(answer, false, "")
			if err != nil {
				return Target{}, err
			}
			b.Node = sel.Node
		}
	}

	if b.Credential == "" {
		answer, err := r.ask("deploy key", DeployKeyQuestion, true)
		if err != nil {
			return Target{}, err
		}
		b.Credential = answer
	}

	if err := validate.DeployKey(b.Credential); err != nil {
		return Target{}, err
	}

	u, err := validate.NodeURL(b.Node)
	if err != nil {
		return Target{}, err
	}

	return Target{Node: u, Credential: b.Credential}, nil
}

// ResolveAccess resolves the node from in.Node and the access token from the
// flag or the keystore. Nothing is prompted; the credential may be absent.
func (r *Resolver) ResolveAccess(in Input) (Target, error) {
	if in.Node == "" {
		return Target{}, &RequiredError{Field: "node"}
	}
	u, err := validate.NodeURL(in.Node)
	if err != nil {
		return Target{}, err
	}

	token := in.AccessToken
	if r.Keys != nil {
		token, err = r.Keys.IdentifyAccessToken(in.Node, in.AccessToken)
		if err != nil {
			return Target{}, fmt.Errorf("failed to identify access token: %w", err)
		}
	}
	return Target{Node: u, Credential: token}, nil
}

// ask prompts until a non-empty answer is given.
func (r *Resolver) ask(field, question string, secret bool) (string, error) {
	if !r.Interactive || r.Prompter == nil {
		return "", &RequiredError{Field: field}
	}
	for {
		var answer string
		var err error
		if secret {
			answer, err = r.Prompter.AskSecret(question)
		} else {
			answer, err = r.Prompter.Ask(question)
		}
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", field, err)
		}
		if answer = strings.TrimSpace(answer); answer != "" {
			return answer, nil
		}
		ui.Warn.Println(fmt.Sprintf("A %s is required.", field))
	}
}
