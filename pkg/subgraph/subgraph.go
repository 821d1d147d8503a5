// Package subgraph defines the node management calls and maps each call's
// outcome to the line printed for the user and the process exit code.
package subgraph

import (
	"context"
	"fmt"

	"github.com/prevostc/graph-tooling/pkg/jsonrpc"
	"github.com/prevostc/graph-tooling/pkg/resolve"
	"github.com/prevostc/graph-tooling/pkg/ui"
)

// Call is one fixed JSON-RPC call with the texts used to report it.
type Call struct {
	Method string
	Params interface{}
	// Context completes "Error <Context>: ..." and "HTTP error <Context>: ...".
	Context string
	Success string
}

// Result is what a command prints and exits with.
type Result struct {
	Message  string
	ExitCode int
	Outcome  jsonrpc.Outcome
}

// Remove unregisters a subgraph name.
func Remove(name string) Call {
	return Call{
		Method:  "subgraph_remove",
		Params:  map[string]string{"name": name},
		Context: "removed the subgraph",
		Success: "Subgraph removed",
	}
}

// Report maps an outcome to a result. Every path exits with 1, including
// success; callers relying on exit code 0 for a removed subgraph would break.
func Report(out jsonrpc.Outcome, c Call) Result {
	switch o := out.(type) {
	case *jsonrpc.ProtocolError:
		return Result{Message: fmt.Sprintf("%s Error %s: %s", ui.ErrorEmoji, c.Context, o.Message), ExitCode: 1, Outcome: out}
	case *jsonrpc.TransportError:
		return Result{Message: fmt.Sprintf("%s HTTP error %s: %s", ui.ErrorEmoji, c.Context, o.Code), ExitCode: 1, Outcome: out}
	default:
		return Result{Message: c.Success, ExitCode: 1, Outcome: out}
	}
}

// NewClient builds the transport for target and attaches its credential.
func NewClient(target resolve.Target, opts ...jsonrpc.Option) (*jsonrpc.Client, error) {
	client, err := jsonrpc.NewClient(target.Node, opts...)
	if err != nil {
		return nil, err
	}
	if target.Credential != "" {
		client.SetBearer(target.Credential)
	}
	return client, nil
}

// Execute issues c through client exactly once and reports the outcome.
func Execute(ctx context.Context, client *jsonrpc.Client, c Call) Result {
	return Report(client.Call(ctx, c.Method, c.Params), c)
}
