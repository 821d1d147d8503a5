package cmd

import (
	"errors"
	"fmt"

	"github.com/prevostc/graph-tooling/pkg/auth"
	"github.com/prevostc/graph-tooling/pkg/config"
	"github.com/prevostc/graph-tooling/pkg/jsonrpc"
	"github.com/prevostc/graph-tooling/pkg/resolve"
	"github.com/prevostc/graph-tooling/pkg/subgraph"
	"github.com/prevostc/graph-tooling/pkg/ui"
	"github.com/prevostc/graph-tooling/pkg/validate"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove [subgraph-name]",
	Short: "Unregisters a subgraph name",
	Long: `Unregisters a subgraph name on a Graph node.

The node comes from --node, GRAPH_NODE or the config file. The access token comes
from --access-token, GRAPH_ACCESS_TOKEN or the deploy key stored for the node.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if err := validate.SubgraphName(name); err != nil {
			return &ExitError{Code: 1, Message: err.Error()}
		}

		v := bindEnv(cmd, map[string]string{"node": config.Loaded.GetNode()}, "node", "access-token")
		nodeURL := v.GetString("node")

		// Stored keys are optional here: without a keystore the request is anonymous.
		var keys auth.KeyStore
		if store, err := keyStore(); err != nil {
			ui.Log.Warn("no keystore available, sending request without stored key", ui.Log.Args("error", err))
		} else {
			keys = store
		}

		r := &resolve.Resolver{Keys: keys}
		target, err := r.ResolveAccess(resolve.Input{Node: nodeURL, AccessToken: v.GetString("access-token")})
		if err != nil {
			var verr *validate.ValidationError
			var req *resolve.RequiredError
			switch {
			case errors.As(err, &verr):
				return &ExitError{Code: 1, Message: fmt.Sprintf("Graph node %q is invalid: %v", nodeURL, verr.Err)}
			case errors.As(err, &req):
				return &ExitError{Code: 1, Message: "Missing Graph node: pass --node or set GRAPH_NODE"}
			}
			return &ExitError{Code: 1, Message: err.Error()}
		}

		client, err := subgraph.NewClient(target, jsonrpc.WithTimeout(config.Loaded.GetRequestTimeout()))
		if err != nil {
			return &ExitError{Code: 1, Message: err.Error()}
		}

		action := ui.StartAction(fmt.Sprintf("Removing subgraph in Graph node: %s", target.Node), interactive())
		res := subgraph.Execute(cmd.Context(), client, subgraph.Remove(name))
		action.Stop(res.Message)

		return &ExitError{Code: res.ExitCode}
	},
}

func init() {
	removeCmd.Flags().StringP("node", "g", "", "Graph node to delete the subgraph from")
	removeCmd.Flags().String("access-token", "", "Graph access token")
	rootCmd.AddCommand(removeCmd)
}
