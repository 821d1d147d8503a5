package cmd

import (
	"errors"
	"fmt"

	"github.com/prevostc/graph-tooling/pkg/node"
	"github.com/prevostc/graph-tooling/pkg/resolve"
	"github.com/prevostc/graph-tooling/pkg/ui"
	"github.com/prevostc/graph-tooling/pkg/validate"
	"github.com/spf13/cobra"
)

var (
	authProduct string
	authStudio  bool
)

var authCmd = &cobra.Command{
	Use:   "auth [node] [deploy-key]",
	Short: "Sets the deploy key to use when deploying to a Graph node",
	Long: `Stores a deploy key for a Graph node so later commands can authenticate against it.

With --product or --studio the node is derived from the product and the first
argument is the deploy key. Missing values are prompted for when running in a terminal.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := keyStore()
		if err != nil {
			return &ExitError{Code: 1, Message: err.Error()}
		}

		isTTY := interactive()
		r := &resolve.Resolver{Prompter: prompter, Keys: store, Interactive: isTTY}
		target, err := r.ResolveDeployKey(resolve.Input{
			Args:    args,
			Product: authProduct,
			Studio:  authStudio,
		})
		if err != nil {
			return authError(err)
		}

		nodeURL := target.Node.String()
		action := ui.StartAction(fmt.Sprintf("Setting deploy key for %q", nodeURL), isTTY)
		if err := store.SaveDeployKey(nodeURL, target.Credential); err != nil {
			action.Stop(fmt.Sprintf("%s Failed to set deploy key for %q", ui.ErrorEmoji, nodeURL))
			return &ExitError{Code: 1, Message: err.Error()}
		}
		action.Succeed(fmt.Sprintf("Deploy key set for %q", nodeURL))
		return nil
	},
}

func authError(err error) error {
	var verr *validate.ValidationError
	var req *resolve.RequiredError
	switch {
	case errors.As(err, &verr) && verr.Reason == "deploy key too long":
		return &ExitError{Code: 1, Message: fmt.Sprintf("Deploy key must not exceed %d characters", validate.MaxDeployKeyLength)}
	case errors.As(err, &req):
		return &ExitError{Code: 1, Message: fmt.Sprintf("No %s given and no terminal to ask for one", req.Field)}
	}
	return &ExitError{Code: 1, Message: err.Error()}
}

func init() {
	authCmd.Flags().StringVar(&authProduct, "product", "", fmt.Sprintf("Select a product for which to authenticate (%s)", node.ProductStudio+"|"+node.ProductHostedService))
	authCmd.Flags().BoolVar(&authStudio, "studio", false, `Shortcut for "--product subgraph-studio"`)
	authCmd.MarkFlagsMutuallyExclusive("product", "studio")
	_ = authCmd.RegisterFlagCompletionFunc("product", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return node.Products(), cobra.ShellCompDirectiveNoFileComp
	})
	rootCmd.AddCommand(authCmd)
}
