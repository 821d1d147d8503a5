package cmd

import (
	"io"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [shell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for graph.

Supported shells: bash, zsh, fish, powershell.

To load completions:

Bash:
  $ source <(graph completion bash)

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. Add the following to your ~/.zshrc:
  $ autoload -Uz compinit && compinit

  $ graph completion zsh > "${fpath[1]}/_graph"

Fish:
  $ graph completion fish > ~/.config/fish/completions/graph.fish

PowerShell:
  PS> graph completion powershell | Out-String | Invoke-Expression
`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// No-op: completion generation does not require config loading
	},
}

var completionShells = []struct {
	name string
	gen  func(w io.Writer) error
}{
	{"bash", func(w io.Writer) error { return rootCmd.GenBashCompletionV2(w, true) }},
	{"zsh", func(w io.Writer) error { return rootCmd.GenZshCompletion(w) }},
	{"fish", func(w io.Writer) error { return rootCmd.GenFishCompletion(w, true) }},
	{"powershell", func(w io.Writer) error { return rootCmd.GenPowerShellCompletionWithDesc(w) }},
}

func init() {
	for _, shell := range completionShells {
		gen := shell.gen
		completionCmd.AddCommand(&cobra.Command{
			Use:                   shell.name,
			Short:                 "Generate " + shell.name + " completion script",
			Args:                  cobra.NoArgs,
			DisableFlagsInUseLine: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				return gen(cmd.OutOrStdout())
			},
		})
	}
	rootCmd.AddCommand(completionCmd)
}
