package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/prevostc/graph-tooling/pkg/auth"
	"github.com/prevostc/graph-tooling/pkg/config"
	"github.com/prevostc/graph-tooling/pkg/env"
	"github.com/prevostc/graph-tooling/pkg/ui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configFile   string
	keystorePath string
	debug        bool
)

// Swapped in tests.
var (
	keystoreFs  afero.Fs    = afero.NewOsFs()
	prompter    ui.Prompter = ui.TerminalPrompter{}
	interactive             = env.Interactive
)

var rootCmd = &cobra.Command{
	Use:           "graph",
	Short:         "graph manages subgraphs on a Graph node",
	Long:          `A command-line client that authenticates against Graph nodes and manages subgraph deployments through their JSON-RPC admin API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		ui.SetDebug(debug)

		cfg, err := config.Load(configFile)
		if err != nil {
			return &ExitError{Code: 1, Message: "Failed to load config: " + err.Error()}
		}
		config.Loaded = cfg
		ui.Log.Debug("loaded config", ui.Log.Args("file", configFile, "node", cfg.GetNode()))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config-file", config.DefaultConfigFile, "Path to the graph.yaml configuration file")
	rootCmd.PersistentFlags().StringVar(&keystorePath, "keystore", "", "Path to the deploy key store (default ~/"+auth.DefaultKeystoreFile+")")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Print debug logs to stderr")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := exitCode(rootCmd.ExecuteContext(ctx))
	stop()
	os.Exit(code)
}

// GetRootCmd returns the root cobra command
func GetRootCmd() *cobra.Command {
	return rootCmd
}

// ExitError ends a command with Code after printing Message, if any.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// exitCode prints err and returns the process exit code for it.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		if ee.Message != "" {
			ui.Error.Println(ee.Message)
		}
		return ee.Code
	}
	ui.Error.Println(err.Error())
	return 1
}

// keyStore opens the deploy key store named by --keystore, the config file or the default location.
func keyStore() (*auth.Store, error) {
	path := keystorePath
	if path == "" {
		path = config.Loaded.GetKeystore()
	}
	if path == "" {
		p, err := auth.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	store := auth.NewStore(keystoreFs, path)
	ui.Log.Debug("using keystore", ui.Log.Args("path", store.Path()))
	return store, nil
}

// bindEnv layers a command's flags over GRAPH_* environment variables and
// the config file values in defaults.
func bindEnv(cmd *cobra.Command, defaults map[string]string, keys ...string) *viper.Viper {
	v := viper.New()
	// Environment variables should start with GRAPH_
	v.SetEnvPrefix(env.Prefix)
	// Environment variables cannot use "-", replace with "_"
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	for k, d := range defaults {
		if d != "" {
			v.SetDefault(k, d)
		}
	}
	for _, k := range keys {
		if f := cmd.Flags().Lookup(k); f != nil {
			_ = v.BindPFlag(k, f)
		}
		_ = v.BindEnv(k)
	}
	return v
}
