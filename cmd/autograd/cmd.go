package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/born-ml/autograd/internal/envconfig"
	"github.com/spf13/cobra"
)

const version = "v0.1.0"

// appendEnvDocs lists the environment variables a command honors in its
// usage text.
func appendEnvDocs(cmd *cobra.Command, envs []envconfig.EnvVar) {
	if len(envs) == 0 {
		return
	}

	envUsage := `
Environment Variables:
`
	for _, e := range envs {
		envUsage += fmt.Sprintf("      %-24s   %s\n", e.Name, e.Description)
	}

	cmd.SetUsageTemplate(cmd.UsageTemplate() + envUsage)
}

// NewCLI builds the root command with all subcommands.
func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "autograd",
		Short:         "Reverse-mode automatic differentiation over strided tensors",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		Run: func(cmd *cobra.Command, args []string) {
			if v, _ := cmd.Flags().GetBool("version"); v {
				versionHandler(cmd, args)
				return
			}
			cmd.Print(cmd.UsageString())
		},
	}
	rootCmd.Flags().BoolP("version", "v", false, "Show version information")

	trainCmd := newTrainCmd()
	envVars := envconfig.AsMap()
	appendEnvDocs(trainCmd, []envconfig.EnvVar{
		envVars["AUTOGRAD_DEBUG"],
		envVars["AUTOGRAD_SEED"],
		envVars["AUTOGRAD_EPOCHS"],
	})

	rootCmd.AddCommand(trainCmd, newVersionCmd())
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run:   versionHandler,
	}
}

func versionHandler(cmd *cobra.Command, _ []string) {
	fmt.Fprintf(cmd.OutOrStdout(), "autograd version %s\n", version)
}

// newLogger returns a text logger at Debug when verbose is set or
// AUTOGRAD_DEBUG is enabled, Info otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := envconfig.LogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
