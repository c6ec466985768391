package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	verbose bool
	trace   bool
)

// Logger is shared by every subcommand that honors --trace, wired
// through logrus per SPEC_FULL.md 10: additive only, the plain
// "error: <detail>\n" diagnostic contract never changes shape because
// of it.
var Logger = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "gosh",
	Short: "A small POSIX-flavored shell",
	Long: `gosh tokenizes, parses, and executes simple POSIX shell
commands: tilde, parameter, command, and arithmetic expansion, IFS
field splitting, pathname globbing, and quote removal feed a single
executor with one builtin, dump.

This project follows the "Let's Build a Linux Shell" tutorial's
architecture, generalized where the tutorial cut corners for brevity.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if trace {
			Logger.SetOutput(os.Stderr)
			Logger.SetLevel(logrus.TraceLevel)
		} else {
			Logger.SetOutput(io.Discard)
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&trace, "trace", false, "trace each token the REPL's lexer produces to stderr")

	Logger.SetOutput(io.Discard)
}
