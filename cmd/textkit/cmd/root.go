package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/msto63/textkit/foundation/core/config"
	tkerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/utils/patternx"
	"github.com/msto63/textkit/internal/textkit/service"
	"github.com/msto63/textkit/pkg/core/logging"
	"github.com/spf13/cobra"
)

// errNoMatch makes "test --quiet" exit non-zero without printing
var errNoMatch = errors.New("no match")

// app carries the state shared by every subcommand. It is filled in by the
// root command's PersistentPreRunE.
type app struct {
	cfgFile string
	verbose bool
	strict  bool
	engine  string
	timeout time.Duration
	file    string

	cfg     *config.Config
	logger  *logging.Logger
	svc     *service.Service
	logFile *os.File
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}
	root := &cobra.Command{
		Use:   "textkit",
		Short: "textkit - Pattern matching and string transforms",
		Long: `textkit matches regular expressions with cluster-aware ranges and
applies case, padding and trimming transforms to text.

Patterns run on a backtracking engine (lookaround, backreferences, match
timeouts) or a linear-time engine. The auto engine picks the linear one
when the pattern allows it.

Input is read from the trailing arguments, from --file, or from stdin.

Examples:
  textkit match '\w+' 'hello world'
  textkit replace '(\w+)@(\w+)' '$2:$1' joe@home
  echo parseHTTPResponse | textkit case snake
  textkit serve`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: discovered textkit.toml or textkit.yaml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	flags.BoolVar(&a.strict, "strict", false, "fail on compile errors, timeouts and bad ranges instead of reporting no match")
	flags.StringVarP(&a.engine, "engine", "e", "", "regex engine: backtracking, linear or auto")
	flags.DurationVar(&a.timeout, "timeout", 0, "match timeout for the backtracking engine")
	flags.StringVarP(&a.file, "file", "f", "", "read input text from file")

	root.AddCommand(
		newMatchCmd(a),
		newRangesCmd(a),
		newTestCmd(a),
		newReplaceCmd(a),
		newOccurrencesCmd(a),
		newCaseCmd(a),
		newSanitizeCmd(a),
		newSplitCmd(a),
		newSwapCmd(a),
		newPadCmd(a),
		newTrimCmd(a),
		newTruncateCmd(a),
		newCheckCmd(a),
		newTransformCmd(a),
		newPatternsCmd(a),
		newPlaygroundCmd(a),
		newServeCmd(a),
		newHealthCmd(a),
		newVersionCmd(),
	)
	return root, a
}

// Execute runs the textkit command line
func Execute() error {
	root, a := newRootCmd()
	defer a.close()

	if err := root.Execute(); err != nil {
		if !errors.Is(err, errNoMatch) {
			printError(root.ErrOrStderr(), err)
		}
		return err
	}
	return nil
}

// setup loads the configuration, builds the logger and creates the
// text service
func (a *app) setup(cmd *cobra.Command) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.LoadWithOptions(a.cfgFile, config.LoadOptions{Format: config.FormatAuto, EnvPrefix: "TEXTKIT"})
	} else {
		a.cfg, err = config.Discover(config.DefaultDiscoveryOptions())
	}
	if err != nil {
		return err
	}

	lc := logging.FromConfig(a.cfg, "textkit")
	if !a.cfg.Has(logging.KeyLevel) {
		lc.Level = "warn"
	}
	if a.verbose {
		lc.Level = "debug"
	}
	lc.Output = cmd.ErrOrStderr()
	a.logFile, err = logging.OpenLogFile(a.cfg)
	if err != nil {
		return err
	}
	if a.logFile != nil {
		lc.AdditionalOutputs = append(lc.AdditionalOutputs, a.logFile)
	}
	tk := logging.NewLogger(lc)
	patternx.SetLogger(tk)
	a.logger = logging.Wrap(tk, "textkit")

	sc, err := a.serviceConfig()
	if err != nil {
		return err
	}
	a.svc, err = service.NewService(sc)
	if err != nil {
		return err
	}

	a.logger.Debug("Configuration loaded",
		"file", a.cfg.FilePath(),
		"engine", sc.Engine.String(),
		"timeout", sc.Timeout.String(),
		"strict", sc.Strict)
	return nil
}

// serviceConfig applies the command line overrides on top of the
// configuration file
func (a *app) serviceConfig() (service.Config, error) {
	sc, err := service.ConfigFromConfig(a.cfg)
	if err != nil {
		return sc, err
	}
	if a.engine != "" {
		engine, ok := patternx.ParseEngine(a.engine)
		if !ok {
			return sc, tkerror.Newf("unknown engine %q", a.engine).
				WithCode(tkerror.CodeInvalidInput).
				WithDetail("flag", "engine")
		}
		sc.Engine = engine
	}
	if a.timeout > 0 {
		sc.Timeout = a.timeout
	}
	if a.strict {
		sc.Strict = true
	}
	sc.Logger = a.logger
	return sc, nil
}

func (a *app) close() {
	if a.logFile != nil {
		a.logFile.Close()
	}
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
