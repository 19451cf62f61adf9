// SPDX-License-Identifier: MIT

// Package cli implements the lu command tree.
//
// Settings are resolved by viper in the usual order: flag, then LINALG_*
// environment variable, then the optional --config file, then the default.
package cli

import (
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/xerrors"
)

const (
	envPrefix = "LINALG"

	keyPrecision = "precision"
	keyWidth     = "width"
	keyVerbose   = "verbose"

	defaultPrecision = 4
	defaultWidth     = 8
)

// app carries per-invocation state shared by the subcommands.
type app struct {
	v      *viper.Viper
	log    *log.Logger
	config string
}

// New builds a fresh command tree. Every call gets its own viper instance, so
// trees never share configuration.
func New() *cobra.Command {
	a := &app{v: viper.New(), log: log.New(io.Discard, "", 0)}

	root := &cobra.Command{
		Use:           "lu",
		Short:         "Dense LU decomposition with a recorded row-operation log.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.config, "config", "", "config file (yaml, json or toml)")
	pf.Int(keyPrecision, defaultPrecision, "significant digits when printing")
	pf.Int(keyWidth, defaultWidth, "column width when printing")
	pf.BoolP(keyVerbose, "v", false, "log diagnostics to stderr")
	for _, key := range []string{keyPrecision, keyWidth, keyVerbose} {
		_ = a.v.BindPFlag(key, pf.Lookup(key))
	}

	a.v.SetEnvPrefix(envPrefix)
	a.v.AutomaticEnv()
	a.v.SetDefault(keyPrecision, defaultPrecision)
	a.v.SetDefault(keyWidth, defaultWidth)

	root.AddCommand(
		a.decomposeCmd(),
		a.vectorCmd(),
		a.solveCmd(),
		a.convertCmd(),
		a.demoCmd(),
	)

	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return New().Execute()
}

func (a *app) init(cmd *cobra.Command) error {
	if a.config != "" {
		a.v.SetConfigFile(a.config)
		if err := a.v.ReadInConfig(); err != nil {
			return wrapErr("read config", err)
		}
	}
	if a.v.GetBool(keyVerbose) {
		a.log = log.New(cmd.ErrOrStderr(), "lu: ", log.Ltime|log.Lmicroseconds)
	}
	a.log.Printf("%s: precision=%d width=%d", cmd.CommandPath(), a.precision(), a.width())

	return nil
}

func (a *app) precision() int { return a.v.GetInt(keyPrecision) }
func (a *app) width() int     { return a.v.GetInt(keyWidth) }

func (a *app) printer(w io.Writer) *printer {
	return &printer{w: w, width: a.width(), precision: a.precision()}
}

func wrapErr(msg string, err error) error {
	return xerrors.Errorf("%s: %w", msg, err)
}
