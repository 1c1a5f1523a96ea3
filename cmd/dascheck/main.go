// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// dascheck runs a DAS type-script validator over a transaction fixture and
// reports the outcome the way the on-chain host would: exit code 0 on
// success, the validator's numeric error code on rejection.
package main

import (
	"fmt"
	"os"

	isatty "github.com/mattn/go-isatty"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/dasnames/dascore/das"
	"github.com/dasnames/dascore/log"
	"github.com/dasnames/dascore/script/applyregister"
	"github.com/dasnames/dascore/script/proposal"
	"github.com/dasnames/dascore/tx"
)

var (
	fixtureFlag = cli.StringFlag{
		Name:  "fixture",
		Usage: "path to the transaction fixture (.json, .yaml)",
	}
	scriptFlag = cli.StringFlag{
		Name:  "script",
		Usage: "validator to run: apply-register | proposal",
	}
	verboseFlag = cli.BoolFlag{
		Name:  "verbose",
		Usage: "enable debug tracing",
	}
)

func main() {
	app := cli.NewApp()
	app.Name = "dascheck"
	app.Usage = "run DAS type-script validators over transaction fixtures"
	app.Flags = []cli.Flag{fixtureFlag, scriptFlag, verboseFlag}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initLogger(verbose bool) {
	level := log.LevelInfo
	if verbose {
		level = log.LevelTrace
	}
	w := os.Stderr
	if isatty.IsTerminal(w.Fd()) || isatty.IsCygwinTerminal(w.Fd()) {
		log.SetDefault(log.NewLogger(log.LogfmtHandlerWithLevel(w, level)))
	} else {
		log.SetDefault(log.NewLogger(log.JSONHandlerWithLevel(w, level)))
	}
}

func run(ctx *cli.Context) error {
	initLogger(ctx.Bool(verboseFlag.Name))

	fixturePath := ctx.String(fixtureFlag.Name)
	if fixturePath == "" {
		return cli.NewExitError("--fixture is required", 1)
	}

	transaction, self, err := loadFixture(fixturePath)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	var validator func(*tx.Transaction, das.Script) error
	switch ctx.String(scriptFlag.Name) {
	case "apply-register":
		validator = applyregister.Run
	case "proposal":
		validator = proposal.Run
	default:
		return cli.NewExitError("--script must be apply-register or proposal", 1)
	}

	if err := validator(transaction, self); err != nil {
		code := das.CodeOf(err)
		log.Error("transaction rejected", "code", int(code), "err", err)
		return cli.NewExitError(fmt.Sprintf("rejected: %s", err), int(code))
	}

	fmt.Println("ok")
	return nil
}
