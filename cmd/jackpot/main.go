package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/rewired-gh/jackpotlab/internal/analysis"
	"github.com/rewired-gh/jackpotlab/internal/config"
	"github.com/rewired-gh/jackpotlab/internal/logger"
)

// --- CLI definitions --- //

type CLI struct {
	Config string `help:"Path to configuration file (defaults apply without one)." name:"config" type:"path"`

	Analyze AnalyzeCmd `cmd:"" help:"Summarize the simulated history and list recommendations."`
	Ticket  TicketCmd  `cmd:"" help:"Draw a weighted ticket."`
	History HistoryCmd `cmd:"" help:"Show recent simulated draws."`
	Explain ExplainCmd `cmd:"" help:"Show one number's statistics and first-draw probability."`
}

// session is bound into every subcommand's Run method.
type session struct {
	cfg  *config.Config
	snap *analysis.Snapshot
	out  io.Writer
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("jackpot"),
		kong.Description("Statistics, scoring and weighted ticket draws for a 5+2 lottery."),
		kong.UsageOnError(),
	)

	cfg, err := config.Load(cli.Config)
	if err != nil {
		logger.Fatal("Failed to load config", "err", err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", "err", err)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	if cli.Config != "" {
		logger.Debug("Configuration loaded", "path", cli.Config)
	}

	snap, err := analysis.Build(cfg)
	if err != nil {
		logger.Fatal("Failed to build analysis", "err", err)
	}

	err = ctx.Run(&session{cfg: cfg, snap: snap, out: os.Stdout})
	if err != nil {
		logger.Error("Command failed", "command", ctx.Command(), "err", err)
		os.Exit(1)
	}
}
