package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/herohde/morlock-mb/pkg/engine"
	"github.com/herohde/morlock-mb/pkg/engine/console"
	"github.com/herohde/morlock-mb/pkg/engine/uci"
	"github.com/herohde/morlock-mb/pkg/search"
	"github.com/seekerror/logw"
)

var (
	noise = flag.Uint("noise", 10, "Evaluation noise in millipawns (zero if deterministic)")
	hash  = flag.Uint("hash", 64, "Transposition table size in MB (zero disables it)")
	depth = flag.Uint("depth", 0, "Search depth limit (zero if unlimited)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: morlock [options]

MORLOCK is a simple UCI chess engine.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	s := search.PVS{Quiet: search.Quiescence{}}
	e := engine.New(ctx, "morlock", "herohde", s, engine.WithOptions(engine.Options{
		Depth: *depth,
		Hash:  *hash,
		Noise: *noise,
	}))

	in := engine.ReadStdinLines(ctx)
	switch <-in {
	case uci.ProtocolName:
		// Use UCI protocol.

		driver, out := uci.NewDriver(ctx, e, in)
		go engine.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	case console.ProtocolName:
		driver, out := console.NewDriver(ctx, e, s, in)
		go engine.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	default:
		flag.Usage()
		logw.Exitf(ctx, "Protocol not supported")
	}
}
