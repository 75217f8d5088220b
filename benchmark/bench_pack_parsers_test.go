package benchmark_test

import (
	"io"
	"testing"

	flashflags "github.com/agilira/flash-flags"
	"github.com/agilira/orpheus/pkg/orpheus"
	"github.com/shayne/yargs"

	"github.com/dzonerzy/go-argparse/argparse"
)

// Head-to-head against flash-flags, orpheus and yargs on the same
// port/verbose/ids option set. Each iteration builds and parses from scratch.

func BenchmarkFlagSet_Argparse(b *testing.B) {
	args := []string{"bench", "--port", "9000", "--verbose", "--ids", "a", "b", "c"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		p := argparse.New("bench")
		p.IO().WithOut(io.Discard).WithErr(io.Discard)
		_ = p.Define("-p", "--port", argparse.ArgTypeInt, "Server port", false, 8080)
		_ = p.Define("-v", "--verbose", argparse.ArgTypeBool, "Verbose output", false, nil)
		_ = p.DefineList("-i", "--ids", argparse.ArgTypeString, "Identifiers", false)
		_ = p.Parse(args)
		p.Destroy()
	}
}

func BenchmarkFlagSet_FlashFlags(b *testing.B) {
	args := []string{"--port", "9000", "--verbose", "--ids", "a,b,c"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		fs := flashflags.New("bench")
		fs.Int("port", 8080, "Server port")
		fs.Bool("verbose", false, "Verbose output")
		fs.StringSlice("ids", nil, "Identifiers")
		_ = fs.Parse(args)
	}
}

type yargsFlags struct {
	Port    int      `flag:"port" short:"p" default:"8080" help:"Server port"`
	Verbose bool     `flag:"verbose" short:"v" help:"Verbose output"`
	IDs     []string `flag:"ids" short:"i" help:"Identifiers"`
}

func BenchmarkFlagSet_Yargs(b *testing.B) {
	args := []string{"--port", "9000", "--verbose", "--ids", "a", "--ids", "b", "--ids", "c"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = yargs.ParseFlags[yargsFlags](args)
	}
}

func BenchmarkCommand_Argparse(b *testing.B) {
	args := []string{"bench", "--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		p := argparse.New("bench")
		p.IO().WithOut(io.Discard).WithErr(io.Discard)
		_ = p.Define("-p", "--port", argparse.ArgTypeInt, "Server port", false, 8080)
		_ = p.Define("-v", "--verbose", argparse.ArgTypeBool, "Verbose output", false, nil)
		_ = p.Parse(args)
		p.Destroy()
	}
}

func BenchmarkCommand_Orpheus(b *testing.B) {
	args := []string{"run", "--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := orpheus.New("bench")
		run := orpheus.NewCommand("run", "Run benchmark").
			SetHandler(func(_ *orpheus.Context) error { return nil })
		run.AddIntFlag("port", "p", 8080, "Server port")
		run.AddBoolFlag("verbose", "v", false, "Verbose output")
		app.AddCommand(run)
		_ = app.Run(args)
	}
}
