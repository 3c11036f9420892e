// Command sinepia is the driver for the dependently typed kernel in
// internal/kernel: an interactive REPL by default, a one-shot batch runner
// under `run`, and an optional gRPC front end under `serve`.
package main

import (
	"fmt"
	"net"
	"os"

	"google.golang.org/grpc"

	"github.com/sinepia-lang/sinepia/internal/config"
	"github.com/sinepia-lang/sinepia/internal/rpcserver"
	"github.com/sinepia-lang/sinepia/pkg/cli"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "internal error: %v\n", r)
			os.Exit(1)
		}
	}()

	args := os.Args[1:]
	if len(args) >= 2 && args[0] == "run" {
		config.IsTestMode = os.Getenv("SINEPIA_TEST_MODE") == "1"
		runFile(args[1])
		return
	}
	if len(args) >= 2 && args[0] == "serve" {
		serve(args[1])
		return
	}
	if len(args) >= 1 && (args[0] == "-h" || args[0] == "--help" || args[0] == "help") {
		printHelp()
		return
	}

	runREPL()
}

func printHelp() {
	fmt.Println(`sinepia - a small dependently typed kernel

Usage:
  sinepia                 start an interactive REPL
  sinepia run FILE        apply every statement in FILE to a fresh context
  sinepia serve ADDR      start the gRPC Kernel service on ADDR
  sinepia help            show this message`)
}

func loadConfig() *config.Config {
	path, err := config.FindConfig(".")
	if err != nil || path == "" {
		return &config.Config{UniverseDisplay: "short", Prompt: "sinepia> "}
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading %s: %v\n", path, err)
		os.Exit(1)
	}
	return cfg
}

func runREPL() {
	cfg := loadConfig()
	repl := cli.NewREPL(os.Stdin, os.Stdout, cfg)
	if err := repl.LoadLibs(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	repl.Run()
}

func runFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading %s: %v\n", path, err)
		os.Exit(1)
	}
	ctx, err := cli.RunBatch(string(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	stats := ctx.Stats()
	fmt.Printf("ok: %d axioms, %d theorems (%d proved)\n", stats.Axioms, stats.Unproved+stats.Proved, stats.Proved)
}

func serve(addr string) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	srv, err := rpcserver.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()
	srv.Register(grpcServer)

	fmt.Printf("sinepia kernel service listening on %s\n", addr)
	if err := grpcServer.Serve(lis); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
