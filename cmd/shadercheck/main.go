// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command shadercheck compiles WGSL files on a registered device backend
// (the wgpu noop device by default) and prints the compiler diagnostics.
//
// Usage:
//
//	shadercheck [flags] file.wgsl...
//
// The exit status is 1 when any file fails to compile.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/gpuutil"
	"github.com/gogpu/gpuutil/backend"
	_ "github.com/gogpu/gpuutil/backend/wgpu"
	"github.com/gogpu/gpuutil/device"
	"github.com/gogpu/gpuutil/shader"
	"github.com/gogpu/gpuutil/stock"
)

func main() {
	log.SetFlags(0)
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type config struct {
	backend   string
	stage     device.Stage
	target    shader.Target
	entry     string
	flags     shader.Flags
	output    string
	listStock bool
	verbose   bool
	jobs      int
	files     []string
}

func parseArgs(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("shadercheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		devName   = fs.String("backend", backend.BackendWGPUNoop, "device backend, one of "+strings.Join(backend.Available(), ", "))
		stage     = fs.String("stage", "pixel", "shader stage: vertex, pixel, compute or geometry")
		target    = fs.String("target", "spirv", "bytecode target: spirv or dxil")
		entry     = fs.String("entry", "", "entry point name (default: first of the stage)")
		werror    = fs.Bool("werror", false, "treat warnings as errors")
		debugInfo = fs.Bool("g", false, "embed debug information")
		noVal     = fs.Bool("novalidate", false, "skip IR validation")
		output    = fs.String("o", "", "write bytecode here (single input file only)")
		listStock = fs.Bool("stock", false, "create the stock object catalog and list it")
		verbose   = fs.Bool("v", false, "log at debug level")
		jobs      = fs.Int("j", 0, "parallel compiles (default GOMAXPROCS)")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &config{
		backend:   *devName,
		entry:     *entry,
		output:    *output,
		listStock: *listStock,
		verbose:   *verbose,
		jobs:      *jobs,
		files:     fs.Args(),
	}
	var err error
	if cfg.stage, err = parseStage(*stage); err != nil {
		return nil, err
	}
	switch *target {
	case "spirv":
		cfg.target = shader.TargetSPIRV
	case "dxil":
		cfg.target = shader.TargetDXIL
	default:
		return nil, fmt.Errorf("unknown target %q", *target)
	}
	if *werror {
		cfg.flags |= shader.FlagWarningsAsErrors
	}
	if *debugInfo {
		cfg.flags |= shader.FlagDebug
	}
	if *noVal {
		cfg.flags |= shader.FlagSkipValidation
	}
	if len(cfg.files) == 0 && !cfg.listStock {
		return nil, errors.New("no input files")
	}
	if cfg.output != "" && len(cfg.files) > 1 {
		return nil, errors.New("-o requires a single input file")
	}
	return cfg, nil
}

func parseStage(name string) (device.Stage, error) {
	for _, s := range device.Stages() {
		if s.String() == name || s.Profile() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown stage %q", name)
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "shadercheck: %v\n", err)
		return 2
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	gpuutil.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer gpuutil.SetLogger(nil)

	dev, closeDev, err := backend.Open(cfg.backend)
	if err != nil {
		fmt.Fprintf(stderr, "shadercheck: %v\n", err)
		return 1
	}
	defer closeDev()

	var opts []gpuutil.Option
	opts = append(opts, gpuutil.WithCompilerOptions(shader.WithTarget(cfg.target)))
	if !cfg.listStock {
		opts = append(opts, gpuutil.WithoutStockPool())
	}
	ctx, err := gpuutil.New(dev, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "shadercheck: %v\n", err)
		return 1
	}
	defer ctx.Close()

	if cfg.listStock {
		printStock(stdout, ctx.Stock())
	}

	read := make([]bool, len(cfg.files))
	jobs := make([]shader.Job, 0, len(cfg.files))
	status := 0
	for i, file := range cfg.files {
		src, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", file, err)
			status = 1
			continue
		}
		read[i] = true
		jobs = append(jobs, shader.Job{Source: src, Stage: cfg.stage, Flags: cfg.flags, EntryPoint: cfg.entry})
	}

	results := ctx.Compiler().CompileAll(jobs, cfg.jobs)
	next := 0
	for i, file := range cfg.files {
		if !read[i] {
			continue
		}
		r := results[next]
		next++
		if err := report(ctx, cfg, file, r, stdout); err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", file, err)
			status = 1
		}
	}
	return status
}

// report prints the diagnostics of one compile, creates the shader object
// and optionally writes the bytecode. With the DXIL target only the offline
// step runs, since the wgpu device consumes SPIR-V.
func report(ctx *gpuutil.Context, cfg *config, file string, r shader.Result, stdout io.Writer) error {
	if r.Err != nil {
		var cerr *shader.CompileError
		if errors.As(r.Err, &cerr) {
			printDiagnostics(stdout, file, cerr.Diagnostics)
		}
		return r.Err
	}
	bc := r.Bytecode
	printDiagnostics(stdout, file, bc.Diagnostics)

	if cfg.target == shader.TargetSPIRV {
		cs, err := ctx.Compiler().CreateShader(bc, shader.WithLabel(file))
		if err != nil {
			return err
		}
		ctx.Device().Release(cs.Shader)
	}
	fmt.Fprintf(stdout, "%s: ok: %v %s, %d bytes of %s\n", file, cfg.stage, bc.EntryPoint, len(bc.Code), cfg.target)

	if cfg.output != "" {
		if err := os.WriteFile(cfg.output, bc.Code, 0o644); err != nil {
			return err
		}
	}
	return nil
}

func printDiagnostics(w io.Writer, file string, diags []shader.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintf(w, "%s:%s\n", file, d)
	}
}

func printStock(w io.Writer, pool *stock.Pool) {
	for _, k := range stock.Keys() {
		obj, err := pool.Lookup(k)
		if err != nil {
			fmt.Fprintf(w, "%2d %-28s %v\n", k, k, err)
			continue
		}
		fmt.Fprintf(w, "%2d %-28s %v\n", k, k, obj.Kind())
	}
}
