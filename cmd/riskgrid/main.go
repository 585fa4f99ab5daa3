package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/katalvlaran/riskgrid/costgrid"
	"github.com/katalvlaran/riskgrid/internal/cliconfig"
	"github.com/katalvlaran/riskgrid/internal/watch"
	"github.com/katalvlaran/riskgrid/solver"
)

const longHelp = `Find the lowest total risk of crossing a cave map.

The map is a block of digit lines; each digit is the risk of entering that
cell. riskgrid prints the cheapest top-left to bottom-right total for the map
as given (part1) and for the map tiled factor×factor with each tile's risks
raised by its distance from the origin tile (part2).`

var exampleUsage = strings.TrimSpace(`
  riskgrid input.txt
  riskgrid --factor 5 --parallel --show-path input.txt
  cat input.txt | riskgrid -
  riskgrid --watch --log-level debug input.txt
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "riskgrid:", err)
		os.Exit(1)
	}
}

// newRootCmd wires flags, config file, environment and the run loop.
func newRootCmd() *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "riskgrid [input]",
		Short:         "Lowest-risk path through a digit cost map",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if err := cmd.Flags().Set("input", args[0]); err != nil {
					return err
				}
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}
			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			// RISKGRID_* override file config but not explicit flags.
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log, err := cliconfig.Logger(cfg)
			if err != nil {
				return err
			}
			log.Debug().Interface("config", cfg).Msg("configuration")

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return run(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), cfg, log)
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file, .toml or .yaml (default: $HOME/.riskgrid/config.toml)")
	root.Flags().StringVar(&cfg.Input, "input", cfg.Input, "map file, or - for stdin (may also be given as the argument)")
	root.Flags().IntVar(&cfg.Factor, "factor", cfg.Factor, "tiles per axis for part2")
	root.Flags().BoolVar(&cfg.Parallel, "parallel", cfg.Parallel, "run part1 and part2 concurrently")
	root.Flags().BoolVar(&cfg.ShowPath, "show-path", cfg.ShowPath, "print the cells of each cheapest route")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "re-solve whenever the input file changes")
	root.Flags().DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "quiet period before re-solving in watch mode")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "trace, debug, info, warn or error")
	root.Flags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "console or json")

	return root
}

// run solves once, and in watch mode again after every change until ctx ends.
func run(ctx context.Context, stdin io.Reader, out io.Writer, cfg cliconfig.Config, log zerolog.Logger) error {
	if err := solveOnce(ctx, stdin, out, cfg, log); err != nil {
		return err
	}
	if !cfg.Watch {
		return nil
	}

	w := watch.New(cfg.Input, cfg.Debounce, func(ctx context.Context) {
		if err := solveOnce(ctx, stdin, out, cfg, log); err != nil {
			// A half-written file is common while editing; keep watching.
			log.Warn().Err(err).Msg("re-solve failed")
		}
	}, log)
	log.Info().Str("input", cfg.Input).Msg("watching for changes")

	return w.Run(ctx)
}

// solveOnce reads the map, solves both parts and prints the answers.
func solveOnce(ctx context.Context, stdin io.Reader, out io.Writer, cfg cliconfig.Config, log zerolog.Logger) error {
	grid, err := readGrid(stdin, cfg.Input)
	if err != nil {
		return err
	}

	rep, err := solver.Solve(ctx, grid,
		solver.WithFactor(cfg.Factor),
		solver.WithParallel(cfg.Parallel),
		solver.WithPaths(cfg.ShowPath),
		solver.WithLogger(log),
	)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "part1: %d\n", rep.Base.Cost)
	if cfg.ShowPath {
		fmt.Fprintf(out, "path1: %s\n", formatPath(rep.Base.Path))
	}
	fmt.Fprintf(out, "part2: %d\n", rep.Expanded.Cost)
	if cfg.ShowPath {
		fmt.Fprintf(out, "path2: %s\n", formatPath(rep.Expanded.Path))
	}

	return nil
}

// readGrid parses the map from stdin or a file.
func readGrid(stdin io.Reader, input string) (*costgrid.CostGrid, error) {
	if input == cliconfig.StdinInput {
		g, err := costgrid.Parse(stdin)
		if err != nil {
			return nil, fmt.Errorf("parse stdin: %w", err)
		}
		return g, nil
	}

	f, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	g, err := costgrid.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", input, err)
	}
	return g, nil
}

// formatPath renders cells as "r,c r,c ...".
func formatPath(path []costgrid.Cell) string {
	var sb strings.Builder
	for i, c := range path {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d,%d", c.Row, c.Col)
	}
	return sb.String()
}
