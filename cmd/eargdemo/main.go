// Command eargdemo is a small build tool showing nested commands, typed eaters and the
// built-in options of earg.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/napalu/earg"
	"github.com/napalu/earg/logging"
)

type globalState struct {
	dryRun bool
	jobs   int
}

type buildState struct {
	*globalState
	output  string
	sources []string
}

type cleanState struct {
	*globalState
	all     bool
	targets []string
}

func eatGlobal(s *globalState, opt *earg.Option, value string) earg.EatStatus {
	if opt == nil {
		return earg.EatNotEaten
	}
	switch opt.Key {
	case 'n':
		s.dryRun = true
	case 'j':
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return earg.EatUnrecognized
		}
		s.jobs = n
	default:
		return earg.EatNotEaten
	}

	return earg.EatOK
}

func eatBuild(s *buildState, opt *earg.Option, value string) earg.EatStatus {
	if opt == nil {
		s.sources = append(s.sources, value)
		return earg.EatOK
	}
	if opt.Key != 'o' {
		return earg.EatNotEaten
	}
	s.output = value

	return earg.EatOK
}

func eatClean(s *cleanState, opt *earg.Option, value string) earg.EatStatus {
	switch {
	case opt == nil:
		s.targets = append(s.targets, value)
	case opt.Name == "all":
		s.all = true
	default:
		return earg.EatNotEaten
	}

	return earg.EatOK
}

func newProgram(stdout io.Writer, logger func() *logging.Logger) *earg.Program {
	global := &globalState{jobs: 1}
	build := &buildState{globalState: global, output: "a.out"}
	clean := &cleanState{globalState: global}

	buildCmd := earg.NewCommand(
		earg.WithName("build"),
		earg.WithArgs("SRC..."),
		earg.WithHeader("Compile SRC files into a single output."),
		earg.WithOptions(
			earg.NewOption(earg.WithLongName("output"), earg.WithKey('o'), earg.WithArg("FILE"),
				earg.WithHelp("Write the result to FILE (default a.out)")),
		),
		earg.WithEater(earg.Bind(build, eatBuild)),
		earg.WithEntrypoint(func(ctx context.Context, cmd *earg.Command) error {
			logger().Debugf("building with %d jobs", global.jobs)
			for _, src := range build.sources {
				if err := ctx.Err(); err != nil {
					return err
				}
				verb := "compile"
				if global.dryRun {
					verb = "would compile"
				}
				if _, err := fmt.Fprintf(stdout, "%s %s\n", verb, src); err != nil {
					return err
				}
			}
			_, err := fmt.Fprintf(stdout, "link %s\n", build.output)
			return err
		}),
	)

	cleanCmd := earg.NewCommand(
		earg.WithName("clean"),
		earg.WithArgs("\nTARGET..."),
		earg.WithHeader("Remove build outputs."),
		earg.WithOptions(
			earg.NewOption(earg.WithLongName("all"), earg.WithHelp("Remove caches as well")),
		),
		earg.WithEater(earg.Bind(clean, eatClean)),
		earg.WithEntrypoint(func(ctx context.Context, cmd *earg.Command) error {
			targets := clean.targets
			if len(targets) == 0 {
				targets = []string{build.output}
			}
			if clean.all {
				targets = append(targets, ".cache")
			}
			for _, target := range targets {
				if global.dryRun {
					logger().Infof("would remove %s", target)
					continue
				}
				if _, err := fmt.Fprintf(stdout, "remove %s\n", target); err != nil {
					return err
				}
			}
			return nil
		}),
	)

	return earg.NewProgram("0.1.0", 0,
		earg.WithName("eargdemo"),
		earg.WithFooter("Report bugs to the issue tracker."),
		earg.WithOptions(
			earg.Group("Global options:"),
			earg.NewOption(earg.WithLongName("dry-run"), earg.WithKey('n'),
				earg.WithHelp("Print what would be done")),
			earg.NewOption(earg.WithLongName("jobs"), earg.WithKey('j'), earg.WithArg("N"),
				earg.WithHelp("Number of parallel jobs")),
		),
		earg.WithSubcommands(buildCmd, cleanCmd),
		earg.WithEater(earg.Bind(global, eatGlobal)),
	)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var p *earg.Parser
	prog := newProgram(stdout, func() *logging.Logger { return p.Logger() })
	p, err := earg.NewParser(prog, earg.WithStdout(stdout), earg.WithStderr(stderr), earg.WithVariadicArgs(true))
	if err != nil {
		fmt.Fprintf(stderr, "eargdemo: %v\n", err)
		return earg.ExitFailure
	}

	return p.Run(ctx, args)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
