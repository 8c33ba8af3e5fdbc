// Command metrofare prints the shortest route between two stations of a
// metro network and the fare for it.
//
//	metrofare Ameerpet "Irrum Manzil"
//	metrofare --network lines.yaml --base-fare 12
//	metrofare                       # prompts for both stations
//
// Without --network the built-in Hyderabad network is used.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/katalvlaran/metrofare/metro"
	"github.com/katalvlaran/metrofare/topology"
)

// unset marks a fare flag that was not given.
const unset = -1

type cli struct {
	Source      string `arg:"" optional:"" help:"Source station; prompted for when omitted."`
	Destination string `arg:"" optional:"" help:"Destination station; prompted for when omitted."`

	Network   string `help:"YAML network file (built-in Hyderabad network when empty)" env:"METROFARE_NETWORK" placeholder:"FILE"`
	BaseFare  int64  `help:"Override the base fare (-1 keeps the network's value)" default:"-1" env:"METROFARE_BASE_FARE"`
	RatePerKm int64  `help:"Override the fare per distance unit (-1 keeps the network's value)" default:"-1" env:"METROFARE_RATE_PER_KM"`
	LogLevel  string `help:"Log level" enum:"debug,info,warn,error" default:"warn" env:"METROFARE_LOG_LEVEL"`
	List      bool   `help:"List the stations of the network and exit"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code: 0 when a
// route was printed or no route exists, 1 on configuration or I/O errors.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var params cli
	exitCode := -1 // set when kong wants to exit, e.g. after --help
	parser, err := kong.New(&params,
		kong.Name("metrofare"),
		kong.Description("Shortest route and fare between two metro stations."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exitCode = code }),
	)
	if err != nil {
		fmt.Fprintln(stderr, "metrofare:", err)
		return 1
	}
	_, err = parser.Parse(args)
	if exitCode >= 0 {
		return exitCode
	}
	if err != nil {
		parser.Errorf("%s", err)
		return 1
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(params.LogLevel)); err != nil {
		fmt.Fprintln(stderr, "metrofare:", err)
		return 1
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	net, err := params.network(logger)
	if err != nil {
		logger.Error("loading network", "error", err)
		return 1
	}

	if params.List {
		for _, s := range net.Stations() {
			fmt.Fprintln(stdout, s)
		}
		return 0
	}

	in := bufio.NewReader(stdin)
	src, err := prompt(in, stdout, params.Source, "Enter source station: ")
	if err != nil {
		logger.Error("reading source station", "error", err)
		return 1
	}
	dst, err := prompt(in, stdout, params.Destination, "Enter destination station: ")
	if err != nil {
		logger.Error("reading destination station", "error", err)
		return 1
	}

	route, err := net.ShortestRoute(src, dst)
	switch {
	case errors.Is(err, metro.ErrNoPath):
		logger.Info("no route", "source", src, "destination", dst, "error", err)
		err = net.WriteNoPath(stdout, src, dst)
	case err != nil:
		logger.Error("route query", "error", err)
		return 1
	default:
		err = route.Report(stdout, src, dst)
	}
	if err != nil {
		logger.Error("writing result", "error", err)
		return 1
	}

	return 0
}

// network loads the configured network and applies the fare overrides.
func (c *cli) network(logger *slog.Logger) (*metro.Network, error) {
	spec := topology.HyderabadSpec()
	if c.Network != "" {
		var err error
		if spec, err = topology.LoadFile(c.Network); err != nil {
			return nil, err
		}
	}

	policy := spec.FarePolicy()
	if c.BaseFare < unset || c.RatePerKm < unset {
		return nil, fmt.Errorf("fare overrides must be non-negative (or %d to keep the network's value)", unset)
	}
	if c.BaseFare != unset {
		policy.BaseFare = c.BaseFare
	}
	if c.RatePerKm != unset {
		policy.RatePerKm = c.RatePerKm
	}

	net, err := spec.Build(metro.WithFare(policy), metro.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	logger.Debug("network loaded", "stations", len(net.Stations()), "segments", len(net.Segments()), "fare", policy.String())

	comps, err := net.Components()
	if err != nil {
		return nil, err
	}
	if len(comps) > 1 {
		logger.Warn("network is disconnected", "components", len(comps))
	}

	return net, nil
}

// prompt returns given when non-empty; otherwise it writes label to out and
// reads one line from in. Station names may contain spaces.
func prompt(in *bufio.Reader, out io.Writer, given, label string) (string, error) {
	if given != "" {
		return given, nil
	}
	fmt.Fprint(out, label)
	line, err := in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("no input: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
