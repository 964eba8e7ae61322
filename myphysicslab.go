/*package main is a small command line front end for the deterministic
random number generator and the parametric paths it samples. It exists for
poking at reproducibility from a terminal; simulations use the libraries
directly.*/
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/AnhaaD/myphysicslab/logging"
	"github.com/AnhaaD/myphysicslab/math/rand"
	"github.com/AnhaaD/myphysicslab/parse"
	"github.com/AnhaaD/myphysicslab/sim/path"
	"github.com/AnhaaD/myphysicslab/version"
)

var helpStrings = map[string]string{
	"sample": `The sample mode places points uniformly at random along a
circular path and prints them. The same seed always prints the same points.`,

	"shuffle": `The shuffle mode spaces points evenly along a circular path
and prints them in a seeded random order, the way randomized initial
conditions are assigned to bodies on a track.`,

	"perm": `The perm mode prints a seeded random permutation of
0 .. Points-1.`,

	"config": exampleConfig(),
}

var modeDescriptions = `My help modes are:
lcgdemo help
lcgdemo help [ sample | shuffle | perm | config ]

My generator modes are:
lcgdemo sample ____.config
lcgdemo shuffle ____.config
lcgdemo perm ____.config`

// demoConfig is the [lcg_demo] config file. A negative seed means "seed
// from the wall clock", which is the one non-reproducible option.
type demoConfig struct {
	version string
	seed    int64
	radius  float64
	points  int64
	debug   bool
}

func configVars(cfg *demoConfig) *parse.ConfigVars {
	vars := parse.NewConfigVars("lcg_demo")
	vars.String(&cfg.version, "Version", version.SourceVersion)
	vars.Int(&cfg.seed, "Seed", -1)
	vars.Float(&cfg.radius, "Radius", 1.0)
	vars.Int(&cfg.points, "Points", 10)
	vars.Bool(&cfg.debug, "Debug", false)
	return vars
}

func exampleConfig() string {
	return `[lcg_demo]
# Version of the code this file was written for.
Version = ` + version.SourceVersion + `
# Seed for the generator. Negative seeds mean "use the wall clock", which
# makes runs non-reproducible.
Seed = 1337
# Radius of the circular path.
Radius = 1.0
# Number of points to place.
Points = 10
# Debug = true prints memory statistics to stderr.
Debug = false`
}

func main() {
	args := os.Args
	if len(args) <= 1 {
		fmt.Fprintf(
			os.Stderr, "I was not supplied with a mode.\nFor help, type "+
				"'./lcgdemo help'.\n",
		)
		os.Exit(1)
	}

	if args[1] == "help" {
		switch len(args) - 2 {
		case 0:
			fmt.Println(modeDescriptions)
		case 1:
			text, ok := helpStrings[args[2]]
			if !ok {
				fmt.Printf("I don't recognize the help target '%s'\n", args[2])
			} else {
				fmt.Println(text)
			}
		default:
			fmt.Println("The help mode can only take a single argument.")
		}
		os.Exit(0)
	} else if args[1] == "version" {
		fmt.Printf("lcgdemo version %s\n", version.SourceVersion)
		os.Exit(0)
	}

	switch args[1] {
	case "sample", "shuffle", "perm":
	default:
		fmt.Fprintf(
			os.Stderr, "You passed me the mode '%s', which I don't "+
				"recognize.\nFor help, type './lcgdemo help'\n", args[1],
		)
		os.Exit(1)
	}

	if len(args) != 3 {
		fmt.Fprintf(
			os.Stderr, "The %s mode needs a config file.\nFor help, type "+
				"'./lcgdemo help'\n", args[1],
		)
		os.Exit(1)
	}

	cfg := &demoConfig{}
	if err := parse.ReadConfig(args[2], configVars(cfg)); err != nil {
		log.Fatalf("Error running mode %s:\n%s\n", args[1], err.Error())
	}
	if err := checkConfig(cfg); err != nil {
		log.Fatalf("Error running mode %s:\n%s\n", args[1], err.Error())
	}

	if cfg.debug {
		logging.Mode = logging.Debug
	}

	gen := newGenerator(cfg)
	if err := run(args[1], cfg, gen); err != nil {
		log.Fatalf("Error running mode %s:\n%s\n", args[1], err.Error())
	}

	logging.Debugf("%s", logging.MemString())
}

func checkConfig(cfg *demoConfig) error {
	if later, err := version.Later(cfg.version, version.SourceVersion); err != nil {
		return err
	} else if later {
		return errors.Errorf(
			"the config file is for version %s, but the source is version "+
				"%s", cfg.version, version.SourceVersion,
		)
	}

	if cfg.radius <= 0 {
		return errors.Errorf("Radius must be positive, not %g", cfg.radius)
	}
	if cfg.points < 0 {
		return errors.Errorf("Points must be non-negative, not %d", cfg.points)
	}
	return nil
}

func newGenerator(cfg *demoConfig) *rand.Generator {
	if cfg.seed < 0 {
		logging.Debugf("seeding from the wall clock")
		return rand.NewTimeSeed()
	}
	return rand.New(float64(cfg.seed))
}

func run(mode string, cfg *demoConfig, gen *rand.Generator) error {
	header := color.New(color.FgCyan, color.Bold)
	value := color.New(color.FgYellow)

	circle := path.NewCircle(cfg.radius)
	n := int(cfg.points)

	switch mode {
	case "sample":
		header.Printf("%d random points on a radius-%g circle (seed %d):\n",
			n, cfg.radius, gen.Seed())
		for _, pt := range path.RandomPoints(gen, circle, n) {
			value.Printf("  (%10.6f, %10.6f)\n", pt.X, pt.Y)
		}
	case "shuffle":
		header.Printf("%d shuffled points on a radius-%g circle (seed %d):\n",
			n, cfg.radius, gen.Seed())
		for _, pt := range path.ShuffledPoints(gen, circle, n) {
			value.Printf("  (%10.6f, %10.6f)\n", pt.X, pt.Y)
		}
	case "perm":
		header.Printf("random permutation of 0 .. %d (seed %d):\n",
			n-1, gen.Seed())
		value.Printf("  %v\n", gen.RandomInts(n))
	}

	return nil
}
