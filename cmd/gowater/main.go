package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	water "github.com/rmera/gowater"
	"github.com/rmera/gowater/traj/xyz"
	"github.com/rmera/gowater/waterplot"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "gowater: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("gowater", flag.ExitOnError)
	var (
		cutoff  = fs.Float64("cutoff", water.DefaultCutoff, "O-H distance, in A, at or under which the pair counts as bonded")
		conf    = fs.String("conf", "", "TOML file with cutoff and color settings")
		plotpng = fs.String("plot", "", "write a PNG plot of the populations along the trajectory to this file")
		every   = fs.Int("every", 10, "print the populations of every this many frames")
		conc    = fs.Bool("conc", false, "classify frames concurrently")
		cpus    = fs.Int("cpus", 0, "goroutines used with -conc (all the CPUs, if not given)")
		prec    = fs.Int("prec", 6, "decimals written for each coordinate")
	)
	fs.Usage = func() { usage(fs) }
	fs.Parse(args)
	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("expected an input and an output trajectory, got %d arguments", fs.NArg())
	}
	inname, outname := fs.Arg(0), fs.Arg(1)
	//when the trajectory goes to the standard output, the progress text
	//moves out of its way.
	info := io.Writer(os.Stdout)
	if outname == "-" {
		info = os.Stderr
	}

	o := water.DefaultOptions()
	if *conf != "" {
		if err := loadConfig(*conf, o); err != nil {
			return err
		}
	}
	//flags beat the configuration file, so they go on top, but only those
	//actually given.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "cutoff":
			o.Cutoff(*cutoff)
		case "prec":
			o.Prec(*prec)
		case "cpus":
			o.Cpus(*cpus)
		}
	})
	if *plotpng != "" {
		o.Keep(true)
	}
	if *every < 1 {
		*every = 1
	}
	o.OnFrame(func(i int, t water.Tally) {
		if i%*every == 0 {
			fmt.Fprintf(info, "Frame %d stats: %v\n", i, t)
		}
	})

	in, err := openIn(inname)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := openOut(outname, o.Prec())
	if err != nil {
		return err
	}
	defer out.Close()

	fmt.Fprintf(info, "Processing %s to %s...\n", inname, outname)
	annotate := water.AnnotateTraj
	if *conc {
		annotate = water.AnnotateTrajConc
	}
	stats, err := annotate(in, out, o)
	if err != nil {
		return err
	}
	out.Close() //flush, so the trajectory is complete before anything else is reported

	fmt.Fprintf(info, "Successfully processed %d frames\n", stats.Frames)
	legend(info, o.Colors())
	if *plotpng != "" {
		S := waterplot.NewSeries(stats.PerFrame)
		if err := waterplot.Plot(S, o.Colors(), "Species populations", *plotpng); err != nil {
			return err
		}
		fmt.Fprintln(info, "Mean populations:")
		sum := waterplot.Summary(S)
		for _, s := range []water.State{water.Hydroxide, water.Water, water.Hydronium, water.Other} {
			fmt.Fprintf(info, "  %v: %v\n", s, sum[s])
		}
		fmt.Fprintf(info, "Populations plotted to %s\n", *plotpng)
	}
	return nil
}

//openIn opens the input trajectory; "-" means the standard input.
func openIn(name string) (*xyz.Reader, error) {
	if name == "-" {
		return xyz.NewReader(os.Stdin, "stdin"), nil
	}
	return xyz.New(name)
}

//openOut creates the output trajectory; "-" means the standard output.
func openOut(name string, prec int) (*xyz.Writer, error) {
	if name == "-" {
		W := xyz.NewWriterTo(os.Stdout, "stdout")
		W.Prec(prec)
		return W, nil
	}
	W, err := xyz.NewWriter(name)
	if err != nil {
		return nil, err
	}
	W.Prec(prec)
	return W, nil
}

//legend prints what each color in the annotated trajectory means.
func legend(w io.Writer, t *water.ColorTable) {
	fmt.Fprintln(w, "Color scheme used:")
	fmt.Fprintf(w, "  OH- (1 hydrogen): %v\n", t.Color(water.Oxygen, water.Hydroxide))
	fmt.Fprintf(w, "  H2O (2 hydrogens): %v\n", t.Color(water.Oxygen, water.Water))
	fmt.Fprintf(w, "  H3O+ (3 hydrogens): %v\n", t.Color(water.Oxygen, water.Hydronium))
	fmt.Fprintf(w, "  other oxygens: %v\n", t.Color(water.Oxygen, water.Other))
	fmt.Fprintf(w, "  hydrogen: %v\n", t.Color(water.Hydrogen, water.Unknown))
	fmt.Fprintf(w, "  xenon: %v\n", t.Color(water.Xenon, water.Unknown))
}

func usage(fs *flag.FlagSet) {
	fmt.Fprintln(os.Stderr, "usage: gowater [flags] in.xyz out.xyz")
	fmt.Fprintln(os.Stderr, "Colors the atoms of an extended-XYZ trajectory by the protonation state")
	fmt.Fprintln(os.Stderr, "of each oxygen: hydroxide blue, water red, hydronium orange.")
	fmt.Fprintln(os.Stderr, "Files ending in .gz, .zst or .zstd are (de)compressed on the fly,")
	fmt.Fprintln(os.Stderr, "and \"-\" means the standard input or output.")
	fs.PrintDefaults()
}
