// Command void renders text in the Void modular typeface.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/ryanlewis/voidtype"
	"github.com/ryanlewis/voidtype/internal/debug"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type flags struct {
	out         string
	backend     string
	preset      string
	alphabet    string
	mode        string
	strokes     int
	gap         float64
	moduleSize  float64
	stem        float64
	spacing     float64
	lineHeight  float64
	radius      float64
	color       string
	bg          string
	gradient    string
	gridColor   string
	grid        bool
	overlay     bool
	seed        int64
	scope       string
	stemMin     float64
	stemMax     float64
	strokesMin  int
	strokesMax  int
	gapMin      float64
	gapMax      float64
	width       int
	height      int
	thumb       string
	analyze     bool
	verbose     bool
	debugMode   bool
	debugFile   string
	debugPretty bool
	showVersion bool
	showHelp    bool
}

func newFlagSet(f *flags) *pflag.FlagSet {
	fs := pflag.NewFlagSet("void", pflag.ContinueOnError)
	fs.SortFlags = false
	rd := voidtype.DefaultRandomParams()

	fs.StringVarP(&f.out, "out", "o", "", "Write to file; .png selects PNG, anything else SVG (default: stdout)")
	fs.StringVarP(&f.backend, "backend", "b", "", "Output backend for stdout: svg or png")
	fs.StringVarP(&f.preset, "preset", "p", "", "YAML preset with render parameters")
	fs.StringVarP(&f.alphabet, "alphabet", "a", "", "YAML alphabet file with extra or replacement glyphs")
	fs.StringVarP(&f.mode, "mode", "m", "fill", "Stroke mode: fill, stripes or random")
	fs.IntVarP(&f.strokes, "strokes", "n", 3, "Stripe count in stripes mode (1-64)")
	fs.Float64Var(&f.gap, "gap", 0.3, "Share of each stroke given to gaps (0-0.95)")
	fs.Float64VarP(&f.moduleSize, "module-size", "s", 12, "Pixel edge of one grid cell")
	fs.Float64Var(&f.stem, "stem", 8, "Stroke weight; strokes are stem/2 thick")
	fs.Float64Var(&f.spacing, "letter-spacing", 12, "Gap between glyphs in pixels")
	fs.Float64Var(&f.lineHeight, "line-height", 24, "Gap between lines in pixels")
	fs.Float64Var(&f.radius, "corner-radius", 0, "Rounding of rectangle corners in pixels")
	fs.StringVarP(&f.color, "color", "c", "#000000", "Stroke colour")
	fs.StringVar(&f.bg, "bg", "#ffffff", "Background colour; empty for none")
	fs.StringVar(&f.gradient, "gradient", "", "Stroke gradient as FROM,TO colours")
	fs.BoolVar(&f.grid, "grid", false, "Draw the module grid")
	fs.StringVar(&f.gridColor, "grid-color", "#d0d0d0", "Grid line colour")
	fs.BoolVar(&f.overlay, "overlay", false, "Mark stroke ends and joins")
	fs.Int64Var(&f.seed, "seed", 0, "Random mode seed")
	fs.StringVar(&f.scope, "scope", "byType", "Random draws per module type (byType) or per cell (full)")
	fs.Float64Var(&f.stemMin, "stem-min", rd.StemMin, "Random mode: smallest stem multiplier")
	fs.Float64Var(&f.stemMax, "stem-max", rd.StemMax, "Random mode: largest stem multiplier")
	fs.IntVar(&f.strokesMin, "strokes-min", rd.StrokesMin, "Random mode: fewest stripes")
	fs.IntVar(&f.strokesMax, "strokes-max", rd.StrokesMax, "Random mode: most stripes")
	fs.Float64Var(&f.gapMin, "gap-min", rd.GapMin, "Random mode: smallest gap ratio")
	fs.Float64Var(&f.gapMax, "gap-max", rd.GapMax, "Random mode: largest gap ratio")
	fs.IntVarP(&f.width, "width", "W", 800, "Canvas width in pixels")
	fs.IntVarP(&f.height, "height", "H", 400, "Canvas height in pixels")
	fs.StringVar(&f.thumb, "thumb", "", "Write a PNG thumbnail no larger than WxH instead")
	fs.BoolVar(&f.analyze, "analyze", false, "Print the stroke analysis of each glyph instead of rendering")
	fs.BoolVar(&f.verbose, "verbose", false, "Log to stderr")
	fs.BoolVar(&f.debugMode, "debug", false, "Enable debug tracing (outputs to stderr)")
	fs.StringVar(&f.debugFile, "debug-file", "", "Write debug output to file instead of stderr")
	fs.BoolVar(&f.debugPretty, "debug-pretty", false, "Use pretty format for debug output (default: JSON)")
	fs.BoolVarP(&f.showVersion, "version", "v", false, "Show version information")
	fs.BoolVarP(&f.showHelp, "help", "h", false, "Show help message")
	return fs
}

func run(args []string, stdout, stderr io.Writer) int {
	var f flags
	fs := newFlagSet(&f)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	if f.showHelp {
		printHelp(stdout, fs)
		return 0
	}
	if f.showVersion {
		fmt.Fprintf(stdout, "void version %s (commit: %s, built: %s)\n", version, commit, date)
		return 0
	}
	if f.verbose {
		voidtype.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer voidtype.SetLogger(nil)
	}

	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "Error: no text provided")
		printHelp(stderr, fs)
		return 1
	}
	text := strings.ReplaceAll(strings.Join(fs.Args(), " "), `\n`, "\n")

	params, err := buildParams(fs, &f, text)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	session, err := voidtype.NewSession(params)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if f.alphabet != "" {
		alpha, err := voidtype.LoadAlphabetCached(f.alphabet)
		if err != nil {
			fmt.Fprintf(stderr, "Error loading alphabet: %v\n", err)
			return 1
		}
		session.SetAlphabet(alpha)
	}

	pretty := debug.InitFromEnv()
	if f.debugMode || f.debugFile != "" {
		debug.SetEnabled(true)
	}
	if debug.Enabled() {
		var output io.Writer = stderr
		if f.debugFile != "" {
			file, err := os.Create(f.debugFile)
			if err != nil {
				fmt.Fprintf(stderr, "Error creating debug file: %v\n", err)
				return 1
			}
			defer file.Close()
			output = file
		}
		session.SetTrace(output, pretty || f.debugPretty)
		//nolint:errcheck // flushed on exit
		defer session.CloseTrace()
	}

	if f.analyze {
		printAnalysis(stdout, session.AnalyzeText())
		return 0
	}

	if err := write(session, &f, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// buildParams starts from the preset (or the defaults) and applies every
// flag given on the command line.
func buildParams(fs *pflag.FlagSet, f *flags, text string) (voidtype.Params, error) {
	p := voidtype.DefaultParams()
	if f.preset != "" {
		var err error
		if p, err = voidtype.LoadPresetFile(f.preset); err != nil {
			return p, err
		}
	}
	p.Text = text

	set := func(name string, apply func()) {
		if f.preset == "" || fs.Changed(name) {
			apply()
		}
	}
	set("mode", func() { p.Mode = voidtype.Mode(f.mode) })
	set("strokes", func() { p.Strokes = f.strokes })
	set("gap", func() { p.GapRatio = f.gap })
	set("module-size", func() { p.ModuleSize = f.moduleSize })
	set("stem", func() { p.Stem = f.stem })
	set("letter-spacing", func() { p.LetterSpacing = f.spacing })
	set("line-height", func() { p.LineHeight = f.lineHeight })
	set("corner-radius", func() { p.CornerRadius = f.radius })
	set("color", func() { p.Color = f.color })
	set("bg", func() { p.BgColor = f.bg })
	set("grid", func() { p.ShowGrid = f.grid })
	set("grid-color", func() { p.GridColor = f.gridColor })
	set("overlay", func() { p.ShowOverlay = f.overlay })
	set("seed", func() { p.Random.Seed = f.seed })
	set("scope", func() { p.Random.Scope = voidtype.Scope(f.scope) })
	set("stem-min", func() { p.Random.StemMin = f.stemMin })
	set("stem-max", func() { p.Random.StemMax = f.stemMax })
	set("strokes-min", func() { p.Random.StrokesMin = f.strokesMin })
	set("strokes-max", func() { p.Random.StrokesMax = f.strokesMax })
	set("gap-min", func() { p.Random.GapMin = f.gapMin })
	set("gap-max", func() { p.Random.GapMax = f.gapMax })
	set("width", func() { p.Width = f.width })
	set("height", func() { p.Height = f.height })

	if f.gradient != "" {
		g, err := parseGradient(f.gradient)
		if err != nil {
			return p, err
		}
		p.Gradient = g
	}
	return p, p.Normalize()
}

// write sends the render to --out, or to stdout when no file is named.
func write(s *voidtype.Session, f *flags, stdout io.Writer) error {
	if f.thumb != "" {
		w, h, err := parseSize(f.thumb)
		if err != nil {
			return err
		}
		img, err := s.Thumbnail(w, h)
		if err != nil {
			return err
		}
		if f.out == "" {
			return voidtype.EncodePNG(stdout, img)
		}
		file, err := os.Create(f.out)
		if err != nil {
			return err
		}
		if err := voidtype.EncodePNG(file, img); err != nil {
			file.Close()
			return err
		}
		return file.Close()
	}

	if f.out != "" {
		saver := voidtype.FileSaver{Dir: filepath.Dir(f.out)}
		return s.Save(context.Background(), saver, filepath.Base(f.out))
	}

	var (
		data []byte
		err  error
	)
	switch f.backend {
	case "", voidtype.BackendSVG:
		data, err = s.ExportSVG()
	case voidtype.BackendPNG:
		data, err = s.ExportPNG()
	default:
		return fmt.Errorf("%w %q", voidtype.ErrUnknownBackend, f.backend)
	}
	if err != nil {
		return err
	}
	_, err = stdout.Write(data)
	return err
}

// parseGradient reads "FROM,TO".
func parseGradient(s string) (*voidtype.Gradient, error) {
	from, to, ok := strings.Cut(s, ",")
	if !ok || strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		return nil, fmt.Errorf("gradient must be FROM,TO, got %q", s)
	}
	return &voidtype.Gradient{From: strings.TrimSpace(from), To: strings.TrimSpace(to)}, nil
}

// parseSize reads "WxH".
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size must be WxH, got %q", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil || w < 1 {
		return 0, 0, fmt.Errorf("invalid width in %q", s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h < 1 {
		return 0, 0, fmt.Errorf("invalid height in %q", s)
	}
	return w, h, nil
}

func printAnalysis(w io.Writer, analyses []voidtype.Analysis) {
	for _, a := range analyses {
		note := ""
		if !a.Defined {
			note = " (no glyph, drawn as space)"
		}
		fmt.Fprintf(w, "%q U+%04X %s%s: %d modules, %d connections, %d endpoints, %d strokes\n",
			a.Rune, a.Rune, a.Topology, note, a.Modules, len(a.Connections), len(a.Endpoints), len(a.Components))
		for _, e := range a.Endpoints {
			fmt.Fprintf(w, "  end %s\n", e)
		}
	}
}

func printHelp(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintln(w, "void - Void modular typeface renderer")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  void [flags] <text>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write \\n in the text for a line break.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  VOID_DEBUG=1         enable debug tracing")
	fmt.Fprintln(w, "  VOID_DEBUG_PRETTY=1  pretty debug output")
}
