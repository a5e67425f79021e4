package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	flags "github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"gocentroid/internal/centroid"
	"gocentroid/internal/geom"
	"gocentroid/internal/tui"
)

type options struct {
	Headless    bool    `short:"H" long:"headless" description:"compute centroids and print the report without starting the UI"`
	Diameter    float64 `long:"diameter" description:"individual marker diameter in data units (0 = auto)"`
	ArrowWidth  float64 `long:"arrow-width" description:"global marker arrow width in data units (0 = auto)"`
	ArrowHeight float64 `long:"arrow-height" description:"global marker arrow height in data units (0 = auto)"`
	Verbose     bool    `short:"v" long:"verbose" description:"log marker placements in headless mode"`

	Args struct {
		File string `positional-arg-name:"FILE" description:"geometry file (.geojson, .json, .wkt, .csv, .kml)"`
	} `positional-args:"yes"`
}

// logSink reports marker placements through the logger; headless runs
// have no canvas to draw on.
type logSink struct {
	log *logrus.Logger
}

func (s logSink) PlaceMarker(x, y float64, kind centroid.MarkerKind) error {
	s.log.WithFields(logrus.Fields{
		"kind": kind.String(),
		"x":    x,
		"y":    y,
	}).Debug("marker placed")
	return nil
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(1)
	}
	cfg := centroid.MarkerConfig{
		Diameter:    opts.Diameter,
		ArrowWidth:  opts.ArrowWidth,
		ArrowHeight: opts.ArrowHeight,
	}
	if opts.Headless {
		runHeadless(opts)
		return
	}
	var m tea.Model
	if opts.Args.File != "" {
		m = tui.NewWithPath(opts.Args.File, cfg)
	} else {
		m = tui.New(cfg)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		logrus.Fatal(err)
	}
}

func runHeadless(opts options) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if opts.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	if opts.Args.File == "" {
		log.Fatal("headless mode needs a geometry file")
	}
	d, err := geom.Load(opts.Args.File)
	if err != nil {
		log.WithError(err).Fatal("load geometry")
	}
	eng := centroid.NewEngine(logSink{log: log}, centroid.NewReport(log))
	sum := eng.Process(geom.Shapes(d))

	fmt.Printf("shapes accepted: %d  skipped: %d\n", len(sum.Shapes), sum.Skipped)
	for _, sr := range sum.Shapes {
		fmt.Printf("  #%d %-9s area=%.4f centroid=(%.4f, %.4f)\n",
			sr.Index, sr.Kind, sr.Result.SignedArea, sr.Result.X, sr.Result.Y)
	}
	if sum.HasGlobal {
		fmt.Printf("global centroid: (%.4f, %.4f)\n", sum.Global.X, sum.Global.Y)
	} else {
		fmt.Println("global centroid: none")
	}
}
