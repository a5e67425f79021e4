package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"gocentroid/internal/centroid"
	"gocentroid/internal/geom"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Data
	points   [][2]float64
	bbox     geom.BBox
	lines    [][][2]float64
	polygons [][][][2]float64

	// Centroid pass over the current data
	markerCfg   centroid.MarkerConfig
	summary     centroid.Summary
	markers     []placedMarker
	showMarkers bool

	// last rendered map size
	mapW int
	mapH int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// layer visibility
	showPoints bool
	showLines  bool
	showPolys  bool

	// info / diagnostics popup
	popup string

	// hover state
	hovering    bool
	hoverCellX  int
	hoverCellY  int
	hoverMicX   int
	hoverMicY   int
	hoverHasGeo bool
	hoverLon    float64
	hoverLat    float64

	// results table
	showResults bool
	tbl         table.Model
}

func New(cfg centroid.MarkerConfig) Model {
	m := Model{
		showSidebar: false,
		helpVisible: true,
		zoom:        1.0,
		status:      "gocentroid ready",
		showPoints:  true,
		showLines:   true,
		showPolys:   true,
		showMarkers: true,
		markerCfg:   cfg,
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here (POINT, MULTIPOINT, LINESTRING, POLYGON). Press Enter to compute; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// results table setup
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a file's data at launch.
func NewWithPath(path string, cfg centroid.MarkerConfig) Model {
	m := New(cfg)
	m.loadPath(path)
	return m
}

// recompute runs the centroid engine over the current data and
// captures the markers for rendering. The TUI owns the terminal, so
// the report's logrus mirror stays silent here; diagnostics surface
// through the 'd' popup instead.
func (m *Model) recompute() {
	rec := &placedMarkers{}
	eng := centroid.NewEngine(rec, centroid.NewReport(nil))
	m.summary = eng.Process(geom.Shapes(geom.Data{
		Points:   m.points,
		Lines:    m.lines,
		Polygons: m.polygons,
		BBox:     m.bbox,
	}))
	m.markers = rec.placed
	if m.showResults {
		m.refreshResults()
	}
}

func (m Model) Init() tea.Cmd { return nil }
