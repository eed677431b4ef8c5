// Command arke-worldview is a developer tool that generates campaign
// levels and renders their tile grid, flow field or distance transform
// in the terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"golang.org/x/term"

	"arke/pkg/engine/world"
	"arke/pkg/game/field"
	"arke/pkg/game/level"
	"arke/pkg/game/worldgen"
	"arke/pkg/logger"
)

// Render modes
const (
	modeTiles    = "tiles"
	modeFlow     = "flow"
	modeDistance = "distance"
)

var (
	styleSolid    = color.Style{color.FgGray}
	stylePore     = color.Style{color.FgDefault}
	styleFastFlow = color.Style{color.FgCyan, color.OpBold}
	styleToxic    = color.Style{color.FgRed, color.OpBold}
	styleBiofilm  = color.Style{color.FgGreen}
	styleInlet    = color.Style{color.FgGreen, color.OpBold}
	styleOutlet   = color.Style{color.FgYellow, color.OpBold}
	styleHeader   = color.Style{color.FgBlue, color.OpBold}
)

func main() {
	logger.Init()

	var levelNum int
	var mode string
	var all bool
	flag.IntVar(&levelNum, "level", 1, "Level number to generate (1-10)")
	flag.StringVar(&mode, "mode", modeTiles, "Render mode: tiles, flow or distance")
	flag.BoolVar(&all, "all", false, "Render every campaign level")
	flag.Parse()

	if all {
		for _, def := range level.All() {
			renderLevel(def, mode)
		}
		return
	}

	def, ok := level.ByNumber(levelNum)
	if !ok {
		fmt.Fprintf(os.Stderr, "no such level: %d (campaign has %d)\n", levelNum, level.Count())
		os.Exit(1)
	}
	renderLevel(def, mode)
}

func renderLevel(def level.Definition, mode string) {
	w := worldgen.Generate(def)
	env := level.EnvironmentByIndex(def.Environment)

	styleHeader.Printf("%s %d: %s — %s (%q)\n",
		gotext.Get("Level"), def.Number, def.Title, env.Name, env.Tagline)
	fmt.Printf("%s: %dx%d  %s: %.2f  %s: %.2f\n",
		gotext.Get("Size"), def.Width, def.Height,
		gotext.Get("Porosity"), w.Porosity(),
		gotext.Get("Base flow"), def.BaseFlowSpeed)

	warnIfNarrowTerminal(def.Width)

	switch mode {
	case modeFlow:
		renderFlow(w)
	case modeDistance:
		renderDistance(w)
	default:
		renderTiles(w)
	}
	fmt.Println()
}

// warnIfNarrowTerminal flags grids wider than the attached terminal so
// the rendered rows do not wrap into garbage.
func warnIfNarrowTerminal(gridWidth int) {
	cols, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return // not a terminal, e.g. piped output
	}
	if gridWidth > cols {
		color.Warn.Printf("grid width %d exceeds terminal width %d; output will wrap\n", gridWidth, cols)
	}
}

func renderTiles(w *worldgen.World) {
	for y := 0; y < w.Height(); y++ {
		for x := 0; x < w.Width(); x++ {
			glyph, style := tileGlyph(w.Tile(x, y))
			style.Print(string(glyph))
		}
		fmt.Println()
	}
}

func tileGlyph(kind world.TileKind) (rune, color.Style) {
	switch kind {
	case world.Solid:
		return '#', styleSolid
	case world.Pore:
		return '.', stylePore
	case world.FastFlow:
		return '=', styleFastFlow
	case world.Toxic:
		return '!', styleToxic
	case world.Biofilm:
		return 'B', styleBiofilm
	case world.Inlet:
		return '>', styleInlet
	case world.Outlet:
		return 'E', styleOutlet
	default:
		return ' ', stylePore
	}
}

func renderFlow(w *worldgen.World) {
	base := w.Definition().BaseFlowSpeed
	for y := 0; y < w.Height(); y++ {
		for x := 0; x < w.Width(); x++ {
			if w.Tile(x, y) == world.Solid {
				styleSolid.Print("#")
				continue
			}
			f := w.Flow(x, y)
			flowStyle(f, base).Print(string(flowGlyph(f.Direction)))
		}
		fmt.Println()
	}
}

func flowGlyph(dir world.Direction) rune {
	switch dir {
	case world.Right:
		return '>'
	case world.Down:
		return 'v'
	case world.Left:
		return '<'
	case world.Up:
		return '^'
	default:
		return '.'
	}
}

func flowStyle(f field.Flow, baseSpeed float64) color.Style {
	switch {
	case f.Speed > 2*baseSpeed:
		return color.Style{color.FgCyan, color.OpBold}
	case f.Speed > baseSpeed:
		return color.Style{color.FgCyan}
	case f.Speed > 0:
		return color.Style{color.FgBlue}
	default:
		return styleSolid
	}
}

func renderDistance(w *worldgen.World) {
	for y := 0; y < w.Height(); y++ {
		for x := 0; x < w.Width(); x++ {
			d := w.Distance(x, y)
			if d == 0 {
				styleSolid.Print("#")
				continue
			}
			if d > 9 {
				d = 9
			}
			distanceStyle(d).Print(fmt.Sprintf("%d", d))
		}
		fmt.Println()
	}
}

func distanceStyle(d int) color.Style {
	switch {
	case d >= 5:
		return color.Style{color.FgRed, color.OpBold}
	case d >= 3:
		return color.Style{color.FgYellow}
	default:
		return color.Style{color.FgGreen}
	}
}
