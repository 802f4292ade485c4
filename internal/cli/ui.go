package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/SpatialFocus/RasterCostDistance/pkg/pipeline"
)

// stdout receives user-facing output; logs go to the logger's writer.
var stdout io.Writer = os.Stdout

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary values
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - labels
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(10)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

func printSuccess(format string, args ...any) {
	fmt.Fprintln(stdout, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	fmt.Fprintln(stdout, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	fmt.Fprintln(stdout, styleIconInfo.Render(iconInfo)+" "+fmt.Sprintf(format, args...))
}

// printDetail prints an indented, muted line.
func printDetail(format string, args ...any) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

func printFile(path string) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Fprintln(stdout, "  "+styleKey.Render(key)+" "+value)
}

// printRunSummary prints the outcome of a run.
func printRunSummary(res *pipeline.Result) {
	status := styleComputed.Render(iconFresh)
	if res.CacheHit {
		status = styleCached.Render(iconCached)
	}
	printSuccess("Distance raster written %s", StyleDim.Render("("+status+")"))
	printFile(res.Output)

	capText := "none"
	if res.Engine.Cap > 0 {
		capText = strconv.Itoa(int(res.Engine.Cap))
	}
	printKeyValue("run", StyleDim.Render(res.RunID))
	printKeyValue("size", StyleValue.Render(fmt.Sprintf("%d x %d", res.Width, res.Height)))
	printKeyValue("seeds", number(int64(res.Seeds)))
	printKeyValue("strategy", StyleValue.Render(res.Engine.Strategy))
	printKeyValue("cap", StyleValue.Render(capText))
	printKeyValue("rounds", number(int64(res.Engine.Rounds)))
	printKeyValue("claimed", number(res.Engine.Changes))
	printKeyValue("filled", number(res.Engine.Filled))
	printKeyValue("elapsed", StyleValue.Render(res.Stats.Total().Round(time.Millisecond).String()))
}

func number(n int64) string {
	return StyleNumber.Render(strconv.FormatInt(n, 10))
}
