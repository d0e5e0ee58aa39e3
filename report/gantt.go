package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/sched-sim/sched-sim/sim"
)

// ganttCellWidth is the printed width of one timeline cell.
const ganttCellWidth = 8

// WriteGantt renders the timeline as an ASCII Gantt chart: one cell per
// execution interval with the pid centered, and a ruler of boundary
// times underneath. Idle gaps show up as a jump in the ruler.
//
//	|   P1   |   P2   |
//	0        5        9
func WriteGantt(w io.Writer, timeline []sim.Interval) {
	fmt.Fprintln(w, "Gantt chart")
	if len(timeline) == 0 {
		fmt.Fprintln(w, "(empty)")
		return
	}

	var bars, ruler strings.Builder
	bars.WriteString("|")
	for _, iv := range timeline {
		bars.WriteString(center(fmt.Sprintf("P%d", iv.PID), ganttCellWidth))
		bars.WriteString("|")
	}
	for i, iv := range timeline {
		ruler.WriteString(padRight(fmt.Sprint(iv.Start), ganttCellWidth+1))
		if i == len(timeline)-1 {
			ruler.WriteString(fmt.Sprint(iv.End))
		}
	}

	fmt.Fprintln(w, bars.String())
	fmt.Fprintln(w, ruler.String())
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
