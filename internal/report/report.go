// Package report prints draw runs to the console.
package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/jmoreau/eurodraw/internal/draw"
	"github.com/jmoreau/eurodraw/internal/persistence"
	"github.com/jmoreau/eurodraw/internal/schedule"
	"github.com/jmoreau/eurodraw/internal/weather"
)

const rule = "---------------------------------------------------------------------------------------------"

// Printer writes the console report. Color is enabled only when the
// destination is a terminal.
type Printer struct {
	out   io.Writer
	color bool
}

// NewPrinter creates a printer for w. Color is enabled when w is os.Stdout
// attached to a TTY.
func NewPrinter(w io.Writer) *Printer {
	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Printer{out: w, color: color}
}

func (p *Printer) bold(s string) string {
	if !p.color {
		return s
	}
	return "\033[1m" + s + "\033[0m"
}

func (p *Printer) green(s string) string {
	if !p.color {
		return s
	}
	return "\033[32m" + s + "\033[0m"
}

// Header prints the general information block: current date and time, the
// next draw date, and the weather that fed the entropy token.
func (p *Printer) Header(now time.Time, nextDraw time.Time, city, postal string, cond *weather.Conditions) {
	fmt.Fprintln(p.out, rule)
	fmt.Fprintf(p.out, "Weekday            : %s\n", schedule.Abbrev(now.Weekday()))
	fmt.Fprintf(p.out, "Date               : %s\n", now.Format("02/01/2006"))
	fmt.Fprintf(p.out, "Time               : %s\n", now.Format("15:04:05"))
	fmt.Fprintf(p.out, "Next draw          : %s %s at %02d:%02d\n",
		schedule.Abbrev(nextDraw.Weekday()), nextDraw.Format("02/01/2006"),
		schedule.DrawHour, schedule.DrawMinute)
	fmt.Fprintln(p.out, rule)
	fmt.Fprintf(p.out, "City               : %s, postal code %s\n", city, postal)
	if cond != nil {
		fmt.Fprintf(p.out, "Conditions         : %s\n", cond.Description)
		fmt.Fprintf(p.out, "Temperature        : %.1f°C\n", cond.Temp)
		fmt.Fprintf(p.out, "Humidity           : %d%%\n", cond.Humidity)
		fmt.Fprintf(p.out, "Precipitation      : %g mm\n", cond.Precipitation)
	} else {
		fmt.Fprintln(p.out, "Conditions         : unavailable (fallback entropy token)")
	}
	fmt.Fprintln(p.out, rule)
}

// Picks prints the trial picks followed by the official one.
func (p *Printer) Picks(picks []draw.Pick) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "Trial picks:")
	for _, pk := range picks {
		if pk.Official {
			continue
		}
		fmt.Fprintf(p.out, "Trial #%02d - Main numbers: %v, Bonus: [%d]\n", pk.Index+1, pk.Main, pk.Bonus)
	}

	for _, pk := range picks {
		if !pk.Official {
			continue
		}
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, p.bold("OFFICIAL EURODREAMS PICK:"))
		fmt.Fprintf(p.out, "%s\n", p.green(fmt.Sprintf("Main numbers: %v, Bonus: [%d]", pk.Main, pk.Bonus)))
	}
}

// History prints recent persisted runs with relative timestamps.
func (p *Printer) History(runs []persistence.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(p.out, "No saved runs yet.")
		return
	}
	fmt.Fprintln(p.out, "Recent runs:")
	for _, r := range runs {
		fmt.Fprintf(p.out, "  %s  %s, %s  (%s, generated %s)\n",
			r.ID[:8], r.City, r.Postal, r.Description, humanize.Time(r.Created()))
	}
}
