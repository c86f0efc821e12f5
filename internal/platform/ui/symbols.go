// internal/platform/ui/symbols.go
package ui

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
)

// Status es el resultado de un paso de la instalación.
type Status int

const (
	StatusSuccess Status = iota + 1
	StatusWarning
	StatusError
)

type statusLook struct {
	name   string
	symbol string
	color  pterm.Color
}

var statusLooks = map[Status]statusLook{
	StatusSuccess: {"success", "✓", pterm.FgGreen},
	StatusWarning: {"warning", "⚠", pterm.FgYellow},
	StatusError:   {"error", "✗", pterm.FgRed},
}

func (s Status) look() statusLook {
	if l, ok := statusLooks[s]; ok {
		return l
	}
	return statusLook{"unknown", "?", pterm.FgDefault}
}

func (s Status) String() string      { return s.look().name }
func (s Status) Symbol() string      { return s.look().symbol }
func (s Status) Color() pterm.Color  { return s.look().color }
func (s Status) Style() *pterm.Style { return pterm.NewStyle(s.Color()) }

// Iconos de la cabecera y el resumen
const (
	IconEditor  = "📝"
	IconVersion = "🏷"
	IconSystem  = "💻"
	IconTime    = "⏱"
	IconPath    = "📂"
)

const SeparatorHeavy = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// formatDuration: ms por debajo del segundo, s con un decimal por debajo del minuto, y "XmYs" a partir de ahí.
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		d = d.Truncate(time.Second)
		return fmt.Sprintf("%dm%ds", int(d/time.Minute), int((d%time.Minute)/time.Second))
	}
}
