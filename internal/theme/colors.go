package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - table headers
)

// Pick status colors
const (
	ColorClosed    Color = "8" // Gray - backport closed without merge
	ColorNotPicked Color = "1" // Red - no backport found
	ColorOpen      Color = "3" // Yellow - backport still open
	ColorPicked    Color = "2" // Green - backport merged
	ColorUnknown   Color = "5" // Magenta - could not decide
)

// UI semantic colors
const (
	ColorBorder Color = "238"
	ColorError  Color = "196" // Bright red
	ColorMuted  Color = "241" // Gray - secondary text
	ColorNormal Color = "250" // Default text
	ColorSubtle Color = "245" // Light gray - labels
	ColorWarn   Color = "214" // Orange - rate limit notes
)
