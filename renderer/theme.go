package renderer

import "strings"

// DefaultTheme is used when no theme, or an unknown one, is requested.
const DefaultTheme = "light"

// Theme is a fixed colour table applied to the stylesheet.
type Theme struct {
	Name           string
	Background     string
	Sidebar        string
	Surface        string
	Text           string
	Muted          string
	Border         string
	Accent         string
	CodeBackground string
	CodeText       string
	Success        string
	ClientError    string
	ServerError    string
}

var themes = map[string]Theme{
	"light": {
		Name:           "light",
		Background:     "#ffffff",
		Sidebar:        "#f7f8fa",
		Surface:        "#ffffff",
		Text:           "#1f2933",
		Muted:          "#616e7c",
		Border:         "#e4e7eb",
		Accent:         "#2563eb",
		CodeBackground: "#f3f4f6",
		CodeText:       "#111827",
		Success:        "#15803d",
		ClientError:    "#b45309",
		ServerError:    "#b91c1c",
	},
	"dark": {
		Name:           "dark",
		Background:     "#111827",
		Sidebar:        "#0b1220",
		Surface:        "#1f2937",
		Text:           "#e5e7eb",
		Muted:          "#9ca3af",
		Border:         "#374151",
		Accent:         "#60a5fa",
		CodeBackground: "#0f172a",
		CodeText:       "#e2e8f0",
		Success:        "#4ade80",
		ClientError:    "#fbbf24",
		ServerError:    "#f87171",
	},
	"dracula": {
		Name:           "dracula",
		Background:     "#282a36",
		Sidebar:        "#21222c",
		Surface:        "#343746",
		Text:           "#f8f8f2",
		Muted:          "#6272a4",
		Border:         "#44475a",
		Accent:         "#bd93f9",
		CodeBackground: "#1e1f29",
		CodeText:       "#f8f8f2",
		Success:        "#50fa7b",
		ClientError:    "#ffb86c",
		ServerError:    "#ff5555",
	},
	"github": {
		Name:           "github",
		Background:     "#ffffff",
		Sidebar:        "#f6f8fa",
		Surface:        "#ffffff",
		Text:           "#24292f",
		Muted:          "#57606a",
		Border:         "#d0d7de",
		Accent:         "#0969da",
		CodeBackground: "#f6f8fa",
		CodeText:       "#24292f",
		Success:        "#1a7f37",
		ClientError:    "#9a6700",
		ServerError:    "#cf222e",
	},
}

// ThemeNames lists the built-in themes.
func ThemeNames() []string {
	return []string{"light", "dark", "dracula", "github"}
}

// ResolveTheme returns the named theme. Names are matched case-insensitively.
// An unknown name yields the light theme and false; it is never an error.
func ResolveTheme(name string) (Theme, bool) {
	if t, ok := themes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t, true
	}
	return themes[DefaultTheme], false
}

// Method badge colours. The palette is fixed.
var methodColors = map[string]string{
	"get":    "#16a34a", // green
	"post":   "#2563eb", // blue
	"put":    "#d97706", // amber
	"delete": "#dc2626", // red
	"patch":  "#9333ea", // purple
}

const otherMethodColor = "#6b7280"

// MethodColor returns the badge colour for an HTTP method.
// Methods outside the fixed palette are grey.
func MethodColor(method string) string {
	if c, ok := methodColors[strings.ToLower(method)]; ok {
		return c
	}
	return otherMethodColor
}

// StatusClass buckets a response code by its first character:
// "2" is success, "4" is client, and everything else (including 3xx, 5xx
// and "default") is server.
func StatusClass(code string) string {
	switch {
	case strings.HasPrefix(code, "2"):
		return "success"
	case strings.HasPrefix(code, "4"):
		return "client"
	default:
		return "server"
	}
}
