package autolink

import (
	"sort"
	"strings"
)

const (
	ansiReset     = "\x1b[0m"
	ansiBold      = "\x1b[1m"
	ansiUnderline = "\x1b[4m"
)

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the styles used when highlighting links.
type Styles struct {
	Text  Style
	URL   Style
	WWW   Style
	Email Style
}

// ForKind returns the style for a link kind, or Text for plain text.
func (s Styles) ForKind(kind LinkKind) Style {
	switch kind {
	case KindURL:
		return s.URL
	case KindWWW:
		return s.WWW
	case KindEmail:
		return s.Email
	default:
		return s.Text
	}
}

// Theme provides named styles for link highlighting.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		b.WriteString(p)
	}
	return Style{Prefix: b.String()}
}

func fg(rgb string) string {
	return "\x1b[38;2;" + rgb + "m"
}

func linkStyles(url, www, email string) Styles {
	return Styles{
		URL:   style(ansiUnderline, fg(url)),
		WWW:   style(ansiUnderline, fg(www)),
		Email: style(ansiUnderline, fg(email)),
	}
}

var builtinThemes = map[string]Theme{
	"default":     theme{name: "default", styles: Styles{URL: style(ansiUnderline, "\x1b[34m"), WWW: style(ansiUnderline, "\x1b[36m"), Email: style(ansiUnderline, "\x1b[35m")}},
	"bold":        theme{name: "bold", styles: Styles{URL: style(ansiBold), WWW: style(ansiBold), Email: style(ansiBold)}},
	"dracula":     theme{name: "dracula", styles: linkStyles("139;233;253", "80;250;123", "255;121;198")},
	"gruvbox":     theme{name: "gruvbox", styles: linkStyles("131;165;152", "142;192;124", "211;134;155")},
	"nord":        theme{name: "nord", styles: linkStyles("136;192;208", "163;190;140", "180;142;173")},
	"tokyo-night": theme{name: "tokyo-night", styles: linkStyles("122;162;247", "158;206;106", "187;154;247")},
	"github-dark": theme{name: "github-dark", styles: linkStyles("88;166;255", "126;231;135", "210;168;255")},
	"plain":       theme{name: "plain", styles: Styles{}},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
