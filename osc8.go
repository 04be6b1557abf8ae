package autolink

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	osc8Start = "\x1b]8;;"
	osc8End   = "\x1b]8;;\x1b\\"
)

// OSC8Mode controls whether ANSI output wraps links in OSC 8 hyperlink sequences.
type OSC8Mode uint8

const (
	// OSC8Auto enables hyperlinks when DetectOSC8Support reports support.
	OSC8Auto OSC8Mode = iota
	// OSC8On always emits hyperlinks.
	OSC8On
	// OSC8Off never emits hyperlinks.
	OSC8Off
)

// ParseOSC8Mode parses auto|on|off. Boolean spellings are accepted for on and off.
func ParseOSC8Mode(raw string) (OSC8Mode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "auto":
		return OSC8Auto, nil
	case "on", "true", "1", "yes":
		return OSC8On, nil
	case "off", "false", "0", "no":
		return OSC8Off, nil
	default:
		return OSC8Auto, fmt.Errorf("invalid osc8 mode %q: expected auto|on|off", raw)
	}
}

// Enabled resolves the mode, consulting the environment for OSC8Auto.
func (m OSC8Mode) Enabled() bool {
	switch m {
	case OSC8On:
		return true
	case OSC8Off:
		return false
	default:
		return DetectOSC8Support()
	}
}

// DetectOSC8Support returns true if the current environment likely supports OSC 8 hyperlinks.
func DetectOSC8Support() bool {
	return detectOSC8(os.Getenv)
}

func detectOSC8(getenv func(string) string) bool {
	if getenv("OSC8") == "0" {
		return false
	}
	if getenv("DOMTERM") != "" || getenv("WT_SESSION") != "" {
		return true
	}
	switch getenv("TERM_PROGRAM") {
	case "iTerm.app", "WezTerm", "vscode", "ghostty":
		return true
	}
	if strings.Contains(strings.ToLower(getenv("TERM")), "kitty") {
		return true
	}
	if vte := getenv("VTE_VERSION"); vte != "" {
		if n, err := strconv.Atoi(vte); err == nil && n >= 5000 {
			return true
		}
	}
	return false
}
