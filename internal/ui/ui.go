// Package ui formats the colored status lines the generator prints.
package ui

import (
	"fmt"
	"io"
	"os"
)

const (
	red   = "\033[31m"
	green = "\033[32m"
	grey  = "\033[37m"
	reset = "\033[0m"
)

// NoColor disables ANSI escapes. It defaults to true when NO_COLOR is set.
var NoColor = os.Getenv("NO_COLOR") != ""

func paint(color, msg string) string {
	if NoColor {
		return msg
	}
	return color + msg + reset
}

// Red wraps msg in red.
func Red(msg string) string { return paint(red, msg) }

// Green wraps msg in green.
func Green(msg string) string { return paint(green, msg) }

// Grey wraps msg in grey.
func Grey(msg string) string { return paint(grey, msg) }

// Success writes a green line to w.
func Success(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, Green(fmt.Sprintf(format, args...)))
}

// Hint writes a grey line to w.
func Hint(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, Grey(fmt.Sprintf(format, args...)))
}

// Error writes a red line to w.
func Error(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, Red(fmt.Sprintf(format, args...)))
}
