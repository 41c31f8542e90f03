package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/KingGeorgeIII/ecommerce-retention-predictor/internal/validation"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

const itemIndent = "  "

func renderItemLine(item validation.Item, colorize bool) string {
	line := fmt.Sprintf("%s%s %s", itemIndent, itemMarker(item.Status), item.Label)
	if item.Detail != "" {
		line = fmt.Sprintf("%s (%s)", line, item.Detail)
	}
	if colorize {
		if color := itemColor(item.Status); color != "" {
			return color + line + ansiReset
		}
	}
	return line
}

func itemMarker(status validation.ItemStatus) string {
	switch status {
	case validation.ItemFail:
		return "❌"
	case validation.ItemWarn:
		return "⚠️"
	default:
		return "✅"
	}
}

func itemColor(status validation.ItemStatus) string {
	switch status {
	case validation.ItemFail:
		return ansiRed
	case validation.ItemWarn:
		return ansiYellow
	case validation.ItemOK:
		return ansiGreen
	default:
		return ""
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
