package main

import (
	"unicode/utf8"

	"go.lsp.dev/protocol"
)

// toPosition converts a byte offset to a line and UTF-16 character.
func toPosition(content string, off int) protocol.Position {
	off = min(max(off, 0), len(content))
	var line, char uint32
	for _, r := range content[:off] {
		if r == '\n' {
			line++
			char = 0
			continue
		}
		char += utf16Len(r)
	}
	return protocol.Position{Line: line, Character: char}
}

// toOffset converts a position to a byte offset, clamping to the end of
// its line and of content.
func toOffset(content string, pos protocol.Position) int {
	var line, char uint32
	for i, r := range content {
		if line == pos.Line && (char >= pos.Character || r == '\n') {
			return i
		}
		if r == '\n' {
			line++
			char = 0
			continue
		}
		char += utf16Len(r)
	}
	return len(content)
}

func utf16Len(r rune) uint32 {
	if r >= 0x10000 && r <= utf8.MaxRune {
		return 2
	}
	return 1
}

func toRange(content string, start, end int) protocol.Range {
	return protocol.Range{
		Start: toPosition(content, start),
		End:   toPosition(content, end),
	}
}
