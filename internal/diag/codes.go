package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical.
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003

	// Syntax (expression scanning).
	SynInfo            Code = 2000
	SynUnexpectedToken Code = 2001
	SynUnclosedBracket Code = 2002

	// Lint checks. These carry pylint-compatible IDs, see lintIDs.
	LintInfo              Code = 3000
	LintBadFormatType     Code = 3001
	LintMixedFormatString Code = 3002

	// IO.
	IOLoadFileError Code = 4001
)

// lintIDs maps lint check codes onto their externally stable rule IDs.
// These IDs are what configuration files reference to enable or disable
// a check, so they must never be reused or renumbered.
var lintIDs = map[Code]string{
	LintBadFormatType:     "E1307",
	LintMixedFormatString: "E1302",
}

var codeDescription = map[Code]string{
	UnknownCode:           "Unknown diagnostic",
	LexInfo:               "Lexical info",
	LexUnknownChar:        "Unknown character",
	LexUnterminatedString: "Unterminated string literal",
	LexBadNumber:          "Malformed numeric literal",
	SynInfo:               "Syntax info",
	SynUnexpectedToken:    "Unexpected token",
	SynUnclosedBracket:    "Unclosed bracket",
	LintInfo:              "Lint info",
	LintBadFormatType:     "Format type does not match argument type",
	LintMixedFormatString: "Format string mixes positional and keyed directives",
	IOLoadFileError:       "Failed to load file",
}

func (c Code) ID() string {
	if id, ok := lintIDs[c]; ok {
		return id
	}
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("LNT%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// LintCodeForID resolves an external rule ID ("E1307") back to its Code.
func LintCodeForID(id string) (Code, bool) {
	for code, candidate := range lintIDs {
		if candidate == id {
			return code, true
		}
	}
	return UnknownCode, false
}
