// Package notation implements parsing of chess positions and
// Extended Position Description (EPD) test lines.
//
// The teacher's EPD grammar was driven by a goyacc-generated parser
// that isn't part of this tree; lines here are short and regular
// enough (four FEN fields followed by ';'-terminated operations) that
// a small hand-written scanner covers the format without pulling in a
// parser generator for it.
package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/halcyon-engine/halcyon/engine"
)

// EPD is a parsed Extended Position Description line: a position plus
// the operations ("bm", "id", "c0".."c9", ...) attached to it.
type EPD struct {
	Position *engine.Position
	Id       string
	BestMove []engine.Move
	Comment  map[string]string
}

// ParseFEN parses a bare FEN (no operations) and returns it as an EPD
// with no Id, BestMove or Comment set.
func ParseFEN(fen string) (*EPD, error) {
	pos, err := engine.PositionFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return &EPD{Position: pos, Comment: make(map[string]string)}, nil
}

// ParseEPD parses a full EPD line: four position fields followed by
// zero or more "opcode arg...;" operations.
func ParseEPD(line string) (*EPD, error) {
	posFields, rest, err := splitPositionFields(line)
	if err != nil {
		return nil, err
	}

	pos, err := engine.PositionFromFEN(strings.Join(posFields[:], " ") + " 0 1")
	if err != nil {
		return nil, err
	}
	epd := &EPD{Position: pos, Comment: make(map[string]string)}

	for _, op := range splitOperations(rest) {
		opcode, args := parseOperation(op)
		if opcode == "" {
			continue
		}
		if err := applyOperation(epd, opcode, args); err != nil {
			return nil, fmt.Errorf("operation %q: %v", opcode, err)
		}
	}
	return epd, nil
}

// splitPositionFields extracts the four whitespace-separated FEN
// fields (piece placement, side to move, castling ability, en passant
// square) from the front of line and returns the untouched remainder,
// preserving any quoting inside it.
func splitPositionFields(line string) (fields [4]string, rest string, err error) {
	s := line
	for i := 0; i < 4; i++ {
		s = strings.TrimLeft(s, " \t")
		j := strings.IndexAny(s, " \t")
		if j < 0 {
			return fields, "", fmt.Errorf("epd line has too few fields")
		}
		fields[i] = s[:j]
		s = s[j:]
	}
	return fields, strings.TrimSpace(s), nil
}

// splitOperations splits the operations tail of an EPD line on ';',
// ignoring semicolons inside double-quoted arguments.
func splitOperations(rest string) []string {
	var ops []string
	var cur strings.Builder
	inQuote := false
	for _, ch := range rest {
		switch {
		case ch == '"':
			inQuote = !inQuote
			cur.WriteRune(ch)
		case ch == ';' && !inQuote:
			if s := strings.TrimSpace(cur.String()); s != "" {
				ops = append(ops, s)
			}
			cur.Reset()
		default:
			cur.WriteRune(ch)
		}
	}
	if s := strings.TrimSpace(cur.String()); s != "" {
		ops = append(ops, s)
	}
	return ops
}

func parseOperation(op string) (opcode string, args []string) {
	op = strings.TrimSpace(op)
	sp := strings.IndexAny(op, " \t")
	if sp < 0 {
		return op, nil
	}
	opcode = op[:sp]
	rest := strings.TrimSpace(op[sp:])
	if strings.HasPrefix(rest, `"`) && strings.HasSuffix(rest, `"`) && len(rest) >= 2 {
		return opcode, []string{trimQuotes(rest)}
	}
	return opcode, strings.Fields(rest)
}

func trimQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

func applyOperation(epd *EPD, opcode string, args []string) error {
	switch opcode {
	case "id":
		if len(args) != 1 {
			return fmt.Errorf("id expects exactly one argument")
		}
		epd.Id = args[0]
	case "bm":
		for _, arg := range args {
			m, err := sanToMove(epd.Position, arg)
			if err != nil {
				return err
			}
			epd.BestMove = append(epd.BestMove, m)
		}
	case "fmvn":
		if len(args) != 1 {
			return fmt.Errorf("fmvn expects exactly one argument")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		epd.Position.FullMoveNumber = n
	case "hmvc":
		if len(args) != 1 {
			return fmt.Errorf("hmvc expects exactly one argument")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		epd.Position.SetRule50(n)
	default:
		if len(opcode) == 2 && opcode[0] == 'c' && opcode[1] >= '0' && opcode[1] <= '9' {
			if len(args) != 1 {
				return fmt.Errorf("%s expects exactly one argument", opcode)
			}
			epd.Comment[opcode] = args[0]
		}
	}
	return nil
}

// String renders e back to EPD form: the four position fields, then
// BestMove, Id and Comment operations. Best moves are written in UCI
// coordinate notation rather than SAN, and hmvc/fmvn are not written.
func (e *EPD) String() string {
	fields := strings.Fields(e.Position.String())
	s := strings.Join(fields[:4], " ")

	if len(e.BestMove) != 0 {
		var moves []string
		for _, m := range e.BestMove {
			moves = append(moves, m.UCI())
		}
		s += " bm " + strings.Join(moves, " ") + ";"
	}
	if e.Id != "" {
		s += " id \"" + e.Id + "\";"
	}
	for k, v := range e.Comment {
		s += " " + k + " \"" + v + "\";"
	}
	return s
}
