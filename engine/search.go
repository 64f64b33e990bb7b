// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// search.go implements iterative deepening negamax with alpha-beta
// pruning over a transposition table, null-move pruning, late move
// reductions, futility pruning at frontier nodes, and a quiescence
// search that resolves captures using static exchange evaluation.
package engine

const maxPly = 128

const (
	checkExtension     int8 = 1
	nullMoveDepthLimit int8 = 1
	lmrDepthLimit      int8 = 3
	futilityDepthLimit int8 = 3

	initialAspirationWindow int32 = 21
	futilityMargin          int32 = 150
	checkpointInterval      uint64 = 10000
)

var futilityFigureBonus = [PieceTypeArraySize]int32{0, 120, 320, 330, 500, 975, 0}

// Logger receives progress reports during a search. UCI wiring
// implements this to print "info" lines; tests can supply a no-op.
type Logger interface {
	BeginSearch()
	EndSearch()
	PrintPV(stats Stats, score int32, pv []Move)
}

// NopLogger discards every event, useful for tests and headless use.
type NopLogger struct{}

func (NopLogger) BeginSearch()                             {}
func (NopLogger) EndSearch()                               {}
func (NopLogger) PrintPV(Stats, int32, []Move)              {}

// Stats reports progress of the current (or most recent) search.
type Stats struct {
	Nodes    uint64
	Depth    int
	SelDepth int
}

// Engine drives the search over a single Position, reusing its
// transposition table, history and killer tables across moves the way
// a long-running UCI session expects.
type Engine struct {
	Position *Position
	Options  Options
	Log      Logger
	Stats    Stats

	tt      *TranspositionTable
	history *historyTable
	killers *killerMoves
	pv      map[uint64]Move

	rootPly    int
	checkpoint uint64
	tc         *TimeControl
	stopped    bool
}

// Options holds engine-wide configuration mirrored from UCI options.
type Options struct {
	AnalyseMode bool
}

// NewEngine returns an Engine searching pos, with its own transposition table.
func NewEngine(pos *Position, log Logger, ttSizeMB int) *Engine {
	if log == nil {
		log = NopLogger{}
	}
	return &Engine{
		Position: pos,
		Log:      log,
		tt:       NewTranspositionTable(ttSizeMB),
		history:  &historyTable{},
		killers:  &killerMoves{},
		pv:       make(map[uint64]Move),
	}
}

// SetPosition replaces the position the engine searches, keeping the
// transposition table (a new game should call NewGame instead).
func (eng *Engine) SetPosition(pos *Position) { eng.Position = pos }

// NewGame resets all learned per-game state: hash table, history and
// killer tables. The position itself is untouched.
func (eng *Engine) NewGame() {
	eng.tt.Clear()
	eng.history = &historyTable{}
	eng.killers = &killerMoves{}
	eng.pv = make(map[uint64]Move)
}

func (eng *Engine) ply() int { return eng.Position.Ply - eng.rootPly }

// endPosition reports the game-over score for the current node, if any.
// Insufficient material is deliberately not checked here; see
// Position.InsufficientMaterial.
func (eng *Engine) endPosition() (int32, bool) {
	pos := eng.Position
	if pos.IsFiftyMoveDraw() {
		return 0, true
	}
	if eng.ply() > 0 && pos.IsRepetition() {
		return 0, true
	}
	return 0, false
}

func (eng *Engine) score() int32 { return Evaluate(eng.Position) }

// Play runs iterative deepening until tc signals it should stop, and
// returns the best line found, moves[0] being the move to play.
func (eng *Engine) Play(tc *TimeControl) []Move {
	eng.Log.BeginSearch()
	eng.Stats = Stats{Depth: -1}
	eng.rootPly = eng.Position.Ply
	eng.tc = tc
	eng.stopped = false
	eng.checkpoint = checkpointInterval

	var pv []Move
	score := int32(0)
	for depth := 1; depth < maxPly; depth++ {
		if !tc.DepthAllowed(depth) {
			break
		}
		eng.Stats.Depth = depth
		score = eng.searchRoot(int8(depth), score)
		if !eng.stopped {
			pv = eng.extractPV()
			eng.Log.PrintPV(eng.Stats, score, pv)
		}
	}

	eng.Log.EndSearch()
	return pv
}

// searchRoot widens an aspiration window around estimated until the
// true score for depth falls inside it.
func (eng *Engine) searchRoot(depth int8, estimated int32) int32 {
	alpha, beta := -int32(ValueInfinite), int32(ValueInfinite)
	delta := initialAspirationWindow
	if depth >= 4 {
		alpha, beta = estimated-delta, estimated+delta
	}

	score := estimated
	for !eng.stopped {
		score = eng.searchTree(alpha, beta, depth)
		switch {
		case score <= alpha:
			alpha -= delta
			delta += delta / 2
			if alpha < -int32(ValueInfinite) {
				alpha = -int32(ValueInfinite)
			}
		case score >= beta:
			beta += delta
			delta += delta / 2
			if beta > int32(ValueInfinite) {
				beta = int32(ValueInfinite)
			}
		default:
			return score
		}
	}
	return score
}

// searchTree is the negamax/alpha-beta core. It fails soft: the
// returned score may lie outside [alpha, beta], with the side telling
// the caller which bound it represents.
func (eng *Engine) searchTree(alpha, beta int32, depth int8) int32 {
	ply := eng.ply()
	pvNode := alpha+1 < beta
	pos := eng.Position
	us := pos.SideToMove

	eng.Stats.Nodes++
	if !eng.stopped && eng.Stats.Nodes >= eng.checkpoint {
		eng.checkpoint = eng.Stats.Nodes + checkpointInterval
		if eng.tc.Stopped() || !eng.tc.NodesAllowed(eng.Stats.Nodes) {
			eng.stopped = true
		}
	}
	if eng.stopped {
		return alpha
	}
	if pvNode && ply > eng.Stats.SelDepth {
		eng.Stats.SelDepth = ply
	}

	if score, done := eng.endPosition(); done {
		return score
	}

	// Mate distance pruning.
	mateScore := int32(ValueMate) - int32(ply)
	if mateScore <= alpha {
		return mateScore
	}
	if -mateScore >= beta {
		return -mateScore
	}

	key := pos.Key()
	var hashMove Move
	if entry, ok := eng.tt.Probe(key); ok {
		hashMove = entry.Move
		if int8(entry.Depth) >= depth {
			score := fromTT(entry.Score, ply)
			switch entry.Bound {
			case Exact:
				if alpha < score && score < beta {
					eng.pv[key] = hashMove
				}
				return score
			case UpperBound:
				if score <= alpha {
					return score
				}
			case LowerBound:
				if score >= beta {
					return score
				}
			}
		}
	}

	if depth <= 0 {
		if alpha >= int32(ValueKnownWin) || beta <= int32(ValueKnownLoss) {
			return eng.score()
		}
		return eng.quiescence(alpha, beta)
	}

	inCheck := pos.IsChecked(us)

	if depth > nullMoveDepthLimit && !inCheck && !pvNode &&
		pos.ByColor[us]&^pos.ByPieceType[Pawn]&^pos.ByPieceType[King] != 0 &&
		int32(ValueKnownLoss) < alpha && beta < int32(ValueKnownWin) {
		pos.DoMove(MoveNull)
		reduction := int8(2)
		score := -eng.searchTree(-beta, -beta+1, depth-1-reduction)
		pos.UndoMove()
		if score >= beta {
			return score
		}
	}

	var moves []Move
	pos.GenerateMoves(AllMoves, &moves)
	orderMoves(pos, moves, hashMove, ply, eng.killers, eng.history)

	allowPrune := depth <= futilityDepthLimit && !inCheck && !pvNode &&
		int32(ValueKnownLoss) < alpha && beta < int32(ValueKnownWin)
	var static int32
	if allowPrune {
		static = eng.score()
	}
	allowLMR := !inCheck && depth > lmrDepthLimit

	bestMove, bestScore := MoveNone, -int32(ValueInfinite)
	legalMoves := 0
	localAlpha := alpha

	for _, m := range moves {
		critical := m == hashMove || eng.killers.isKiller(ply, m)
		captured := pos.Get(m.To())
		quiet := m.Flag() != Promotion && captured == NoPiece
		losingCapture := !quiet && seeSign(pos, m)

		pos.DoMove(m)
		if pos.IsAttacked(pos.KingSquare(us), us.Opposite()) {
			pos.UndoMove()
			continue
		}
		legalMoves++

		givesCheck := pos.IsChecked(pos.SideToMove)
		newDepth := depth
		if givesCheck {
			newDepth += checkExtension
		}

		if allowPrune && !givesCheck && !critical && legalMoves > 1 {
			if isFutile(captured, m.Flag() == Promotion, static, localAlpha, int32(depth)*futilityMargin) {
				pos.UndoMove()
				if static > bestScore {
					bestScore = static
				}
				continue
			}
		}

		reduction := int8(0)
		if allowLMR && !givesCheck && !critical {
			if quiet || losingCapture {
				lmr := 1 + min8(int8(depth), int8(legalMoves))/5
				reduction = lmr
			}
		}

		score := eng.searchMove(localAlpha, beta, newDepth, reduction, legalMoves > 1, m)
		pos.UndoMove()

		if score >= beta {
			if quiet {
				eng.killers.add(ply, m)
				eng.history.bump(pos.Get(m.From()), m.To(), int(depth))
			}
			eng.storeTT(key, m, alpha, beta, score, depth, ply)
			return score
		}
		if score > bestScore {
			bestMove, bestScore = m, score
			if score > localAlpha {
				localAlpha = score
			}
		}
	}

	if legalMoves == 0 {
		if inCheck {
			return -int32(ValueMate) + int32(ply)
		}
		return 0
	}

	eng.storeTT(key, bestMove, alpha, beta, bestScore, depth, ply)
	if alpha < bestScore && bestScore < beta {
		eng.pv[key] = bestMove
	}
	return bestScore
}

func (eng *Engine) storeTT(key uint64, move Move, alpha, beta, score int32, depth int8, ply int) {
	bound := BoundFor(score, alpha, beta)
	eng.tt.Store(key, move, toTT(score, ply), depth, bound)
}

// searchMove descends one ply after m has already been played,
// applying a principal-variation null-window re-search and late move
// reduction re-search as needed.
func (eng *Engine) searchMove(alpha, beta int32, depth, reduction int8, nullWindow bool, m Move) int32 {
	newDepth := depth - 1

	score := alpha + 1
	if reduction > 0 {
		score = -eng.searchTree(-alpha-1, -alpha, newDepth-reduction)
	}
	if score > alpha {
		if nullWindow {
			score = -eng.searchTree(-alpha-1, -alpha, newDepth)
			if alpha < score && score < beta {
				score = -eng.searchTree(-beta, -alpha, newDepth)
			}
		} else {
			score = -eng.searchTree(-beta, -alpha, newDepth)
		}
	}
	return score
}

// quiescence resolves captures and promotions (check evasions are not
// generated here) until the position is quiet,
// so the static evaluation at the search horizon isn't fooled by a
// move that wins material back next ply.
func (eng *Engine) quiescence(alpha, beta int32) int32 {
	eng.Stats.Nodes++
	if score, done := eng.endPosition(); done {
		return score
	}

	pos := eng.Position
	us := pos.SideToMove
	inCheck := pos.IsChecked(us)

	static := eng.score()
	if static >= beta {
		return static
	}
	localAlpha := alpha
	if static > localAlpha {
		localAlpha = static
	}

	var moves []Move
	pos.GenerateMoves(Captures|Promotions, &moves)
	orderMoves(pos, moves, MoveNone, 0, nil, nil)

	for _, m := range moves {
		captured := pos.Get(m.To())
		if !inCheck && isFutile(captured, m.Flag() == Promotion, static, localAlpha, futilityMargin) {
			continue
		}
		losingCapture := !inCheck && m.Flag() == Normal && seeSign(pos, m)
		if losingCapture {
			continue
		}
		pos.DoMove(m)
		if pos.IsAttacked(pos.KingSquare(us), us.Opposite()) {
			pos.UndoMove()
			continue
		}
		score := -eng.quiescence(-beta, -localAlpha)
		pos.UndoMove()

		if score >= beta {
			return score
		}
		if score > localAlpha {
			localAlpha = score
		}
	}

	return localAlpha
}

// isFutile reports whether a move capturing captured (NoPiece for a
// quiet move) cannot plausibly raise static above alpha even granting
// it the margin and the value of anything it captures, letting the
// search skip it without examining it further. promotion moves are
// never pruned this way since their gain isn't bounded by captured.
func isFutile(captured Piece, promotion bool, static, alpha, margin int32) bool {
	if promotion {
		return false
	}
	gain := futilityFigureBonus[captured.Figure()]
	return static+gain+margin < alpha
}

func min8(a, b int8) int8 {
	if a < b {
		return a
	}
	return b
}

// extractPV walks the pv map from the current root, following best
// moves forward while replaying them on the position, then undoes
// every move it played so the position is left unchanged.
func (eng *Engine) extractPV() []Move {
	pos := eng.Position
	var line []Move
	seen := make(map[uint64]bool)
	for i := 0; i < maxPly; i++ {
		key := pos.Key()
		if seen[key] {
			break
		}
		seen[key] = true
		m, ok := eng.pv[key]
		if !ok || m == MoveNone {
			break
		}
		line = append(line, m)
		pos.DoMove(m)
	}
	for range line {
		pos.UndoMove()
	}
	return line
}
