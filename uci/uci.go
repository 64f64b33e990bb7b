// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package uci implements the text protocol described at
// http://wbec-ridderkerk.nl/html/UCIProtocol.html, translating GUI
// commands into engine.Pool calls and engine progress back into
// "info"/"bestmove" lines.
package uci

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/halcyon-engine/halcyon/engine"
)

var errQuit = errors.New("quit")

const engineName = "halcyon"

// syncWriter serializes writes so the main command thread (replying to
// "isready"/"uci") and a search goroutine's "info"/"bestmove" lines
// never interleave mid-line.
type syncWriter struct {
	mu  sync.Mutex
	out io.Writer
}

func (w *syncWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.out.Write(p)
}

// logger renders search progress in UCI's "info" line format.
type logger struct {
	out   io.Writer
	start time.Time
	buf   bytes.Buffer
}

func (l *logger) BeginSearch() {
	l.start = time.Now()
	l.buf.Reset()
}

func (l *logger) EndSearch() {}

func (l *logger) PrintPV(stats engine.Stats, score int32, pv []engine.Move) {
	l.buf.Reset()
	fmt.Fprintf(&l.buf, "info depth %d seldepth %d ", stats.Depth, stats.SelDepth)

	switch {
	case score > int32(engine.ValueKnownWin):
		mateIn := (int32(engine.ValueMate) - score + 1) / 2
		fmt.Fprintf(&l.buf, "score mate %d ", mateIn)
	case score < -int32(engine.ValueKnownWin):
		mateIn := (int32(engine.ValueMate) + score) / 2
		fmt.Fprintf(&l.buf, "score mate %d ", -mateIn)
	default:
		fmt.Fprintf(&l.buf, "score cp %d ", score)
	}

	elapsed := time.Since(l.start)
	if elapsed <= 0 {
		elapsed = time.Millisecond
	}
	nps := stats.Nodes * uint64(time.Second) / uint64(elapsed)
	fmt.Fprintf(&l.buf, "nodes %d time %d nps %d pv", stats.Nodes, elapsed/time.Millisecond, nps)
	for _, m := range pv {
		fmt.Fprintf(&l.buf, " %s", m.UCI())
	}
	fmt.Fprintln(&l.buf)
	l.out.Write(l.buf.Bytes())
}

// UCI holds the engine session state across commands: the position,
// the shared worker pool, and the running search (if any). "go" runs
// the pool on its own goroutine so the command loop stays free to read
// "stop"/"quit" off stdin while a search is in flight. Commands that
// change the position, options or game state ("position", "go",
// "setoption", "ucinewgame") wait for the running search to finish.
type UCI struct {
	out     io.Writer
	pool    *engine.Pool
	pos     *engine.Position
	hashMB  int
	threads int

	mu        sync.Mutex
	tc        *engine.TimeControl
	searching sync.WaitGroup
}

// New returns a UCI session writing output to out.
func New(out io.Writer) *UCI {
	sw := &syncWriter{out: out}
	pos, _ := engine.PositionFromFEN(engine.FENStartPos)
	u := &UCI{out: sw, pos: pos, hashMB: engine.DefaultTTSizeMB, threads: engine.DefaultThreads}
	u.pool = engine.NewPool(pos, &logger{out: sw}, u.hashMB, u.threads)
	return u
}

// Run reads commands from in, one per line, until "quit" or EOF.
func (u *UCI) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		if err := u.Execute(scanner.Text()); err != nil {
			if err == errQuit {
				return nil
			}
			log.Println("info string error:", err)
		}
	}
	return scanner.Err()
}

var reCmd = regexp.MustCompile(`^\S+`)

// Execute dispatches one command line.
func (u *UCI) Execute(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	cmd := reCmd.FindString(line)
	switch cmd {
	case "uci":
		return u.handleUCI()
	case "isready":
		fmt.Fprintln(u.out, "readyok")
		return nil
	case "ucinewgame":
		u.searching.Wait()
		u.pool.NewGame()
		return nil
	case "position":
		return u.handlePosition(line)
	case "go":
		return u.handleGo(line)
	case "stop":
		u.stopSearch()
		return nil
	case "ponderhit":
		return nil
	case "setoption":
		return u.handleSetOption(line)
	case "quit":
		u.stopSearch()
		u.searching.Wait()
		return errQuit
	default:
		return fmt.Errorf("unhandled command %q", cmd)
	}
}

// stopSearch requests the in-flight search, if any, to abort as soon
// as it next checks the shared stop flag.
func (u *UCI) stopSearch() {
	u.mu.Lock()
	tc := u.tc
	u.mu.Unlock()
	if tc != nil {
		tc.Stop()
	}
}

func (u *UCI) handleUCI() error {
	fmt.Fprintf(u.out, "id name %s\n", engineName)
	fmt.Fprintf(u.out, "id author halcyon contributors\n")
	fmt.Fprintf(u.out, "option name Threads type spin default %d min 1 max %d\n", engine.DefaultThreads, engine.MaxThreads)
	fmt.Fprintf(u.out, "option name Hash type spin default %d min 1 max 65536\n", engine.DefaultTTSizeMB)
	fmt.Fprintf(u.out, "option name Clear Hash type button\n")
	fmt.Fprintf(u.out, "option name Ponder type check default false\n")
	fmt.Fprintf(u.out, "option name UCI_AnalyseMode type check default false\n")
	fmt.Fprintln(u.out, "uciok")
	return nil
}

func (u *UCI) handleSetOption(line string) error {
	// Options only change between searches: the dispatcher writes them
	// between searches only, and a change must not race an active one.
	u.searching.Wait()

	fields := strings.Fields(line)
	var name, value []string
	mode := 0
	for _, f := range fields[1:] {
		switch f {
		case "name":
			mode = 1
			continue
		case "value":
			mode = 2
			continue
		}
		switch mode {
		case 1:
			name = append(name, f)
		case 2:
			value = append(value, f)
		}
	}
	// Option names compare case-insensitively.
	switch strings.ToLower(strings.Join(name, " ")) {
	case "hash":
		mb, err := strconv.Atoi(strings.Join(value, " "))
		if err != nil {
			return err
		}
		u.hashMB = mb
		u.pool = engine.NewPool(u.pos, &logger{out: u.out}, u.hashMB, u.threads)
	case "threads":
		n, err := strconv.Atoi(strings.Join(value, " "))
		if err != nil {
			return err
		}
		u.threads = n
		u.pool.SetThreads(n)
	case "clear hash":
		u.pool.NewGame()
	}
	return nil
}

func (u *UCI) handlePosition(line string) error {
	u.searching.Wait()
	args := strings.Fields(line)[1:]
	if len(args) == 0 {
		return fmt.Errorf("expected argument for 'position'")
	}

	var pos *engine.Position
	var err error
	i := 0
	switch args[0] {
	case "startpos":
		pos, err = engine.PositionFromFEN(engine.FENStartPos)
		i = 1
	case "fen":
		j := 1
		for j < len(args) && args[j] != "moves" {
			j++
		}
		pos, err = engine.PositionFromFEN(strings.Join(args[1:j], " "))
		i = j
	default:
		return fmt.Errorf("unknown position command %q", args[0])
	}
	if err != nil {
		return err
	}

	if i < len(args) {
		if args[i] != "moves" {
			return fmt.Errorf("expected 'moves', got %q", args[i])
		}
		for _, token := range args[i+1:] {
			m, err := pos.MoveFromUCI(token)
			if err != nil {
				return err
			}
			pos.DoMove(m)
		}
	}

	u.pos = pos
	u.pool.SetPosition(pos)
	return nil
}

func (u *UCI) handleGo(line string) error {
	u.searching.Wait()
	limits := engine.SearchLimits{}
	args := strings.Fields(line)[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "wtime":
			i++
			limits.WTime = parseMillis(args[i])
		case "btime":
			i++
			limits.BTime = parseMillis(args[i])
		case "winc":
			i++
			limits.WInc = parseMillis(args[i])
		case "binc":
			i++
			limits.BInc = parseMillis(args[i])
		case "movestogo":
			i++
			limits.MovesToGo, _ = strconv.Atoi(args[i])
		case "movetime":
			i++
			limits.MoveTime = parseMillis(args[i])
		case "depth":
			i++
			limits.Depth, _ = strconv.Atoi(args[i])
		case "nodes":
			i++
			n, _ := strconv.ParseUint(args[i], 10, 64)
			limits.Nodes = n
		case "mate":
			i++
			limits.Mate, _ = strconv.Atoi(args[i])
		case "infinite":
			limits.Infinite = true
		case "ponder":
			// Non-goal: pondering is accepted but has no behavioral effect.
		}
	}

	tc := engine.NewTimeControl(u.pos.SideToMove, limits, time.Now())
	u.mu.Lock()
	u.tc = tc
	u.mu.Unlock()

	u.searching.Add(1)
	go func() {
		defer u.searching.Done()
		pv := u.pool.Play(tc)
		switch {
		case len(pv) == 0:
			fmt.Fprintln(u.out, "bestmove 0000")
		case len(pv) > 1:
			fmt.Fprintf(u.out, "bestmove %s ponder %s\n", pv[0].UCI(), pv[1].UCI())
		default:
			fmt.Fprintf(u.out, "bestmove %s\n", pv[0].UCI())
		}
	}()
	return nil
}

func parseMillis(s string) time.Duration {
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}
