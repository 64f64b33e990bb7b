// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command halcyon is a UCI chess engine. It speaks the protocol on
// stdin/stdout so it can be driven by any UCI-compatible GUI.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/halcyon-engine/halcyon/uci"
)

var (
	buildVersion = "(devel)"
	buildTime    = "(just now)"

	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	version    = flag.Bool("version", false, "only print version and exit")
)

func main() {
	fmt.Printf("halcyon %v, built with %v at %v, running on %v\n",
		buildVersion, runtime.Version(), buildTime, runtime.GOARCH)

	flag.Parse()
	if *version {
		return
	}
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	log.SetOutput(os.Stderr)
	log.SetPrefix("info string ")
	log.SetFlags(log.Lshortfile)

	session := uci.New(os.Stdout)
	if err := session.Run(os.Stdin); err != nil {
		log.Fatal(err)
	}
}
