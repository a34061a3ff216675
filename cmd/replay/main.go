// cmd/replay/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"bean-defense/internal/logger"
	"bean-defense/internal/replay"
)

func main() {
	level := flag.String("log-level", "warn", "debug, info, warn or error")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] replay.json...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	logger.SetLevel(*level)

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	for _, path := range flag.Args() {
		f, err := replay.Load(path)
		if err != nil {
			log.Fatal(err)
		}
		g, err := replay.Play(f)
		if err != nil {
			log.Fatalf("%s: %v", path, err)
		}
		o := replay.Summarize(f.Header.Session, g)
		result := "in progress"
		switch {
		case o.GameWon:
			result = "won"
		case o.GameOver:
			result = "lost"
		}
		fmt.Printf("%s session=%s map=%s difficulty=%s seed=%d ticks=%d round=%d beans=%d lives=%d towers=%d result=%s\n",
			path, o.Session, f.Header.Map, f.Header.Difficulty, f.Header.Seed,
			o.Ticks, o.Round, o.Beans, o.Lives, o.Towers, result)
	}
}
