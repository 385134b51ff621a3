// Command rhymecli is a small demo driver over rhymecore.Analyze: it reads
// lyrics from stdin or a file argument, prints each detected rhyme class in
// a distinct color, and optionally dumps the full AnalysisResult with
// k0kubun/pp for inspection.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"
	"github.com/k0kubun/pp"

	"github.com/rhymetrace/rhymecore"
)

// palette cycles a fixed rotation of foreground colors by each cluster's
// position in the output, so adjacent rhyme classes printed in the same run
// are visually distinct;
// gookit/color's 256-color set is large enough that we don't bother hashing
// into the full range, just rotate a legible subset.
var palette = []color.Color{
	color.FgGreen, color.FgYellow, color.FgCyan, color.FgMagenta,
	color.FgBlue, color.FgRed, color.FgLightGreen, color.FgLightYellow,
}

func main() {
	multilingual := flag.Bool("multilingual", false, "route Devanagari/Hinglish tokens through the Indic phoneme mappers")
	multisyllable := flag.Bool("multisyllable", false, "also report multi-syllable rhyme windows")
	debug := flag.Bool("debug", false, "pretty-print the full AnalysisResult with k0kubun/pp")
	flag.Parse()

	lyrics, err := readInput(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, "rhymecli:", err)
		os.Exit(1)
	}

	result, err := rhymecore.Analyze(lyrics, rhymecore.AnalysisFlags{
		Multilingual:  *multilingual,
		Multisyllable: *multisyllable,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "rhymecli:", err)
		os.Exit(1)
	}

	printClusters(result)

	if *debug {
		pp.Println(result)
	}
}

// readInput reads lyrics from the first non-flag argument as a file path,
// or from stdin when no argument is given.
func readInput(args []string) (string, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(bufio.NewReader(os.Stdin))
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// printClusters renders each cluster's member surfaces on its own line,
// colored by a rotating palette index so classes are easy to tell apart at
// a glance in a terminal.
func printClusters(result *rhymecore.AnalysisResult) {
	if len(result.Clusters) == 0 {
		color.FgWhite.Println("(no rhyme classes found)")
		return
	}

	for i, cluster := range result.Clusters {
		c := palette[i%len(palette)]
		surfaces := make([]string, len(cluster.Members))
		for j, m := range cluster.Members {
			surfaces[j] = m.Surface
		}
		c.Printf("class %d: ", cluster.ClassID)
		c.Println(joinWords(surfaces))
	}

	if result.Meta.Degraded {
		color.FgRed.Printf("degraded: %v\n", result.Meta.Reasons)
	}
}

func joinWords(words []string) string {
	out := ""
	for i, w := range words {
		if i > 0 {
			out += ", "
		}
		out += w
	}
	return out
}
