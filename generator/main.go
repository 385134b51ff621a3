// Command generator compiles generator/data/hinglish.yaml into checked-in Go
// source tables: go:generate runs this, and the output is committed. There
// is a single data-driven package so far (internal/hinglish), so the
// template is inlined here rather than split into its own templates/
// directory.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"gopkg.in/yaml.v2"
)

// hinglishData mirrors the shape of generator/data/hinglish.yaml.
type hinglishData struct {
	Lexicon []struct {
		ASCII      string `yaml:"ascii"`
		Devanagari string `yaml:"devanagari"`
	} `yaml:"lexicon"`
	Digraphs []struct {
		ASCII string `yaml:"ascii"`
		Indep string `yaml:"indep"`
		Matra string `yaml:"matra"`
	} `yaml:"digraphs"`
	Cues     []string `yaml:"cues"`
	Suffixes []string `yaml:"suffixes"`
}

const lexiconTemplate = `// Code generated by generator/main.go from generator/data/hinglish.yaml; DO NOT EDIT.

package hinglish

// Lexicon maps common Hinglish words to a pinned, hand-checked Devanagari
// rendering. Consulted before DigraphTable-based rule transliteration, and
// by internal/script as the closed-list fast path of the Hinglish heuristic.
var Lexicon = map[string]string{
{{- range .Lexicon }}
	{{ printf "%q" .ASCII }}: {{ printf "%q" .Devanagari }},
{{- end }}
}

// DigraphUnit is one entry of the longest-match-first ASCII → Devanagari
// rule table used by the fallback transliterator. Indep is the form used
// at the start of a word or after another vowel; Matra is the form
// attached to the preceding consonant (empty means the consonant already
// carries this vowel inherently and nothing is appended).
type DigraphUnit struct {
	ASCII string
	Indep string
	Matra string
}

// DigraphTable is ordered longest-ASCII-match first; Transliterate must
// scan it in this order to get correct trigraph/digraph precedence over
// single letters (e.g. "chh" before "ch" before "c"... though "c" alone
// never appears standalone in this table, only as part of "ch"/"chh").
var DigraphTable = []DigraphUnit{
{{- range .Digraphs }}
	{ {{ printf "%q" .ASCII }}, {{ printf "%q" .Indep }}, {{ printf "%q" .Matra }} },
{{- end }}
}

// cues are ASCII digraphs disproportionately common in romanized
// Hindi/Hinglish compared to English, feeding the script-detection heuristic.
var cues = []string{
{{- range .Cues }}
	{{ printf "%q" . }},
{{- end }}
}

// suffixes are word endings sufficient on their own to mark a token
// Hinglish even without a qualifying cue digraph.
var suffixes = []string{
{{- range .Suffixes }}
	{{ printf "%q" . }},
{{- end }}
}

// Cues returns the cue digraph set consumed by internal/script.
func Cues() []string { return cues }

// Suffixes returns the qualifying-suffix set consumed by internal/script.
func Suffixes() []string { return suffixes }
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "generator:", err)
		os.Exit(1)
	}
}

func run() error {
	raw, err := os.ReadFile(filepath.Join("generator", "data", "hinglish.yaml"))
	if err != nil {
		return fmt.Errorf("reading hinglish.yaml: %w", err)
	}

	var data hinglishData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("parsing hinglish.yaml: %w", err)
	}

	tmpl, err := template.New("lexicon").Parse(lexiconTemplate)
	if err != nil {
		return fmt.Errorf("parsing template: %w", err)
	}

	outPath := filepath.Join("internal", "hinglish", "lexicon_gen.go")
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer f.Close()

	return tmpl.Execute(f, data)
}
