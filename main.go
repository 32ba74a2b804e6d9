// bitext — parallel-corpus loader and exporter for machine translation datasets.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mt-corpora/bitext/builder"
	"github.com/mt-corpora/bitext/i18n"
	"github.com/mt-corpora/bitext/manifest"
	"github.com/mt-corpora/bitext/record"

	// Corpus packages register themselves with the builder registry.
	_ "github.com/mt-corpora/bitext/iwslt"
	_ "github.com/mt-corpora/bitext/kftt"
	_ "github.com/mt-corpora/bitext/paracrawl"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
)

func logInfo(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorBlue+"[INFO]"+colorReset+" "+format+"\n", args...)
}

func logSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorGreen+"[OK]"+colorReset+" "+format+"\n", args...)
}

func logWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorYellow+"[WARN]"+colorReset+" "+format+"\n", args...)
}

func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorRed+"[ERROR]"+colorReset+" "+format+"\n", args...)
}

// ---------------------------------------------------------------------------
// Global flags
// ---------------------------------------------------------------------------

var (
	dataDir  string // extracted corpus tree (overrides the manifest)
	pairFlag string // translation direction, e.g. "de-en"
	workDir  string // where .bitext.yaml is looked up
)

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bitext",
		Short: "Parallel-corpus loader and exporter",
		Long: `bitext — load, align and export parallel-text corpora.

Reads already-downloaded and extracted corpus trees (downloading and
archive extraction are not bitext's job), aligns source and target
sentences per split, and exports them as JSON Lines.

Corpora:
  kftt         Kyoto Free Translation Task (ja/en, plain line-aligned)
  iwslt14      IWSLT 2014 TED Talks (14 languages x en, tagged + seg XML)
  jparacrawl   JParaCrawl web crawl (en x ja/zh, with url + probability)

Corpus roots can be pinned in a .bitext.yaml manifest instead of passing
--data every time.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&dataDir, "data", "", "Extracted corpus root directory")
	root.PersistentFlags().StringVar(&pairFlag, "pair", "", "Translation direction, e.g. de-en")
	root.PersistentFlags().StringVar(&workDir, "dir", ".", "Directory containing .bitext.yaml")

	root.AddCommand(
		newListCmd(),
		newInfoCmd(),
		newCheckCmd(),
		newExportCmd(),
		newVersionCmd(),
	)

	return root
}

func main() {
	i18n.Init("")
	if err := newRootCmd().Execute(); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
}

// ---------------------------------------------------------------------------
// Shared resolution: corpus name + flags + manifest → builder + source
// ---------------------------------------------------------------------------

// splitPairFlag parses "src-tgt" into its two codes. The last dash is the
// separator so subtag codes like "pt-br" survive on the left side.
func splitPairFlag(s string) (source, target string, err error) {
	idx := strings.LastIndex(s, "-")
	if idx <= 0 || idx == len(s)-1 {
		return "", "", fmt.Errorf("invalid pair %q, want e.g. de-en", s)
	}
	return s[:idx], s[idx+1:], nil
}

// resolve configures the named corpus from --pair/--data, falling back to
// the manifest for whatever the flags leave unset.
func resolve(name string) (builder.Builder, builder.Source, error) {
	m, err := manifest.Load(workDir)
	if err != nil {
		return nil, nil, err
	}
	entry, _ := m.Resolve(name)

	source, target := entry.Source, entry.Target
	if pairFlag != "" {
		if source, target, err = splitPairFlag(pairFlag); err != nil {
			return nil, nil, err
		}
	}

	b, err := builder.New(name, source, target)
	if err != nil {
		return nil, nil, err
	}

	root := dataDir
	if root == "" {
		root = entry.Root
	}
	if root == "" {
		return nil, nil, fmt.Errorf("no data directory for %s: pass --data or add it to %s", name, manifest.FileName)
	}
	return b, builder.NewDirSource(root), nil
}

// configure builds the corpus without requiring a data directory
// (info/list paths).
func configure(name string) (builder.Builder, error) {
	m, err := manifest.Load(workDir)
	if err != nil {
		return nil, err
	}
	entry, _ := m.Resolve(name)

	source, target := entry.Source, entry.Target
	if pairFlag != "" {
		if source, target, err = splitPairFlag(pairFlag); err != nil {
			return nil, err
		}
	}
	return builder.New(name, source, target)
}

// ---------------------------------------------------------------------------
// list (registered corpora and their directions)
// ---------------------------------------------------------------------------

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available corpora and language pairs",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stderr, "\n%s%s%s\n", colorBlue, i18n.T("Available corpora:"), colorReset)
			fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))
			for _, name := range builder.Names() {
				reg, _ := builder.Lookup(name)
				var pairs []string
				for _, p := range reg.Pairs {
					pairs = append(pairs, p.Name())
				}
				fmt.Fprintf(os.Stderr, "  %-12s %s\n", name, wrapList(pairs, 60))
			}
			fmt.Fprintln(os.Stderr)
		},
	}
}

// wrapList joins names, folding onto indented lines past width.
func wrapList(names []string, width int) string {
	var sb strings.Builder
	lineLen := 0
	for i, n := range names {
		if i > 0 {
			if lineLen+len(n)+2 > width {
				sb.WriteString(",\n               ")
				lineLen = 0
			} else {
				sb.WriteString(", ")
				lineLen += 2
			}
		}
		sb.WriteString(n)
		lineLen += len(n)
	}
	return sb.String()
}

// ---------------------------------------------------------------------------
// info (schema of one configured corpus)
// ---------------------------------------------------------------------------

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <corpus>",
		Short: "Show a corpus's schema and provenance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := configure(args[0])
			if err != nil {
				return err
			}
			info := b.Info()

			fmt.Fprintf(os.Stderr, "\n%s%s %s%s\n", colorBlue, info.Name, info.Version, colorReset)
			fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))
			fmt.Fprintf(os.Stderr, "  Pair:       %s\n", info.Pair.Name())
			fmt.Fprintf(os.Stderr, "  Ids:        %s\n", keyKindName(info.KeyKind))
			fmt.Fprintf(os.Stderr, "  Supervised: %v\n", info.Supervised)
			if info.HasURL || info.HasProbability {
				fmt.Fprintf(os.Stderr, "  Extras:     url=%v probability=%v\n", info.HasURL, info.HasProbability)
			}
			var splits []string
			for _, sg := range b.Splits() {
				splits = append(splits, string(sg.Split))
			}
			fmt.Fprintf(os.Stderr, "  Splits:     %s\n", strings.Join(splits, ", "))
			if info.Homepage != "" {
				fmt.Fprintf(os.Stderr, "  Homepage:   %s\n", info.Homepage)
			}
			if info.License != "" {
				fmt.Fprintf(os.Stderr, "  License:    %s\n", firstLine(info.License))
			}
			fmt.Fprintf(os.Stderr, "\n%s\n\n", strings.TrimSpace(info.Description))
			return nil
		},
	}
}

func keyKindName(k builder.KeyKind) string {
	if k == builder.KeyString {
		return "string (structured keys)"
	}
	return "integer (positional)"
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return line
}

// ---------------------------------------------------------------------------
// check (dry run: align everything, count, write nothing)
// ---------------------------------------------------------------------------

func newCheckCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "check <corpus>",
		Short: "Align a corpus without exporting and report per-split counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, src, err := resolve(args[0])
			if err != nil {
				return err
			}
			info := b.Info()
			logInfo(i18n.T("Checking %s (%s)"), info.Name, info.Pair.Name())

			for _, sg := range b.Splits() {
				count := 0
				err := sg.Generate(src, func(string, record.Example) bool {
					count++
					return limit == 0 || count < limit
				})
				if err != nil {
					return err
				}
				suffix := ""
				if limit > 0 && count == limit {
					suffix = "+"
				}
				fmt.Fprintf(os.Stderr, "  %-12s %d%s %s\n", sg.Split, count, suffix,
					i18n.N("record", "records", count))
			}
			logSuccess("%s: all splits aligned", info.Name)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Stop each split after N records (smoke test)")
	return cmd
}

// ---------------------------------------------------------------------------
// export (JSON Lines, one file per split)
// ---------------------------------------------------------------------------

func newExportCmd() *cobra.Command {
	var (
		outDir    string
		onlySplit string
		limit     int
	)
	cmd := &cobra.Command{
		Use:   "export <corpus>",
		Short: "Export aligned records as JSON Lines, one file per split",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, src, err := resolve(args[0])
			if err != nil {
				return err
			}

			if outDir == "" {
				outDir = "."
				if m, err := manifest.Load(workDir); err == nil && m != nil {
					outDir = m.ExportDir
				}
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}

			info := b.Info()
			total := 0
			for _, sg := range b.Splits() {
				if onlySplit != "" && string(sg.Split) != onlySplit {
					continue
				}
				name := fmt.Sprintf("%s.%s.%s.jsonl", info.Name, info.Pair.Name(), sg.Split)
				path := filepath.Join(outDir, name)
				n, err := exportSplit(path, sg, src, limit)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				logSuccess(i18n.T("Exported %d records to %s"), n, path)
				total += n
			}
			if total == 0 && onlySplit != "" {
				logWarning("no split named %q", onlySplit)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default: manifest export_dir or .)")
	cmd.Flags().StringVar(&onlySplit, "split", "", "Export only this split")
	cmd.Flags().IntVar(&limit, "limit", 0, "Stop after N records per split")
	return cmd
}

// exportLine is the JSONL shape: the example with its id inlined.
type exportLine struct {
	ID string `json:"id"`
	record.Example
}

func exportSplit(path string, sg builder.SplitGenerator, src builder.Source, limit int) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)

	count := 0
	var encErr error
	genErr := sg.Generate(src, func(id string, ex record.Example) bool {
		if encErr = enc.Encode(exportLine{ID: id, Example: ex}); encErr != nil {
			return false
		}
		count++
		return limit == 0 || count < limit
	})
	if encErr != nil {
		return count, encErr
	}
	if genErr != nil {
		return count, genErr
	}
	return count, w.Flush()
}

// ---------------------------------------------------------------------------
// version
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("bitext version %s\n", version)
			fmt.Printf("  commit:    %s\n", commit)
			fmt.Printf("  built:     %s\n", date)
		},
	}
}
