package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/halcyon-labs/langstat/internal/cliconfig"
	"github.com/halcyon-labs/langstat/internal/customlang"
	"github.com/halcyon-labs/langstat/internal/license"
	"github.com/halcyon-labs/langstat/internal/progress"
	"github.com/halcyon-labs/langstat/internal/spec"

	langstat "github.com/halcyon-labs/langstat"
)

func osStdoutFd() uintptr { return os.Stdout.Fd() }

var (
	countFormat         string
	countOutput         string
	countExclude        []string
	countLangs          []string
	countSort           string
	countNoLicense      bool
	countCustomLanguage string
	countLogLevel       string
	countLogFormat      string
	countLogFile        string
	countVerbose        bool
	countTree           bool
	countContentSniff   bool
)

var countCmd = &cobra.Command{
	Use:   "count [paths...]",
	Short: "Count lines by language under the given paths",
	Args:  cobra.MinimumNArgs(0),
	RunE:  runCount,
}

func init() {
	countCmd.Flags().StringSliceVarP(&countExclude, "exclude", "e", nil, "Ignore override patterns (repeatable; prefix with ! to force-exclude)")
	countCmd.Flags().StringSliceVarP(&countLangs, "lang", "l", nil, "Restrict counting to these languages (repeatable)")
	countCmd.Flags().StringVar(&countSort, "sort", "", "Sort the text table by: lines, code, blanks, comments, files (default: lines)")
	countCmd.Flags().BoolVar(&countNoLicense, "no-license", false, "Skip license detection enrichment")
	countCmd.Flags().StringVar(&countCustomLanguage, "languages-file", "", "Path to a .langstat.hcl user-defined languages file")
	countCmd.Flags().StringVar(&countLogLevel, "log-level", "", "Log level: trace, debug, info, warn, error, fatal")
	countCmd.Flags().StringVar(&countLogFormat, "log-format", "", "Log format: text or json")
	countCmd.Flags().StringVar(&countLogFile, "log-file", "", "Log file path (default: stderr)")
	countCmd.Flags().BoolVarP(&countVerbose, "verbose", "v", false, "Report directory/file walk progress to stderr")
	countCmd.Flags().BoolVar(&countTree, "verbose-tree", false, "Render --verbose progress as an indented tree instead of flat lines")
	countCmd.Flags().BoolVar(&countContentSniff, "content-sniff", false, "Guess a file's language from its content when filename/extension/shebang identification fails")

	setupOutputFlags(countCmd, &countFormat, &countOutput)
}

func runCount(cmd *cobra.Command, args []string) error {
	settings := cliconfig.LoadFromEnvironment()
	if countLogLevel != "" {
		if level, err := cliconfig.ParseLogLevel(countLogLevel); err == nil {
			settings.LogLevel = level
		}
	}
	if countLogFormat != "" {
		settings.LogFormat = countLogFormat
	}
	if countLogFile != "" {
		settings.LogFile = countLogFile
	}
	logger := settings.ConfigureLogger()

	if countCustomLanguage != "" {
		if err := customlang.LoadFile(countCustomLanguage); err != nil {
			return err
		}
	}

	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	var allow []langstat.LanguageType
	for _, name := range countLangs {
		tag, err := langstat.ParseLanguageType(name)
		if err != nil {
			return err
		}
		allow = append(allow, tag)
	}

	var reporter *progress.Progress
	if countVerbose {
		var handler progress.Handler = progress.NewSimpleHandler(os.Stderr)
		if countTree {
			handler = progress.NewTreeHandler(os.Stderr)
		}
		reporter = progress.New(true, handler)
	}

	var parseOpts []langstat.ParseOption
	if countContentSniff {
		parseOpts = append(parseOpts, langstat.WithContentSniff())
	}

	langs := langstat.GetStatistics(paths, countExclude, allow, reporter, parseOpts...)

	report := countReport{
		languages: langs.RemoveEmpty(),
		sortBy:    countSort,
	}

	if !countNoLicense {
		report.licenses = license.Detect(paths[0])
	}

	logger.Debug("count finished", "languages", report.languages.Len())

	OutputToFile(report, countFormat, countOutput)
	return nil
}

// countReport is the Outputter for the count command: the non-empty
// language aggregate plus an optional license-detection enrichment.
type countReport struct {
	languages langstat.Languages
	licenses  []license.Match
	sortBy    string
}

func (r countReport) ToJSON() interface{} {
	return struct {
		SchemaVersion string             `json:"schema_version" yaml:"schema_version"`
		Languages     langstat.Languages `json:"languages" yaml:"languages"`
		Licenses      []license.Match    `json:"licenses,omitempty" yaml:"licenses,omitempty"`
	}{
		SchemaVersion: spec.ReportVersion,
		Languages:     r.languages,
		Licenses:      r.licenses,
	}
}

func (r countReport) ToText(w io.Writer) {
	rows := r.languages.Sorted()
	sortRows(rows, r.sortBy)

	colorize := isatty.IsTerminal(osStdoutFd())
	header := lipgloss.NewStyle().Bold(colorize).Underline(colorize)
	numeric := lipgloss.NewStyle().Align(lipgloss.Right)
	total := lipgloss.NewStyle().Bold(colorize)

	const col = "%-16s %8s %8s %8s %8s %8s\n"
	fmt.Fprintf(w, col,
		header.Render("Language"),
		header.Render("Files"),
		header.Render("Lines"),
		header.Render("Code"),
		header.Render("Comments"),
		header.Render("Blanks"),
	)
	fmt.Fprintln(w, strings.Repeat("-", 68))

	var sumFiles, sumLines, sumCode, sumComments, sumBlanks int
	for _, p := range rows {
		files := len(p.Language.Children)
		sumFiles += files
		sumLines += p.Language.Lines
		sumCode += p.Language.Code
		sumComments += p.Language.Comments
		sumBlanks += p.Language.Blanks

		fmt.Fprintf(w, col,
			p.Type.String(),
			numeric.Render(fmt.Sprint(files)),
			numeric.Render(fmt.Sprint(p.Language.Lines)),
			numeric.Render(fmt.Sprint(p.Language.Code)),
			numeric.Render(fmt.Sprint(p.Language.Comments)),
			numeric.Render(fmt.Sprint(p.Language.Blanks)),
		)
	}

	fmt.Fprintln(w, strings.Repeat("-", 68))
	fmt.Fprintf(w, col,
		total.Render("Total"),
		numeric.Render(fmt.Sprint(sumFiles)),
		numeric.Render(fmt.Sprint(sumLines)),
		numeric.Render(fmt.Sprint(sumCode)),
		numeric.Render(fmt.Sprint(sumComments)),
		numeric.Render(fmt.Sprint(sumBlanks)),
	)

	for _, m := range r.licenses {
		fmt.Fprintf(w, "license: %s (%.0f%% confidence, %s)\n", m.License, m.Confidence*100, m.File)
	}
}

func sortRows(rows []langstat.LanguagePair, by string) {
	key := func(p langstat.LanguagePair) int {
		switch by {
		case "code":
			return p.Language.Code
		case "comments":
			return p.Language.Comments
		case "blanks":
			return p.Language.Blanks
		case "files":
			return len(p.Language.Children)
		default:
			return p.Language.Lines
		}
	}
	sort.SliceStable(rows, func(i, j int) bool { return key(rows[i]) > key(rows[j]) })
}
