package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pthm/prosecheck/internal/classify"
	"github.com/pthm/prosecheck/internal/extract"
	"github.com/pthm/prosecheck/internal/formality"
	"github.com/pthm/prosecheck/internal/grammar"
	"github.com/pthm/prosecheck/internal/profile"
	"github.com/pthm/prosecheck/internal/reporter"
	"github.com/pthm/prosecheck/internal/ui"
)

var (
	formalityOnly bool
	grammarOnly   bool
	offline       bool
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Analyze a text for formality and grammar issues",
	Long: `Analyze a text and report its formality verdict and grammar issues.

Reads from the given file, or from stdin when no file is given. Markdown
input has code blocks and markup stripped before analysis.

Examples:
  prosecheck check draft.txt
  prosecheck check --format json notes.md > report.json
  cat letter.txt | prosecheck check --offline`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runCheck,
	SilenceUsage: true,
}

func init() {
	checkCmd.Flags().BoolVar(&formalityOnly, "formality-only", false, "Skip the grammar check")
	checkCmd.Flags().BoolVar(&grammarOnly, "grammar-only", false, "Skip formality scoring")
	checkCmd.Flags().BoolVar(&offline, "offline", false, "No network or model access: heuristics only, grammar skipped")
	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	path, content, err := readInput(args)
	if err != nil {
		return err
	}

	u := GetUI()
	progress := u.StartProgress()
	defer func() { progress.Done() }()

	progress.SetStage(ui.StageLoadProfile)
	prof, err := loadProfile()
	if err != nil {
		return err
	}

	text := extract.Prose(path, content)
	res := reporter.Result{Path: path}
	ctx := cmd.Context()

	if !grammarOnly {
		progress.SetStage(ui.StageLoadModel)
		checker := formality.NewChecker(prof, acquireClassifier, slog.Default())
		defer checker.Close()

		progress.SetStage(ui.StageFormality)
		verdict := checker.Check(ctx, text)
		res.Formality = &verdict
	}

	if !formalityOnly {
		progress.SetStage(ui.StageGrammar)
		gram := runGrammar(cmd, prof, text)
		res.Grammar = &gram
	}

	// Stop the spinner before writing results
	progress.Done()
	progress = nil

	var rep reporter.Reporter
	switch format {
	case "json":
		rep = reporter.NewJSONReporter(os.Stdout)
	default:
		rep = reporter.NewTerminalReporter(os.Stdout, u)
	}

	return rep.Report(res)
}

// acquireClassifier builds the classifier config from flags and viper
// settings. Runs at most once per process via the checker's memoization.
func acquireClassifier() (classify.Classifier, error) {
	if offline {
		return nil, classify.ErrUnavailable
	}

	cfg := classify.Config{
		Backend: classify.Backend(viper.GetString("classifier.backend")),
		ONNX: classify.ONNXConfig{
			LibraryPath:   viper.GetString("model.ort_library"),
			ModelPath:     viper.GetString("model.path"),
			TokenizerPath: viper.GetString("model.tokenizer"),
			MaxSeqLen:     viper.GetInt("model.max_seq_len"),
		},
	}

	return classify.New(cfg, slog.Default())
}

func runGrammar(cmd *cobra.Command, prof *profile.Profile, text string) grammar.Report {
	if offline {
		return grammar.Report{Issues: []grammar.Issue{}, Status: "skipped: offline"}
	}

	engine := grammar.NewLanguageToolClient(
		viper.GetString("languagetool.url"),
		prof.LanguageCode,
		slog.Default(),
	)
	shaper := grammar.NewShaper(engine, prof.SpellingRulePrefix, slog.Default())
	return shaper.Run(cmd.Context(), text)
}

func readInput(args []string) (string, []byte, error) {
	if len(args) == 0 {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", nil, fmt.Errorf("read stdin: %w", err)
		}
		return "stdin", content, nil
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		return "", nil, fmt.Errorf("read input: %w", err)
	}
	return args[0], content, nil
}
