package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pthm/prosecheck/internal/profile"
)

var profileCmd = &cobra.Command{
	Use:   "profile [locale]",
	Short: "List locale profiles or show one in detail",
	Long: `Without arguments, list the built-in locale profiles. With a locale
argument, show the profile's patterns and scoring weights.`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runProfile,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		for _, locale := range profile.Available() {
			fmt.Fprintln(os.Stdout, locale)
		}
		return nil
	}

	prof, err := profile.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Locale:          %s\n", prof.Locale)
	fmt.Fprintf(os.Stdout, "Language code:   %s\n", prof.LanguageCode)
	fmt.Fprintf(os.Stdout, "Spelling prefix: %s\n", prof.SpellingRulePrefix)
	fmt.Fprintln(os.Stdout)

	fmt.Fprintf(os.Stdout, "Informal patterns (%d):\n", len(prof.InformalPatterns))
	for _, p := range prof.InformalPatterns {
		fmt.Fprintf(os.Stdout, "  %s\n", p)
	}
	fmt.Fprintf(os.Stdout, "Shouting pattern: %s\n", prof.ShoutingPattern)
	fmt.Fprintln(os.Stdout)

	fmt.Fprintf(os.Stdout, "Formal patterns (%d):\n", len(prof.FormalPatterns))
	for _, p := range prof.FormalPatterns {
		fmt.Fprintf(os.Stdout, "  %s\n", p)
	}
	fmt.Fprintln(os.Stdout)

	w := prof.Weights
	fmt.Fprintln(os.Stdout, "Weights:")
	fmt.Fprintf(os.Stdout, "  baseline:          %.1f\n", w.Baseline)
	fmt.Fprintf(os.Stdout, "  informal penalty:  %.1f\n", w.InformalPenalty)
	fmt.Fprintf(os.Stdout, "  formal bonus:      %.1f\n", w.FormalBonus)
	fmt.Fprintf(os.Stdout, "  sentence factor:   %.1f\n", w.SentenceFactor)
	fmt.Fprintf(os.Stdout, "  sentence pivot:    %.1f\n", w.SentencePivot)
	fmt.Fprintf(os.Stdout, "  sentence cap:      %.1f\n", w.SentenceBonusCap)
	return nil
}
