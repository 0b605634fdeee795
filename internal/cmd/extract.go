package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pthm/prosecheck/internal/extract"
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Print the prose that would be analyzed",
	Long: `Print the text that the check command would analyze, after markdown
stripping. Useful for seeing exactly what the scorer and grammar
checker operate on.`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runExtract,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	path, content, err := readInput(args)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, extract.Prose(path, content))
	return nil
}
