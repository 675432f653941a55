package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ddeemerpurdue/fastaprocessing/internal/fastaproc"
)

// topCmd is for extracting the longest sequences of a FASTA file
var topCmd = &cobra.Command{
	Use:                        "top [file n out]",
	Short:                      "Write the N longest sequences of a FASTA file",
	SuggestionsMinimumDistance: 2,
	Long: `Write the N longest sequences of a FASTA file, longest first, to a new FASTA
file. Sequences of equal length keep their input order. If the file has fewer
than N sequences all of them are written.

The input, N and output can also be passed as three arguments.`,
	Example: `  fastaproc top -i contigs.fa -n 10 -o longest.fa
  fastaproc top contigs.fa 10 longest.fa`,
	Aliases: []string{"longest"},
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 3 {
			return fmt.Errorf("expected no arguments or [file n out], got %d arguments", len(args))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		c, l, err := setup(cmd)
		if err != nil {
			return err
		}

		if len(args) == 3 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("failed to parse n %q: %w", args[1], err)
			}
			c.Top.In, c.Top.N, c.Top.Out = args[0], n, args[2]
		}
		return fastaproc.Top(c.Top, l)
	},
}

// set flags
func init() {
	topCmd.Flags().StringP("in", "i", "", "input FASTA file")
	topCmd.Flags().IntP("number", "n", 10, "number of sequences to keep")
	topCmd.Flags().StringP("out", "o", "", "output file name <FASTA>")

	viper.BindPFlag("top.in", topCmd.Flags().Lookup("in"))
	viper.BindPFlag("top.n", topCmd.Flags().Lookup("number"))
	viper.BindPFlag("top.out", topCmd.Flags().Lookup("out"))

	rootCmd.AddCommand(topCmd)
}
