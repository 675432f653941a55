package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ddeemerpurdue/fastaprocessing/internal/fastaproc"
)

// compareCmd is for counting the contigs shared between two bin sets
var compareCmd = &cobra.Command{
	Use:                        "compare",
	Short:                      "Count shared and unique contigs between two bin sets",
	SuggestionsMinimumDistance: 2,
	Long: `Compare two FASTA files for matching entries, ex: a bin set before and after
refinement. Writes one tab-delimited row with the number and total length of
the shared contigs, the contigs only in the first file, and those only in the
second:

  SQuant	SLen	Bin1_Quant	Bin1_Len	Bin2_Quant	Bin2_Len

By default contigs match on their identifier. With --different, bin sets that
label contigs differently but keep their number ("binA-42-x" and "binB-42-y")
match on the number after the first '-'.`,
	Example: "  fastaproc compare -1 original.fa -2 refined.fa -o compare.tsv",
	Aliases: []string{"cmp"},
	RunE: func(cmd *cobra.Command, args []string) error {
		c, l, err := setup(cmd)
		if err != nil {
			return err
		}
		return fastaproc.Compare(c.Compare, l)
	},
}

// set flags
func init() {
	// --normalize is accepted for --different
	compareCmd.Flags().SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == "normalize" {
			name = "different"
		}
		return pflag.NormalizedName(name)
	})

	compareCmd.Flags().StringP("in1", "1", "", "first FASTA file to compare")
	compareCmd.Flags().StringP("in2", "2", "", "second FASTA file to compare")
	compareCmd.Flags().StringP("out", "o", "", "output file name <TSV>")
	compareCmd.Flags().BoolP("different", "d", false, "bin sets use different labels for the contigs but the numbers match")

	viper.BindPFlag("compare.in1", compareCmd.Flags().Lookup("in1"))
	viper.BindPFlag("compare.in2", compareCmd.Flags().Lookup("in2"))
	viper.BindPFlag("compare.out", compareCmd.Flags().Lookup("out"))
	viper.BindPFlag("compare.different", compareCmd.Flags().Lookup("different"))

	rootCmd.AddCommand(compareCmd)
}
