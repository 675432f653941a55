package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ddeemerpurdue/fastaprocessing/internal/fastaproc"
)

// sizesCmd is for summarizing the length and contig count of bin files
var sizesCmd = &cobra.Command{
	Use:                        "sizes [file] ... [fileN]",
	Short:                      "Report total nucleotides and contig count per FASTA file",
	SuggestionsMinimumDistance: 2,
	Long: `Write a tab-delimited report with the total nucleotide length, the number of
entries (contigs) and the base name of each input file:

  Nucleotides	Contigs	File
  120000	10	SampleA.fasta
  80000	6	SampleB.fasta

A file that can't be read is logged and left out; the others are still
reported and the command exits non-zero.`,
	Example: "  fastaproc sizes -o sizes.tsv MySampleBins/*.fasta",
	Aliases: []string{"size", "lengths"},
	RunE: func(cmd *cobra.Command, args []string) error {
		c, l, err := setup(cmd)
		if err != nil {
			return err
		}

		bins, _ := cmd.Flags().GetStringSlice("bins")
		c.Sizes.In = append(c.Sizes.In, bins...)
		c.Sizes.In = append(c.Sizes.In, args...)
		return fastaproc.Sizes(c.Sizes, l)
	},
}

// set flags
func init() {
	// -b/--BinFiles and --Output are the flags of the calcBinsetLengths script
	sizesCmd.Flags().SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		switch name {
		case "BinFiles":
			name = "bins"
		case "Output":
			name = "out"
		}
		return pflag.NormalizedName(name)
	})

	sizesCmd.Flags().StringSliceP("in", "i", nil, "input FASTA file(s), also accepted as arguments")
	sizesCmd.Flags().StringSliceP("bins", "b", nil, "same as --in")
	sizesCmd.Flags().MarkHidden("bins")
	sizesCmd.Flags().StringP("out", "o", "", "output file name <TSV>")
	sizesCmd.Flags().BoolP("extended", "x", false, "add min, max, mean and N50 length columns")

	viper.BindPFlag("sizes.in", sizesCmd.Flags().Lookup("in"))
	viper.BindPFlag("sizes.out", sizesCmd.Flags().Lookup("out"))
	viper.BindPFlag("sizes.extended", sizesCmd.Flags().Lookup("extended"))

	rootCmd.AddCommand(sizesCmd)
}
