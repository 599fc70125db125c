package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/floatbits/ieee754"
	"github.com/floatbits/ieee754/fieldtab"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "fpbits",
	Short: "fpbits - IEEE-754 bit pattern inspector",
	Long: `fpbits decodes floating-point values into their sign, exponent and
mantissa fields and prints them as a fixed-width table. It also builds
values back from raw fields.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("precision", "p", "single", "floating-point layout: single or double")
	rootCmd.PersistentFlags().StringP("mode", "m", "binary", "table layout: bits, binary or decimal")
}

func specFromFlags(cmd *cobra.Command) (ieee754.PrecisionSpec, error) {
	p, _ := cmd.Flags().GetString("precision")
	switch p {
	case "single":
		return ieee754.Single, nil
	case "double":
		return ieee754.Double, nil
	}
	return ieee754.PrecisionSpec{}, fmt.Errorf("unknown precision %q", p)
}

func modeFromFlags(cmd *cobra.Command) (fieldtab.Mode, error) {
	m, _ := cmd.Flags().GetString("mode")
	switch m {
	case "bits":
		return fieldtab.ModeBits, nil
	case "binary":
		return fieldtab.ModeBinary, nil
	case "decimal":
		return fieldtab.ModeDecimal, nil
	}
	return 0, fmt.Errorf("unknown mode %q", m)
}
