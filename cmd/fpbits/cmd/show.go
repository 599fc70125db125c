package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/floatbits/ieee754"
	"github.com/floatbits/ieee754/fieldtab"
)

// showCmd represents the show command.
var showCmd = &cobra.Command{
	Use:   "show <value>...",
	Short: "Decode values and print their bit fields",
	Long: `Decode one or more floating-point values and print their bit fields.

Values are decimal literals, or raw bit patterns like 0x3f8ccccd when
--raw is set.

Example:
  fpbits show 1.1
  fpbits show --raw 0x7ff0000000000001 -p double`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := specFromFlags(cmd)
		if err != nil {
			return err
		}
		mode, err := modeFromFlags(cmd)
		if err != nil {
			return err
		}
		raw, _ := cmd.Flags().GetBool("raw")
		for i, arg := range args {
			d, err := parseValue(arg, spec, raw)
			if err != nil {
				return err
			}
			if i > 0 {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			printDecoded(cmd, d, mode)
		}
		return nil
	},
}

func init() {
	showCmd.Flags().Bool("raw", false, "treat arguments as raw bit patterns")
	rootCmd.AddCommand(showCmd)
}

// parseValue turns one command-line argument into decoded fields.
func parseValue(arg string, spec ieee754.PrecisionSpec, raw bool) (ieee754.Decoded, error) {
	if raw {
		bits, err := strconv.ParseUint(arg, 0, int(spec.TotalBits))
		if err != nil {
			return ieee754.Decoded{}, fmt.Errorf("bad bit pattern %q: %w", arg, err)
		}
		return ieee754.DecodeBits(bits, spec)
	}
	f, err := strconv.ParseFloat(arg, int(spec.TotalBits))
	if err != nil && !strings.Contains(err.Error(), "out of range") {
		return ieee754.Decoded{}, fmt.Errorf("bad value %q: %w", arg, err)
	}
	// Out-of-range literals overflow to an infinity, which is exactly
	// the pattern worth inspecting, so keep the converted value.
	if spec.TotalBits == 32 {
		return ieee754.Decode32(float32(f)), nil
	}
	return ieee754.Decode64(f), nil
}

func printDecoded(cmd *cobra.Command, d ieee754.Decoded, mode fieldtab.Mode) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Input: %v (%s)\n", d.Float64(), d.Category())
	if dec, ok := d.Decimal(); ok {
		fmt.Fprintf(out, "Exact: %s\n", dec)
	}
	fieldtab.Fprint(out, fieldtab.Groups(d), mode)
}
