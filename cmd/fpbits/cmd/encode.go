package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/floatbits/ieee754"
)

// encodeCmd represents the encode command.
var encodeCmd = &cobra.Command{
	Use:   "encode <sign> <exponent> <mantissa>",
	Short: "Build a value from raw bit fields",
	Long: `Build a floating-point value from its raw sign, exponent and mantissa
fields and print it together with its bit table. Fields accept decimal,
0x-hex and 0b-binary literals.

Example:
  fpbits encode 0 127 0xccccd`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := specFromFlags(cmd)
		if err != nil {
			return err
		}
		mode, err := modeFromFlags(cmd)
		if err != nil {
			return err
		}
		var fields [3]uint64
		for i, arg := range args {
			if fields[i], err = strconv.ParseUint(arg, 0, 64); err != nil {
				return fmt.Errorf("bad field %q: %w", arg, err)
			}
		}
		if fields[0] > 1 {
			return fmt.Errorf("sign must be 0 or 1, got %d", fields[0])
		}
		bits, err := ieee754.EncodeBits(uint8(fields[0]), fields[1], fields[2], spec)
		if err != nil {
			return err
		}
		d, err := ieee754.DecodeBits(bits, spec)
		if err != nil {
			return err
		}
		printDecoded(cmd, d, mode)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}
