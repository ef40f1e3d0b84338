package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jingkaihe/volform/internal/errx"
	"github.com/jingkaihe/volform/pkg/size"
)

var parseCmd = &cobra.Command{
	Use:   "parse <number> [unit]",
	Short: "Convert a size to bytes",
	Example: `  volform parse 10 GiB
  volform parse 1.5TiB`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := parseSizeArgs(args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), int64(s))
		return nil
	},
}

var formatCmd = &cobra.Command{
	Use:   "format <bytes>",
	Short: "Express a byte amount in the largest fitting unit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := formatBytesArg(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(formatCmd)
}

func parseSizeArgs(args []string) (size.Size, error) {
	if len(args) == 2 {
		return size.Parse(args[0], args[1])
	}
	return size.ParseString(args[0])
}

func formatBytesArg(arg string) (string, error) {
	n, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return "", errx.Wrap(ErrInvalidBytes, err)
	}
	if n < 0 && size.Size(n) != size.Unbounded {
		return "", errx.With(ErrInvalidBytes, ": %d is negative", n)
	}
	return size.Size(n).String(), nil
}
