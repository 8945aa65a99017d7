package main

import (
	"os"

	"github.com/oisee/paritygen/pkg/gen"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

const longHelp = `paritygen prints a single C declaration, PFLAG[256], mapping every byte
value to PF_FLAG when it has even parity and to 0 otherwise.

Redirect the output into a header, e.g.

  paritygen > pflag.h`

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "paritygen",
		Short:        "Generate the x86 parity flag lookup table (PFLAG) as C source",
		Long:         longHelp,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := gen.Build().WriteTo(cmd.OutOrStdout())
			return err
		},
	}
}
