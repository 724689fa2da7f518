package cli

import (
	"fmt"

	"github.com/katalvlaran/pcp/internal/config"
	"github.com/katalvlaran/pcp/search"
	"github.com/spf13/cobra"
)

// newVerifyCommand creates the verify subcommand, which replays a witness.
func newVerifyCommand(cfgFile *string) *cobra.Command {
	var witness []int

	cmd := &cobra.Command{
		Use:   "verify --witness i,j,... [top/bottom ...]",
		Short: "Replay a rule-index sequence and check that it matches",
		Example: `  pcp verify --witness 1,0,2,1,3 b/ca a/ab ca/a abc/c
  pcp verify --rules-file dominoes.txt --witness 0,2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			if len(args) > 0 {
				cfg.Rules = args
			}
			rs, err := loadRules(cfg)
			if err != nil {
				return err
			}

			c, err := search.Replay(rs, witness)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, c.Top())
			fmt.Fprintln(out, c.Bottom())
			if err := search.Verify(rs, witness); err != nil {
				return err
			}
			fmt.Fprintf(out, "valid witness of length %d\n", len(witness))
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&witness, "witness", nil, "comma-separated rule indices to replay")
	cmd.Flags().String("rules-file", "", "file with one top/bottom domino per line")
	_ = cmd.MarkFlagRequired("witness")
	return cmd
}
