package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/danmuck/labkit/internal/console"
	"github.com/danmuck/labkit/internal/textproc"
	"github.com/spf13/cobra"
)

var errOutputExists = errors.New("output file already exists (use --force to overwrite)")

func transformCmd(root *rootOptions) *cobra.Command {
	var in, out string
	var force bool

	c := &cobra.Command{
		Use:   "transform",
		Short: "Uppercase and number every line of a text file",
		Long: "Without flags, runs the interactive file processor. With --in and --out,\n" +
			"transforms a single file and exits.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			proc := textproc.NewProcessor()

			if in == "" && out == "" {
				prompt := console.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
				session := textproc.NewSession(prompt, proc, textproc.SessionConfig{
					ConfirmOverwrite: root.cfg.Transform.ConfirmOverwrite,
				})
				return session.Run(cmd.Context())
			}
			if in == "" || out == "" {
				return errors.New("--in and --out must be given together")
			}
			if !force {
				if _, err := os.Stat(out); err == nil {
					return fmt.Errorf("%w: '%s'", errOutputExists, out)
				}
			}

			res, err := proc.Process(cmd.Context(), in, out)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Successfully processed file! Output saved to '%s'\n", res.Output)
			fmt.Fprintf(cmd.OutOrStdout(), "Modified %d lines.\n", res.Lines)
			return nil
		},
	}

	c.Flags().StringVar(&in, "in", "", "input text file")
	c.Flags().StringVar(&out, "out", "", "output file")
	c.Flags().BoolVar(&force, "force", false, "overwrite the output file if it exists")
	return c
}
