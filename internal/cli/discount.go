package cli

import (
	"fmt"

	"github.com/danmuck/labkit/internal/console"
	"github.com/danmuck/labkit/internal/pricing"
	"github.com/spf13/cobra"
)

func discountCmd(_ *rootOptions) *cobra.Command {
	var price, percent string

	c := &cobra.Command{
		Use:   "discount",
		Short: "Apply a percentage discount when it is at least 20%",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("price") && !cmd.Flags().Changed("percent") {
				prompt := console.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
				_, err := pricing.RunPrompt(prompt)
				return err
			}

			q, err := pricing.ParseQuote(price, percent)
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), pricing.InvalidInputMessage)
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), q.Message())
			return err
		},
	}

	c.Flags().StringVar(&price, "price", "", "original price")
	c.Flags().StringVar(&percent, "percent", "", "discount percentage")
	return c
}
