package cli

import (
	"github.com/danmuck/labkit/internal/demo"
	"github.com/spf13/cobra"
)

func heroesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "heroes",
		Aliases: []string{"demo"},
		Short:   "Run the superhero and animal polymorphism demo",
		Run: func(cmd *cobra.Command, _ []string) {
			demo.Run(cmd.OutOrStdout())
		},
	}
}
