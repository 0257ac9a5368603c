package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/swiftbuild/helper/internal/core/domain"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show recorded action outcomes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, _ := cmd.Flags().GetString("action")
			if filter != "" {
				if _, err := domain.ParseAction(filter); err != nil {
					return err
				}
			}

			records, err := c.components.App.Records()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PRODUCT\tACTION\tRESULT\tWHEN")
			for _, record := range records {
				if filter != "" && record.Action != filter {
					continue
				}
				result := "ok"
				if !record.Success {
					result = "failed"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					record.Product, record.Action, result,
					record.Timestamp.Format("2006-01-02 15:04:05"))
			}
			return w.Flush()
		},
	}

	cmd.Flags().String("action", "", "Only show outcomes of one action (build|test|install)")

	return cmd
}
