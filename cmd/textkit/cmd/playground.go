package cmd

import (
	"github.com/msto63/textkit/internal/tui/playground"
	"github.com/spf13/cobra"
)

func newPlaygroundCmd(a *app) *cobra.Command {
	var pattern, template string
	cmd := &cobra.Command{
		Use:   "playground [subject...]",
		Short: "Try patterns interactively",
		Long: `Open an interactive pattern tester. Matches are highlighted while you
type; a template shows the replacement result.

Keys:
  tab / shift+tab  switch field
  ctrl+e           cycle the engine
  ctrl+o           toggle case-insensitive matching
  ctrl+a           toggle anchored matching
  esc              quit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var subject string
			if len(args) > 0 || a.file != "" {
				var err error
				if subject, err = a.input(cmd, args); err != nil {
					return err
				}
			}
			return playground.Run(a.svc, playground.Config{
				Pattern:  pattern,
				Subject:  subject,
				Template: template,
				Engine:   a.svc.Config().Engine,
			})
		},
	}
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "initial pattern")
	cmd.Flags().StringVarP(&template, "template", "t", "", "initial replacement template")
	return cmd
}
