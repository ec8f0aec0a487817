package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-dynform"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [schema]",
		Short: "Print every control with its initial value, options and errors",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := loadSchemaArg(ctx, args)
			if err != nil {
				return err
			}
			opts, cleanup, err := a.formOptions(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			state, err := dynform.NewForm(ctx, s, opts...)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(dynform.Inspect(state))
		},
	}
}
