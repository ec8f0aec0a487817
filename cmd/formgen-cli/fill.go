package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-dynform"
	"github.com/goliatone/go-dynform/pkg/prompt"
)

func newFillCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fill [schema]",
		Short: "Fill a form interactively and print the submitted values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			format, ok := prompt.ParseOutputFormat(a.config.GetString(cfgKeyOutput))
			if !ok {
				return fmt.Errorf("unsupported output format %q", a.config.GetString(cfgKeyOutput))
			}

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

			filler := prompt.New(
				prompt.WithPromptDriver(prompt.NewSurveyDriver(cmd.ErrOrStderr())),
				prompt.WithOutputFormat(format),
				prompt.WithLogger(a.logger),
			)
			snapshot, err := filler.Fill(ctx, state)
			if err != nil {
				return err
			}
			out, err := filler.Encode(snapshot)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), string(out)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s submitted successfully\n", s.ScreenName)
			return nil
		},
	}
	cmd.Flags().String(cfgKeyOutput, "", "output format (json, form, pretty)")
	return cmd
}
