package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-dynform/pkg/form"
	"github.com/goliatone/go-dynform/pkg/validation"
)

var errSchemaInvalid = errors.New("schema has errors")

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [schema]",
		Short: "Parse and lint a schema, then check the form engine can build it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSchemaArg(cmd.Context(), args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			lint := validation.Lint(s)
			for _, issue := range lint.Issues {
				fmt.Fprintf(out, "%s: %s", issue.Severity, issue.Path)
				if issue.Field != "" {
					fmt.Fprintf(out, " (%s)", issue.Field)
				}
				fmt.Fprintf(out, ": %s\n", issue.Message)
			}
			if !lint.Valid {
				return errSchemaInvalid
			}

			state, err := form.Build(s, nil, form.WithLogger(a.logger))
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "ok: %s (%d controls, %d option sources)\n",
				s.ScreenName, len(state.Names()), len(s.SourceIDs()))
			return nil
		},
	}
}
