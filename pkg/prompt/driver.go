package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// Question is one prompt as seen by a PromptDriver.
type Question struct {
	Message string
	Help    string
	// Default pre-fills Text and preselects a Choose entry when it matches.
	Default string
	// On is the initial answer for Confirm.
	On      bool
	Choices []string
}

// PromptDriver is the terminal seam. Fill only talks to the driver, so tests
// script answers and callers can swap the survey implementation.
type PromptDriver interface {
	Text(ctx context.Context, q Question) (string, error)
	Choose(ctx context.Context, q Question) (string, error)
	Confirm(ctx context.Context, q Question) (bool, error)
	Notify(ctx context.Context, msg string) error
}

type surveyDriver struct {
	out  io.Writer
	opts []survey.AskOpt
}

// NewSurveyDriver returns a PromptDriver backed by survey on the process
// terminal. Notices go to out, or stdout when out is nil. opts are passed to
// every survey.AskOne call.
func NewSurveyDriver(out io.Writer, opts ...survey.AskOpt) PromptDriver {
	if out == nil {
		out = os.Stdout
	}
	return &surveyDriver{out: out, opts: opts}
}

func (d *surveyDriver) Text(ctx context.Context, q Question) (string, error) {
	var answer string
	err := d.ask(ctx, &survey.Input{Message: q.Message, Help: q.Help, Default: q.Default}, &answer)
	return answer, err
}

func (d *surveyDriver) Choose(ctx context.Context, q Question) (string, error) {
	p := &survey.Select{Message: q.Message, Help: q.Help, Options: q.Choices}
	for _, choice := range q.Choices {
		if choice == q.Default {
			p.Default = q.Default
			break
		}
	}
	var answer string
	err := d.ask(ctx, p, &answer)
	return answer, err
}

func (d *surveyDriver) Confirm(ctx context.Context, q Question) (bool, error) {
	var answer bool
	err := d.ask(ctx, &survey.Confirm{Message: q.Message, Help: q.Help, Default: q.On}, &answer)
	return answer, err
}

func (d *surveyDriver) Notify(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, msg)
	return err
}

func (d *surveyDriver) ask(ctx context.Context, p survey.Prompt, answer any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := survey.AskOne(p, answer, d.opts...)
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
