package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/muurk/kbforms/internal/form"
	"github.com/muurk/kbforms/internal/qna"
)

// ErrCancelled is returned when the user interrupts a prompt.
var ErrCancelled = errors.New("prompt cancelled")

// InputConfig configures a basic text input prompt.
type InputConfig struct {
	Message   string
	Default   string
	Help      string
	Validator func(answer string) error
}

// Driver asks questions on a terminal. It exists so editing flows can be
// tested without one.
type Driver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
}

type surveyDriver struct{}

// NewSurveyDriver returns a Driver backed by survey.
func NewSurveyDriver() Driver {
	return surveyDriver{}
}

func (surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var out string
	prompt := &survey.Input{
		Message: cfg.Message,
		Default: cfg.Default,
		Help:    cfg.Help,
	}
	var opts []survey.AskOpt
	if cfg.Validator != nil {
		validator := cfg.Validator
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return validator(s)
		}))
	}
	if err := survey.AskOne(prompt, &out, opts...); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", ErrCancelled
		}
		return "", err
	}
	return out, nil
}

// fieldValidator feeds each answer into the form and reports the field's
// resulting message as a validation error.
func fieldValidator[T any](f *form.Form[T], field string) func(string) error {
	return func(answer string) error {
		if err := f.UpdateField(field, answer); err != nil {
			return err
		}
		if msg := f.Error(field); msg != "" {
			return errors.New(msg)
		}
		return nil
	}
}

// EditKnowledgeBase asks for a new knowledge base name. The prompt repeats
// until the name is valid; the form holds the accepted value on return.
func EditKnowledgeBase(ctx context.Context, d Driver, f *form.Form[qna.EditFromURLData]) error {
	data := f.Data()

	name, err := d.Input(ctx, InputConfig{
		Message:   "Knowledge base name",
		Default:   data.Name,
		Help:      fmt.Sprintf("Source: %s", data.URL),
		Validator: fieldValidator(f, qna.FieldName),
	})
	if err != nil {
		return err
	}

	// The driver may return a value it never validated, e.g. an accepted default.
	if err := f.UpdateField(qna.FieldName, name); err != nil {
		return err
	}
	if f.HasErrors() {
		return fmt.Errorf("invalid knowledge base: %v", f.Errors())
	}
	return nil
}
