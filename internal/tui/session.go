package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/goliatone/go-briefwizard/pkg/brief"
	"github.com/goliatone/go-briefwizard/pkg/i18n"
	"github.com/goliatone/go-briefwizard/pkg/wizard"
)

// Session ties the prompt driver to the step controller and walks the user
// through the eight steps to final submission.
type Session struct {
	driver     PromptDriver
	controller *wizard.Controller
	locale     i18n.Locale
	out        io.Writer
	logger     *slog.Logger
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLocale sets the prompt and preview language.
func WithLocale(locale i18n.Locale) SessionOption {
	return func(s *Session) { s.locale = locale }
}

// WithOutput redirects the preview and status output.
func WithOutput(w io.Writer) SessionOption {
	return func(s *Session) {
		if w != nil {
			s.out = w
		}
	}
}

// WithLogger routes session events through the given logger.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSession wires a wizard run.
func NewSession(driver PromptDriver, controller *wizard.Controller, options ...SessionOption) (*Session, error) {
	if driver == nil {
		return nil, fmt.Errorf("tui: prompt driver is required")
	}
	if controller == nil {
		return nil, fmt.Errorf("tui: controller is required")
	}
	s := &Session{
		driver:     driver,
		controller: controller,
		locale:     i18n.DefaultLocale,
		out:        os.Stdout,
		logger:     slog.Default(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// Run drives the wizard until the brief is submitted or the user aborts.
// Validation failures re-prompt the same step; a tabular delivery failure
// offers a retry.
func (s *Session) Run(ctx context.Context) error {
	if err := s.offerTemplate(ctx); err != nil {
		return err
	}

	for !s.controller.Submitted() {
		if err := ctx.Err(); err != nil {
			return err
		}
		n := s.controller.Cursor()
		if n < brief.LastStep {
			if err := s.runStep(ctx, n); err != nil {
				return err
			}
			continue
		}
		if err := s.runFinalStep(ctx); err != nil {
			return err
		}
	}
	return s.driver.Info(ctx, i18n.T(s.locale, "submittedSuccessfully"))
}

func (s *Session) offerTemplate(ctx context.Context) error {
	if s.controller.Cursor() != brief.FirstStep || s.controller.Record().Step1.FullName != "" {
		return nil
	}
	useTemplate, err := s.driver.Confirm(ctx, ConfirmConfig{
		Message: i18n.T(s.locale, "startFromTemplate"),
		Default: false,
	})
	if err != nil {
		return err
	}
	if useTemplate {
		s.controller.LoadTemplate()
	}
	return nil
}

func (s *Session) runStep(ctx context.Context, n int) error {
	if err := s.announceStep(ctx, n); err != nil {
		return err
	}
	flow := flowForStep(n)
	data, err := flow(ctx, s.driver, s.locale, s.controller.Record())
	if err != nil {
		return err
	}
	result := s.controller.SubmitStep(n, data)
	if !result.Valid {
		return s.showIssues(ctx, result.Issues)
	}
	return nil
}

func (s *Session) runFinalStep(ctx context.Context) error {
	if err := s.announceStep(ctx, brief.LastStep); err != nil {
		return err
	}
	data, err := promptAdHistory(ctx, s.driver, s.locale, s.controller.Record())
	if err != nil {
		return err
	}
	adHistory, ok := data.(brief.AdHistory)
	if !ok {
		return fmt.Errorf("tui: unexpected step 8 payload %T", data)
	}

	preview, err := brief.MergeStep(s.controller.Record(), brief.LastStep, adHistory)
	if err != nil {
		return err
	}
	WritePreview(s.out, preview, s.locale)

	for {
		confirmed, err := s.driver.Confirm(ctx, ConfirmConfig{
			Message: i18n.T(s.locale, "finish"),
			Default: true,
		})
		if err != nil {
			return err
		}
		if !confirmed {
			s.controller.Retreat()
			return nil
		}

		finalizeErr := s.controller.Finalize(ctx, adHistory)
		if finalizeErr == nil {
			return nil
		}
		s.logger.Warn("finalize failed", "error", finalizeErr)
		if err := s.driver.Info(ctx, i18n.T(s.locale, "errorOccurred")+": "+finalizeErr.Error()); err != nil {
			return err
		}
		retry, err := s.driver.Confirm(ctx, ConfirmConfig{Message: i18n.T(s.locale, "retry"), Default: true})
		if err != nil {
			return err
		}
		if !retry {
			return finalizeErr
		}
	}
}

func (s *Session) announceStep(ctx context.Context, n int) error {
	title := i18n.T(s.locale, fmt.Sprintf("step%dTitle", n))
	subtitle := i18n.T(s.locale, fmt.Sprintf("step%dSubtitle", n))
	return s.driver.Info(ctx, fmt.Sprintf("[%d/%d] %s - %s", n, brief.LastStep, title, subtitle))
}

func (s *Session) showIssues(ctx context.Context, issues []brief.Issue) error {
	for _, issue := range issues {
		if err := s.driver.Info(ctx, fmt.Sprintf("  ! %s: %s", issue.Field, issue.Message)); err != nil {
			return err
		}
	}
	return nil
}
