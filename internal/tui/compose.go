package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/EmundoT/git-conventional/internal/types"
	"github.com/EmundoT/git-conventional/pkg/conventional"
)

// RunComposeWizard interactively builds a conventional commit message
// honoring the lint configuration, and returns its canonical form.
func RunComposeWizard(cfg types.LintConfig) (string, error) {
	var typ string
	if len(cfg.Types) > 0 {
		opts := make([]huh.Option[string], len(cfg.Types))
		for i, t := range cfg.Types {
			opts[i] = huh.NewOption(t, t)
		}
		if err := huh.NewSelect[string]().
			Title("Commit Type").
			Options(opts...).
			Value(&typ).
			Run(); err != nil {
			return "", err
		}
	} else {
		if err := huh.NewInput().
			Title("Commit Type").
			Validate(validType).
			Value(&typ).
			Run(); err != nil {
			return "", err
		}
	}

	var scope string
	scopeTitle := "Scope (optional)"
	if cfg.RequireScope {
		scopeTitle = "Scope"
	}
	scopeInput := huh.NewInput().Title(scopeTitle).Value(&scope)
	if len(cfg.Scopes) > 0 {
		scopeInput = scopeInput.Placeholder(strings.Join(cfg.Scopes, ", "))
	}
	if cfg.RequireScope {
		scopeInput = scopeInput.Validate(nonEmpty("scope"))
	}
	if err := scopeInput.Run(); err != nil {
		return "", err
	}

	var description string
	if err := huh.NewInput().
		Title("Description").
		Description("Short imperative summary, e.g. \"add login endpoint\"").
		Validate(nonEmpty("description")).
		Value(&description).
		Run(); err != nil {
		return "", err
	}

	var body string
	if err := huh.NewText().
		Title("Body (optional)").
		Description("Longer explanation of the change; leave empty to skip").
		Value(&body).
		Run(); err != nil {
		return "", err
	}

	var breaking bool
	if !cfg.ForbidBreaking {
		if err := huh.NewConfirm().
			Title("Breaking change?").
			Value(&breaking).
			Run(); err != nil {
			return "", err
		}
	}

	commit := conventional.Commit{
		Type:        strings.TrimSpace(typ),
		Scope:       strings.TrimSpace(scope),
		Description: strings.TrimSpace(description),
		Body:        strings.TrimSpace(body),
		Breaking:    breaking,
	}

	if breaking {
		var breakText string
		if err := huh.NewInput().
			Title("Describe the breaking change").
			Validate(nonEmpty("breaking change description")).
			Value(&breakText).
			Run(); err != nil {
			return "", err
		}
		commit.Footers = append(commit.Footers, conventional.Footer{
			Token: "BREAKING CHANGE",
			Sep:   conventional.SeparatorColon,
			Value: strings.TrimSpace(breakText),
		})
	}

	for _, token := range cfg.RequireFooters {
		var value string
		if err := huh.NewInput().
			Title(token).
			Validate(nonEmpty(token)).
			Value(&value).
			Run(); err != nil {
			return "", err
		}
		commit.Footers = append(commit.Footers, conventional.Footer{
			Token: token,
			Sep:   conventional.SeparatorColon,
			Value: strings.TrimSpace(value),
		})
	}

	for {
		var more bool
		if err := huh.NewConfirm().
			Title("Add another footer?").
			Value(&more).
			Run(); err != nil {
			return "", err
		}
		if !more {
			break
		}
		var token, value string
		if err := huh.NewInput().
			Title("Footer token").
			Description("e.g. Reviewed-By, Refs, Closes").
			Validate(validType).
			Value(&token).
			Run(); err != nil {
			return "", err
		}
		if err := huh.NewInput().
			Title("Footer value").
			Validate(nonEmpty("value")).
			Value(&value).
			Run(); err != nil {
			return "", err
		}
		sep := conventional.SeparatorColon
		if strings.EqualFold(token, "Closes") || strings.EqualFold(token, "Fixes") || strings.EqualFold(token, "Refs") {
			sep = conventional.SeparatorHashRef
		}
		commit.Footers = append(commit.Footers, conventional.Footer{
			Token: strings.TrimSpace(token),
			Sep:   sep,
			Value: strings.TrimSpace(value),
		})
	}

	message := commit.String()
	// The wizard constrains each field, but re-parse to guarantee the
	// assembled message is grammatical before handing it back.
	if _, err := conventional.Parse(message); err != nil {
		return "", fmt.Errorf("composed message does not parse: %w", err)
	}
	return message, nil
}

func nonEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}

// validType rejects strings the type/token grammar would not accept.
func validType(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("cannot be empty")
	}
	if strings.ContainsAny(s, "()!: \t\r\n") {
		return fmt.Errorf("must not contain parentheses, colon, '!' or whitespace")
	}
	return nil
}
