package ui

import "github.com/charmbracelet/huh"

// Prompter asks the operator for a value. Used when credentials are not in
// the environment.
type Prompter interface {
	Input(label string) (string, error)
	Secret(label string) (string, error)
}

// HuhPrompter implements Prompter with interactive prompts.
type HuhPrompter struct{}

// Input asks for a visible value.
func (HuhPrompter) Input(label string) (string, error) {
	var value string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(label).
				Value(&value),
		),
	)
	if err := form.Run(); err != nil {
		return "", err
	}
	return value, nil
}

// Secret asks for a masked value.
func (HuhPrompter) Secret(label string) (string, error) {
	var value string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(label).
				EchoMode(huh.EchoModePassword).
				Value(&value),
		),
	)
	if err := form.Run(); err != nil {
		return "", err
	}
	return value, nil
}

// StaticPrompter implements Prompter with canned answers, for tests.
type StaticPrompter struct {
	Values map[string]string
}

// Input returns the canned answer for the label.
func (p StaticPrompter) Input(label string) (string, error) {
	return p.Values[label], nil
}

// Secret returns the canned answer for the label.
func (p StaticPrompter) Secret(label string) (string, error) {
	return p.Values[label], nil
}
