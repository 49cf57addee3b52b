package ui

import "github.com/charmbracelet/huh"

// Confirmer asks the operator a yes/no question. Destructive operations
// refuse to proceed without an explicit yes.
type Confirmer interface {
	Confirm(prompt string, defaultAnswer bool) (bool, error)
}

// HuhConfirmer implements Confirmer with an interactive prompt.
type HuhConfirmer struct{}

// Confirm asks the operator and returns their answer.
func (HuhConfirmer) Confirm(prompt string, defaultAnswer bool) (bool, error) {
	answer := defaultAnswer
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(prompt).
				Value(&answer),
		),
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return answer, nil
}

// AutoConfirmer implements Confirmer with a fixed answer. Used by --yes and
// in tests.
type AutoConfirmer struct {
	Answer bool
}

// Confirm returns the fixed answer.
func (c AutoConfirmer) Confirm(string, bool) (bool, error) {
	return c.Answer, nil
}
