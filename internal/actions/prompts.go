package actions

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"stacky.dev/stacky/internal/utils"
)

// ErrInteractiveDisabled is returned when a prompt is needed but no terminal is attached
var ErrInteractiveDisabled = errors.New("interactive prompts are unavailable (not a terminal or STACKY_NON_INTERACTIVE is set)")

// branchChoice is a branch as shown in a selector
type branchChoice struct {
	display string
	value   string
}

// Seams for tests; production code prompts through survey on stderr.
var (
	isInteractive         = utils.IsInteractive
	promptBranchSelection = surveyBranchSelection
)

// surveyBranchSelection asks the user to pick one of choices. The prompt renders on
// stderr so stdout stays free for the checkout path.
func surveyBranchSelection(message string, choices []branchChoice, initialIndex int) (string, error) {
	options := make([]string, len(choices))
	for i, c := range choices {
		options[i] = c.display
	}

	prompt := &survey.Select{
		Message:  message,
		Options:  options,
		PageSize: 15,
	}
	if initialIndex >= 0 && initialIndex < len(options) {
		prompt.Default = options[initialIndex]
	}

	var selected int
	err := survey.AskOne(prompt, &selected, survey.WithStdio(os.Stdin, os.Stderr, os.Stderr))
	if errors.Is(err, terminal.InterruptErr) {
		return "", fmt.Errorf("canceled")
	}
	if err != nil {
		return "", fmt.Errorf("branch selection failed: %w", err)
	}
	return choices[selected].value, nil
}
