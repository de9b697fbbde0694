package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/amp-labs/amp-algorithms/xform"
	"github.com/manifoldco/promptui"
)

var ErrEmptyInput = errors.New("you must enter something")

// PromptInts asks for a comma separated list of integers. An empty answer is
// allowed and yields an empty list.
func PromptInts(label string) ([]int, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Validate: validateInts,
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
	}

	txt, err := prompt.Run()
	if err != nil {
		return nil, err
	}

	return xform.Ints(txt)
}

// PromptInt asks for a single integer.
func PromptInt(label string) (int, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Validate: validateInt,
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
	}

	txt, err := prompt.Run()
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(txt)
}

func validateInts(s string) error {
	_, err := xform.Ints(s)

	return err
}

func validateInt(s string) error {
	if len(s) == 0 {
		return ErrEmptyInput
	}

	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("invalid integer: %w", err)
	}

	return nil
}
