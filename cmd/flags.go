package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

var _ pflag.Value = (*choiceValue)(nil)

// choiceValue is a string flag restricted to a fixed set of values.
type choiceValue struct {
	value   string
	choices []string
}

func newChoice(choices []string) *choiceValue {
	return &choiceValue{choices: choices}
}

func (c *choiceValue) String() string { return c.value }

func (c *choiceValue) Set(s string) error {
	for _, ok := range c.choices {
		if s == ok {
			c.value = s
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", strings.Join(c.choices, ", "))
}

func (c *choiceValue) Type() string { return "{" + strings.Join(c.choices, ",") + "}" }
