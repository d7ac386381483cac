package flags

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

// EnumValue is a string flag value restricted to a fixed set of choices.
type EnumValue struct {
	Enum    []string
	Default string
	value   string
}

// Set implements flag.Value.
func (e *EnumValue) Set(value string) error {
	for _, enum := range e.Enum {
		if enum == value {
			e.value = value
			return nil
		}
	}
	return fmt.Errorf("allowed values are %s", strings.Join(e.Enum, ", "))
}

func (e *EnumValue) String() string {
	if e.value == "" {
		return e.Default
	}
	return e.value
}

// NewEnumFlag returns a generic flag accepting only the given values.
func NewEnumFlag(name, usage, defaultValue string, enum ...string) *cli.GenericFlag {
	return &cli.GenericFlag{
		Name:  name,
		Usage: fmt.Sprintf("%s Supports: %s.", usage, strings.Join(enum, ", ")),
		Value: &EnumValue{Enum: enum, Default: defaultValue},
	}
}
