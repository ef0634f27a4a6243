package domain

import "strings"

// Command is a delegated tool invocation.
type Command struct {
	Name string
	Args []string
	// Env is applied on top of the inherited process environment.
	Env   map[string]string
	Dir   string
	Stdin string
}

// String renders the command line for logs and error metadata.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}
