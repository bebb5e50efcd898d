package cmd

import (
	"sync"

	"github.com/spf13/cobra"
)

var (
	mu       sync.Mutex
	locked   bool
	commands []*cobra.Command
)

// Register adds a command. Call from init() in custom packages. Panics if registry is locked.
func Register(c *cobra.Command) {
	mu.Lock()
	defer mu.Unlock()
	if locked {
		panic("cmd/registry: locked (register only during init before Apply)")
	}
	commands = append(commands, c)
}

// Apply adds all registered commands to root. Locks the cmd registry (immutable after).
func Apply() {
	mu.Lock()
	defer mu.Unlock()
	for _, c := range commands {
		rootCmd.AddCommand(c)
	}
	commands = nil
	locked = true
}
