package cli

import "testing"

func TestNewRootCommand(t *testing.T) {
	rootCmd := NewRootCommand()

	if rootCmd.Use != "sshconf" {
		t.Errorf("Unexpected Use: %s", rootCmd.Use)
	}
	if !rootCmd.SilenceUsage || !rootCmd.SilenceErrors {
		t.Error("Root command must silence cobra's own error output")
	}

	want := []string{"hosts", "show", "set", "unset", "add", "remove", "includes", "check", "fmt", "version"}
	for _, name := range want {
		found := false
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Missing subcommand: %s", name)
		}
	}
}
