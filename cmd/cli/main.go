// sshconf - SSH client configuration editor
//
// sshconf maintains an editable model of an SSH client configuration,
// including files pulled in via Include directives, and writes it back
// file-by-file.
package main

import (
	"os"

	"github.com/sshconf/sshconf/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
