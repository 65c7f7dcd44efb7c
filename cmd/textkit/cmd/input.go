package cmd

import (
	"io"
	"os"
	"strings"

	tkerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/spf13/cobra"
)

// input returns the text to work on: the joined arguments, the --file
// contents, or stdin. A single trailing line break is dropped from file
// and stdin input.
func (a *app) input(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	var data []byte
	var err error
	if a.file != "" {
		data, err = os.ReadFile(a.file)
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return "", tkerror.Wrap(err, "failed to read input").
			WithCode(tkerror.CodeInvalidInput).
			WithOperation("cmd.input")
	}

	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}
