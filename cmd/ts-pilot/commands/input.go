package commands

import (
	"io"
	"os"

	"github.com/consigcody94/ts-pilot/errors"
)

// readInput reads the command's subject text from the file named by args[0],
// or from stdin when the argument is "-" or absent.
func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.Wrap(err, "failed to read stdin")
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", args[0])
	}
	return string(data), nil
}
