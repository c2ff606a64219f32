package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/LixenWraith/dirlog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// maxInputLine bounds a single line read from standard input.
const maxInputLine = 16 << 20

func newLevelCmd(a *app, priority dirlog.Priority) *cobra.Command {
	name := strings.ToLower(priority.String())
	return &cobra.Command{
		Use:   name + " [message...]",
		Short: fmt.Sprintf("Log a message with %s priority", priority),
		Long: fmt.Sprintf(`Log a message with %s priority.

The arguments are joined with spaces into one line. Without arguments, each
line read from piped standard input is logged separately.`, priority),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.logger()
			if err != nil {
				return err
			}
			defer a.reportFailures(l)

			return forEachMessage(cmd, args, func(line string) {
				l.Log(line, priority)
			})
		},
	}
}

func newRawCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "raw [text...]",
		Short: "Write text to the log file without timestamp or label",
		Long: `Write text to the log file as is, followed by a newline.

The raw line is subject to the logger being open but not to priority filtering.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.logger()
			if err != nil {
				return err
			}
			defer a.reportFailures(l)

			return forEachMessage(cmd, args, func(line string) {
				l.WriteFreeFormLine(line + "\n")
			})
		},
	}
}

// forEachMessage calls fn with the joined arguments, or with every line of
// standard input when there are no arguments and input is not a terminal.
func forEachMessage(cmd *cobra.Command, args []string, fn func(line string)) error {
	if len(args) > 0 {
		fn(strings.Join(args, " "))
		return nil
	}

	in := cmd.InOrStdin()
	if isTerminal(in) {
		return fmt.Errorf("no message given")
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxInputLine)
	for scanner.Scan() {
		fn(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
