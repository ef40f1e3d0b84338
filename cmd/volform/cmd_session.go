package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/jingkaihe/volform/pkg/form"
	"github.com/jingkaihe/volform/pkg/session"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Edit a volume with commands read from stdin",
	Long: `Edit a volume with one command per line read from stdin.

Commands:
  select <mountPoint>          switch to another volume, discarding edits
  set <field>=<value>...       edit form fields
  method <auto|manual|range>   choose the sizing policy
  errors                       print the errors of the last submit
  show                         print the form state
  search [term]                filter selectable mount points
  submit                       validate and print the resulting volume
  quit                         stop reading

Lines are split like a shell command line, so values with spaces can be
quoted. Blank lines and lines starting with # are ignored.`,
	Example: `  printf 'select /home\nmethod range\nset minSize=5 maxSize=\nsubmit\n' | volform session -f templates.yaml`,
	Args:    cobra.NoArgs,
	RunE:    runSession,
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}

func runSession(cmd *cobra.Command, args []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	emitter, err := openEmitter(viper.GetString("events.log"), "session")
	if err != nil {
		return err
	}
	defer emitter.Close()

	f, err := loadForm(viper.GetString("templates"), form.WithEmitter(emitter))
	if err != nil {
		return err
	}

	prompt := ""
	if term.IsTerminal(int(os.Stdin.Fd())) {
		prompt = "volform> "
	}

	interp, err := session.New(f, session.Config{
		Out:    cmd.OutOrStdout(),
		Prompt: prompt,
		Format: format,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sum, err := interp.Run(ctx, cmd.InOrStdin())
	slog.Debug("session finished",
		"session_id", emitter.SessionID(),
		"commands", sum.Commands,
		"accepted", sum.Accepted,
		"rejected", sum.Rejected,
		"failed", sum.Failed,
	)
	return err
}
