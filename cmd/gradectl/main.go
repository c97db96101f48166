// Command gradectl manages course grade books from the terminal using the same
// storage configuration as the API server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/yigit/aceup/internal/app/services"
	"github.com/yigit/aceup/internal/bootstrap"
)

// cliOptions holds persistent flag values.
type cliOptions struct {
	configPath string
	courseID   string
}

// session is the opened storage and services for one command run.
type session struct {
	storage  *bootstrap.Storage
	services *services.Services
}

func (s *session) Close() error {
	return s.storage.Close()
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:   "gradectl",
		Short: "Manage weighted course grade books",
		Long: `gradectl adds, removes and lists graded items of a course and shows
the weighted average computed from them.

Storage is selected by the same configuration file and environment
variables as the API server (STORAGE_DRIVER, STORAGE_PATH, ...).`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", bootstrap.DefaultConfigPath, "path to the configuration file")
	root.PersistentFlags().StringVarP(&opts.courseID, "course", "c", "", "course ID")

	root.AddCommand(
		newAddCmd(opts),
		newRemoveCmd(opts),
		newReplaceCmd(opts),
		newListCmd(opts),
		newGradeCmd(opts),
		newClearCmd(opts),
		newPriorityCmd(opts),
	)
	return root
}

// openSession loads configuration and opens the configured grade store.
// Log output goes to stderr so command output stays clean.
func openSession(cmd *cobra.Command, opts *cliOptions) (*session, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(opts.configPath, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	storage, err := bootstrap.SetupGradeStore(cfg, lgr)
	if err != nil {
		return nil, err
	}

	return &session{
		storage:  storage,
		services: services.NewServices(storage.Store, lgr),
	}, nil
}

func requireCourse(opts *cliOptions) error {
	if opts.courseID == "" {
		return fmt.Errorf("--course is required")
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
