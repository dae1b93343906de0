package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/personalfme/groupalarm-trigger/internal/config"
	"github.com/personalfme/groupalarm-trigger/internal/logger"
	"github.com/personalfme/groupalarm-trigger/internal/service/trigger"
	"github.com/personalfme/groupalarm-trigger/internal/version"
)

var (
	// cfgPath stores the configuration file path.
	cfgPath string
	// testOnly validates the alarm on the service side without emitting it.
	testOnly bool
	// debug enables additional debug output.
	debug bool

	// rootCmd represents the base command for triggering an alarm.
	rootCmd = &cobra.Command{
		Use:   "groupalarm-trigger <code> <time-point> <type>",
		Short: "Trigger a GroupAlarm.com alarm.",
		Long: `Triggers an alarm on GroupAlarm.com from a declarative YAML configuration.

The positional arguments are the selcall alert code (e.g. 09234), the time
point where the alert has been received (e.g. "05.12.2021 19:51:52") and the
alarm type (e.g. "Einsatzalarmierung" or "Probealarm"). The alert code
selects the alarm rule from the configuration file; its symbolic resource
and template names are resolved against the organization's catalogs before
the alarm request is assembled and dispatched.

With --test the request only goes to the preview endpoint: the configuration
is validated on the service side and no alarm is emitted.`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			if debug {
				logger.SetLevel(zapcore.DebugLevel)
				logger.Debugf(ctx, "Invocation arguments: %s", strings.Join(os.Args, ","))
			}

			return trigger.Run(ctx, &trigger.Options{
				ConfigPath: cfgPath,
				Code:       args[0],
				TimePoint:  args[1],
				AlarmType:  args[2],
				Preview:    testOnly,
			})
		},
	}
)

// Execute runs the groupalarm-trigger CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Error(context.Background(), err)
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&cfgPath, "config-file", "c", config.DefaultConfigPath,
		"path to the YAML configuration file")
	rootCmd.Flags().BoolVarP(&testOnly, "test", "t",
		false, "only test if this configuration would be valid - no alarm is actually emitted")
	rootCmd.Flags().BoolVarP(&debug, "debug", "d", false, "print additional debug information")
}
