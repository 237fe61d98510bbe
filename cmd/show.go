package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rishabh06704/getdaysleft/internal/config"
	"github.com/rishabh06704/getdaysleft/internal/countdown"
	"github.com/rishabh06704/getdaysleft/internal/linedisplay"
	"github.com/rishabh06704/getdaysleft/internal/log"
	"github.com/rishabh06704/getdaysleft/internal/pubsub"
)

var watchCountdown bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the countdown without the interactive screen",
	Long: `Print the days, hours, minutes and seconds left until a date.

With --watch a new line is printed every second until the countdown
reaches zero or you press ctrl+c. Countdowns to past dates keep going
until interrupted.

Examples:
  getdaysleft show --date 2030-01-01
  getdaysleft show --url "https://getdaysleft.com/?date=2030-01-01&time=09%3A30" --watch`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	addTargetFlags(showCmd)
	showCmd.Flags().BoolVarP(&watchCountdown, "watch", "w", false, "keep printing every second")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, _ []string) error {
	date, clock, err := targetFromFlags()
	if err != nil {
		return err
	}

	disp := linedisplay.New(cmd.OutOrStdout(), cmd.ErrOrStderr())
	formatter := countdown.NewFormatter(cfg.LocaleContext(config.DetectHostLocale), nil)

	if !watchCountdown {
		ctrl := countdown.NewController(disp, countdown.NewTickerScheduler(countdown.Inline), formatter)
		if err := ctrl.Start(date, clock); err != nil {
			return reportedError{err}
		}
		disp.Print()
		ctrl.Reset()
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watch(ctx, disp, formatter, date, clock)
}

// watch prints a line per tick until the countdown stops or ctx is done.
// The final zero line is printed when the Stopped event arrives.
func watch(ctx context.Context, disp *linedisplay.Display, formatter *countdown.Formatter, date, clock string, opts ...countdown.Option) error {
	events := pubsub.NewBroker[countdown.Event]()
	defer events.Close()
	sub := events.Subscribe(ctx)

	var ctrl *countdown.Controller
	scheduler := countdown.NewTickerScheduler(func(fn func()) {
		fn()
		if ctrl.State() == countdown.StateRunning {
			disp.PrintLine()
		}
	})
	opts = append([]countdown.Option{countdown.WithPublisher(events)}, opts...)
	ctrl = countdown.NewController(disp, scheduler, formatter, opts...)
	defer ctrl.Reset()

	if err := ctrl.Start(date, clock); err != nil {
		return reportedError{err}
	}
	if ctrl.State() == countdown.StateRunning {
		disp.PrintLine()
	}

	for {
		select {
		case <-ctx.Done():
			log.Debug(log.CatCLI, "watch interrupted")
			return nil
		case e, ok := <-sub:
			if !ok {
				return nil
			}
			if e.Type == countdown.EventStopped {
				disp.PrintLine()
				disp.Toast(countdown.ToastComplete)
				return nil
			}
		}
	}
}
