// Package cli wires the command-line surface: shared source-file and
// timeline flags on the root command, with run and serve subcommands.
package cli

import (
	"time"

	"github.com/spf13/cobra"

	service "isrevy/internal/app"
	"isrevy/internal/config"
	"isrevy/internal/domain/schedule"
	"isrevy/pkg/logger"
)

// cliApp holds the flag and config state shared by the subcommands.
type cliApp struct {
	cfg *config.Config

	registrationPath string
	exportPath       string
	musicPath        string
	orderPath        string
	title            string

	groupSize    int
	interval     int
	warmup       int
	pauseAfter   int
	pauseSeconds int
	pauseLabel   string
	start        string
}

// NewRootCommand builds the isrevy command tree.
func NewRootCommand() *cobra.Command {
	a := &cliApp{}

	root := &cobra.Command{
		Use:           "isrevy",
		Short:         "Admin engine for exhibition skating events",
		Long:          "isrevy reconciles the sign-up sheet with the competition-management export, assigns music files and builds the start list.",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := logger.Init(); err != nil {
				return err
			}
			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}
			if err := logger.SetLevelString(cfg.LogLevel); err != nil {
				logger.Get().Warn(cmd.Context(), "invalid log_level; falling back to info",
					logger.String("log_level", cfg.LogLevel), logger.Error(err))
				_ = logger.SetLevelString("info")
			}
			a.merge(cmd, cfg)
			return nil
		},
	}

	setupFlags(root, a)
	root.AddCommand(newRunCommand(a), newServeCommand(a))
	return root
}

func setupFlags(root *cobra.Command, a *cliApp) {
	d := config.New()
	pf := root.PersistentFlags()
	pf.StringVar(&a.registrationPath, "registration", "", "path to the registration sheet CSV")
	pf.StringVar(&a.exportPath, "export", "", "path to the FS Manager export (XML file or ZIP)")
	pf.StringVar(&a.musicPath, "music", "", "path to the music directory or ZIP")
	pf.StringVar(&a.orderPath, "order", "", "path to a saved start-order file to apply")
	pf.StringVar(&a.title, "title", "", "event title for generated lists")
	pf.IntVar(&a.groupSize, "group-size", d.GroupSize, "skaters per warm-up group")
	pf.IntVar(&a.interval, "interval", d.IntervalSeconds, "seconds per skater slot")
	pf.IntVar(&a.warmup, "warmup", d.WarmupSeconds, "warm-up seconds per group")
	pf.IntVar(&a.pauseAfter, "pause-after", d.PauseAfter, "insert a pause after this start number (0 = none)")
	pf.IntVar(&a.pauseSeconds, "pause-length", d.PauseSeconds, "pause length in seconds")
	pf.StringVar(&a.pauseLabel, "pause-label", d.PauseLabel, "label for the inserted pause")
	pf.StringVar(&a.start, "start", d.StartTime, "event start clock, HH:MM or HH:MM:SS")
}

// merge lets config supply any timeline value the command line left at
// its default, so flags always win over file and environment.
func (a *cliApp) merge(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if !f.Changed("group-size") {
		a.groupSize = cfg.GroupSize
	}
	if !f.Changed("interval") {
		a.interval = cfg.IntervalSeconds
	}
	if !f.Changed("warmup") {
		a.warmup = cfg.WarmupSeconds
	}
	if !f.Changed("pause-after") {
		a.pauseAfter = cfg.PauseAfter
	}
	if !f.Changed("pause-length") {
		a.pauseSeconds = cfg.PauseSeconds
	}
	if !f.Changed("pause-label") {
		a.pauseLabel = cfg.PauseLabel
	}
	if !f.Changed("start") {
		a.start = cfg.StartTime
	}
	a.cfg = cfg
}

func (a *cliApp) sources() service.Sources {
	return service.Sources{
		RegistrationPath: a.registrationPath,
		ExportPath:       a.exportPath,
		MusicPath:        a.musicPath,
		OrderPath:        a.orderPath,
		Title:            a.title,
	}
}

func (a *cliApp) scheduleConfig() (schedule.Config, error) {
	start, err := schedule.ParseClock(time.Now(), a.start)
	if err != nil {
		return schedule.Config{}, err
	}
	return schedule.Config{
		GroupSize:   a.groupSize,
		Interval:    time.Duration(a.interval) * time.Second,
		Warmup:      time.Duration(a.warmup) * time.Second,
		PauseAfter:  a.pauseAfter,
		PauseLength: time.Duration(a.pauseSeconds) * time.Second,
		PauseLabel:  a.pauseLabel,
		Start:       start,
	}, nil
}

func (a *cliApp) newService() (*service.Service, error) {
	schedCfg, err := a.scheduleConfig()
	if err != nil {
		return nil, err
	}
	return service.New(
		service.WithLogger(logger.Get()),
		service.WithScheduleConfig(schedCfg),
		service.WithProbeWorkers(a.cfg.ProbeWorkers),
	), nil
}
