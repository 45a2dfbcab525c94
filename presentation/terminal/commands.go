package terminal

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"ui_automation/application/scenarios"
	"ui_automation/infrastructure/config"
	"ui_automation/infrastructure/demopage"
	"ui_automation/infrastructure/pageobjects"
	"ui_automation/infrastructure/storage"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootOptions holds flag values and the state PersistentPreRunE builds from
// them. Commands read cfg and logger only inside RunE.
type rootOptions struct {
	configPath string
	baseURL    string
	driver     string
	logLevel   string
	resultsDir string
	headless   bool
	parallel   int
	scenarios  []string

	in         io.Reader
	newFactory FactoryFunc

	cfg    *config.Config
	logger *logrus.Logger
}

// NewRootCommand builds the CLI. in feeds the interactive shell; command
// output goes to out.
func NewRootCommand(in io.Reader, out io.Writer) *cobra.Command {
	return newRootCommand(in, out, nil)
}

func newRootCommand(in io.Reader, out io.Writer, newFactory FactoryFunc) *cobra.Command {
	o := &rootOptions{in: in, newFactory: newFactory}

	root := &cobra.Command{
		Use:   "ui_automation",
		Short: "Browser sanity suite for the Web Testing Page demo",
		Long: `ui_automation drives the "Web Testing Page" demo page through a browser
automation library and checks the DOM after every interaction.

Scenarios come from the built-in sanity catalog and from optional YAML files
that reference page-object locators by name.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: o.load,
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVarP(&o.configPath, "config", "c", "", "YAML config file")
	flags.StringVar(&o.baseURL, "base-url", "", "demo page URL (overrides config)")
	flags.StringVarP(&o.driver, "driver", "d", "", "browser backend: playwright, selenium, rod, chromedp")
	flags.StringVar(&o.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&o.resultsDir, "results-dir", "", "where run reports and screenshots are stored")
	flags.BoolVar(&o.headless, "headless", true, "run the browser without a window")
	flags.IntVarP(&o.parallel, "parallel", "p", 1, "scenarios run concurrently, each in its own session")
	flags.StringSliceVarP(&o.scenarios, "scenarios", "s", nil, "extra YAML scenario files")

	root.AddCommand(
		o.runCommand(),
		o.listCommand(),
		o.locatorsCommand(),
		o.historyCommand(),
		o.serveDemoCommand(),
		o.shellCommand(),
	)
	return root
}

// load resolves configuration: .env, config file, environment, then flags
// the user actually set.
func (o *rootOptions) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("base-url") {
		cfg.BaseURL = o.baseURL
	}
	if flags.Changed("driver") {
		cfg.Driver = o.driver
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("results-dir") {
		cfg.ResultsDir = o.resultsDir
	}
	if flags.Changed("headless") {
		cfg.Headless = o.headless
	}
	if flags.Changed("parallel") {
		cfg.Parallel = o.parallel
	}
	cfg.ScenarioFiles = append(cfg.ScenarioFiles, o.scenarios...)

	if err := cfg.Validate(); err != nil {
		return err
	}

	o.cfg = cfg
	o.logger = newLogger(cfg.Level(), cmd.ErrOrStderr())
	return nil
}

func newLogger(level logrus.Level, w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return logger
}

func (o *rootOptions) terminal(cmd *cobra.Command) *TerminalInterface {
	return NewTerminalInterface(o.cfg, o.logger, o.in, cmd.OutOrStdout(), o.newFactory)
}

func (o *rootOptions) runCommand() *cobra.Command {
	var local bool

	cmd := &cobra.Command{
		Use:   "run [scenario...]",
		Short: "Run scenarios (all when none are named)",
		Long: `Run scenarios by name. The "test_" prefix is optional.

Examples:
  ui_automation run
  ui_automation run text_fields slider
  ui_automation run --local -d rod`,
		ValidArgsFunction: suiteNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if local {
				srv, err := demopage.Start("127.0.0.1:0", o.logger)
				if err != nil {
					return err
				}
				defer shutdown(srv, o.logger)
				o.cfg.BaseURL = srv.URL()
			}

			_, err := o.terminal(cmd).RunScenarios(ctx, args)
			return err
		},
	}
	cmd.Flags().BoolVar(&local, "local", false, "serve the bundled demo page and run against it")
	return cmd
}

func (o *rootOptions) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List available scenarios",
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, err := o.terminal(cmd).Suite()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSTEPS\tDESCRIPTION")
			for _, sc := range all {
				fmt.Fprintf(w, "%s\t%d\t%s\n", sc.Name, len(sc.Steps), sc.Description)
			}
			return w.Flush()
		},
	}
}

func (o *rootOptions) locatorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "locators [section...]",
		Short: "Print the page-object registry",
		Long: `Print every named locator, usable as section.name in YAML scenarios.

Sections: ` + fmt.Sprint(pageobjects.Default().SectionNames()),
		RunE: func(cmd *cobra.Command, args []string) error {
			only := make(map[string]bool, len(args))
			for _, s := range args {
				only[s] = true
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, e := range pageobjects.Default().Entries() {
				if len(only) > 0 && !only[e.Section] {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\n", e.Key(), e.Locator)
			}
			return w.Flush()
		},
	}
}

func (o *rootOptions) historyCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show stored run reports, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := storage.NewResultStore(o.cfg.ResultsDir)
			if err != nil {
				return err
			}
			reports, err := store.LoadReports()
			if err != nil {
				return err
			}
			if len(reports) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded.")
				return nil
			}
			if limit > 0 && len(reports) > limit {
				reports = reports[:limit]
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "RUN\tSTARTED\tDRIVER\tPASSED\tFAILED")
			for _, r := range reports {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n",
					r.ID, r.StartedAt.Format(time.DateTime), r.Driver,
					len(r.Results)-r.Failed(), r.Failed())
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "show at most n runs (0 for all)")
	return cmd
}

func (o *rootOptions) serveDemoCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve-demo",
		Short: "Serve the bundled demo page until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv, err := demopage.Start(addr, o.logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Serving %s\n", srv.URL())

			<-cmd.Context().Done()
			shutdown(srv, o.logger)
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")
	return cmd
}

func (o *rootOptions) shellCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run scenarios interactively, one line at a time",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.terminal(cmd).Shell(cmd.Context())
		},
	}
}

func shutdown(srv *demopage.Server, logger *logrus.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Warnf("Demo page shutdown: %v", err)
	}
}

// suiteNames is used for shell completion of run arguments.
func suiteNames(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return scenarios.Names(), cobra.ShellCompDirectiveNoFileComp
}
