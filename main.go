package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/18gaurav2021/portfolio/internal/config"
	"github.com/18gaurav2021/portfolio/internal/contact"
	"github.com/18gaurav2021/portfolio/internal/observability"
	"github.com/18gaurav2021/portfolio/internal/session"
	"github.com/18gaurav2021/portfolio/internal/site"
	"github.com/18gaurav2021/portfolio/internal/visits"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// configFile is set by the --config flag.
var configFile string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Serve the portfolio site",
	Long: `portfolio renders the single-page portfolio and drives its scroll
reveals and contact form over HTMX. Running it with no subcommand serves.`,
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "portfolio", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: ./portfolio.yaml if present)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	gin.SetMode(cfg.Mode)
	logger := observability.InitLogger("portfolio", cfg.LogLevel, cfg.LogPretty)

	store, err := visits.Open(cfg.VisitsDSN, visits.WithLogger(logger))
	if err != nil {
		return err
	}
	defer store.Close()
	logger.Info().Str("dsn", cfg.VisitsDSN).Dur("retention", cfg.VisitsRetention).Msg("visitor tracking enabled with hashed addresses")

	var contactOpts []contact.Option
	if cfg.Mail.Enabled() {
		mailer, err := contact.NewMailer(cfg.Mail)
		if err != nil {
			return err
		}
		contactOpts = append(contactOpts, contact.WithDelivery(mailer))
		logger.Info().Str("smtp", cfg.Mail.Host).Msg("contact messages are delivered by mail")
	} else {
		logger.Info().Msg("contact messages are acknowledged only")
	}

	srv, err := site.New(site.Options{
		Logger:          logger,
		Visits:          store,
		VisitsRetention: cfg.VisitsRetention,
		AdminStats:      cfg.AdminStats,
		CORSOrigins:     cfg.CORSOrigins,
		TrustedProxies:  cfg.TrustedProxies,
		SessionOptions:  []session.Option{session.WithIdle(cfg.SessionIdle), session.WithMaxSessions(cfg.SessionMax)},
		ContactOptions:  contactOpts,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.Serve(ctx, cfg.Addr())
}
