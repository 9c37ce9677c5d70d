package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tarak510605/asana-rl-seed-data/internal/config"
	"github.com/tarak510605/asana-rl-seed-data/internal/logging"
	"github.com/tarak510605/asana-rl-seed-data/internal/store"
)

var (
	cfgFile string
	Version = "1.2.0"
)

var rootCmd = &cobra.Command{
	Use:   "seedgen",
	Short: "Generate consistent relational seed data for a project management workspace",
	Long: `
seedgen builds a synthetic but internally consistent project management
workspace: organizations, teams, users, projects, tasks and everything
hanging off them, across thirteen relational tables.

Every foreign key resolves, every child postdates its parent, and a
fixed seed reproduces the same dataset row for row.

Supported databases:
- SQLite (embedded, default)
- PostgreSQL
- MySQL`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("seedgen version %s\n", Version)
			os.Exit(0)
		}

		showBanner()
		fmt.Println()
		cmd.Help()
	},
}

func showBanner() {
	green := color.New(color.FgGreen, color.Bold)
	banner := []string{
		"╔════════════════════════════════════════════╗",
		"║    seedgen · workspace dataset generator   ║",
		"╚════════════════════════════════════════════╝",
	}
	for _, line := range banner {
		green.Println(line)
	}

	fmt.Print("              ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		color.Red("❌ %v", err)
		return err
	}
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./seedgen.yaml)")
	rootCmd.PersistentFlags().BoolP("force", "f", false, "Skip confirmations")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("seedgen")
	}

	viper.SetEnvPrefix("SEEDGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Missing config file is fine, defaults cover everything.
	viper.ReadInConfig()
}

// runEnv bundles what most commands need: validated config, an open
// store and a configured logger.
type runEnv struct {
	cfg    *config.Config
	store  *store.Store
	logger *log.Logger
	close  func()
}

func setup() (*runEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger, closeLog, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	st, err := store.Open(cfg.Database)
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &runEnv{
		cfg:    cfg,
		store:  st,
		logger: logger,
		close: func() {
			st.Close()
			closeLog()
		},
	}, nil
}

// location describes where the dataset lives, for human output.
func location(cfg *config.Config) string {
	if cfg.IsSQLite() {
		return cfg.Database.Path
	}
	return fmt.Sprintf("%s via $%s", cfg.Database.Provider, cfg.Database.URLEnv)
}
