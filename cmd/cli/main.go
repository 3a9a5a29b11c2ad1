package cli

import (
	"bufio"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vpnda/helium-sync/db"
	"github.com/vpnda/helium-sync/pkg/config"
	"github.com/vpnda/helium-sync/pkg/helium"
	"github.com/vpnda/helium-sync/pkg/services"
	"github.com/vpnda/helium-sync/pkg/utils"
)

var (
	dbPath    string
	debugHTTP bool
	rootCmd   *cobra.Command
)

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Error().Err(err).Msg("Error getting home directory")
		os.Exit(1)
	}

	defaultDBPath := filepath.Join(homeDir, ".helium-sync", "snapshots.db")

	// Initialize configuration
	if err := config.InitGlobalConfig("config.yaml"); err != nil {
		// Only print a warning if the file doesn't exist, as GetConfig will create it later
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Msg("Failed to load configuration")
			log.Warn().Msg("A default configuration will be used")
		}
	}

	rootCmd = &cobra.Command{
		Use:   "helium-sync",
		Short: "A CLI tool for querying the blockchain API and storing snapshots",
		Long:  `A CLI tool that queries accounts, hotspots and rewards from the public blockchain API and stores snapshots in a SQLite database.`,
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDBPath, "Path to the SQLite snapshot database")
	rootCmd.PersistentFlags().BoolVar(&debugHTTP, "debug-http", false, "Dump API requests and responses to stderr")

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive REPL",
		Long:  `Start an interactive REPL for executing commands.`,
		Run: func(cmd *cobra.Command, args []string) {
			runREPL(initReplState())
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show the current configuration",
		Long:  `Show the current configuration loaded from config.yaml.`,
		Run: func(cmd *cobra.Command, args []string) {
			showConfig()
		},
	}

	rootCmd.AddCommand(replCmd, configCmd)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func initReplState() replState {
	// Prefer the configured snapshot path, fall back to the flag
	path := dbPath
	if configured, err := config.GetDBPath(); err == nil {
		path = configured
	}

	database, err := db.New(path)
	if err != nil {
		log.Error().Err(err).Msg("Error connecting to database")
		os.Exit(1)
	}

	endpoint, err := config.GetAPIEndpoint()
	if err != nil {
		log.Error().Err(err).Msg("Error reading API endpoint from config")
		os.Exit(1)
	}
	userAgent, _ := config.GetUserAgent()

	clientConfig := helium.Config{
		BaseURL:   endpoint,
		UserAgent: userAgent,
	}
	if debugHTTP {
		clientConfig.HTTPClient = &http.Client{Transport: utils.DebugRoundTripper()}
	}

	client, err := helium.NewClient(clientConfig)
	if err != nil {
		log.Error().Err(err).Msg("Error creating API client")
		os.Exit(1)
	}

	return replState{
		db:     database,
		client: client,
		syncer: services.NewSnapshotSyncer(client, database),
	}
}

type replState struct {
	db     db.Store
	client *helium.Client
	syncer *services.SnapshotSyncer
}

func runREPL(state replState) {
	fmt.Println("Welcome to the helium-sync REPL!")
	fmt.Println("Type 'exit' or 'quit' to exit.")
	fmt.Println("Enter a command to query the API or sync snapshots.")
	fmt.Println()

	// Close the database once you are done
	defer state.db.Close()

	if err := state.db.Initialize(); err != nil {
		log.Error().Err(err).Msg("Error initializing database")
		os.Exit(1)
	}

	// Start REPL
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")

		if !scanner.Scan() {
			break
		}

		line := scanner.Text()
		trimmedLine := strings.TrimSpace(line)

		if trimmedLine == "" {
			continue
		}

		if trimmedLine == "exit" || trimmedLine == "quit" {
			break
		}

		if trimmedLine == "help" {
			printHelp()
			continue
		}

		if trimmedLine == "config" {
			showConfig()
			continue
		}

		if strings.HasPrefix(trimmedLine, "account") {
			state.handleAccount(trimmedLine)
			continue
		}

		if strings.HasPrefix(trimmedLine, "rich") {
			state.handleRichest(trimmedLine)
			continue
		}

		if strings.HasPrefix(trimmedLine, "hotspots") {
			state.handleHotspots(trimmedLine)
			continue
		}

		if strings.HasPrefix(trimmedLine, "rewards") {
			state.handleRewards(trimmedLine)
			continue
		}

		if strings.HasPrefix(trimmedLine, "sync") {
			state.handleSync(trimmedLine)
			continue
		}

		if strings.HasPrefix(trimmedLine, "snapshots") {
			state.listSnapshots()
			continue
		}

		fmt.Println("Unknown command. Type 'help' for a list of commands.")
	}

	if err := scanner.Err(); err != nil {
		log.Error().Err(err).Msg("Error reading input")
	}
}

func printHelp() {
	fmt.Println("Available commands:")
	fmt.Println("  account <address>          Fetch and display an account")
	fmt.Println("  rich [limit]               Show the richest accounts (default 10, max 1000)")
	fmt.Println("  hotspots <address>         List hotspots owned by an account")
	fmt.Println("  rewards <address> [days]   Show reward totals for the trailing window (default 7 days)")
	fmt.Println("  sync <address> [days]      Store an account snapshot and its recent rewards")
	fmt.Println("  snapshots                  List stored account snapshots")
	fmt.Println("  config                     Show the current configuration")
	fmt.Println("  help                       Show this help")
	fmt.Println("  exit, quit                 Exit the REPL")
}

func showConfig() {
	cfg, err := config.GetConfig()
	if err != nil {
		log.Error().Err(err).Msg("Error loading configuration")
		return
	}

	endpoint := cfg.APIEndpoint
	if endpoint == "" {
		endpoint = helium.DefaultBaseURL + " (default)"
	}

	fmt.Println("Current configuration:")
	fmt.Printf("  API endpoint: %s\n", endpoint)
	fmt.Printf("  User agent:   %s\n", cfg.UserAgent)
	fmt.Printf("  DB path:      %s\n", cfg.DBPath)
}
