package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"trashtalk/domain"
	"trashtalk/internal"
	"trashtalk/repositories"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

func main() {
	// 1. Load config
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Open Badger in Read-Only mode
	// BypassLockGuard allows opening while the board server holds the lock
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	repository := repositories.NewBoardRepository(db, logger)
	state, err := repository.Load()
	if err != nil {
		log.Fatalf("Failed to load board: %v", err)
	}
	info, err := repository.ContractInfo()
	if err != nil {
		logger.Warn("No contract info stored", "error", err)
	}

	// 3. Render
	fmt.Printf("%s %s\n", info.Contract, info.Version)
	fmt.Printf("owner: %s\ncount: %d\nmessages: %d\n\n", state.Owner, state.Count, len(state.Messages))
	render(state.Messages, logger)
}

func render(messages []domain.Message, logger *slog.Logger) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"#", "Nickname", "Message"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for i, m := range messages {
		table.Append([]string{strconv.Itoa(i), m.Nickname, m.Text})
	}
	table.Render()
	logger.Debug("Board rendered", "rows", len(messages))
}
