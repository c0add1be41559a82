package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"prestamos-ledger/internal/adapter/repository/sqlite"
	"prestamos-ledger/internal/config"
	"prestamos-ledger/internal/infrastructure/db"
	"prestamos-ledger/internal/infrastructure/dbfile"
	"prestamos-ledger/internal/usecase/query"
)

// Maintenance entry point for the database file the app owns: initialize the
// schema, print a quick overview, or export/reset the file. Everything else
// goes through the usecase packages.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	cmd := "init"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "init":
		gdb, err := db.OpenGorm(cfg.DSN())
		if err != nil {
			log.Fatal(err)
		}
		if err := db.EnsureSchema(gdb); err != nil {
			log.Fatalf("schema init failed: %v", err)
		}
		log.Printf("schema ready: %s", cfg.DB.Path)

	case "stats":
		gdb, err := db.OpenGorm(cfg.DSN())
		if err != nil {
			log.Fatal(err)
		}
		if err := db.EnsureSchema(gdb); err != nil {
			log.Fatalf("schema init failed: %v", err)
		}
		q := query.NewUsecase(
			sqlite.NewClientRepository(gdb),
			sqlite.NewLoanRepository(gdb),
			sqlite.NewPaymentRepository(gdb),
		)
		ctx := context.Background()
		clients, err := q.ListClients(ctx, "")
		if err != nil {
			log.Fatal(err)
		}
		loans, err := q.ListLoansWithClientName(ctx)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("clients: %d\nloans:   %d\n", len(clients), len(loans))
		for _, l := range loans {
			fmt.Printf("  %s  %-20s %10.2f  %s\n", l.LoanID[:8], l.ClientName, l.Balance, l.Status)
		}

	case "export":
		dst, err := dbfile.NewService(cfg.DB.Path, cfg.Export.Dir).Export()
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("exported to %s", dst)

	case "reset":
		if err := dbfile.NewService(cfg.DB.Path, cfg.Export.Dir).Reset(); err != nil {
			log.Fatal(err)
		}
		log.Printf("removed %s", cfg.DB.Path)

	default:
		fmt.Fprintf(os.Stderr, "usage: %s [init|stats|export|reset]\n", os.Args[0])
		os.Exit(2)
	}
}
