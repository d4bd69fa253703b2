package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/TusharBadgujar235/jk-soda-water-website-new/internal/store"
)

func main() {
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	collection := exportCmd.String("collection", "", "Collection to export: orders, messages or ratings")

	if len(os.Args) < 2 {
		fmt.Println("expected 'stats' or 'export' subcommand")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "stats":
		printStats(openStore())
	case "export":
		exportCmd.Parse(os.Args[2:])
		switch *collection {
		case store.CollectionOrders, store.CollectionMessages, store.CollectionRatings:
			exportCollection(openStore(), *collection)
		default:
			fmt.Println("collection must be one of: orders, messages, ratings")
			exportCmd.PrintDefaults()
			os.Exit(1)
		}
	default:
		fmt.Println("expected 'stats' or 'export' subcommand")
		os.Exit(1)
	}
}

func openStore() *store.DB {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./sodashop.db"
	}

	db, err := store.Open(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	// Ensure table exists if running cli before server
	if err := db.InitSchema(); err != nil {
		log.Fatalf("Failed to init schema: %v", err)
	}
	if err := db.Load(); err != nil {
		log.Fatalf("Failed to load collections: %v", err)
	}
	return db
}

func printStats(db *store.DB) {
	orders := store.ComputeOrderStats(db.Orders())
	messages := store.ComputeMessageStats(db.Messages())
	ratings := store.ComputeRatingStats(db.Ratings())

	fmt.Printf("Orders:   %d total, %d pending, %d completed\n", orders.Total, orders.Pending, orders.Completed)
	fmt.Printf("Messages: %d total, %d unread\n", messages.Total, messages.Unread)
	fmt.Printf("Ratings:  %d total, average %s\n", ratings.Total, ratings.FormatAverage())
}

func exportCollection(db *store.DB, name string) {
	raw, err := db.RawSnapshot(name)
	if err != nil {
		log.Fatalf("Failed to export %s: %v", name, err)
	}
	fmt.Println(raw)
}
