package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/fxamacker/cbor/v2"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
)

var secretFields = map[string]bool{"admin_token": true, "password_hash": true}

func main() {
	_ = godotenv.Load()
	dbPath := flag.String("db", os.Getenv("BADGER_FILEPATH"), "Path to badger DB")
	prefix := flag.String("prefix", "campaign:", "Prefix to scan, empty for the whole keyspace")
	showSecrets := flag.Bool("secrets", false, "Print admin tokens and password hashes")
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("missing -db or BADGER_FILEPATH")
	}
	// Read-only so a running server keeps its lock
	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Kind", "Size", "Detail"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.Key())
			err := item.Value(func(v []byte) error {
				table.Append([]string{key, kindOf(key), fmt.Sprint(len(v)), describe(v, *showSecrets)})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}
	table.Render()
}

func kindOf(key string) string {
	kind, _, _ := strings.Cut(key, ":")
	return kind
}

// describe prints CBOR records as sorted key=value pairs; index values are raw.
func describe(v []byte, showSecrets bool) string {
	if len(v) == 0 {
		return "-"
	}
	var record map[string]any
	if err := cbor.Unmarshal(v, &record); err != nil {
		return string(v)
	}
	fields := make([]string, 0, len(record))
	for name, value := range record {
		if secretFields[name] && !showSecrets {
			value = "***"
		}
		text := fmt.Sprint(value)
		if len(text) > 40 {
			text = text[:37] + "..."
		}
		fields = append(fields, name+"="+text)
	}
	sort.Strings(fields)
	return strings.Join(fields, " ")
}
