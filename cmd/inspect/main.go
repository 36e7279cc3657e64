// Command inspect dumps the message store as a table for local debugging.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

type storedMessage struct {
	ID         string `json:"id"`
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
	Text       string `json:"text"`
	Language   string `json:"language"`
	Status     string `json:"status"`
	Seq        uint64 `json:"seq"`
	CreatedAt  int64  `json:"createdAt"`
}

func main() {
	dbPath := flag.String("db", "/tmp/chat-direct/badger", "Path to badger DB")
	// Default scans primary records only; msgid: and seq: entries are indexes.
	prefix := flag.String("prefix", "msg:", "Prefix to scan")
	flag.Parse()

	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithLoggingLevel(badger.ERROR))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Seq", "Time", "From", "To", "Status", "Text"})
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

	count := 0
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			err := item.Value(func(v []byte) error {
				var m storedMessage
				if err := json.Unmarshal(v, &m); err != nil {
					fmt.Printf("Error unmarshaling key %s: %v\n", string(item.Key()), err)
					return nil
				}

				displayFrom := m.SenderID
				if len(displayFrom) > 8 {
					displayFrom = displayFrom[:8]
				}
				displayTo := m.ReceiverID
				if len(displayTo) > 8 {
					displayTo = displayTo[:8]
				}

				table.Append([]string{
					string(item.Key()),
					fmt.Sprintf("%d", m.Seq),
					time.Unix(0, m.CreatedAt).Format("15:04:05"),
					displayFrom,
					displayTo,
					colorStatus(m.Status),
					m.Text,
				})
				count++
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
	fmt.Printf("\n%d message(s)\n", count)
}

func colorStatus(status string) string {
	switch status {
	case "sent":
		return color.Yellow.Sprint(status)
	case "delivered":
		return color.Cyan.Sprint(status)
	case "read":
		return color.Green.Sprint(status)
	default:
		return status
	}
}
