package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"campaign-hub/domain/event"

	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
)

// watch subscribes to one campaign stream and prints what a player overlay would receive.
func main() {
	_ = godotenv.Load()
	defaultAddr := os.Getenv("HUB_ADDR")
	if defaultAddr == "" {
		defaultAddr = "localhost:8000"
	}
	addr := flag.String("addr", defaultAddr, "Campaign hub host:port")
	campaign := flag.String("campaign", "", "Campaign id to watch")
	keepAlive := flag.Duration("keepalive", 20*time.Second, "Interval of the text ping keep-alive")
	flag.Parse()

	if *campaign == "" {
		fmt.Fprintln(os.Stderr, "missing -campaign")
		os.Exit(2)
	}
	if err := watch(*addr, *campaign, *keepAlive); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func watch(addr, campaignID string, keepAlive time.Duration) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	u := url.URL{Scheme: "ws", Host: addr, Path: "/campaigns/" + campaignID + "/ws"}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", u.String(), err)
	}
	defer conn.Close()
	color.Info.Printf("Connected to %s\n", u.String())

	go func() {
		ticker := time.NewTicker(keepAlive)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"))
				_ = conn.Close()
				return
			case <-ticker.C:
				// Single writer, the read loop below never writes
				_ = conn.WriteMessage(websocket.TextMessage, []byte("ping"))
			}
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if closeErr, ok := err.(*websocket.CloseError); ok {
				color.Warn.Printf("Closed by server: %d %s\n", closeErr.Code, closeErr.Text)
				return nil
			}
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		render(data)
	}
}

func render(data []byte) {
	if string(data) == "pong" {
		return
	}
	kind, err := event.PeekKind(data)
	if err != nil {
		color.Error.Printf("Unreadable frame: %v\n", err)
		return
	}
	header := color.New(color.BgBlack, color.FgGreen).Render(fmt.Sprintf(" %s %s ", time.Now().Format("15:04:05"), kind))
	fmt.Println(header)

	if kind != event.KindBootstrap {
		fmt.Println(string(data))
		return
	}
	var bootstrap event.Bootstrap
	if err = json.Unmarshal(data, &bootstrap); err != nil {
		color.Error.Printf("Invalid bootstrap: %v\n", err)
		return
	}
	fmt.Printf("%s (%s)\n", bootstrap.Campaign.Name, bootstrap.Campaign.Slug)

	onScreen := make(map[string]int, len(bootstrap.Roster.CharacterIDs))
	for i, id := range bootstrap.Roster.CharacterIDs {
		onScreen[id.String()] = i + 1
	}
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Roster", "Name", "Class", "Level", "Player", "ID"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, c := range bootstrap.Characters {
		position := "-"
		if p, ok := onScreen[c.ID.String()]; ok {
			position = strconv.Itoa(p)
		}
		table.Append([]string{position, c.Name, c.ClassName, strconv.Itoa(c.Level), c.PlayerName, c.ID.String()[:8]})
	}
	table.Render()
}
