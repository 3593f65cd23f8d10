package main

import (
	"bufio"
	"chat-sync/auth"
	"chat-sync/client"
	"chat-sync/domain"
	"chat-sync/infrastructure/blob"
	"chat-sync/infrastructure/docstore"
	"chat-sync/internal"
	"chat-sync/repositories"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the store, the session and the line driver. Every defer runs
// before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	opts := badger.DefaultOptions(config.BadgerFilepath).WithLoggingLevel(badger.WARNING)
	if config.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.WARNING)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	blobs, err := blob.NewLocalStore(config.BlobBasePath)
	if err != nil {
		return fmt.Errorf("blob store failed: %w", err)
	}

	// 3. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Session
	session := client.Start(ctx, client.Dependencies{
		Log:             log,
		Store:           docstore.NewStore(db, log),
		Credentials:     repositories.NewCredentialRepository(db),
		Blobs:           blobs,
		Tokens:          auth.NewTokenManager(config.AuthTokenSecret, config.AuthTokenDuration),
		BufferSize:      config.BufferSize,
		RestartInterval: config.RestartInterval,
		MaxAvatarSize:   config.MaxAvatarSize,
	})
	defer session.Shutdown()

	go printEvents(ctx, session)

	// 5. Line driver
	lines := make(chan string)
	go readLines(os.Stdin, lines)
	printHelp()
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if quit := execute(session, line); quit {
				return nil
			}
		}
	}
}

func readLines(r io.Reader, lines chan<- string) {
	defer close(lines)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines <- strings.TrimSpace(scanner.Text())
	}
}

// printEvents shows one-shot messages as soon as they are published.
func printEvents(ctx context.Context, session *client.Session) {
	events := session.View().LastEvent
	for {
		changed := events.Changed()
		if msg, ok := events.Consume(); ok {
			fmt.Println(color.New(color.FgRed, color.OpBold).Render("! " + msg))
		}
		select {
		case <-ctx.Done():
			return
		case <-changed:
		}
	}
}

func execute(session *client.Session, line string) bool {
	command, rest, _ := strings.Cut(line, " ")
	args := strings.Fields(rest)
	switch command {
	case "":
	case "signup":
		if len(args) != 4 {
			fmt.Println("usage: signup <name> <phone> <email> <password>")
			return false
		}
		session.SignUp(args[0], args[1], args[2], args[3])
	case "login":
		if len(args) != 2 {
			fmt.Println("usage: login <email> <password>")
			return false
		}
		session.Login(args[0], args[1])
	case "restore":
		session.Restore(strings.TrimSpace(rest))
	case "logout":
		session.Logout()
	case "token":
		fmt.Println(session.Token())
	case "name":
		session.SaveProfile(domain.ProfileFields{DisplayName: lo.ToPtr(strings.TrimSpace(rest))})
	case "phone":
		session.SaveProfile(domain.ProfileFields{PhoneNumber: lo.ToPtr(strings.TrimSpace(rest))})
	case "avatar":
		uploadAvatar(session, strings.TrimSpace(rest))
	case "add":
		session.AddContact(strings.TrimSpace(rest))
	case "open":
		session.OpenChat(strings.TrimSpace(rest))
	case "close":
		session.CloseChat()
	case "send":
		session.SendMessage(session.View().ActiveChat.Get(), rest)
	case "me":
		printProfile(session)
	case "chats":
		printChats(session)
	case "messages":
		printMessages(session)
	case "help":
		printHelp()
	case "quit", "exit":
		return true
	default:
		fmt.Printf("unknown command %q, type help\n", command)
	}
	return false
}

func uploadAvatar(session *client.Session, path string) {
	file, err := os.Open(path)
	if err != nil {
		fmt.Println(color.Red.Render(err.Error()))
		return
	}
	defer file.Close()
	session.UploadAvatar(file)
}

func printHelp() {
	fmt.Println(color.New(color.BgBlack, color.FgGreen).Render("  ====== chat-sync ======  "))
	fmt.Println("signup <name> <phone> <email> <password> | login <email> <password> | restore <token> | logout | token")
	fmt.Println("name <display name> | phone <number> | avatar <file> | me")
	fmt.Println("add <phone> | chats | open <chat id> | send <text> | messages | close | quit")
}

func printProfile(session *client.Session) {
	view := session.View()
	profile := view.Profile.Get()
	if profile == nil {
		fmt.Printf("%s (no profile)\n", view.Session.Get())
		return
	}
	table := newTable([]string{"Id", "Name", "Number", "Image"})
	table.Append([]string{profile.ID, profile.DisplayName, profile.PhoneNumber, profile.AvatarRef})
	table.Render()
}

func printChats(session *client.Session) {
	view := session.View()
	if view.BusyChats.Get() {
		fmt.Println("loading chats...")
	}
	self := view.Principal.Get()
	table := newTable([]string{"Chat", "Contact", "Number"})
	for _, chat := range view.ChatList.Get() {
		peer, _ := chat.Peer(self)
		table.Append([]string{chat.ChatID, peer.DisplayName, peer.PhoneNumber})
	}
	table.Render()
}

func printMessages(session *client.Session) {
	view := session.View()
	if view.BusyMessages.Get() {
		fmt.Println("loading messages...")
	}
	self := view.Principal.Get()
	for _, message := range view.ActiveMessages.Get() {
		at := message.SentAt.Local().Format("15:04:05")
		if message.SenderID == self {
			fmt.Printf("%s %s\n", at, color.Cyan.Render("me: "+message.Body))
			continue
		}
		fmt.Printf("%s %s\n", at, color.Green.Render(message.Body))
	}
}

func newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}
