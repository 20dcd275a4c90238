// Command main is a terminal client for Retrospace. It drives the full
// interaction layer: probe-based backend selection, session restore, feed
// browsing, posting, and moderation.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"retrospace/internal/config"
	"retrospace/internal/document"
	"retrospace/internal/gateway"
	"retrospace/internal/ideas"
	"retrospace/internal/models"

	retro "retrospace/internal/app"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	store, err := document.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open document store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	gw := gateway.Select(ctx, cfg, store)
	a := retro.New(gw, store, ideas.NewFaker(0))
	if err := a.Start(ctx); err != nil {
		log.Fatalf("Failed to load initial data: %v", err)
	}

	fmt.Printf("retrospace (%s backend)\n", a.Mode())
	if v := a.Viewer(); v != nil {
		fmt.Printf("welcome back, %s\n", v.Username)
	}
	fmt.Println(`type "help" for commands`)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cmd, arg, _ := strings.Cut(line, " ")
		if cmd == "quit" || cmd == "exit" {
			break
		}
		if err := run(ctx, a, cmd, arg); err != nil {
			fmt.Println("error:", err)
		}
	}
	a.WaitForReplies()
}

func run(ctx context.Context, a *retro.App, cmd, arg string) error {
	switch cmd {
	case "help":
		fmt.Println("signup <name> | login <name> | logout | feed [query] | post <text> |")
		fmt.Println("comment <postID> <text> | like <postID> | follow <userID> | block <userID> |")
		fmt.Println("msg <userID> <text> | inbox | users | who | mood <text> | theme |")
		fmt.Println("ban <userID> [minutes] | unban <userID> | delete <postID> | wipe")
	case "signup":
		u, err := a.Signup(ctx, arg)
		if err != nil {
			return err
		}
		fmt.Printf("signed up as %s (%s)\n", u.Username, u.ID)
	case "login":
		u, err := a.Login(ctx, arg)
		if err != nil {
			return err
		}
		fmt.Printf("logged in as %s\n", u.Username)
	case "logout":
		return a.Logout(ctx)
	case "feed":
		for _, p := range a.Feed(arg) {
			printPost(&p)
		}
	case "post":
		p, err := a.CreatePost(ctx, models.PostTypeStatus, "", "", arg)
		if err != nil {
			return err
		}
		fmt.Println("posted", p.ID)
	case "comment":
		id, text, _ := strings.Cut(arg, " ")
		_, err := a.AddComment(ctx, id, text)
		return err
	case "like":
		_, err := a.ToggleLike(ctx, arg)
		return err
	case "follow":
		return a.Follow(ctx, arg)
	case "block":
		return a.Block(ctx, arg)
	case "msg":
		id, text, _ := strings.Cut(arg, " ")
		_, err := a.SendMessage(ctx, id, text)
		return err
	case "inbox":
		fmt.Printf("%d unread\n", a.UnreadCount())
		for _, m := range a.Inbox() {
			flag := " "
			if !m.Read {
				flag = "*"
			}
			fmt.Printf("%s [%s] %s -> %s: %s\n", flag, m.ID, m.SenderID, m.ReceiverID, m.Content)
		}
	case "users":
		for _, u := range a.Users() {
			fmt.Printf("[%s] %s admin=%v banned=%v\n", u.ID, u.Username, u.IsAdmin, u.IsBanned)
		}
	case "who":
		fmt.Printf("%d online; suggestions:\n", a.OnlineCount())
		for _, u := range a.Suggestions(5) {
			fmt.Printf("  [%s] %s\n", u.ID, u.Username)
		}
	case "mood":
		_, err := a.UpdateProfileField(ctx, "mood", arg)
		return err
	case "theme":
		u, err := a.CycleTheme(ctx)
		if err != nil {
			return err
		}
		fmt.Println("theme is now", u.Theme.BackgroundColor)
	case "ban":
		id, mins, _ := strings.Cut(arg, " ")
		minutes := -1
		if mins != "" {
			n, err := strconv.Atoi(mins)
			if err != nil {
				return err
			}
			minutes = n
		}
		return a.Ban(ctx, id, minutes)
	case "unban":
		return a.Unban(ctx, arg)
	case "delete":
		return a.DeletePost(ctx, arg)
	case "wipe":
		return a.Wipe(ctx)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func printPost(p *models.Post) {
	edited := ""
	if p.IsEdited {
		edited = " (edited)"
	}
	if p.Type == models.PostTypeBlog {
		fmt.Printf("[%s] %s: %s%s\n  %s\n", p.ID, p.AuthorName, p.Title, edited, p.Content)
	} else {
		fmt.Printf("[%s] %s: %s%s\n", p.ID, p.AuthorName, p.Content, edited)
	}
	fmt.Printf("  %d likes, %d comments", len(p.Likes), len(p.Comments))
	if len(p.Tags) > 0 {
		fmt.Printf(", tags %s", strings.Join(p.Tags, " "))
	}
	fmt.Println()
}
