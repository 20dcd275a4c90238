// Package seed creates demo data for development. It writes through the
// gateway so seeded records obey the same storage contracts as user-created
// ones.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"retrospace/internal/app"
	"retrospace/internal/feed"
	"retrospace/internal/gateway"
	"retrospace/internal/ideas"
	"retrospace/internal/models"

	"github.com/brianvoe/gofakeit/v6"
)

// Options controls how much demo data is generated.
type Options struct {
	Users    int
	Posts    int
	Messages int
	Seed     uint64
}

// DefaultOptions is a small but lively dataset.
var DefaultOptions = Options{Users: 8, Posts: 20, Messages: 12, Seed: 0}

// Run populates the store behind gw with a demo network: users with preset
// themes, mutual follow edges, tagged posts with comments and likes, and a
// handful of direct messages.
func Run(ctx context.Context, gw gateway.Gateway, opts Options) error {
	faker := gofakeit.New(int64(opts.Seed))
	rng := rand.New(rand.NewSource(int64(opts.Seed) + 1))
	gen := ideas.NewFaker(opts.Seed)

	users := make([]models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		u := models.User{
			ID:           models.NewID(models.UserIDPrefix),
			Username:     strings.ToLower(faker.Gamertag()),
			AvatarURL:    fmt.Sprintf("https://picsum.photos/seed/%s/120/120", faker.UUID()),
			Tagline:      faker.HipsterSentence(4),
			Bio:          gen.Bio(),
			Mood:         gen.Mood(),
			IsOnline:     rng.Intn(3) > 0,
			Theme:        app.PresetThemes[i%len(app.PresetThemes)],
			IsAdmin:      i == 0,
			BlockedUsers: []string{},
			Followers:    []string{},
			Following:    []string{},
		}
		if err := gw.CreateUser(ctx, &u); err != nil {
			// Gamertags collide occasionally; skip and keep going.
			if models.HasCode(err, models.CodeConflict) {
				continue
			}
			return err
		}
		users = append(users, u)
	}
	if len(users) < 2 {
		return fmt.Errorf("seed produced too few users: %d", len(users))
	}

	// Follow mesh: each user follows a few random others.
	for i := range users {
		for _, j := range rng.Perm(len(users))[:min(rng.Intn(3)+1, len(users))] {
			if i == j || users[i].Follows(users[j].ID) {
				continue
			}
			users[i].Following = append(users[i].Following, users[j].ID)
			users[j].Followers = append(users[j].Followers, users[i].ID)
		}
	}
	for i := range users {
		if err := gw.UpdateUser(ctx, &users[i]); err != nil {
			return err
		}
	}

	for i := 0; i < opts.Posts; i++ {
		author := users[rng.Intn(len(users))]
		p := models.Post{
			ID:           models.NewID(models.PostIDPrefix),
			Type:         models.PostTypeStatus,
			AuthorID:     author.ID,
			AuthorName:   author.Username,
			AuthorAvatar: author.AvatarURL,
			Content:      gen.Status(),
			Timestamp:    faker.Date().Format("Jan 2, 2006 3:04 PM"),
			Comments:     []models.Comment{},
			Likes:        []string{},
		}
		if rng.Intn(4) == 0 {
			p.Type = models.PostTypeBlog
			p.Title = gen.BlogTitle()
			p.Category = faker.BS()
			p.Content = gen.BlogBody()
		}
		p.Tags = feed.ExtractTags(p.Content)

		for _, j := range rng.Perm(len(users))[:min(rng.Intn(4), len(users))] {
			p.Likes = append(p.Likes, users[j].ID)
		}
		if rng.Intn(2) == 0 {
			commenter := users[rng.Intn(len(users))]
			p.Comments = append(p.Comments, models.Comment{
				ID:         models.NewID(models.CommentIDPrefix),
				AuthorID:   commenter.ID,
				AuthorName: commenter.Username,
				Content:    gen.Reply(),
				Timestamp:  faker.Date().Format("Jan 2, 2006 3:04 PM"),
			})
		}
		if err := gw.CreatePost(ctx, &p); err != nil {
			return err
		}
	}

	for i := 0; i < opts.Messages; i++ {
		from := users[rng.Intn(len(users))]
		to := users[rng.Intn(len(users))]
		if from.ID == to.ID {
			continue
		}
		ts := faker.Date()
		m := models.Message{
			ID:         models.NewID(models.MessageIDPrefix),
			SenderID:   from.ID,
			ReceiverID: to.ID,
			Content:    faker.Question(),
			Timestamp:  ts.Format("Jan 2, 2006 3:04 PM"),
			CreatedAt:  ts.UnixMilli(),
			Read:       rng.Intn(2) == 0,
		}
		if err := gw.CreateMessage(ctx, &m); err != nil {
			return err
		}
	}
	return nil
}
