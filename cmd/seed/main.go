package main

import (
	channelRepo "Seenit/internal/app/channel/repository"
	commentRepo "Seenit/internal/app/comment/repository"
	"Seenit/internal/app/config"
	"Seenit/internal/app/database"
	"Seenit/internal/app/models"
	postRepo "Seenit/internal/app/post/repository"
	userRepo "Seenit/internal/app/user/repository"
	"flag"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

// Generates random test data: channels, users, posts and reply chains
// with random ratings.

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

type seeder struct {
	db       *sqlx.DB
	users    *userRepo.Repository
	channels *channelRepo.Repository
	posts    *postRepo.Repository
	comments *commentRepo.Repository

	usernames []string
	userIDs   map[string]uint64
}

func main() {
	threadCount := flag.Int("thread_count", 10, "number of posts to create")
	rootComments := flag.Int("root_comments", 10, "number of root comments per post")
	flag.Parse()

	cfg := config.LoadConfig()
	postgres, err := database.NewPostgres(cfg)
	if err != nil {
		logrus.Fatal(err)
	}
	defer postgres.Close()

	if err := postgres.RunMigrations("migrations/001_create_tables.sql"); err != nil {
		logrus.Fatal(err)
	}

	db := postgres.GetPostgres()
	s := &seeder{
		db:       db,
		users:    userRepo.NewRepo(db),
		channels: channelRepo.NewRepo(db),
		posts:    postRepo.NewRepo(db),
		comments: commentRepo.NewRepo(db),
		userIDs:  make(map[string]uint64),
	}
	for i := 0; i < 100; i++ {
		s.usernames = append(s.usernames, randomWord(5, 12))
	}

	if err := s.run(*threadCount, *rootComments); err != nil {
		logrus.Fatal(err)
	}
	logrus.Info("seeding done")
}

func (s *seeder) run(threadCount, rootComments int) error {
	for i := 0; i < threadCount; i++ {
		logrus.Infof("thread %d out of %d", i+1, threadCount)

		author, err := s.getOrCreateUser(s.randomUsername())
		if err != nil {
			return err
		}
		channel, err := s.createChannel()
		if err != nil {
			return err
		}

		post := models.Post{
			ChannelID: channel,
			UserID:    author,
			Title:     randomSentence(20, 10),
			Text:      randomSentence(50, 12),
			Created:   strfmt.DateTime(time.Now()),
		}
		if err := s.posts.CreatePost(&post); err != nil {
			return err
		}
		if err := s.setRating("posts", post.ID); err != nil {
			return err
		}

		for j := 0; j < rootComments; j++ {
			commentAuthor, err := s.getOrCreateUser(s.randomUsername())
			if err != nil {
				return err
			}
			comment := models.Comment{
				PostID:  post.ID,
				UserID:  commentAuthor,
				Text:    randomSentence(100, 12),
				Created: strfmt.DateTime(time.Now()),
			}
			if err := s.comments.CreateRootComment(&comment); err != nil {
				return err
			}
			if err := s.setRating("comments", comment.ID); err != nil {
				return err
			}
			if err := s.addReplies(comment.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

// addReplies walks down from a root comment, flipping a coin at each
// level to decide whether to nest one deeper.
func (s *seeder) addReplies(parentID uint64) error {
	for rand.Intn(2) == 1 {
		author, err := s.getOrCreateUser(s.randomUsername())
		if err != nil {
			return err
		}
		reply := models.Comment{
			UserID:  author,
			Text:    randomSentence(60, 12),
			Created: strfmt.DateTime(time.Now()),
		}
		if err := s.comments.CreateReply(parentID, &reply); err != nil {
			return err
		}
		if err := s.setRating("comments", reply.ID); err != nil {
			return err
		}
		parentID = reply.ID
	}
	return nil
}

func (s *seeder) setRating(table string, id uint64) error {
	query := fmt.Sprintf("UPDATE %s SET rating = $1 WHERE id = $2", table)
	_, err := s.db.Exec(query, rand.Intn(2001)-1000, id)
	return err
}

func (s *seeder) randomUsername() string {
	return s.usernames[rand.Intn(len(s.usernames))]
}

func (s *seeder) getOrCreateUser(username string) (uint64, error) {
	if id, ok := s.userIDs[username]; ok {
		return id, nil
	}
	user := models.User{
		Username:       username,
		Email:          username + "@seenit.test",
		HashedPassword: "!seeded",
		Created:        time.Now(),
	}
	if err := s.users.CreateUser(&user); err != nil {
		return 0, err
	}
	s.userIDs[username] = user.ID
	return user.ID, nil
}

func (s *seeder) createChannel() (uint64, error) {
	channel := models.Channel{
		Name:    fmt.Sprintf("%s-%d", strings.ToLower(randomWord(4, 8)), rand.Intn(10000)),
		Created: time.Now(),
	}
	if err := s.channels.CreateChannel(&channel); err != nil {
		return 0, err
	}
	return channel.ID, nil
}

func randomWord(minLen, maxLen int) string {
	n := minLen + rand.Intn(maxLen-minLen+1)
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(letters[rand.Intn(len(letters))])
	}
	return b.String()
}

func randomSentence(maxWords, maxWordLen int) string {
	words := make([]string, 1+rand.Intn(maxWords))
	for i := range words {
		words[i] = randomWord(1, maxWordLen)
	}
	return strings.Join(words, " ")
}
