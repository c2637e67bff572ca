package seed

import (
	"fmt"
	"log"

	"murmur/internal/models"

	"gorm.io/gorm"
)

// Seeder orchestrates data generation for a database.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder over the given database.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db, opts)}
}

// ClearAll deletes all seeded data in FK-safe order. Groups survive so the
// built-in set keeps its IDs across reseeds.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	tables := []interface{}{
		&models.Comment{},
		&models.Follow{},
		&models.Post{},
		&models.User{},
	}
	for _, table := range tables {
		if err := s.db.Where("1 = 1").Delete(table).Error; err != nil {
			return fmt.Errorf("clear %T: %w", table, err)
		}
	}
	return nil
}

// SeedUsers creates count users plus a fixed set of well-known accounts used
// by the demo frontend and manual testing.
func (s *Seeder) SeedUsers(count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)

	wellKnown := []struct {
		username string
		admin    bool
	}{
		{"admin", true},
		{"leo", false},
		{"test", false},
	}
	for _, w := range wellKnown {
		if len(users) >= count {
			break
		}
		user, err := s.factory.CreateUser(func(u *models.User) {
			u.Username = w.username
			u.Email = fmt.Sprintf("%s@example.com", w.username)
			u.IsAdmin = w.admin
		})
		if err != nil {
			// A previous seed run may have left these behind.
			log.Printf("Skipping well-known user %s: %v", w.username, err)
			continue
		}
		users = append(users, user)
	}

	for i := len(users); i < count; i++ {
		// Suffix with the loop index so generated usernames cannot collide.
		user, err := s.factory.CreateUser(func(u *models.User) {
			u.Username = fmt.Sprintf("%s%d", u.Username, i)
			u.Email = fmt.Sprintf("%s@example.com", u.Username)
		})
		if err != nil {
			log.Printf("Failed to create user: %v", err)
			continue
		}
		users = append(users, user)
		logProgress("users", i)
	}

	if len(users) == 0 {
		return nil, fmt.Errorf("no users could be created")
	}
	return users, nil
}

// SeedPosts creates count posts spread across the given users and groups.
// Roughly a third of the posts land without any group.
func (s *Seeder) SeedPosts(users []*models.User, count int) ([]*models.Post, error) {
	var groups []models.Group
	if err := s.db.Find(&groups).Error; err != nil {
		return nil, fmt.Errorf("load groups: %w", err)
	}

	posts := make([]*models.Post, 0, count)
	batch := make([]*models.Post, 0, 100)
	for i := 0; i < count; i++ {
		author := users[s.factory.rng.Intn(len(users))]
		post := s.factory.BuildPost(author, func(p *models.Post) {
			if len(groups) > 0 && s.factory.rng.Float32() < 0.66 {
				id := groups[s.factory.rng.Intn(len(groups))].ID
				p.GroupID = &id
			}
		})
		batch = append(batch, post)

		if len(batch) == cap(batch) {
			if err := s.factory.CreatePostsBatch(batch); err != nil {
				return nil, err
			}
			posts = append(posts, batch...)
			batch = batch[:0]
		}
		logProgress("posts", i)
	}
	if err := s.factory.CreatePostsBatch(batch); err != nil {
		return nil, err
	}
	posts = append(posts, batch...)

	return posts, nil
}

// SeedComments creates count comments on random posts from random users.
func (s *Seeder) SeedComments(users []*models.User, posts []*models.Post, count int) error {
	if len(posts) == 0 {
		return nil
	}
	for i := 0; i < count; i++ {
		author := users[s.factory.rng.Intn(len(users))]
		post := posts[s.factory.rng.Intn(len(posts))]
		if _, err := s.factory.CreateComment(author, post); err != nil {
			return err
		}
		logProgress("comments", i)
	}
	return nil
}

// SeedFollows creates count follow edges between random distinct users.
// Collisions with existing edges are skipped, so the resulting edge count
// may come in under the target on dense meshes.
func (s *Seeder) SeedFollows(users []*models.User, count int) error {
	if len(users) < 2 {
		return nil
	}
	for i := 0; i < count; i++ {
		follower := users[s.factory.rng.Intn(len(users))]
		author := users[s.factory.rng.Intn(len(users))]
		if err := s.factory.CreateFollow(follower, author); err != nil {
			return err
		}
	}
	return nil
}

// Apply runs a full profile: optional clean, built-in and extra groups, then
// users, posts, comments, and follows.
func (s *Seeder) Apply(p Profile) error {
	log.Printf("Seeding profile %q: %d users, %d posts, %d comments, %d follows",
		p.Name, p.Users, p.Posts, p.Comments, p.Follows)

	if p.Clean {
		if err := s.ClearAll(); err != nil {
			return err
		}
	}

	if err := Groups(s.db); err != nil {
		return err
	}
	for _, g := range p.Groups {
		var group models.Group
		err := s.db.Where(models.Group{Slug: g.Slug}).
			Attrs(models.Group{Title: g.Title, Description: g.Description}).
			FirstOrCreate(&group).Error
		if err != nil {
			return fmt.Errorf("seed extra group %s: %w", g.Slug, err)
		}
	}

	users, err := s.SeedUsers(p.Users)
	if err != nil {
		return err
	}
	posts, err := s.SeedPosts(users, p.Posts)
	if err != nil {
		return err
	}
	if err := s.SeedComments(users, posts, p.Comments); err != nil {
		return err
	}
	if err := s.SeedFollows(users, p.Follows); err != nil {
		return err
	}

	log.Printf("Seeded %d users and %d posts", len(users), len(posts))
	return nil
}
