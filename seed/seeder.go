package seed

import (
	"log"

	"Chronicle/models"

	"gorm.io/gorm"
)

var users = []models.User{
	{
		Username: "steven",
		Email:    "steven@example.com",
		Password: "password",
	},
	{
		Username: "martin",
		Email:    "luther@example.com",
		Password: "password",
	},
}

var groups = []models.Group{
	{
		Title:       "General",
		Slug:        "general",
		Description: "Anything goes",
	},
	{
		Title:       "Announcements",
		Slug:        "announcements",
		Description: "News from the team",
	},
}

var posts = []models.Post{
	{
		Content: "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua.",
	},
	{
		Content: "Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat.",
	},
}

// Load drops and recreates the demo data set. Development only.
func Load(db *gorm.DB) {
	err := db.Migrator().DropTable(
		&models.Comment{},
		&models.Follow{},
		&models.Post{},
		&models.Group{},
		&models.User{},
	)
	if err != nil {
		log.Fatalf("cannot drop table: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
	)
	if err != nil {
		log.Fatalf("cannot migrate table: %v", err)
	}

	for i := range users {
		if err := db.Create(&users[i]).Error; err != nil {
			log.Fatalf("cannot seed users table: %v", err)
		}
	}
	for i := range groups {
		if err := db.Create(&groups[i]).Error; err != nil {
			log.Fatalf("cannot seed groups table: %v", err)
		}
	}
	for i := range posts {
		posts[i].AuthorID = users[i%len(users)].ID
		posts[i].GroupID = &groups[i%len(groups)].ID
		if err := db.Create(&posts[i]).Error; err != nil {
			log.Fatalf("cannot seed posts table: %v", err)
		}
	}
}
