package main

import (
	"strik/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.ProfileModel{},
		model.FriendshipModel{},
		model.HabitModel{},
		model.HabitLogModel{},
		model.StoryModel{},
		model.NotificationModel{},
		model.WeeklyLeaderboardModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
