package main

import (
	"fmt"
	"log"

	"github.com/cornerstone/internal/config"
	"github.com/cornerstone/internal/db"
	"github.com/cornerstone/internal/service"
)

// 演示数据生成器：往数据库里写入几条作品集文章和媒体记录，
// 方便本地起服务后直接看到效果。
func main() {
	cfg := config.Load()
	if err := db.Init(cfg.DatabaseURL); err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	fmt.Println("开始生成演示数据...")

	posts := service.NewPostService(db.DB)
	count := 0
	for _, input := range demoPosts() {
		if _, err := posts.Create(input); err != nil {
			log.Fatal("创建文章失败:", err)
		}
		count++
	}

	media := service.NewMediaService(db.DB)
	format := "jpg"
	width, height := 1600, 1000
	if _, err := media.Insert(service.MediaInput{
		PublicID:     "corner-stone/posts/demo-hero",
		SecureURL:    "https://res.cloudinary.com/demo/image/upload/demo-hero.jpg",
		ResourceType: db.ResourceTypeImage,
		Format:       &format,
		Width:        &width,
		Height:       &height,
	}); err != nil {
		log.Fatal("登记媒体失败:", err)
	}

	fmt.Println("演示数据生成完成！")
	fmt.Printf("文章: %d 篇\n", count)
	fmt.Println("媒体: 1 条")
}

func demoPosts() []service.PostInput {
	two := 2
	return []service.PostInput{
		{
			Title:       "Climate",
			Type:        "Brand Identity",
			Description: "Identity refresh for a climate nonprofit.",
			Images: []string{
				"https://res.cloudinary.com/demo/image/upload/climate-1.jpg",
				"https://res.cloudinary.com/demo/image/upload/climate-2.jpg",
			},
			Tags:         []string{"Branding", "Print"},
			ImageFit:     db.ImageFitContain,
			ImageSize:    db.ImageSizeMedium,
			ImageColumns: &two,
		},
		{
			Title:       "Harbor Market",
			Type:        "Packaging",
			Description: "Seasonal packaging line for a farmers market collective.",
			Images: []string{
				"https://res.cloudinary.com/demo/image/upload/harbor-1.jpg",
			},
			Tags:      []string{"Packaging"},
			ImageFit:  db.ImageFitCover,
			ImageSize: db.ImageSizeLarge,
		},
		{
			Title:       "Studio Site",
			Type:        "Web Design",
			Description: "Marketing site concept with a gallery-first layout.",
			ImageFit:    db.ImageFitContain,
			ImageSize:   db.ImageSizeSmall,
		},
	}
}
