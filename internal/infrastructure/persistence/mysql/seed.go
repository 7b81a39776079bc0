package mysql

import (
	"context"
	"log"

	"gorm.io/gorm"

	"github.com/bookverse/inventory/internal/domain/book"
	"github.com/bookverse/inventory/internal/domain/inventory"
	apperrors "github.com/bookverse/inventory/pkg/errors"
	"github.com/google/uuid"
)

// demoBook 演示数据条目
type demoBook struct {
	title    string
	subtitle string
	authors  []string
	genres   []string
	desc     string
	cents    int64
	cover    string
	rating   float64
	stock    int64
}

// demoBooks 演示图书(首次启动时写入)
var demoBooks = []demoBook{
	{
		title:   "The Pragmatic Programmer",
		authors: []string{"David Thomas", "Andrew Hunt"},
		genres:  []string{"Programming", "Software Engineering"},
		desc:    "Your journey to mastery, from requirements to deployment.",
		cents:   4999, cover: "https://covers.bookverse.dev/pragprog.jpg",
		rating: 4.7, stock: 42,
	},
	{
		title:    "Designing Data-Intensive Applications",
		subtitle: "The Big Ideas Behind Reliable, Scalable, and Maintainable Systems",
		authors:  []string{"Martin Kleppmann"},
		genres:   []string{"Databases", "Distributed Systems"},
		desc:     "A deep dive into the architecture of modern data systems.",
		cents:    5499, cover: "https://covers.bookverse.dev/ddia.jpg",
		rating: 4.8, stock: 17,
	},
	{
		title:   "The Go Programming Language",
		authors: []string{"Alan A. A. Donovan", "Brian W. Kernighan"},
		genres:  []string{"Programming", "Go"},
		desc:    "The authoritative resource for writing clear and idiomatic Go.",
		cents:   3999, cover: "https://covers.bookverse.dev/gopl.jpg",
		rating: 4.6, stock: 3,
	},
	{
		title:   "Release It!",
		subtitle: "Design and Deploy Production-Ready Software",
		authors: []string{"Michael T. Nygard"},
		genres:  []string{"Operations", "Software Engineering"},
		desc:    "Patterns and antipatterns for software that survives production.",
		cents:   4599, cover: "https://covers.bookverse.dev/releaseit.jpg",
		rating: 4.4, stock: 0,
	},
}

// SeedDemoData 写入演示数据(幂等:books表非空时跳过)
// 每本书初始化对应的库存记录,有初始库存的同时写入一条stock_in流水,
// 保证流水审计链从第一天起完整
func SeedDemoData(ctx context.Context, db *gorm.DB, reorderPoint int64) error {
	var count int64
	if err := db.WithContext(ctx).Model(&BookModel{}).Count(&count).Error; err != nil {
		return apperrors.Wrap(err, "检查演示数据失败")
	}
	if count > 0 {
		return nil
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, d := range demoBooks {
			rating := d.rating
			b := &book.Book{
				ID:            uuid.New().String(),
				Title:         d.title,
				Subtitle:      d.subtitle,
				Authors:       d.authors,
				Genres:        d.genres,
				Description:   d.desc,
				PriceCents:    d.cents,
				CoverImageURL: d.cover,
				Rating:        &rating,
				IsActive:      true,
			}
			if err := tx.Create(toBookModel(b)).Error; err != nil {
				return err
			}

			record := inventory.NewZeroStockRecord(b.ID, reorderPoint)
			if d.stock > 0 {
				stockTx := inventory.NewStockTransaction(b.ID, d.stock, 0, "初始入库(演示数据)")
				record.Apply(d.stock)
				if err := tx.Create(toTransactionModel(stockTx)).Error; err != nil {
					return err
				}
			}
			if err := tx.Create(toRecordModel(record)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return apperrors.Wrap(err, "写入演示数据失败")
	}

	log.Printf("✓ 演示数据已写入: %d本图书", len(demoBooks))
	return nil
}
