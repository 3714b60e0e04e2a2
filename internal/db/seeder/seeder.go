package seeder

import (
	"board-api/internal/app/board"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Seeder struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewSeeder(db *gorm.DB, logger *zap.Logger) *Seeder {
	return &Seeder{
		db:     db,
		logger: logger,
	}
}

func (s *Seeder) Seed() error {
	s.logger.Info("Running database seeders...")

	if err := s.seedBoards(); err != nil {
		return err
	}

	s.logger.Info("Database seeders completed successfully")
	return nil
}

func (s *Seeder) seedBoards() error {
	var count int64
	if err := s.db.Model(&board.Board{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		s.logger.Info("Boards already exist, skipping seed")
		return nil
	}

	boards := []board.Board{
		{Title: "공지사항", Content: "게시판 이용 수칙을 확인해 주세요.", Author: "관리자", IsActive: true},
		{Title: "Hello World", Content: "First post on the board.", Author: "admin", IsActive: true},
		{Title: "자유게시판 오픈", Content: "오늘도 좋은 하루 보내세요!", Author: "홍길동", IsActive: true},
	}

	if err := s.db.Create(&boards).Error; err != nil {
		return err
	}

	s.logger.Info("Seeded boards", zap.Int("count", len(boards)))
	return nil
}
