package database

import (
	"fmt"
	"log"

	config "github.com/anjiri1684/college_erp/configs"
	"github.com/anjiri1684/college_erp/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:                              false,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		DisableNestedTransaction:                 true,
		TranslateError:                           true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.Department{},
		&models.Subject{},
		&models.Student{},
		&models.Staff{},
		&models.TimetableSlot{},
		&models.Fee{},
		&models.FeeTransaction{},
		&models.Attendance{},
		&models.Exam{},
		&models.Mark{},
		&models.LeaveRequest{},
		&models.Event{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}
