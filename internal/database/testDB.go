package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	m "github.com/VishardMehta/TextDrop/internal/model"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported seeded records, available to any test package using GetTestDB.
var (
	TestTextShare m.SharedContent
	TestFileShare m.SharedContent
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	// Database configuration
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &DBConfig{
		useConstr: true,
		Constr:    fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
	}

	db, err := NewDBInstance(config)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	// Seed sample shared content records
	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts one text record and one file record if none exist.
func seedTestData(db *DBinstanceStruct) error {
	var count int64
	if err := db.Model(&m.SharedContent{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return loadTestData(db)
	}

	fileName := "notes.txt"
	fileSize := int64(len("seeded file body"))
	contentType := "text/plain"

	records := []m.SharedContent{
		{
			ShortKey: "seedTx",
			Content:  []byte("seeded text body"),
		},
		{
			ShortKey:    "seedFl",
			Content:     []byte("seeded file body"),
			IsFile:      true,
			FileName:    &fileName,
			FileSize:    &fileSize,
			ContentType: &contentType,
		},
	}

	if err := db.Create(&records).Error; err != nil {
		return err
	}

	TestTextShare = records[0]
	TestFileShare = records[1]

	return nil
}

// loadTestData populates exported variables when records already exist.
func loadTestData(db *DBinstanceStruct) error {
	if err := db.Where("short_key = ?", "seedTx").First(&TestTextShare).Error; err != nil {
		return err
	}
	return db.Where("short_key = ?", "seedFl").First(&TestFileShare).Error
}
