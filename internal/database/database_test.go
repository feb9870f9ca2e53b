package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/annolab/annotator-api/internal/models"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name        string
		dbPath      string
		wantErr     bool
		checkResult func(*testing.T, *DB)
	}{
		{
			name:    "successful connection with in-memory database",
			dbPath:  ":memory:",
			wantErr: false,
			checkResult: func(t *testing.T, conn *DB) {
				assert.NotNil(t, conn)
				assert.NotNil(t, conn.DB)
			},
		},
		{
			name:    "successful connection with file database",
			dbPath:  filepath.Join(t.TempDir(), "test.db"),
			wantErr: false,
			checkResult: func(t *testing.T, conn *DB) {
				assert.NotNil(t, conn)
				assert.NotNil(t, conn.DB)
			},
		},
		{
			name:    "empty database path creates in-memory database",
			dbPath:  "",
			wantErr: false,
			checkResult: func(t *testing.T, conn *DB) {
				// Empty path creates an in-memory database
				assert.NotNil(t, conn)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, err := Initialize(tt.dbPath, false)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)

			if tt.checkResult != nil {
				tt.checkResult(t, conn)
			}

			// Cleanup
			if conn != nil {
				conn.Close()
			}
		})
	}
}

func TestDB_Close(t *testing.T) {
	// Create a connection
	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)
	require.NotNil(t, conn)

	// Close the connection
	err = conn.Close()
	assert.NoError(t, err)

	// Verify connection is closed by checking if health check fails
	// This is more reliable than trying to execute SQL which may vary by driver
	err = conn.HealthCheck()
	assert.Error(t, err, "HealthCheck should fail after database is closed")
}

func TestDB_HealthCheck(t *testing.T) {
	tests := []struct {
		name      string
		setupConn func() (*DB, func())
		wantErr   bool
	}{
		{
			name: "healthy connection",
			setupConn: func() (*DB, func()) {
				conn, _ := Initialize(":memory:", false)
				return conn, func() {
					if conn != nil {
						conn.Close()
					}
				}
			},
			wantErr: false,
		},
		{
			name: "closed connection",
			setupConn: func() (*DB, func()) {
				conn, _ := Initialize(":memory:", false)
				conn.Close()
				return conn, func() {}
			},
			wantErr: true,
		},
		{
			name: "nil connection",
			setupConn: func() (*DB, func()) {
				return nil, func() {}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, cleanup := tt.setupConn()
			defer cleanup()

			err := conn.HealthCheck()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDB_AutoMigrate(t *testing.T) {
	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)
	require.NotNil(t, conn)
	defer conn.Close()

	err = conn.AutoMigrate(&models.AnnotationRecord{})
	require.NoError(t, err)

	// Check if table exists
	var count int64
	err = conn.DB.Raw("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='annotation_records'").Scan(&count).Error
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestDB_RecordOperations(t *testing.T) {
	// Create connection and migrate
	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)
	require.NotNil(t, conn)
	defer conn.Close()

	err = conn.AutoMigrate(&models.AnnotationRecord{})
	require.NoError(t, err)

	t.Run("create record", func(t *testing.T) {
		record := models.AnnotationRecord{
			ImageName:   "photo.png",
			Format:      "YOLO",
			ImageWidth:  640,
			ImageHeight: 480,
			BoxCount:    2,
		}

		err := conn.DB.Create(&record).Error
		assert.NoError(t, err)
		assert.NotZero(t, record.ID)
		assert.NotEmpty(t, record.UUID, "BeforeCreate should assign a UUID")
	})

	t.Run("find record", func(t *testing.T) {
		var record models.AnnotationRecord
		err := conn.DB.First(&record, "image_name = ?", "photo.png").Error
		assert.NoError(t, err)
		assert.Equal(t, "YOLO", record.Format)
		assert.Equal(t, 640, record.ImageWidth)
	})

	t.Run("duplicate image name rejected", func(t *testing.T) {
		duplicate := models.AnnotationRecord{
			ImageName:   "photo.png",
			Format:      "Pascal VOC",
			ImageWidth:  100,
			ImageHeight: 100,
		}
		err := conn.DB.Create(&duplicate).Error
		assert.Error(t, err, "image_name carries a unique index")
	})

	t.Run("update record", func(t *testing.T) {
		err := conn.DB.Model(&models.AnnotationRecord{}).
			Where("image_name = ?", "photo.png").
			Update("box_count", 5).Error
		assert.NoError(t, err)

		var record models.AnnotationRecord
		conn.DB.First(&record, "image_name = ?", "photo.png")
		assert.Equal(t, 5, record.BoxCount)
	})

	t.Run("delete record", func(t *testing.T) {
		err := conn.DB.Where("image_name = ?", "photo.png").Delete(&models.AnnotationRecord{}).Error
		assert.NoError(t, err)

		var count int64
		conn.DB.Model(&models.AnnotationRecord{}).Where("image_name = ?", "photo.png").Count(&count)
		assert.Equal(t, int64(0), count)
	})
}

func TestDB_ConnectionPool(t *testing.T) {
	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)
	require.NotNil(t, conn)
	defer conn.Close()

	// Get underlying SQL DB
	sqlDB, err := conn.DB.DB()
	require.NoError(t, err)

	// Check connection pool settings
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	// Verify settings
	stats := sqlDB.Stats()
	assert.LessOrEqual(t, stats.Idle, 5)
	assert.GreaterOrEqual(t, stats.MaxOpenConnections, 10)
}

func TestDB_Transaction(t *testing.T) {
	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)
	require.NotNil(t, conn)
	defer conn.Close()

	err = conn.AutoMigrate(&models.AnnotationRecord{})
	require.NoError(t, err)

	t.Run("successful transaction", func(t *testing.T) {
		err := conn.DB.Transaction(func(tx *gorm.DB) error {
			// Create multiple records in transaction
			for _, name := range []string{"a.png", "b.png", "c.png"} {
				record := models.AnnotationRecord{
					ImageName:   name,
					Format:      "YOLO",
					ImageWidth:  10,
					ImageHeight: 10,
				}
				if err := tx.Create(&record).Error; err != nil {
					return err
				}
			}
			return nil
		})

		assert.NoError(t, err)

		// Verify records were created
		var count int64
		conn.DB.Model(&models.AnnotationRecord{}).Count(&count)
		assert.Equal(t, int64(3), count)
	})

	t.Run("failed transaction rollback", func(t *testing.T) {
		// Count before transaction
		var countBefore int64
		conn.DB.Model(&models.AnnotationRecord{}).Count(&countBefore)

		err := conn.DB.Transaction(func(tx *gorm.DB) error {
			record := models.AnnotationRecord{
				ImageName:   "rollback.png",
				Format:      "YOLO",
				ImageWidth:  10,
				ImageHeight: 10,
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}

			// Force an error to trigger rollback
			return gorm.ErrInvalidTransaction
		})

		assert.Error(t, err)

		// Verify no new records were created (transaction was rolled back)
		var countAfter int64
		conn.DB.Model(&models.AnnotationRecord{}).Count(&countAfter)
		assert.Equal(t, countBefore, countAfter)
	})
}

func TestInitializeWithMigrations(t *testing.T) {
	tests := []struct {
		name      string
		setupFunc func(t *testing.T)
		wantErr   bool
		errMsg    string
	}{
		{
			name: "successful initialization with valid config",
			setupFunc: func(t *testing.T) {
				viper.Reset()
				viper.Set("database.path", ":memory:")
				viper.Set("database.log_queries", false)
			},
			wantErr: false,
		},
		{
			name: "error when database path not configured",
			setupFunc: func(t *testing.T) {
				viper.Reset()
			},
			wantErr: true,
			errMsg:  "database path is not configured",
		},
		{
			name: "successful initialization with file database",
			setupFunc: func(t *testing.T) {
				viper.Reset()
				viper.Set("database.path", filepath.Join(t.TempDir(), "test.db"))
				viper.Set("database.enable_wal", true)
				viper.Set("database.enable_foreign_keys", true)
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupFunc(t)
			defer viper.Reset()

			db, err := InitializeWithMigrations()

			if tt.wantErr {
				assert.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
				assert.Nil(t, db)
				return
			}

			assert.NoError(t, err)
			require.NotNil(t, db)
			defer db.Close()

			// Verify migrations were run by checking if the catalog table exists
			var count int64
			err = db.DB.Raw("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='annotation_records'").Scan(&count).Error
			assert.NoError(t, err)
			assert.Equal(t, int64(1), count, "annotation_records table should exist")
		})
	}
}
