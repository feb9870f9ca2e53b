package cmd

import (
	"fmt"
	"strings"

	"github.com/annolab/annotator-api/internal/database"
	"github.com/annolab/annotator-api/internal/models"
	"github.com/annolab/annotator-api/pkg/config"
	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the catalog database schema",
	Long: `Manage the SQLite catalog schema for the Image Annotator API.

The catalog mirrors every saved annotation into the annotation_records
table. Migrations are schema syncs driven by the GORM models, so applying
them repeatedly is safe.

Available subcommands:
  up      - Sync the schema with the current models
  down    - Drop the annotation_records table
  status  - Show the current schema status`,
}

// migrateUpCmd syncs the schema
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Sync the catalog schema",
	Long: `Sync the catalog database schema with the current models.

Creates the annotation_records table when it is missing and adds any
columns that were introduced since the database was created.`,
	RunE: runMigrateUp,
}

// migrateDownCmd drops the catalog table
var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Drop the catalog table",
	Long: `Drop the annotation_records table from the catalog database.

The annotation artifacts on disk are untouched, so the catalog can be
rebuilt by re-saving annotations after the next "migrate up".`,
	RunE: runMigrateDown,
}

// migrateStatusCmd shows schema status
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show catalog schema status",
	Long: `Display the current status of the catalog database schema.

Shows whether the annotation_records table exists, which of its columns
are present, and how many records the catalog holds.`,
	RunE: runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateStatusCmd)

	migrateCmd.PersistentFlags().Bool("dry-run", false, "show what would be done without making changes")
}

// openCatalog opens the configured catalog database without touching the schema
func openCatalog() (*database.DB, error) {
	dbPath := config.GetString("database.path")
	if dbPath == "" {
		return nil, fmt.Errorf("database path is not configured")
	}
	return database.Initialize(dbPath, config.GetBool("database.log_queries"))
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	db, err := openCatalog()
	if err != nil {
		return err
	}
	defer db.Close()

	if dryRun {
		fmt.Println("Dry run mode - no changes will be made")
		if db.Migrator().HasTable(&models.AnnotationRecord{}) {
			fmt.Println("annotation_records table exists, schema would be synced in place")
		} else {
			fmt.Println("annotation_records table would be created")
		}
		return nil
	}

	if err := db.AutoMigrate(&models.AnnotationRecord{}); err != nil {
		return err
	}

	fmt.Println("Catalog schema is up to date")
	return nil
}

func runMigrateDown(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	db, err := openCatalog()
	if err != nil {
		return err
	}
	defer db.Close()

	if !db.Migrator().HasTable(&models.AnnotationRecord{}) {
		fmt.Println("annotation_records table does not exist, nothing to do")
		return nil
	}

	if dryRun {
		fmt.Println("Dry run mode - no changes will be made")
		fmt.Println("annotation_records table would be dropped")
		return nil
	}

	// Confirmation prompt for destructive action
	fmt.Print("WARNING: This will drop the annotation_records table. Continue? (y/N): ")
	var response string
	_, _ = fmt.Scanln(&response)
	if response != "y" && response != "Y" {
		fmt.Println("Migration rollback cancelled")
		return nil
	}

	if err := db.Migrator().DropTable(&models.AnnotationRecord{}); err != nil {
		return err
	}

	fmt.Println("Dropped annotation_records table")
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, err := openCatalog()
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Println("Catalog Schema Status")
	fmt.Println(strings.Repeat("=", 50))

	record := &models.AnnotationRecord{}
	if !db.Migrator().HasTable(record) {
		fmt.Println("annotation_records: missing (run \"annotator-api migrate up\")")
		return nil
	}

	fmt.Println("annotation_records: present")

	// Columns introduced after the database was created show as missing
	// until the next schema sync
	columns := []string{
		"uuid", "image_name", "format",
		"image_width", "image_height",
		"label_count", "box_count",
		"json_path", "text_path", "image_path",
	}
	for _, column := range columns {
		state := "present"
		if !db.Migrator().HasColumn(record, column) {
			state = "missing"
		}
		fmt.Printf("  %-13s %s\n", column, state)
	}

	var count int64
	if err := db.Model(record).Count(&count).Error; err == nil {
		fmt.Printf("\nRecords: %d\n", count)
	}

	return nil
}
