package jobs

import (
	"log"

	config "github.com/anjiri1684/college_erp/configs"
	"github.com/anjiri1684/college_erp/services"
)

// RunNightlyBackup writes a SQL dump of every application table to the
// configured backup directory.
func RunNightlyBackup() {
	log.Println("Running job: RunNightlyBackup...")

	dir := config.ConfigOr("BACKUP_DIR", "backups")
	path, err := services.DumpToFile(dir)
	if err != nil {
		log.Printf("Error writing nightly backup: %v", err)
		return
	}

	log.Printf("Nightly backup written to %s", path)
}
