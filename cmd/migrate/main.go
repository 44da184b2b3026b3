// Command migrate aplica las migraciones embebidas sobre PostgreSQL.
//
//	migrate up
//	migrate down [N]
//	migrate version
//	migrate force V
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
