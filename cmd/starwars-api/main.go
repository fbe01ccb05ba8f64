// Command starwars-api serves the Star Wars favorites API and carries the
// maintenance tasks around it.
//
//	starwars-api serve     apply migrations, then serve HTTP until SIGINT/SIGTERM
//	starwars-api migrate   apply pending migrations and exit
//	starwars-api seed      insert the sample users, characters and planets
//
// Configuration comes from config.yaml, STARWARS_* variables and the plain
// DATABASE_URL / PORT variables (a .env file is loaded automatically).
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
