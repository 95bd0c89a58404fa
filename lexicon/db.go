package lexicon

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// DBSource reads candidate words from a sqlite lexicon database with a
// `words` table holding one word per row in a `word` column. The rows
// are read in lexical order so that runs are reproducible regardless of
// insertion order.
type DBSource struct {
	Path string
}

func (d DBSource) Each(fn func(word string) error) error {
	db, err := sql.Open("sqlite", d.Path)
	if err != nil {
		return fmt.Errorf("lexicon: opening lexicon db: %w", err)
	}
	defer db.Close()

	rows, err := db.Query("SELECT word FROM words ORDER BY word")
	if err != nil {
		return fmt.Errorf("lexicon: querying lexicon db: %w", err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			return fmt.Errorf("lexicon: scanning lexicon row: %w", err)
		}
		count++
		if err := fn(Chop(word)); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("lexicon: iterating lexicon db: %w", err)
	}
	log.Debug().Str("path", d.Path).Int("words", count).Msg("scanned lexicon db")
	return nil
}
