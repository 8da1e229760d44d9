package database

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

const tableName = "belote_results"

const columns = "id, match_id, created_at, player1, player2, player3, player4, team1_score, team2_score, winner, rounds, seed"

type Service struct {
	db         *sql.DB
	m          *sync.Mutex
	driver     string
	table_name string
}

// New opens driver ("sqlite3" or "pgx") at dsn and creates the results table.
func New(driver, dsn string) (*Service, error) {
	if driver != "sqlite3" && driver != "pgx" {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	sqlStmt := `
	create table if not exists ` + tableName + ` (
		id text not null primary key,
		match_id text,
		created_at text,
		player1 text,
		player2 text,
		player3 text,
		player4 text,
		team1_score integer,
		team2_score integer,
		winner integer,
		rounds integer,
		seed bigint
	);
	`
	if _, err = db.Exec(sqlStmt); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating %s: %w", tableName, err)
	}

	return &Service{
		db:         db,
		m:          &sync.Mutex{},
		driver:     driver,
		table_name: tableName,
	}, nil
}

func (s *Service) Close() error {
	return s.db.Close()
}

func (s *Service) TableName() string {
	return s.table_name
}

// bind rewrites ? placeholders to $n for postgres.
func (s *Service) bind(query string) string {
	if s.driver != "pgx" {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(row scanner) (MatchResult, error) {
	var result MatchResult
	var seed int64
	err := row.Scan(
		&result.ID,
		&result.MatchID,
		&result.CreatedAt,
		&result.Player1,
		&result.Player2,
		&result.Player3,
		&result.Player4,
		&result.Team1Score,
		&result.Team2Score,
		&result.Winner,
		&result.Rounds,
		&seed)
	result.Seed = uint64(seed)
	return result, err
}

func (s *Service) query(query string, args ...any) ([]MatchResult, error) {
	rows, err := s.db.Query(s.bind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []MatchResult
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, rows.Err()
}

func (s *Service) GetAll() ([]MatchResult, error) {
	s.m.Lock()
	defer s.m.Unlock()
	return s.query("SELECT " + columns + " FROM " + s.table_name + " ORDER BY created_at, id")
}

func (s *Service) GetByID(id string) (MatchResult, error) {
	s.m.Lock()
	defer s.m.Unlock()
	row := s.db.QueryRow(s.bind("SELECT "+columns+" FROM "+s.table_name+" WHERE id = ?"), id)
	result, err := scanResult(row)
	if err != nil {
		return MatchResult{}, err
	}
	return result, nil
}

func (s *Service) Insert(result MatchResult) error {
	s.m.Lock()
	defer s.m.Unlock()
	_, err := s.db.Exec(s.bind("INSERT INTO "+s.table_name+" ("+columns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"),
		result.ID,
		result.MatchID,
		result.CreatedAt,
		result.Player1,
		result.Player2,
		result.Player3,
		result.Player4,
		result.Team1Score,
		result.Team2Score,
		result.Winner,
		result.Rounds,
		int64(result.Seed))
	return err
}

// GetByPlayer returns sql.ErrNoRows when the player has no recorded match.
func (s *Service) GetByPlayer(player_name string) ([]MatchResult, error) {
	s.m.Lock()
	defer s.m.Unlock()
	results, err := s.query("SELECT "+columns+" FROM "+s.table_name+
		" WHERE player1 = ? OR player2 = ? OR player3 = ? OR player4 = ? ORDER BY created_at, id",
		player_name,
		player_name,
		player_name,
		player_name)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, sql.ErrNoRows
	}
	return results, nil
}
