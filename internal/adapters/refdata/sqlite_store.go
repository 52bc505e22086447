package refdata

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/mikey/coldflow-core/internal/core"
)

// SQLiteStore is a SQLite implementation of the ReferenceStore interface
type SQLiteStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSQLiteStore creates a new SQLite store at dbPath (":memory:" is fine)
// and seeds it with the reporting datasets when empty
func NewSQLiteStore(dbPath string, logger *zap.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	store := &SQLiteStore{db: db, logger: logger}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	if err := store.seed(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS actl_clients (
			client_name TEXT PRIMARY KEY,
			completion_rate REAL,
			positive_replies INTEGER,
			total_replies INTEGER,
			total_email_sent INTEGER,
			meetings_booked INTEGER,
			reply_rate REAL,
			positive_reply_rate REAL,
			positive_reply_to_meeting REAL,
			health_score TEXT,
			notes TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS client_contracts (
			name TEXT PRIMARY KEY,
			contract_start TEXT,
			total_sent INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS meetings (
			id TEXT PRIMARY KEY,
			prospect_name TEXT,
			email TEXT,
			company TEXT,
			title TEXT,
			campaign_name TEXT,
			meeting_date TEXT,
			meeting_time TEXT,
			status TEXT,
			booked_date TEXT,
			source TEXT
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) seed() error {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM actl_clients`).Scan(&count); err != nil {
		return fmt.Errorf("failed to check seed state: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, c := range SeedACTLClients() {
		_, err := tx.Exec(`
			INSERT INTO actl_clients (
				client_name, completion_rate, positive_replies, total_replies,
				total_email_sent, meetings_booked, reply_rate, positive_reply_rate,
				positive_reply_to_meeting, health_score, notes
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, c.ClientName, c.CompletionRate, c.PositiveReplies, c.TotalReplies,
			c.TotalEmailSent, c.MeetingsBooked, c.ReplyRate, c.PositiveReplyRate,
			c.PositiveReplyToMeeting, c.HealthScore, c.Notes)
		if err != nil {
			return fmt.Errorf("failed to seed tracker row: %w", err)
		}
	}

	for _, c := range SeedClientContracts() {
		_, err := tx.Exec(`
			INSERT INTO client_contracts (name, contract_start, total_sent)
			VALUES (?, ?, ?)
		`, c.Name, c.ContractStart, c.TotalSent)
		if err != nil {
			return fmt.Errorf("failed to seed client contract: %w", err)
		}
	}

	for _, m := range SeedMeetings() {
		_, err := tx.Exec(`
			INSERT INTO meetings (
				id, prospect_name, email, company, title, campaign_name,
				meeting_date, meeting_time, status, booked_date, source
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, m.ID, m.ProspectName, m.Email, m.Company, m.Title, m.CampaignName,
			m.MeetingDate, m.MeetingTime, m.Status, m.BookedDate, m.Source)
		if err != nil {
			return fmt.Errorf("failed to seed meeting: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}
	s.logger.Debug("reference data seeded")
	return nil
}

// ACTLClients returns all tracker rows
func (s *SQLiteStore) ACTLClients(ctx context.Context) ([]core.ACTLClientRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT client_name, completion_rate, positive_replies, total_replies,
			total_email_sent, meetings_booked, reply_rate, positive_reply_rate,
			positive_reply_to_meeting, health_score, notes
		FROM actl_clients
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tracker rows: %w", err)
	}
	defer rows.Close()

	var clients []core.ACTLClientRow
	for rows.Next() {
		var c core.ACTLClientRow
		if err := rows.Scan(
			&c.ClientName, &c.CompletionRate, &c.PositiveReplies, &c.TotalReplies,
			&c.TotalEmailSent, &c.MeetingsBooked, &c.ReplyRate, &c.PositiveReplyRate,
			&c.PositiveReplyToMeeting, &c.HealthScore, &c.Notes,
		); err != nil {
			return nil, fmt.Errorf("failed to scan tracker row: %w", err)
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

// ClientContracts returns all client engagement records
func (s *SQLiteStore) ClientContracts(ctx context.Context) ([]core.ClientContract, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, contract_start, total_sent FROM client_contracts ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query client contracts: %w", err)
	}
	defer rows.Close()

	var contracts []core.ClientContract
	for rows.Next() {
		var c core.ClientContract
		if err := rows.Scan(&c.Name, &c.ContractStart, &c.TotalSent); err != nil {
			return nil, fmt.Errorf("failed to scan client contract: %w", err)
		}
		contracts = append(contracts, c)
	}
	return contracts, rows.Err()
}

// Meetings returns all booked meeting records
func (s *SQLiteStore) Meetings(ctx context.Context) ([]core.MeetingRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, prospect_name, email, company, title, campaign_name,
			meeting_date, meeting_time, status, booked_date, source
		FROM meetings
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query meetings: %w", err)
	}
	defer rows.Close()

	var meetings []core.MeetingRecord
	for rows.Next() {
		var m core.MeetingRecord
		if err := rows.Scan(
			&m.ID, &m.ProspectName, &m.Email, &m.Company, &m.Title, &m.CampaignName,
			&m.MeetingDate, &m.MeetingTime, &m.Status, &m.BookedDate, &m.Source,
		); err != nil {
			return nil, fmt.Errorf("failed to scan meeting: %w", err)
		}
		meetings = append(meetings, m)
	}
	return meetings, rows.Err()
}

// Close releases the database handle
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
