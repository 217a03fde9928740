package database

import (
	"database/sql"
	"strings"
	"time"

	"github.com/Diogo1912/jobbi/internal/dedupe"
	"github.com/Diogo1912/jobbi/pkg/models"
)

// Job operations

// CreateJob inserts a posting. Returns ErrDuplicateJob when a job with the
// same URL or the same title+company pair is already saved.
func CreateJob(job *models.Job) error {
	var exists int
	err := DB.QueryRow(
		`SELECT COUNT(*) FROM jobs
		 WHERE (url != '' AND url = ?) OR (lower(title) = lower(?) AND lower(company) = lower(?))`,
		job.URL, job.Title, job.Company,
	).Scan(&exists)
	if err != nil {
		return err
	}
	if exists > 0 {
		return ErrDuplicateJob
	}

	// NULLIF keeps the UNIQUE constraint from tripping on url-less jobs.
	query := `INSERT INTO jobs (title, company, location, type, salary, description, url, source, posted_at)
			  VALUES (?, ?, ?, ?, ?, ?, NULLIF(?, ''), ?, ?)`
	result, err := DB.Exec(query, job.Title, job.Company, job.Location, string(job.Type),
		job.Salary, job.Description, job.URL, job.Source, job.PostedAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return ErrDuplicateJob
		}
		return err
	}
	id, _ := result.LastInsertId()
	job.ID = int(id)
	return nil
}

func GetJob(id int) (*models.Job, error) {
	query := `SELECT id, title, company, location, type, salary, description, url, source,
			  posted_at, created_at FROM jobs WHERE id=?`
	job := &models.Job{}
	err := scanJob(DB.QueryRow(query, id), job)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return job, err
}

func GetAllJobs() ([]*models.Job, error) {
	query := `SELECT id, title, company, location, type, salary, description, url, source,
			  posted_at, created_at FROM jobs ORDER BY created_at DESC, id DESC`
	rows, err := DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []*models.Job{}
	for rows.Next() {
		job := &models.Job{}
		if err := scanJob(rows, job); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// DeleteAllJobs wipes the posting table. Tracked entries cascade.
func DeleteAllJobs() (int, error) {
	result, err := DB.Exec(`DELETE FROM jobs`)
	if err != nil {
		return 0, err
	}
	n, _ := result.RowsAffected()
	return int(n), nil
}

// KnownIdentities returns the duplicate keys of every saved job, for
// filtering new batches before insert.
func KnownIdentities() ([]dedupe.Identity, error) {
	rows, err := DB.Query(`SELECT title, company, COALESCE(url, '') FROM jobs`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []dedupe.Identity
	for rows.Next() {
		var title, company, url string
		if err := rows.Scan(&title, &company, &url); err != nil {
			return nil, err
		}
		if url != "" {
			ids = append(ids, dedupe.Identity(url))
		}
		ids = append(ids, dedupe.CompositeKey(title, company))
	}
	return ids, rows.Err()
}

func CountJobsBySource() (map[string]int, error) {
	rows, err := DB.Query(`SELECT source, COUNT(*) FROM jobs GROUP BY source`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var source string
		var n int
		if err := rows.Scan(&source, &n); err != nil {
			return nil, err
		}
		counts[source] = n
	}
	return counts, rows.Err()
}

type scannable interface {
	Scan(dest ...interface{}) error
}

func scanJob(row scannable, job *models.Job) error {
	var jobType string
	var url sql.NullString
	var postedAt sql.NullTime
	err := row.Scan(&job.ID, &job.Title, &job.Company, &job.Location, &jobType,
		&job.Salary, &job.Description, &url, &job.Source, &postedAt, &job.CreatedAt)
	if err != nil {
		return err
	}
	job.Type = models.JobType(jobType)
	job.URL = url.String
	if postedAt.Valid {
		job.PostedAt = postedAt.Time
	}
	return nil
}

// Settings operations

// Settings is the single-row user configuration: the preference profile plus
// the list of career page URLs to scrape.
type Settings struct {
	Profile    models.PreferenceProfile
	ScrapeURLs []string
}

// GetSettings returns the stored settings, or zero-valued settings when the
// row has never been written.
func GetSettings() (*Settings, error) {
	query := `SELECT desired_roles, preferred_locations, remote_preference, salary_expectation,
			  skills, experience, education, industries, company_size, deal_breakers,
			  additional_notes, scrape_urls FROM settings WHERE id=1`
	s := &Settings{}
	var urls string
	p := &s.Profile
	err := DB.QueryRow(query).Scan(&p.DesiredRoles, &p.PreferredLocations, &p.RemotePreference,
		&p.SalaryExpectation, &p.Skills, &p.Experience, &p.Education, &p.Industries,
		&p.CompanySize, &p.DealBreakers, &p.AdditionalNotes, &urls)
	if err == sql.ErrNoRows {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	for _, u := range strings.Split(urls, "\n") {
		if u = strings.TrimSpace(u); u != "" {
			s.ScrapeURLs = append(s.ScrapeURLs, u)
		}
	}
	return s, nil
}

// SaveSettings upserts the single settings row.
func SaveSettings(s *Settings) error {
	p := s.Profile
	query := `INSERT INTO settings (id, desired_roles, preferred_locations, remote_preference,
			  salary_expectation, skills, experience, education, industries, company_size,
			  deal_breakers, additional_notes, scrape_urls, updated_at)
			  VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			  ON CONFLICT(id) DO UPDATE SET
			  desired_roles=excluded.desired_roles,
			  preferred_locations=excluded.preferred_locations,
			  remote_preference=excluded.remote_preference,
			  salary_expectation=excluded.salary_expectation,
			  skills=excluded.skills,
			  experience=excluded.experience,
			  education=excluded.education,
			  industries=excluded.industries,
			  company_size=excluded.company_size,
			  deal_breakers=excluded.deal_breakers,
			  additional_notes=excluded.additional_notes,
			  scrape_urls=excluded.scrape_urls,
			  updated_at=excluded.updated_at`
	_, err := DB.Exec(query, p.DesiredRoles, p.PreferredLocations, p.RemotePreference,
		p.SalaryExpectation, p.Skills, p.Experience, p.Education, p.Industries,
		p.CompanySize, p.DealBreakers, p.AdditionalNotes,
		strings.Join(s.ScrapeURLs, "\n"), time.Now())
	return err
}

// Tracking operations

// TrackedEntry joins a tracking record with its job for board display.
type TrackedEntry struct {
	Tracked models.TrackedJob
	Job     models.Job
}

// TrackJob creates or updates the tracking record for a job. Moving to
// APPLIED stamps applied_at once; later status changes keep the stamp.
func TrackJob(jobID int, status models.JobStatus, notes string) error {
	if _, err := GetJob(jobID); err != nil {
		return err
	}

	now := time.Now()
	var appliedAt interface{}
	if status == models.StatusApplied {
		appliedAt = now
	}

	query := `INSERT INTO tracked_jobs (job_id, status, notes, applied_at)
			  VALUES (?, ?, ?, ?)
			  ON CONFLICT(job_id) DO UPDATE SET
			  status=excluded.status,
			  notes=CASE WHEN excluded.notes != '' THEN excluded.notes ELSE tracked_jobs.notes END,
			  applied_at=COALESCE(tracked_jobs.applied_at, excluded.applied_at),
			  updated_at=CURRENT_TIMESTAMP`
	_, err := DB.Exec(query, jobID, string(status), notes, appliedAt)
	return err
}

// RemoveTracked drops a job from the tracking board.
func RemoveTracked(jobID int) error {
	result, err := DB.Exec(`DELETE FROM tracked_jobs WHERE job_id=?`, jobID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetTrackedEntries returns all tracking records with their jobs, newest
// update first.
func GetTrackedEntries() ([]*TrackedEntry, error) {
	query := `SELECT t.id, t.job_id, t.status, t.notes, t.applied_at, t.created_at, t.updated_at,
			  j.id, j.title, j.company, j.location, j.type, j.salary, j.description,
			  COALESCE(j.url, ''), j.source, j.posted_at, j.created_at
			  FROM tracked_jobs t JOIN jobs j ON t.job_id = j.id
			  ORDER BY t.updated_at DESC`
	rows, err := DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []*TrackedEntry{}
	for rows.Next() {
		e := &TrackedEntry{}
		var status, jobType string
		var appliedAt, postedAt sql.NullTime
		err := rows.Scan(&e.Tracked.ID, &e.Tracked.JobID, &status, &e.Tracked.Notes,
			&appliedAt, &e.Tracked.CreatedAt, &e.Tracked.UpdatedAt,
			&e.Job.ID, &e.Job.Title, &e.Job.Company, &e.Job.Location, &jobType,
			&e.Job.Salary, &e.Job.Description, &e.Job.URL, &e.Job.Source,
			&postedAt, &e.Job.CreatedAt)
		if err != nil {
			return nil, err
		}
		e.Tracked.Status = models.JobStatus(status)
		e.Job.Type = models.JobType(jobType)
		if appliedAt.Valid {
			t := appliedAt.Time
			e.Tracked.AppliedAt = &t
		}
		if postedAt.Valid {
			e.Job.PostedAt = postedAt.Time
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func CountTrackedByStatus() (map[models.JobStatus]int, error) {
	rows, err := DB.Query(`SELECT status, COUNT(*) FROM tracked_jobs GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[models.JobStatus]int{}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[models.JobStatus(status)] = n
	}
	return counts, rows.Err()
}

// Search log operations

func LogSearch(query string, jobsFound int) error {
	_, err := DB.Exec(`INSERT INTO search_logs (query, jobs_found) VALUES (?, ?)`, query, jobsFound)
	return err
}

func GetSearchLogs(limit int) ([]*models.SearchLog, error) {
	rows, err := DB.Query(
		`SELECT id, query, jobs_found, created_at FROM search_logs ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := []*models.SearchLog{}
	for rows.Next() {
		l := &models.SearchLog{}
		if err := rows.Scan(&l.ID, &l.Query, &l.JobsFound, &l.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
