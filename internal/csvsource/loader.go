// Package csvsource loads the employee roster from its flat CSV file.
// Rows are materialized into strongly typed roster.Record values at the
// boundary; query code never sees raw CSV strings.
package csvsource

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/opshr/rosterkit/internal/domain/roster"
)

const dateLayout = "2006-01-02"

// requiredColumns lists every header the loader must find before it
// decodes any rows. Column order in the file does not matter and extra
// columns are ignored.
var requiredColumns = []string{
	"employee_id", "payroll_id", "name", "gender", "birthdate",
	"age_group", "team", "part", "title", "start_date", "probation_end",
	"resignation_date", "tenure_text", "prior_experience_text",
	"total_experience_text", "contract_type", "phone", "email",
	"work_location", "job_type", "employment_status",
	"employment_status_detail", "prior_experience_months",
	"current_experience_months", "total_experience_months",
}

// row mirrors one raw CSV line before it is materialized into a
// roster.Record. Everything stays a string here; parsing happens in
// toRecord so a bad field can degrade to absent instead of failing the
// whole load.
type row struct {
	EmployeeID              string `csv:"employee_id"`
	PayrollID               string `csv:"payroll_id"`
	Name                    string `csv:"name"`
	Gender                  string `csv:"gender"`
	Birthdate               string `csv:"birthdate"`
	AgeGroup                string `csv:"age_group"`
	Team                    string `csv:"team"`
	Part                    string `csv:"part"`
	Title                   string `csv:"title"`
	StartDate               string `csv:"start_date"`
	ProbationEnd            string `csv:"probation_end"`
	ResignationDate         string `csv:"resignation_date"`
	TenureText              string `csv:"tenure_text"`
	PriorExperienceText     string `csv:"prior_experience_text"`
	TotalExperienceText     string `csv:"total_experience_text"`
	ContractType            string `csv:"contract_type"`
	Phone                   string `csv:"phone"`
	Email                   string `csv:"email"`
	WorkLocation            string `csv:"work_location"`
	JobType                 string `csv:"job_type"`
	EmploymentStatus        string `csv:"employment_status"`
	EmploymentStatusDetail  string `csv:"employment_status_detail"`
	PriorExperienceMonths   string `csv:"prior_experience_months"`
	CurrentExperienceMonths string `csv:"current_experience_months"`
	TotalExperienceMonths   string `csv:"total_experience_months"`
}

// Load reads the CSV at path into a Roster, preserving row order. A
// missing file or missing required header column is fatal; malformed
// dates and counts inside a row are treated as absent values.
func Load(path string) (*roster.Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	if err := checkHeader(f); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	var rows []*row
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("decode csv: %w", err)}
	}

	records := make([]roster.Record, 0, len(rows))
	for _, r := range rows {
		records = append(records, r.toRecord())
	}
	return roster.New(records), nil
}

func checkHeader(r io.Reader) error {
	header, err := csv.NewReader(r).Read()
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	seen := make(map[string]bool, len(header))
	for _, name := range header {
		seen[strings.TrimSpace(name)] = true
	}
	var missing []string
	for _, name := range requiredColumns {
		if !seen[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return nil
}

func (r row) toRecord() roster.Record {
	return roster.Record{
		EmployeeID:              strings.TrimSpace(r.EmployeeID),
		PayrollID:               strings.TrimSpace(r.PayrollID),
		Name:                    strings.TrimSpace(r.Name),
		Gender:                  strings.TrimSpace(r.Gender),
		Birthdate:               parseDate(r.Birthdate),
		AgeGroup:                strings.TrimSpace(r.AgeGroup),
		Team:                    strings.TrimSpace(r.Team),
		Part:                    strings.TrimSpace(r.Part),
		Title:                   strings.TrimSpace(r.Title),
		StartDate:               parseDate(r.StartDate),
		ProbationEnd:            parseDate(r.ProbationEnd),
		ResignationDate:         parseDate(r.ResignationDate),
		TenureText:              strings.TrimSpace(r.TenureText),
		PriorExperienceText:     strings.TrimSpace(r.PriorExperienceText),
		TotalExperienceText:     strings.TrimSpace(r.TotalExperienceText),
		ContractType:            strings.TrimSpace(r.ContractType),
		Phone:                   strings.TrimSpace(r.Phone),
		Email:                   strings.TrimSpace(r.Email),
		WorkLocation:            strings.TrimSpace(r.WorkLocation),
		JobType:                 strings.TrimSpace(r.JobType),
		EmploymentStatus:        strings.TrimSpace(r.EmploymentStatus),
		EmploymentStatusDetail:  strings.TrimSpace(r.EmploymentStatusDetail),
		PriorExperienceMonths:   parseMonths(r.PriorExperienceMonths),
		CurrentExperienceMonths: parseMonths(r.CurrentExperienceMonths),
		TotalExperienceMonths:   parseMonths(r.TotalExperienceMonths),
	}
}

// parseDate turns a YYYY-MM-DD field into a date. Blank or malformed
// input yields an absent value rather than a load failure.
func parseDate(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil
	}
	return &t
}

// parseMonths parses a non-negative month count, absent on blank,
// malformed or negative input.
func parseMonths(value string) *int {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}
