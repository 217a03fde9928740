package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Diogo1912/jobbi/pkg/models"
)

// ErrUnparseable means the model returned something that is not a JSON array
// of job records, even after fence stripping.
var ErrUnparseable = errors.New("response is not a parseable job array")

// PageLink is an anchor found on a scraped page, with its href resolved to an
// absolute URL.
type PageLink struct {
	Text string
	URL  string
}

const extractPromptHeader = `You are a job listing extractor. Analyze this career page content and extract job listings.`

const extractPromptFooter = `Extract up to 10 job listings from this page. For each job, provide:
- title: The job title
- company: Company name (extract from page or use domain name)
- location: Location if mentioned, otherwise "Not specified"
- type: FULL_TIME, PART_TIME, CONTRACT, INTERNSHIP, FREELANCE, or REMOTE
- salary: Salary if mentioned, otherwise null
- description: Brief job description (1-2 sentences) if available
- url: The most likely URL for this specific job posting from the links provided

If this doesn't appear to be a careers/jobs page, return an empty array.

Return ONLY a valid JSON array, no markdown, no explanation. Example:
[{"title":"Software Engineer","company":"Acme Inc","location":"Remote","type":"REMOTE","salary":null,"description":"Build amazing products","url":"https://example.com/jobs/123"}]`

// ParseJobArray decodes a model response into job records. Markdown code
// fences are stripped first since models add them despite instructions.
func ParseJobArray(raw string) ([]models.RawJob, error) {
	clean := strings.ReplaceAll(raw, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	clean = strings.TrimSpace(clean)

	var jobs []models.RawJob
	if err := json.Unmarshal([]byte(clean), &jobs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseable, err)
	}
	return jobs, nil
}

// ExtractJobs asks the model to pull job listings out of page text. The
// domain becomes each job's source; jobs without a URL fall back to the page
// URL itself.
func (c *Client) ExtractJobs(ctx context.Context, pageText string, links []PageLink, domain, pageURL string) ([]models.RawJob, error) {
	var sb strings.Builder
	sb.WriteString(extractPromptHeader)
	sb.WriteString("\n\nPAGE CONTENT (truncated):\n")
	sb.WriteString(pageText)
	sb.WriteString("\n\nLINKS ON PAGE:\n")
	for _, l := range links {
		fmt.Fprintf(&sb, "- %q -> %s\n", l.Text, l.URL)
	}
	sb.WriteString("\n")
	sb.WriteString(extractPromptFooter)

	resp, err := c.Generate(ctx, sb.String())
	if err != nil {
		return nil, err
	}

	jobs, err := ParseJobArray(resp)
	if err != nil {
		return nil, err
	}

	for i := range jobs {
		jobs[i].Source = domain
		if jobs[i].URL == "" {
			jobs[i].URL = pageURL
		}
	}
	return jobs, nil
}

// GenerateListings asks the model to invent plausible openings matching the
// profile. Useful as a discovery aid when live sources come back thin.
func (c *Client) GenerateListings(ctx context.Context, profile models.PreferenceProfile) ([]models.RawJob, error) {
	prompt := fmt.Sprintf(`You are Jobbi, an AI job search assistant. Based on the user's preferences, generate 10 REALISTIC job listings that match their criteria.

USER PREFERENCES:
- Desired Roles: %s
- Preferred Locations: %s
- Remote Preference: %s
- Salary Expectation: %s
- Skills: %s
- Experience: %s
- Industries of Interest: %s
- Company Size Preference: %s
- Deal Breakers: %s
- Additional Notes: %s

IMPORTANT REQUIREMENTS:
1. Use REAL companies that are known to hire for these roles
2. Generate REALISTIC job titles that these companies actually use
3. For URLs, use the company's ACTUAL careers page format, or linkedin.com/jobs/view/ with a realistic ID
4. Salary ranges should be realistic for the role and location
5. Descriptions should be 2-3 sentences highlighting key responsibilities and requirements

Return ONLY a valid JSON array with these fields for each job:
- title (string): Realistic job title
- company (string): Real company name
- location (string): City, State/Country or "Remote"
- type (string): One of FULL_TIME, PART_TIME, CONTRACT, INTERNSHIP, FREELANCE, REMOTE
- salary (string): Realistic salary range like "$120,000 - $180,000/year"
- description (string): 2-3 sentence job description
- url (string): Real company careers page URL
- source (string): "Company Website" or "LinkedIn"

Return ONLY the JSON array, no markdown, no explanation.`,
		orDefault(profile.DesiredRoles, "Software Engineer, Developer, Tech roles"),
		orDefault(profile.PreferredLocations, "Remote, USA, Europe"),
		orDefault(profile.RemotePreference, "Remote friendly"),
		orDefault(profile.SalaryExpectation, "Competitive"),
		orDefault(profile.Skills, "Programming, Problem solving"),
		orDefault(profile.Experience, "Mid-level"),
		orDefault(profile.Industries, "Technology, Software"),
		orDefault(profile.CompanySize, "Any"),
		orDefault(profile.DealBreakers, "None specified"),
		orDefault(profile.AdditionalNotes, "None"))

	resp, err := c.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	jobs, err := ParseJobArray(resp)
	if err != nil {
		return nil, err
	}
	for i := range jobs {
		if jobs[i].Source == "" {
			jobs[i].Source = "AI Suggested"
		}
	}
	return jobs, nil
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
