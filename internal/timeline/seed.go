package timeline

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
)

// seedFile is the YAML shape for an external event seed.
type seedFile struct {
	Events []Event `yaml:"events"`
}

// LoadSeed reads events from a YAML file. Used to replace the built-in
// demo events with site-specific data.
func LoadSeed(path string) ([]Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("timeline: read seed file: %w", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("timeline: parse seed file: %w", err)
	}
	if len(seed.Events) == 0 {
		return nil, fmt.Errorf("timeline: seed file %s contains no events", path)
	}
	return seed.Events, nil
}

// DefaultEvents returns the built-in demo timeline, timestamped relative to
// now so the data always looks current.
func DefaultEvents() []Event {
	now := time.Now()
	return []Event{
		{ID: 1, Title: "Patient Admitted", Description: "Patient admitted to the hospital", Timestamp: now.Add(-48 * time.Hour), Message: "Patient John Doe admitted.", Type: TypeAudit},
		{ID: 2, Title: "Initial Assessment", Description: "Nurse performed initial assessment", Timestamp: now.Add(-29 * time.Hour), Message: "Initial assessment completed by Nurse Jane.", Type: TypeNote},
		{ID: 3, Title: "Medication Administered", Description: "Administered prescribed medication", Timestamp: now.Add(-20 * time.Hour), Message: "Administered 500mg of medication X.", Type: TypeAudit},
		{ID: 4, Title: "Follow-up Visit", Description: "Doctor's follow-up visit", Timestamp: now.Add(-10 * time.Hour), Message: "Follow-up visit by Dr. Smith.", Type: TypeNote},
		{ID: 5, Title: "Discharge Planning", Description: "Planning for patient discharge", Timestamp: now.Add(-2 * time.Hour), Message: "Discharge planning initiated.", Type: TypeAudit},
		{ID: 6, Title: "Patient Discharged", Description: "Patient discharged from the hospital", Timestamp: now.Add(-30 * time.Minute), Message: "Patient John Doe discharged.", Type: TypeAudit},
		{ID: 7, Title: "Post-Discharge Call", Description: "Nurse called patient post-discharge", Timestamp: now.Add(-10 * time.Minute), Message: "Post-discharge call completed.", Type: TypeNote},
		{ID: 8, Title: "Lab Results Received", Description: "Received lab results for patient", Timestamp: now.Add(-1 * time.Hour), Message: "Lab results for patient John Doe received.", Type: TypeAudit},
		{ID: 9, Title: "Physical Therapy Session", Description: "Conducted physical therapy session", Timestamp: now.Add(-3 * time.Hour), Message: "Physical therapy session completed.", Type: TypeNote},
		{ID: 10, Title: "Dietary Consultation", Description: "Dietary consultation with nutritionist", Timestamp: now.Add(-4 * time.Hour), Message: "Dietary consultation conducted.", Type: TypeNote},
		{ID: 11, Title: "Medication Review", Description: "Reviewed patient's medications", Timestamp: now.Add(-6 * time.Hour), Message: "Medication review completed.", Type: TypeAudit},
		{ID: 12, Title: "Vaccination Administered", Description: "Administered flu vaccination", Timestamp: now.Add(-8 * time.Hour), Message: "Flu vaccination administered.", Type: TypeAudit},
	}
}
