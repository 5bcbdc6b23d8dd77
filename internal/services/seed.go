package services

import (
	"time"

	"github.com/sathyaantham2-wq/Labour-cms-Google-studio/internal/models"
)

// DemoCases is the sample record a fresh office install starts with
func DemoCases(now time.Time, loc *time.Location) []models.Case {
	return []models.Case{
		{
			ID:                "1",
			FileNumber:        "TG/LC/2025/001",
			ReceivedDate:      "2025-01-15",
			ReceivedFrom:      "By Hand",
			Section:           "Minimum Wages",
			ApplicantName:     "Rajesh Kumar Yadav",
			ApplicantPhones:   []string{"9876543210"},
			ApplicantEmail:    "rajesh.yadav@example.com",
			ApplicantAddress:  "Plot 45, Jubilee Hills, Hyderabad",
			ManagementName:    "Sunrise Textiles Pvt Ltd",
			ManagementPerson:  "Sri K. Venkatesh",
			ManagementPhones:  []string{"8887776660"},
			ManagementEmail:   "hr@sunrisetextiles.com",
			ManagementAddress: "HITEC City, Phase 2, Hyderabad",
			Subject:           "Unpaid Wages – 6 Months Arrears",
			AmountRecovered:   148000,
			Status:            models.StatusOpen,
			Hearings: []models.Hearing{
				{
					ID:          "h1",
					Date:        models.NewTimestamp(time.Date(2025, 2, 10, 10, 30, 0, 0, loc)),
					Remarks:     "Case registered. Notice issued to Management.",
					IsCompleted: true,
				},
			},
			CreatedAt: models.NewTimestamp(now),
		},
	}
}
