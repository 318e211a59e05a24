package mockapi

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/frisklabs/frisk/api"
)

// fixtures is the seeded dataset the mock server serves. It is generated
// once at startup so cursors stay valid for the life of the process.
type fixtures struct {
	users       []api.RawUser
	queues      []api.RawQueue
	itemsByQ    map[string][]api.RawItem
	linked      map[string][]api.RawLinkAnalysisItem
	queuePerf   []api.RawQueuePerformance
	analystPerf []api.RawAnalystPerformance
	dictionary  map[string][]string
}

var analystNames = []string{"Dana Reyes", "Kim Osei", "Priya Nair", "Tomás Silva", "Mia Chen"}

func seedFixtures() *fixtures {
	f := &fixtures{
		itemsByQ: map[string][]api.RawItem{},
		linked:   map[string][]api.RawLinkAnalysisItem{},
		dictionary: map[string][]string{
			"email":   {"dana@example.com", "kim@example.com", "priya@example.com"},
			"country": {"Norway", "Netherlands", "New Zealand", "Nigeria"},
			"product": {"gift card", "game credit", "gaming console", "gem pack"},
		},
	}

	for i, name := range analystNames {
		f.users = append(f.users, api.RawUser{
			UserID:      fmt.Sprintf("analyst-%d", i+1),
			DisplayName: name,
			Mail:        fmt.Sprintf("analyst%d@example.com", i+1),
		})
	}

	queueNames := []string{"High value orders", "Velocity spikes", "Escalations", "Gift card abuse"}
	base := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	for qi, name := range queueNames {
		queueID := fmt.Sprintf("queue-%d", qi+1)
		f.queues = append(f.queues, api.RawQueue{
			QueueID:        queueID,
			ViewID:         uuid.NewString(),
			Name:           name,
			Created:        base.AddDate(0, 0, qi).Format(time.RFC3339),
			Size:           60,
			ForEscalations: name == "Escalations",
			Reviewers:      []string{"analyst-1", "analyst-2", "analyst-3"},
			Supervisors:    []string{"analyst-5"},
		})

		for n := 0; n < 60; n++ {
			purchaseID := uuid.NewString()
			item := api.RawItem{
				PurchaseID:  purchaseID,
				Status:      "InQueue",
				ImportDate:  base.AddDate(0, 0, qi).Add(time.Duration(n) * time.Hour).Format(time.RFC3339),
				TotalAmount: float64(25 + n*13%400),
				Currency:    "USD",
				QueueIDs:    []string{queueID},
			}

			switch n % 3 {
			case 0:
				item.Status = "Decided"
				item.Decision = &api.RawDecision{
					UserID:  fmt.Sprintf("analyst-%d", n%len(analystNames)+1),
					Label:   "approve",
					Applied: base.AddDate(0, 0, qi).Add(time.Duration(n+2) * time.Hour).Format(time.RFC3339),
				}
				item.Notes = []api.RawNote{{
					Note:    "Verified shipping address against history.",
					UserID:  fmt.Sprintf("analyst-%d", n%len(analystNames)+1),
					Created: base.AddDate(0, 0, qi).Add(time.Duration(n+1) * time.Hour).Format(time.RFC3339),
				}}
			case 1:
				item.LockedBy = fmt.Sprintf("analyst-%d", n%len(analystNames)+1)
				item.LockedOn = base.AddDate(0, 0, qi).Add(time.Duration(n) * time.Hour).Format(time.RFC3339)
			}

			f.itemsByQ[queueID] = append(f.itemsByQ[queueID], item)

			for l := 0; l < 12; l++ {
				f.linked[purchaseID] = append(f.linked[purchaseID], api.RawLinkAnalysisItem{
					PurchaseID:      uuid.NewString(),
					TransactionDate: base.AddDate(0, -1, l).Format(time.RFC3339),
					TotalAmount:     float64(10 + l*7),
					Currency:        "USD",
					UserEmail:       fmt.Sprintf("buyer%d@example.com", l),
					DecisionUserID:  fmt.Sprintf("analyst-%d", l%len(analystNames)+1),
				})
			}
		}

		f.queuePerf = append(f.queuePerf, api.RawQueuePerformance{
			QueueID:   queueID,
			QueueName: name,
			Reviewed:  140 - qi*20,
			Approved:  90 - qi*15,
			Rejected:  35,
			Escalated: 15 - qi*3,
		})
	}

	for i := range analystNames {
		f.analystPerf = append(f.analystPerf, api.RawAnalystPerformance{
			UserID:   fmt.Sprintf("analyst-%d", i+1),
			Reviewed: 80 - i*9,
			Approved: 55 - i*7,
			Rejected: 25 - i*2,
		})
	}

	return f
}
